package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/fairlens/fairlens/internal/contract"
	"github.com/fairlens/fairlens/schema"
)

// PrintComplianceResults outputs the compliance evaluation, dispatching based
// on the output format configured.
func PrintComplianceResults(snap *schema.Snapshot, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForCompliance(snap, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForCompliance(snap, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable text
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return printComplianceText(snap, cfg, fmtFloat, w)
		}, "Wrote compliance")
	}
	return nil
}

// complianceJSONModel pairs the predicates with the classification they feed.
type complianceJSONModel struct {
	Performance schema.PerformanceClass `json:"performance"`
	Compliance  schema.Compliance       `json:"compliance"`
}

// printJSONResultsForCompliance handles opening the file and calling the JSON writer.
func printJSONResultsForCompliance(snap *schema.Snapshot, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, complianceJSONModel{
			Performance: snap.Performance,
			Compliance:  snap.Compliance,
		})
	}, "Wrote JSON compliance")
}

// printCSVResultsForCompliance writes the predicates as check/result rows.
func printCSVResultsForCompliance(snap *schema.Snapshot, cfg *contract.Config) error {
	header := []string{"check", "result"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			rows := [][]string{
				{"gri_compliant", boolLabel(snap.Compliance.GRICompliant)},
				{"resolution_quality_met", boolLabel(snap.Compliance.ResolutionQualityMet)},
				{"performance", contract.GetPlainPerformanceLabel(snap.Performance)},
			}
			for _, rec := range rows {
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV compliance")
}

// printComplianceText prints the predicates and their advisory strings.
func printComplianceText(snap *schema.Snapshot, cfg *contract.Config, fmtFloat func(float64) string, w io.Writer) error {
	c := snap.Compliance

	fmt.Fprintf(w, "%s\n", sectionHeader(cfg, "✅", "Compliance"))
	fmt.Fprintf(w, "GRI data completeness: %s\n", boolLabel(c.GRICompliant))
	fmt.Fprintf(w, "Resolution quality met: %s (rate %s%%, avg %s days)\n",
		boolLabel(c.ResolutionQualityMet),
		fmtFloat(snap.Resolution.ResolutionRate), fmtFloat(snap.Resolution.AvgResolutionTimeDays))
	fmt.Fprintf(w, "Performance: %s\n", performanceLabel(cfg, snap.Performance))

	if len(c.MissingData) > 0 {
		fmt.Fprintf(w, "\n%s\n", sectionHeader(cfg, "❗", "Missing Data"))
		for _, m := range c.MissingData {
			fmt.Fprintf(w, "- %s\n", m)
		}
	}
	if len(c.Recommendations) > 0 {
		fmt.Fprintf(w, "\n%s\n", sectionHeader(cfg, "💡", "Recommendations"))
		for _, r := range c.Recommendations {
			fmt.Fprintf(w, "- %s\n", r)
		}
	}
	return nil
}
