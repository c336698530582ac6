package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/fairlens/fairlens/internal/contract"
	"github.com/fairlens/fairlens/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintComparisonResults outputs the period-over-period comparison with the
// ranked top categories, dispatching based on the output format configured.
func PrintComparisonResults(snap *schema.Snapshot, cfg *contract.Config) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForComparison(snap, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForComparison(snap, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return printComparisonTable(snap, cfg, fmtFloat, w)
		}, "Wrote comparison")
	}
	return nil
}

// comparisonJSONModel bundles what the compare view needs from the snapshot.
type comparisonJSONModel struct {
	Comparison    schema.PeriodComparison `json:"comparison"`
	TopCategories []schema.TopCategory    `json:"top_categories"`
	Effectiveness schema.Effectiveness    `json:"effectiveness"`
}

// printJSONResultsForComparison handles opening the file and calling the JSON writer.
func printJSONResultsForComparison(snap *schema.Snapshot, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, comparisonJSONModel{
			Comparison:    snap.Comparison,
			TopCategories: snap.TopCategories,
			Effectiveness: snap.Effectiveness,
		})
	}, "Wrote JSON comparison")
}

// printCSVResultsForComparison writes the top categories in CSV format.
func printCSVResultsForComparison(snap *schema.Snapshot, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	header := []string{"rank", "category", "count", "percentage", "trend"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for i, tc := range snap.TopCategories {
				rec := []string{
					strconv.Itoa(i + 1),
					string(tc.Category),
					fmt.Sprintf(intFmt, tc.Count),
					fmtFloat(tc.Percentage),
					string(tc.Trend),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV comparison")
}

// printComparisonTable prints the comparison summary, the top category table
// and the effectiveness block.
func printComparisonTable(snap *schema.Snapshot, cfg *contract.Config, fmtFloat func(float64) string, w io.Writer) error {
	cmp := snap.Comparison

	fmt.Fprintf(w, "%s\n", sectionHeader(cfg, "⚖️", "Period Comparison"))
	fmt.Fprintf(w, "Previous period: %s to %s (%d reports, resolution %s%%)\n",
		cmp.PreviousStart.Format(contract.DateFormat), cmp.PreviousEnd.Format(contract.DateFormat),
		cmp.PreviousTotal, fmtFloat(cmp.PreviousResolutionRate))
	fmt.Fprintf(w, "Volume change: %s%%, resolution rate change: %s pp\n",
		fmtFloat(cmp.ChangePercentage), fmtFloat(cmp.ResolutionRateChange))
	improving := "no"
	if cmp.IsImproving {
		improving = "yes"
	}
	fmt.Fprintf(w, "Improving: %s\n\n", improving)

	fmt.Fprintf(w, "%s\n", sectionHeader(cfg, "🏆", "Top Categories"))
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Category", "Count", "Share %", "Trend"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	maxLabel := getMaxTableLabelWidth(cfg)
	for i, tc := range snap.TopCategories {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateLabel(string(tc.Category), maxLabel),
			strconv.Itoa(tc.Count),
			fmtFloat(tc.Percentage),
			trendLabel(cfg, tc.Trend),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	eff := snap.Effectiveness
	fmt.Fprintf(w, "\n%s\n", sectionHeader(cfg, "🎯", "Effectiveness"))
	fmt.Fprintf(w, "Resolution speed score: %s\n", fmtFloat(eff.ResolutionSpeedScore))
	fmt.Fprintf(w, "Resolution rate: %s%% (target %s%%, gap %s pp)\n",
		fmtFloat(eff.ActualResolutionRate), fmtFloat(eff.TargetResolutionRate), fmtFloat(eff.GapToTarget))
	fmt.Fprintf(w, "Backlog trend: %s\n", backlogLabel(cfg, eff.BacklogTrend))
	for _, block := range []struct {
		title string
		data  []schema.CategoryResolution
	}{
		{"Best resolved", eff.BestResolved},
		{"Worst resolved", eff.WorstResolved},
	} {
		if len(block.data) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s:\n", block.title)
		for _, cr := range block.data {
			fmt.Fprintf(w, "  %s: %s%% (%d/%d)\n",
				contract.TruncateLabel(string(cr.Category), maxLabel),
				fmtFloat(cr.ResolutionRate), cr.Resolved, cr.Total)
		}
	}
	return nil
}
