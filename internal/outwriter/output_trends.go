package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/fairlens/fairlens/internal/contract"
	"github.com/fairlens/fairlens/internal/parquet"
	"github.com/fairlens/fairlens/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintTrendsResults outputs the trailing monthly trend and recurrence flags,
// dispatching based on the output format configured.
func PrintTrendsResults(snap *schema.Snapshot, cfg *contract.Config) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForTrends(snap, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForTrends(snap, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		rows := parquet.ConvertMonthlyTrend(snap)
		if err := parquet.WriteMonthlyTrendParquet(rows, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Printf("💾 Wrote parquet trend to %s\n", cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return printTrendsTable(snap, cfg, fmtFloat, w)
		}, "Wrote trends")
	}
	return nil
}

// trendsJSONModel keeps the JSON payload focused on the temporal stages.
type trendsJSONModel struct {
	MonthlyTrend   []schema.MonthlyBucket `json:"monthly_trend"`
	SystemicIssues []schema.SystemicIssue `json:"systemic_issues"`
}

// printJSONResultsForTrends handles opening the file and calling the JSON writer.
func printJSONResultsForTrends(snap *schema.Snapshot, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, trendsJSONModel{
			MonthlyTrend:   snap.MonthlyTrend,
			SystemicIssues: snap.SystemicIssues,
		})
	}, "Wrote JSON trends")
}

// printCSVResultsForTrends writes the monthly buckets in CSV format.
func printCSVResultsForTrends(snap *schema.Snapshot, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	header := []string{"period", "reports_received", "reports_resolved", "avg_resolution_days"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, b := range snap.MonthlyTrend {
				rec := []string{
					b.Period,
					fmt.Sprintf(intFmt, b.ReportsReceived),
					fmt.Sprintf(intFmt, b.ReportsResolved),
					fmtFloat(b.AvgResolutionDays),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV trends")
}

// printTrendsTable prints monthly buckets in a four-column table and lists
// recurring categories beneath it.
func printTrendsTable(snap *schema.Snapshot, cfg *contract.Config, fmtFloat func(float64) string, w io.Writer) error {
	fmt.Fprintf(w, "%s\n", sectionHeader(cfg, "📈", "Monthly Trend"))

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Period", "Received", "Resolved", "Avg Days"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, b := range snap.MonthlyTrend {
		data = append(data, []string{
			b.Period,
			fmt.Sprintf("%d", b.ReportsReceived),
			fmt.Sprintf("%d", b.ReportsResolved),
			fmtFloat(b.AvgResolutionDays),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s\n", sectionHeader(cfg, "🔁", "Recurring Categories"))
	if len(snap.SystemicIssues) == 0 {
		fmt.Fprintln(w, "No recurring categories detected")
		return nil
	}
	maxLabel := getMaxTableLabelWidth(cfg)
	for _, issue := range snap.SystemicIssues {
		fmt.Fprintf(w, "%s: %d reports in the last 6 months\n",
			contract.TruncateLabel(string(issue.Category), maxLabel), issue.Count)
	}
	return nil
}
