package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/fairlens/fairlens/internal/contract"
	"github.com/fairlens/fairlens/internal/parquet"
	"github.com/fairlens/fairlens/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintReportResults outputs the full snapshot, dispatching based on the output format configured.
func PrintReportResults(snap *schema.Snapshot, cfg *contract.Config) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForReport(snap, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForReport(snap, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		rows := parquet.ConvertSnapshotSummary(snap)
		if err := parquet.WriteSnapshotSummaryParquet(rows, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Printf("💾 Wrote parquet report to %s\n", cfg.OutputFile)
	default:
		// Default to human-readable tables
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return printReportTables(snap, cfg, fmtFloat, w)
		}, "Wrote report")
	}
	return nil
}

// printJSONResultsForReport handles opening the file and calling the JSON writer.
func printJSONResultsForReport(snap *schema.Snapshot, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, snap)
	}, "Wrote JSON report")
}

// printCSVResultsForReport writes the three breakdowns as flat CSV rows.
func printCSVResultsForReport(snap *schema.Snapshot, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	header := []string{"dimension", "key", "count", "percentage", "avg_resolution_days"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			dims := []struct {
				name string
				data schema.Breakdown
			}{
				{"status", snap.ByStatus},
				{"category", snap.ByCategory},
				{"priority", snap.ByPriority},
			}
			for _, dim := range dims {
				for _, e := range dim.data {
					rec := []string{
						dim.name,
						e.Key,
						fmt.Sprintf(intFmt, e.Count),
						fmtFloat(e.Percentage),
						fmtFloat(e.AvgResolutionDays),
					}
					if err := csvWriter.Write(rec); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}, "Wrote CSV report")
}

// printReportTables renders the human-readable report: a summary block,
// one table per breakdown dimension, and the resolution statistics.
func printReportTables(snap *schema.Snapshot, cfg *contract.Config, fmtFloat func(float64) string, w io.Writer) error {
	// 1. Summary block
	fmt.Fprintf(w, "%s\n", sectionHeader(cfg, "📋", "ESG Reporting Overview"))
	fmt.Fprintf(w, "Period: %s to %s\n",
		snap.PeriodStart.Format(contract.DateFormat), snap.PeriodEnd.Format(contract.DateFormat))
	fmt.Fprintf(w, "Total reports: %d (anonymous: %d, %s%%)\n",
		snap.TotalReports, snap.AnonymousReports, fmtFloat(snap.AnonymousPercentage))
	fmt.Fprintf(w, "Open critical reports: %d\n", snap.OpenCriticalReports)
	fmt.Fprintf(w, "Channel utilization: %s%%\n", fmtFloat(snap.ChannelUtilization))
	fmt.Fprintf(w, "Performance: %s\n\n", performanceLabel(cfg, snap.Performance))

	// 2. Breakdown tables
	dims := []struct {
		emoji string
		title string
		data  schema.Breakdown
	}{
		{"🗂️", "By Category", limitBreakdown(snap.ByCategory, cfg.ResultLimit)},
		{"🚦", "By Status", snap.ByStatus},
		{"⚠️", "By Priority", snap.ByPriority},
	}
	for _, dim := range dims {
		fmt.Fprintf(w, "%s\n", sectionHeader(cfg, dim.emoji, dim.title))
		if err := writeBreakdownTable(w, dim.data, cfg, fmtFloat); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	// 3. Resolution statistics
	res := snap.Resolution
	fmt.Fprintf(w, "%s\n", sectionHeader(cfg, "⏱️", "Resolution"))
	fmt.Fprintf(w, "Resolution rate: %s%% (avg %s days, median %d days)\n",
		fmtFloat(res.ResolutionRate), fmtFloat(res.AvgResolutionTimeDays), res.MedianResolutionTimeDays)
	fmt.Fprintf(w, "Closed under 30 days: %d, 30-90 days: %d, over 90 days: %d\n",
		res.ReportsUnder30Days, res.Reports30To90Days, res.ReportsOver90Days)
	fmt.Fprintf(w, "Overdue open reports: %d\n\n", res.ReportsOverdue)

	// 4. Funnel
	f := snap.Funnel
	fmt.Fprintf(w, "%s\n", sectionHeader(cfg, "🔽", "Funnel"))
	fmt.Fprintf(w, "Received %d > Under Investigation %d > Awaiting Action %d > Resolved %d (conversion %s%%)\n",
		f.Received, f.UnderInvestigation, f.AwaitingAction, f.Resolved, fmtFloat(f.ConversionRate))

	return nil
}

// writeBreakdownTable renders one breakdown dimension as a ranked table.
func writeBreakdownTable(w io.Writer, breakdown schema.Breakdown, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Key", "Count", "Share %", "Avg Days"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	maxLabel := getMaxTableLabelWidth(cfg)
	for i, e := range breakdown {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateLabel(e.Key, maxLabel),
			strconv.Itoa(e.Count),
			fmtFloat(e.Percentage),
			fmtFloat(e.AvgResolutionDays),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
