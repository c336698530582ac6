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

// PrintRecordResults outputs raw records, dispatching based on the output
// format configured. The record limit is applied here so every format sees
// the same subset.
func PrintRecordResults(records []schema.Record, cfg *contract.Config) error {
	if cfg.ResultLimit > 0 && len(records) > cfg.ResultLimit {
		records = records[:cfg.ResultLimit]
	}

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForRecords(records, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForRecords(records, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		rows := parquet.ConvertRecords(records)
		if err := parquet.WriteRecordsParquet(rows, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Printf("💾 Wrote parquet records to %s\n", cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return printRecordsTable(records, cfg, w)
		}, "Wrote records")
	}
	return nil
}

// printJSONResultsForRecords handles opening the file and calling the JSON writer.
func printJSONResultsForRecords(records []schema.Record, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, records)
	}, "Wrote JSON records")
}

// printCSVResultsForRecords writes records in CSV format.
func printCSVResultsForRecords(records []schema.Record, cfg *contract.Config) error {
	header := []string{"id", "category", "priority", "status", "anonymous", "created_at", "closed_at"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, r := range records {
				closedAt := ""
				if r.ClosedAt != nil {
					closedAt = r.ClosedAt.Format(contract.DateTimeFormat)
				}
				rec := []string{
					r.ID,
					string(r.Category),
					string(r.Priority),
					string(r.Status),
					boolLabel(r.IsAnonymous),
					r.CreatedAt.Format(contract.DateTimeFormat),
					closedAt,
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV records")
}

// printRecordsTable renders records as a table.
func printRecordsTable(records []schema.Record, cfg *contract.Config, w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"ID", "Category", "Priority", "Status", "Anon", "Created", "Closed"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	maxLabel := getMaxTableLabelWidth(cfg)
	for _, r := range records {
		closedAt := "-"
		if r.ClosedAt != nil {
			closedAt = r.ClosedAt.Format(contract.DateFormat)
		}
		data = append(data, []string{
			r.ID,
			contract.TruncateLabel(string(r.Category), maxLabel),
			string(r.Priority),
			string(r.Status),
			boolLabel(r.IsAnonymous),
			r.CreatedAt.Format(contract.DateFormat),
			closedAt,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Showing %d records\n", len(records))
	return nil
}
