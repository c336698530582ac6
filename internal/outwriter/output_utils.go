package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fairlens/fairlens/internal/contract"
	"github.com/fairlens/fairlens/schema"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	return nil
}

// createFormatters creates the common formatter closures used across multiple output types.
func createFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	numFmt := "%.*f"
	intFmt = "%d"
	fmtFloat = func(v float64) string {
		return fmt.Sprintf(numFmt, precision, v)
	}
	return fmtFloat, intFmt
}

// sectionHeader returns a section title, with the emoji prefix stripped when
// emojis are disabled.
func sectionHeader(cfg *contract.Config, emoji, title string) string {
	if cfg.UseEmojis && emoji != "" {
		return emoji + " " + title
	}
	return title
}

// performanceLabel picks the colored or plain performance label per config.
func performanceLabel(cfg *contract.Config, class schema.PerformanceClass) string {
	if cfg.UseColors {
		return contract.GetColorPerformanceLabel(class)
	}
	return contract.GetPlainPerformanceLabel(class)
}

// trendLabel picks the colored or plain category trend label per config.
func trendLabel(cfg *contract.Config, trend schema.Trend) string {
	if cfg.UseColors {
		return contract.GetColorTrendLabel(trend)
	}
	return string(trend)
}

// backlogLabel picks the colored or plain backlog trend label per config.
func backlogLabel(cfg *contract.Config, trend schema.BacklogTrend) string {
	if cfg.UseColors {
		return contract.GetColorBacklogLabel(trend)
	}
	return string(trend)
}

// boolLabel renders a compliance predicate as human-readable text.
func boolLabel(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// limitBreakdown caps a breakdown at the configured result limit.
func limitBreakdown(b schema.Breakdown, limit int) schema.Breakdown {
	if limit > 0 && len(b) > limit {
		return b[:limit]
	}
	return b
}
