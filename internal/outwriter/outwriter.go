// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/fairlens/fairlens/internal/contract"
	"github.com/fairlens/fairlens/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints the full analytics snapshot using the configured output format.
func (ow *OutWriter) WriteReport(snap *schema.Snapshot, cfg *contract.Config) error {
	return PrintReportResults(snap, cfg)
}

// WriteTrends prints the trailing monthly trend using the configured output format.
func (ow *OutWriter) WriteTrends(snap *schema.Snapshot, cfg *contract.Config) error {
	return PrintTrendsResults(snap, cfg)
}

// WriteComparison prints the period-over-period comparison using the configured output format.
func (ow *OutWriter) WriteComparison(snap *schema.Snapshot, cfg *contract.Config) error {
	return PrintComparisonResults(snap, cfg)
}

// WriteCompliance prints the compliance evaluation using the configured output format.
func (ow *OutWriter) WriteCompliance(snap *schema.Snapshot, cfg *contract.Config) error {
	return PrintComplianceResults(snap, cfg)
}

// WriteRecords prints raw records using the configured output format.
func (ow *OutWriter) WriteRecords(records []schema.Record, cfg *contract.Config) error {
	return PrintRecordResults(records, cfg)
}

// getMaxTableLabelWidth calculates the maximum width for category labels in
// table output based on terminal width.
func getMaxTableLabelWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the numeric columns with borders and padding
	baseWidth := 45 // Rank + Count + Share + Avg Days + Trend with formatting

	available := termWidth - baseWidth
	if available < 12 {
		// Minimum reasonable label width
		return 12
	}
	if available > 40 {
		// Maximum label width to prevent overly wide tables
		return 40
	}
	return available
}
