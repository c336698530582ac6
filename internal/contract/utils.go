package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fairlens/fairlens/schema"
	"github.com/fatih/color"
)

// Color variables for console output.
var (
	CriticalColor  = color.New(color.FgRed, color.Bold)    // Worst classification and worsening trends.
	AttentionColor = color.New(color.FgYellow)             // Standard caution, not bold.
	GoodColor      = color.New(color.FgCyan)               // Acceptable performance.
	ExcellentColor = color.New(color.FgGreen, color.Bold)  // Best classification and improving trends.
)

// GetPlainPerformanceLabel returns the plain text of a performance class.
// This is the core value used for CSV, JSON and table printing.
func GetPlainPerformanceLabel(class schema.PerformanceClass) string {
	return string(class)
}

// GetColorPerformanceLabel returns a colored label for console tables.
func GetColorPerformanceLabel(class schema.PerformanceClass) string {
	text := GetPlainPerformanceLabel(class)

	switch class {
	case schema.PerformanceExcellent:
		return ExcellentColor.Sprint(text)
	case schema.PerformanceGood:
		return GoodColor.Sprint(text)
	case schema.PerformanceAttention:
		return AttentionColor.Sprint(text)
	default: // Critical
		return CriticalColor.Sprint(text)
	}
}

// GetColorTrendLabel returns a colored label for a category volume trend.
// Rising report volume is the cautionary direction.
func GetColorTrendLabel(trend schema.Trend) string {
	switch trend {
	case schema.TrendIncreasing:
		return CriticalColor.Sprint(string(trend))
	case schema.TrendDecreasing:
		return ExcellentColor.Sprint(string(trend))
	default:
		return string(trend)
	}
}

// GetColorBacklogLabel returns a colored label for the backlog trend.
func GetColorBacklogLabel(trend schema.BacklogTrend) string {
	switch trend {
	case schema.BacklogImproving:
		return ExcellentColor.Sprint(string(trend))
	case schema.BacklogWorsening:
		return CriticalColor.Sprint(string(trend))
	default:
		return string(trend)
	}
}

// SelectOutputFile opens the output file for writing, or returns stdout
// when no file is configured.
func SelectOutputFile(outputFile string) (*os.File, error) {
	if outputFile == "" {
		return os.Stdout, nil
	}
	file, err := os.Create(outputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %q: %w", outputFile, err)
	}
	return file, nil
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetDBFilePath returns the path to the SQLite DB file for record storage.
func GetDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".fairlens.db"
	}
	return filepath.Join(homeDir, ".fairlens.db")
}

// TruncateLabel shortens long category labels for narrow table columns,
// keeping the head of the string which carries the distinguishing text.
func TruncateLabel(s string, maxWidth int) string {
	if maxWidth <= 3 || len(s) <= maxWidth {
		return s
	}
	return s[:maxWidth-3] + "..."
}
