// Package parquet provides data structures and functions for exporting ESG
// reporting analytics to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/fairlens/fairlens/schema"
	"github.com/parquet-go/parquet-go"
)

// SnapshotSummary is the flat one-row export of an analytics snapshot.
type SnapshotSummary struct {
	// PeriodStart is the inclusive start of the reporting window
	PeriodStart time.Time `parquet:"period_start,snappy"`

	// PeriodEnd is the exclusive end of the reporting window
	PeriodEnd time.Time `parquet:"period_end,snappy"`

	// GeneratedAt is the evaluation instant injected into the engine
	GeneratedAt time.Time `parquet:"generated_at,snappy"`

	// TotalReports is the number of records in the reporting window
	TotalReports int32 `parquet:"total_reports,snappy"`

	// AnonymousReports is the number of anonymously submitted records
	AnonymousReports int32 `parquet:"anonymous_reports,snappy"`

	// AnonymousPercentage is the anonymous share of all reports
	AnonymousPercentage float64 `parquet:"anonymous_percentage,snappy"`

	// OpenCriticalReports is the open critical-priority count
	OpenCriticalReports int32 `parquet:"open_critical_reports,snappy"`

	// ChannelUtilization is reports per hundred active employees
	ChannelUtilization float64 `parquet:"channel_utilization,snappy"`

	// ResolutionRate is the closed share of the period's reports
	ResolutionRate float64 `parquet:"resolution_rate,snappy"`

	// AvgResolutionTimeDays is the mean whole-day resolution time
	AvgResolutionTimeDays float64 `parquet:"avg_resolution_time_days,snappy"`

	// MedianResolutionTimeDays is the lower-median resolution time
	MedianResolutionTimeDays int32 `parquet:"median_resolution_time_days,snappy"`

	// ChangePercentage is the volume change against the previous period
	ChangePercentage float64 `parquet:"change_percentage,snappy"`

	// IsImproving reflects the period-over-period improvement predicate
	IsImproving bool `parquet:"is_improving,snappy"`

	// Performance is the ordinal classification label
	Performance string `parquet:"performance,snappy"`

	// GRICompliant is the GRI data-completeness predicate
	GRICompliant bool `parquet:"gri_compliant,snappy"`

	// ResolutionQualityMet is the resolution-quality predicate
	ResolutionQualityMet bool `parquet:"resolution_quality_met,snappy"`
}

// MonthlyTrendRow is one bucket of the trailing monthly trend.
type MonthlyTrendRow struct {
	// Month is the first day of the bucket's month, UTC
	Month time.Time `parquet:"month,snappy"`

	// Period is the month label, e.g. "2026-08"
	Period string `parquet:"period,snappy"`

	// ReportsReceived is the count of records created in the month
	ReportsReceived int32 `parquet:"reports_received,snappy"`

	// ReportsResolved is the count of records closed in the month
	ReportsResolved int32 `parquet:"reports_resolved,snappy"`

	// AvgResolutionDays is the mean resolution time of the month's resolved subset
	AvgResolutionDays float64 `parquet:"avg_resolution_days,snappy"`
}

// RecordRow is the flat export of one raw report record.
type RecordRow struct {
	// ID is the record identifier
	ID string `parquet:"id,snappy"`

	// Category is the business-defined classification tag
	Category string `parquet:"category,snappy"`

	// Priority is the severity tag
	Priority string `parquet:"priority,snappy"`

	// Status is the lifecycle status
	Status string `parquet:"status,snappy"`

	// IsAnonymous marks anonymously submitted records
	IsAnonymous bool `parquet:"is_anonymous,snappy"`

	// CreatedAt is the record creation instant
	CreatedAt time.Time `parquet:"created_at,snappy"`

	// ClosedAt is the record closure instant (nullable)
	ClosedAt *time.Time `parquet:"closed_at,optional,snappy"`
}

// WriteSnapshotSummaryParquet writes snapshot summary rows to a Parquet file.
func WriteSnapshotSummaryParquet(data []SnapshotSummary, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteMonthlyTrendParquet writes monthly trend rows to a Parquet file.
func WriteMonthlyTrendParquet(data []MonthlyTrendRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteRecordsParquet writes raw record rows to a Parquet file.
func WriteRecordsParquet(data []RecordRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet creates the output file and writes all rows with a generic
// writer whose schema is inferred from the row struct tags.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertSnapshotSummary flattens a snapshot into its one-row summary export.
func ConvertSnapshotSummary(snap *schema.Snapshot) []SnapshotSummary {
	return []SnapshotSummary{{
		PeriodStart:              snap.PeriodStart,
		PeriodEnd:                snap.PeriodEnd,
		GeneratedAt:              snap.GeneratedAt,
		TotalReports:             int32(snap.TotalReports),
		AnonymousReports:         int32(snap.AnonymousReports),
		AnonymousPercentage:      snap.AnonymousPercentage,
		OpenCriticalReports:      int32(snap.OpenCriticalReports),
		ChannelUtilization:       snap.ChannelUtilization,
		ResolutionRate:           snap.Resolution.ResolutionRate,
		AvgResolutionTimeDays:    snap.Resolution.AvgResolutionTimeDays,
		MedianResolutionTimeDays: int32(snap.Resolution.MedianResolutionTimeDays),
		ChangePercentage:         snap.Comparison.ChangePercentage,
		IsImproving:              snap.Comparison.IsImproving,
		Performance:              string(snap.Performance),
		GRICompliant:             snap.Compliance.GRICompliant,
		ResolutionQualityMet:     snap.Compliance.ResolutionQualityMet,
	}}
}

// ConvertMonthlyTrend converts a snapshot's trend buckets to export rows.
func ConvertMonthlyTrend(snap *schema.Snapshot) []MonthlyTrendRow {
	result := make([]MonthlyTrendRow, len(snap.MonthlyTrend))
	for i, b := range snap.MonthlyTrend {
		result[i] = MonthlyTrendRow{
			Month:             b.Month,
			Period:            b.Period,
			ReportsReceived:   int32(b.ReportsReceived),
			ReportsResolved:   int32(b.ReportsResolved),
			AvgResolutionDays: b.AvgResolutionDays,
		}
	}
	return result
}

// ConvertRecords converts raw records to export rows.
func ConvertRecords(records []schema.Record) []RecordRow {
	result := make([]RecordRow, len(records))
	for i, r := range records {
		result[i] = RecordRow{
			ID:          r.ID,
			Category:    string(r.Category),
			Priority:    string(r.Priority),
			Status:      string(r.Status),
			IsAnonymous: r.IsAnonymous,
			CreatedAt:   r.CreatedAt,
			ClosedAt:    r.ClosedAt,
		}
	}
	return result
}
