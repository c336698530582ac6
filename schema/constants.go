package schema

import "strings"

// Custom string types for type safety.
type (
	// RecordStatus represents the lifecycle status of a record.
	RecordStatus string

	// Priority represents the ordinal severity of a record.
	Priority string

	// Category represents a business-defined classification tag.
	// The set is open, but values are normalized so that a stray
	// space or casing difference cannot split one category into two.
	Category string

	// Trend labels the direction of a category's volume between periods.
	Trend string

	// BacklogTrend labels the direction of the open-record backlog.
	BacklogTrend string

	// PerformanceClass is the ordinal performance classification.
	PerformanceClass string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for record storage.
	DatabaseBackend string
)

// All record statuses supported.
const (
	StatusNew                RecordStatus = "New"
	StatusUnderInvestigation RecordStatus = "Under Investigation"
	StatusAwaitingAction     RecordStatus = "Awaiting Action"
	StatusResolved           RecordStatus = "Resolved"
	StatusClosed             RecordStatus = "Closed"
	StatusArchived           RecordStatus = "Archived"
)

// Priority values. PriorityCritical is a sentinel compared by equality in
// the compliance evaluation; the rest are ordinary tags.
const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// Trend labels for category volume between periods.
const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// Backlog trend labels.
const (
	BacklogImproving BacklogTrend = "improving"
	BacklogWorsening BacklogTrend = "worsening"
	BacklogStable    BacklogTrend = "stable"
)

// Performance classification values, best to worst.
const (
	PerformanceExcellent PerformanceClass = "Excellent"
	PerformanceGood      PerformanceClass = "Good"
	PerformanceAttention PerformanceClass = "Attention"
	PerformanceCritical  PerformanceClass = "Critical"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
)

// closedStatuses is the fixed subset of statuses treated as closed.
// Everything else is open.
var closedStatuses = map[RecordStatus]struct{}{
	StatusResolved: {},
	StatusClosed:   {},
	StatusArchived: {},
}

// IsClosed reports whether the status is in the closed set.
func (s RecordStatus) IsClosed() bool {
	_, ok := closedStatuses[s]
	return ok
}

// FunnelStatuses is the ordered sequence of lifecycle stages used by the
// resolution funnel, from intake to resolution.
var FunnelStatuses = []RecordStatus{
	StatusNew,
	StatusUnderInvestigation,
	StatusAwaitingAction,
	StatusResolved,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid database backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
}

// NormalizeCategory trims surrounding whitespace from a raw category tag.
// Casing is preserved: categories are business-entered display strings.
func NormalizeCategory(raw string) Category {
	return Category(strings.TrimSpace(raw))
}
