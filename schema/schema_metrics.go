package schema

import "time"

// ResolutionStats holds resolution-time statistics for the evaluated period.
// Age buckets cover closed records only, keyed by resolution duration; the
// staleness of still-open records is captured by ReportsOverdue.
type ResolutionStats struct {
	ResolutionRate           float64 `json:"resolution_rate"`             // 100 * closed / total, 0 when total is 0
	AvgResolutionTimeDays    float64 `json:"avg_resolution_time_days"`    // Mean whole-day resolution time over closed records
	MedianResolutionTimeDays int     `json:"median_resolution_time_days"` // Lower median of sorted per-record resolution days
	ReportsUnder30Days       int     `json:"reports_under_30_days"`       // Closed in under 30 days
	Reports30To90Days        int     `json:"reports_30_to_90_days"`       // Closed in 30 to 90 days
	ReportsOver90Days        int     `json:"reports_over_90_days"`        // Closed in more than 90 days
	ReportsOverdue           int     `json:"reports_overdue"`             // Open records older than 90 days at evaluation time
}

// Funnel is an ordered count of records by lifecycle stage from intake to
// resolution.
type Funnel struct {
	Received           int     `json:"received"`            // All records in the period
	UnderInvestigation int     `json:"under_investigation"` // Records currently under investigation
	AwaitingAction     int     `json:"awaiting_action"`     // Records awaiting corrective action
	Resolved           int     `json:"resolved"`            // Records in a closed status
	ConversionRate     float64 `json:"conversion_rate"`     // 100 * resolved / received
}

// CategoryResolution holds the per-category resolution rate used by the
// best/worst-resolved rankings. Categories with fewer than two records are
// excluded from those rankings to avoid single-sample noise.
type CategoryResolution struct {
	Category       Category `json:"category"`
	Total          int      `json:"total"`
	Resolved       int      `json:"resolved"`
	ResolutionRate float64  `json:"resolution_rate"`
}

// Effectiveness scores resolution speed and outcome against a fixed target.
type Effectiveness struct {
	ResolutionSpeedScore float64              `json:"resolution_speed_score"` // min(100, 1.5 * pct resolved under 30 days)
	TargetResolutionRate float64              `json:"target_resolution_rate"` // Fixed target (85)
	ActualResolutionRate float64              `json:"actual_resolution_rate"`
	GapToTarget          float64              `json:"gap_to_target"` // target - actual
	BacklogTrend         BacklogTrend         `json:"backlog_trend"` // Open-count direction vs previous period
	BestResolved         []CategoryResolution `json:"best_resolved"` // Top 3 categories by resolution rate
	WorstResolved        []CategoryResolution `json:"worst_resolved"`
}

// Compliance holds the outcome of the fixed compliance checks. The strings
// are advisory text for human readers, not machine-actionable codes.
type Compliance struct {
	GRICompliant         bool     `json:"gri_compliant"`          // Completeness: non-zero totals and at least one category
	ResolutionQualityMet bool     `json:"resolution_quality_met"` // Rate >= 70% and avg time <= 90 days
	MissingData          []string `json:"missing_data"`
	Recommendations      []string `json:"recommendations"`
}

// Snapshot is the immutable result of one engine invocation. It is
// constructed once and never updated; to refresh analytics the caller
// re-invokes the engine with a fresh record fetch.
type Snapshot struct {
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
	GeneratedAt time.Time `json:"generated_at"` // Injected evaluation instant, not a clock read

	TotalReports        int     `json:"total_reports"`
	AnonymousReports    int     `json:"anonymous_reports"`
	AnonymousPercentage float64 `json:"anonymous_percentage"`
	OpenCriticalReports int     `json:"open_critical_reports"`
	ChannelUtilization  float64 `json:"channel_utilization"` // 100 * total / active employees

	ByStatus   Breakdown `json:"by_status"`
	ByCategory Breakdown `json:"by_category"`
	ByPriority Breakdown `json:"by_priority"`

	MonthlyTrend []MonthlyBucket `json:"monthly_trend"` // Trailing 12 months, oldest first

	Resolution     ResolutionStats  `json:"resolution"`
	Comparison     PeriodComparison `json:"comparison"`
	TopCategories  []TopCategory    `json:"top_categories"`
	SystemicIssues []SystemicIssue  `json:"systemic_issues"`
	Funnel         Funnel           `json:"funnel"`
	Effectiveness  Effectiveness    `json:"effectiveness"`

	Performance PerformanceClass `json:"performance"`
	Compliance  Compliance       `json:"compliance"`
}
