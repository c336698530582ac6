package schema

import "time"

// MonthlyBucket holds per-month received/resolved counts for the trailing
// trend. Buckets are anchored to the evaluation instant, not the reporting
// window, so trend charts stay stable as the analysis period changes.
type MonthlyBucket struct {
	Month             time.Time `json:"month"`  // First day of the bucket's month, UTC
	Period            string    `json:"period"` // Month label, e.g. "2026-08"
	ReportsReceived   int       `json:"reports_received"`
	ReportsResolved   int       `json:"reports_resolved"`
	AvgResolutionDays float64   `json:"avg_resolution_days"` // Over the bucket's resolved subset only
}
