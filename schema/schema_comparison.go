package schema

import "time"

// PeriodComparison diffs the current period against the mechanically derived
// previous period of identical duration.
type PeriodComparison struct {
	PreviousStart          time.Time `json:"previous_start"`
	PreviousEnd            time.Time `json:"previous_end"`
	PreviousTotal          int       `json:"previous_total"`
	PreviousResolutionRate float64   `json:"previous_resolution_rate"`
	ChangePercentage       float64   `json:"change_percentage"`      // 100*(cur-prev)/prev, 0 when prev is 0
	ResolutionRateChange   float64   `json:"resolution_rate_change"` // Percentage-point delta, not relative
	IsImproving            bool      `json:"is_improving"`           // Lower volume OR higher resolution rate
}

// TopCategory is one entry in the ranked top-N category list.
type TopCategory struct {
	Category   Category `json:"category"`
	Count      int      `json:"count"`
	Percentage float64  `json:"percentage"`
	Trend      Trend    `json:"trend"` // Direction vs the previous period
}

// SystemicIssue flags a category whose recent-window frequency meets the
// fixed recurrence threshold.
type SystemicIssue struct {
	Category Category `json:"category"`
	Count    int      `json:"count"` // Records in the trailing recurrence window
}
