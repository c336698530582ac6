package core

import (
	"time"

	"github.com/fairlens/fairlens/schema"
)

// DetectSystemicIssues flags categories whose record count in a fixed
// trailing window meets the recurrence threshold. This is a frequency
// heuristic with fixed window and threshold, independent of the reporting
// period, so output stays reproducible. Flagged categories are emitted in
// first-seen record order.
func DetectSystemicIssues(records []schema.Record, now time.Time) []schema.SystemicIssue {
	cutoff := now.AddDate(0, -recurrenceWindowMonths, 0)

	counts := make(map[schema.Category]int)
	var order []schema.Category
	for i := range records {
		r := &records[i]
		if r.CreatedAt.Before(cutoff) {
			continue
		}
		if _, seen := counts[r.Category]; !seen {
			order = append(order, r.Category)
		}
		counts[r.Category]++
	}

	var issues []schema.SystemicIssue
	for _, cat := range order {
		if counts[cat] >= recurrenceThreshold {
			issues = append(issues, schema.SystemicIssue{Category: cat, Count: counts[cat]})
		}
	}
	return issues
}
