package core

import (
	"github.com/fairlens/fairlens/schema"
)

// KeyFunc extracts the grouping key from a record for one breakdown
// dimension.
type KeyFunc func(*schema.Record) string

// Grouping keys for the three standard breakdown dimensions.
var (
	byStatus   KeyFunc = func(r *schema.Record) string { return string(r.Status) }
	byCategory KeyFunc = func(r *schema.Record) string { return string(r.Category) }
	byPriority KeyFunc = func(r *schema.Record) string { return string(r.Priority) }
)

// AggregateBy groups records by the given key function and computes count,
// percentage-of-total and average resolution time per group. Groups are
// emitted in first-seen record order; percentages are 0 when the record set
// is empty, and a group with no closed members reports 0 average rather
// than an error.
func AggregateBy(records []schema.Record, key KeyFunc) schema.Breakdown {
	total := len(records)
	index := make(map[string]int, total)
	breakdown := make(schema.Breakdown, 0, total)

	// Accumulate resolution days separately so averages only cover the
	// closed subset of each group.
	resolvedDays := make(map[string]int)
	resolvedCount := make(map[string]int)

	for i := range records {
		r := &records[i]
		k := key(r)
		if _, seen := index[k]; !seen {
			index[k] = len(breakdown)
			breakdown = append(breakdown, schema.BreakdownEntry{Key: k})
		}
		breakdown[index[k]].Count++

		if days, ok := r.ResolutionDays(); ok {
			resolvedDays[k] += days
			resolvedCount[k]++
		}
	}

	for i := range breakdown {
		entry := &breakdown[i]
		entry.Percentage = schema.SafePercent(entry.Count, total)
		if n := resolvedCount[entry.Key]; n > 0 {
			entry.AvgResolutionDays = float64(resolvedDays[entry.Key]) / float64(n)
		}
	}
	return breakdown
}
