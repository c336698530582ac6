package core

import (
	"sort"

	"github.com/fairlens/fairlens/schema"
)

// RankTopCategories sorts the category breakdown descending by count, takes
// the top entries, and labels each with its volume trend relative to the
// previous period. A category absent from the previous period is stable,
// not increasing, so brand-new categories do not raise spurious alarms.
func RankTopCategories(byCategory schema.Breakdown, previous []schema.Record, limit int) []schema.TopCategory {
	ranked := make(schema.Breakdown, len(byCategory))
	copy(ranked, byCategory)

	// Stable sort preserves first-seen order among equal counts.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	prevCounts := make(map[string]int)
	for i := range previous {
		prevCounts[string(previous[i].Category)]++
	}

	top := make([]schema.TopCategory, 0, len(ranked))
	for _, entry := range ranked {
		top = append(top, schema.TopCategory{
			Category:   schema.Category(entry.Key),
			Count:      entry.Count,
			Percentage: entry.Percentage,
			Trend:      classifyTrend(entry.Count, prevCounts[entry.Key]),
		})
	}
	return top
}

// classifyTrend labels a count delta against the fixed ±10% band.
func classifyTrend(current, previous int) schema.Trend {
	if previous == 0 {
		return schema.TrendStable
	}
	delta := 100 * float64(current-previous) / float64(previous)
	switch {
	case delta > trendDeltaPct:
		return schema.TrendIncreasing
	case delta < -trendDeltaPct:
		return schema.TrendDecreasing
	default:
		return schema.TrendStable
	}
}
