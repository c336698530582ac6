package core

import (
	"sort"

	"github.com/fairlens/fairlens/schema"
)

// BuildFunnel counts records through the fixed lifecycle stages from intake
// to resolution. Received covers every record in the period; Resolved covers
// every record in a closed status, not just those literally marked Resolved.
func BuildFunnel(records []schema.Record) schema.Funnel {
	funnel := schema.Funnel{Received: len(records)}
	for i := range records {
		switch {
		case records[i].Status == schema.StatusUnderInvestigation:
			funnel.UnderInvestigation++
		case records[i].Status == schema.StatusAwaitingAction:
			funnel.AwaitingAction++
		}
		if records[i].IsClosed() {
			funnel.Resolved++
		}
	}
	funnel.ConversionRate = schema.SafePercent(funnel.Resolved, funnel.Received)
	return funnel
}

// ScoreEffectiveness computes the capped resolution speed score, the gap to
// the fixed target rate, the backlog trend against the previous period, and
// the best/worst-resolved category rankings.
func ScoreEffectiveness(current, previous []schema.Record, stats schema.ResolutionStats) schema.Effectiveness {
	eff := schema.Effectiveness{
		TargetResolutionRate: targetResolutionRate,
		ActualResolutionRate: stats.ResolutionRate,
		GapToTarget:          targetResolutionRate - stats.ResolutionRate,
		BacklogTrend:         classifyBacklog(openCount(current), openCount(previous)),
	}

	resolvedTotal := stats.ReportsUnder30Days + stats.Reports30To90Days + stats.ReportsOver90Days
	pctUnder30 := schema.SafePercent(stats.ReportsUnder30Days, resolvedTotal)
	eff.ResolutionSpeedScore = min(100, speedScoreFactor*pctUnder30)

	eff.BestResolved, eff.WorstResolved = rankCategoryResolution(current)
	return eff
}

// classifyBacklog compares open-record counts with strict inequality; equal
// counts are stable.
func classifyBacklog(current, previous int) schema.BacklogTrend {
	switch {
	case current < previous:
		return schema.BacklogImproving
	case current > previous:
		return schema.BacklogWorsening
	default:
		return schema.BacklogStable
	}
}

// rankCategoryResolution ranks categories by their own resolution rate.
// Only categories with at least two records qualify, avoiding single-sample
// noise; a category with one resolved record would otherwise always top the
// best list.
func rankCategoryResolution(records []schema.Record) (best, worst []schema.CategoryResolution) {
	totals := make(map[schema.Category]int)
	resolved := make(map[schema.Category]int)
	var order []schema.Category
	for i := range records {
		r := &records[i]
		if _, seen := totals[r.Category]; !seen {
			order = append(order, r.Category)
		}
		totals[r.Category]++
		if r.IsClosed() {
			resolved[r.Category]++
		}
	}

	qualified := make([]schema.CategoryResolution, 0, len(order))
	for _, cat := range order {
		if totals[cat] < minRankableCategorySize {
			continue
		}
		qualified = append(qualified, schema.CategoryResolution{
			Category:       cat,
			Total:          totals[cat],
			Resolved:       resolved[cat],
			ResolutionRate: schema.SafePercent(resolved[cat], totals[cat]),
		})
	}

	bestSorted := make([]schema.CategoryResolution, len(qualified))
	copy(bestSorted, qualified)
	sort.SliceStable(bestSorted, func(i, j int) bool {
		return bestSorted[i].ResolutionRate > bestSorted[j].ResolutionRate
	})

	worstSorted := make([]schema.CategoryResolution, len(qualified))
	copy(worstSorted, qualified)
	sort.SliceStable(worstSorted, func(i, j int) bool {
		return worstSorted[i].ResolutionRate < worstSorted[j].ResolutionRate
	})

	if len(bestSorted) > resolutionRankLimit {
		bestSorted = bestSorted[:resolutionRankLimit]
	}
	if len(worstSorted) > resolutionRankLimit {
		worstSorted = worstSorted[:resolutionRankLimit]
	}
	return bestSorted, worstSorted
}
