package core

import (
	"time"

	"github.com/fairlens/fairlens/schema"
)

// ComparePeriods diffs current-period aggregates against the previous-period
// record set. When the previous period has no records, the change percentage
// saturates to 0 rather than going infinite.
func ComparePeriods(current, previous []schema.Record, prevStart, prevEnd time.Time) schema.PeriodComparison {
	currentRate := closedRate(current)
	previousRate := closedRate(previous)

	cmp := schema.PeriodComparison{
		PreviousStart:          prevStart,
		PreviousEnd:            prevEnd,
		PreviousTotal:          len(previous),
		PreviousResolutionRate: previousRate,
		ResolutionRateChange:   currentRate - previousRate,
	}

	if len(previous) > 0 {
		cmp.ChangePercentage = 100 * float64(len(current)-len(previous)) / float64(len(previous))
	}

	// Either signal suffices: fewer reports or a higher resolution rate.
	cmp.IsImproving = len(current) < len(previous) || currentRate > previousRate

	return cmp
}

// closedRate returns the percentage of records in a closed status.
func closedRate(records []schema.Record) float64 {
	closed := 0
	for i := range records {
		if records[i].IsClosed() {
			closed++
		}
	}
	return schema.SafePercent(closed, len(records))
}

// openCount returns the number of records not in a closed status.
func openCount(records []schema.Record) int {
	open := 0
	for i := range records {
		if !records[i].IsClosed() {
			open++
		}
	}
	return open
}
