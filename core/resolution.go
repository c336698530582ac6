package core

import (
	"sort"
	"time"

	"github.com/fairlens/fairlens/schema"
)

// ResolutionStatistics computes resolution rate, mean and median resolution
// time, overdue counts and age-bucketed counts for the given record set.
// Age buckets cover closed records only, keyed by resolution duration;
// open-record staleness is captured by ReportsOverdue instead.
func ResolutionStatistics(records []schema.Record, now time.Time) schema.ResolutionStats {
	var stats schema.ResolutionStats
	total := len(records)

	var durations []int
	for i := range records {
		r := &records[i]
		days, closed := r.ResolutionDays()
		if !closed {
			if r.AgeDays(now) > overdueAgeDays {
				stats.ReportsOverdue++
			}
			continue
		}

		durations = append(durations, days)
		switch {
		case days < 30:
			stats.ReportsUnder30Days++
		case days <= 90:
			stats.Reports30To90Days++
		default:
			stats.ReportsOver90Days++
		}
	}

	stats.ResolutionRate = schema.SafePercent(len(durations), total)
	if len(durations) == 0 {
		return stats
	}

	sum := 0
	for _, d := range durations {
		sum += d
	}
	stats.AvgResolutionTimeDays = float64(sum) / float64(len(durations))

	// Lower-median convention: index len/2 of the ascending-sorted list.
	// This is a documented tie-break carried over from the reported KPIs,
	// not an approximation to be "fixed".
	sort.Ints(durations)
	stats.MedianResolutionTimeDays = durations[len(durations)/2]

	return stats
}
