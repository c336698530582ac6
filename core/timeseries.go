package core

import (
	"time"

	"github.com/fairlens/fairlens/schema"
)

// MonthlyTrend partitions records into exactly twelve calendar-month buckets
// ending at now's month, oldest first. The anchor is the evaluation instant,
// not the reporting window, so trend charts remain stable while the user
// changes the analysis period. Received counts bucket by created_at month;
// resolved counts bucket by closed_at month, which may differ from the month
// the record was received in.
func MonthlyTrend(records []schema.Record, now time.Time) []schema.MonthlyBucket {
	buckets := make([]schema.MonthlyBucket, trailingTrendMonths)
	index := make(map[time.Time]int, trailingTrendMonths)

	anchor := schema.MonthStart(now)
	for i := range buckets {
		month := anchor.AddDate(0, i-(trailingTrendMonths-1), 0)
		buckets[i] = schema.MonthlyBucket{
			Month:  month,
			Period: month.Format("2006-01"),
		}
		index[month] = i
	}

	resolvedDays := make([]int, trailingTrendMonths)
	for i := range records {
		r := &records[i]
		if bi, ok := index[schema.MonthStart(r.CreatedAt)]; ok {
			buckets[bi].ReportsReceived++
		}
		if r.ClosedAt == nil {
			continue
		}
		if bi, ok := index[schema.MonthStart(*r.ClosedAt)]; ok {
			buckets[bi].ReportsResolved++
			days, _ := r.ResolutionDays()
			resolvedDays[bi] += days
		}
	}

	for i := range buckets {
		if n := buckets[i].ReportsResolved; n > 0 {
			buckets[i].AvgResolutionDays = float64(resolvedDays[i]) / float64(n)
		}
	}
	return buckets
}
