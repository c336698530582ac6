package core

import (
	"testing"
	"time"

	"github.com/fairlens/fairlens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMonthlyTrendShape ensures exactly twelve buckets, oldest first,
// anchored to the evaluation month.
func TestMonthlyTrendShape(t *testing.T) {
	buckets := MonthlyTrend(nil, testNow)
	require.Len(t, buckets, 12)

	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), buckets[0].Month)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), buckets[11].Month)
	assert.Equal(t, "2025-09", buckets[0].Period)

	for i := 1; i < len(buckets); i++ {
		assert.True(t, buckets[i-1].Month.Before(buckets[i].Month))
	}
}

// TestMonthlyTrendCounts checks that received buckets by created_at month
// and resolved buckets by closed_at month, which may differ.
func TestMonthlyTrendCounts(t *testing.T) {
	created := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	records := []schema.Record{
		// Received in May, resolved in July.
		closedRecord("Fraud", schema.PriorityHigh, created, 55),
		// Received and resolved in May.
		closedRecord("Fraud", schema.PriorityLow, created, 3),
		// Received in May, still open.
		openRecord("Harassment", schema.PriorityMedium, created),
		// Created before the trailing window entirely.
		openRecord("Fraud", schema.PriorityLow, testNow.AddDate(-2, 0, 0)),
	}

	buckets := MonthlyTrend(records, testNow)
	byPeriod := make(map[string]schema.MonthlyBucket)
	for _, b := range buckets {
		byPeriod[b.Period] = b
	}

	assert.Equal(t, 3, byPeriod["2026-05"].ReportsReceived)
	assert.Equal(t, 1, byPeriod["2026-05"].ReportsResolved)
	assert.Equal(t, 3.0, byPeriod["2026-05"].AvgResolutionDays)

	assert.Equal(t, 0, byPeriod["2026-07"].ReportsReceived)
	assert.Equal(t, 1, byPeriod["2026-07"].ReportsResolved)
	assert.Equal(t, 55.0, byPeriod["2026-07"].AvgResolutionDays)

	// Out-of-window records contribute nothing.
	total := 0
	for _, b := range buckets {
		total += b.ReportsReceived
	}
	assert.Equal(t, 3, total)
}

// TestMonthlyTrendIndependentOfWindow confirms the trend anchor is the
// evaluation instant, not the reporting period.
func TestMonthlyTrendIndependentOfWindow(t *testing.T) {
	records := []schema.Record{
		openRecord("Fraud", schema.PriorityLow, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)),
	}

	a := MonthlyTrend(records, testNow)
	b := MonthlyTrend(records, testNow)
	assert.Equal(t, a, b)
}
