package core

import (
	"testing"
	"time"

	"github.com/fairlens/fairlens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildSnapshotScenarioA: ten records, seven closed within thirty days,
// three open. The rule cascade lands on Attention: 70% passes neither the
// Excellent nor the Good rate gate.
func TestBuildSnapshotScenarioA(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	created := start.AddDate(0, 0, 2)

	var records []schema.Record
	for range 7 {
		records = append(records, closedRecord("Fraud", schema.PriorityMedium, created, 15))
	}
	for range 3 {
		records = append(records, openRecord("Harassment", schema.PriorityLow, created))
	}

	snapshot, err := BuildSnapshot(Input{
		Records: records,
		Start:   start,
		End:     end,
		Now:     testNow,
	})
	require.NoError(t, err)

	assert.Equal(t, 10, snapshot.TotalReports)
	assert.Equal(t, 70.0, snapshot.Resolution.ResolutionRate)
	assert.Equal(t, 7, snapshot.Resolution.ReportsUnder30Days)
	assert.Equal(t, schema.PerformanceAttention, snapshot.Performance)
}

// TestBuildSnapshotScenarioB: an empty record set degrades to zeros
// everywhere with no error.
func TestBuildSnapshotScenarioB(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	snapshot, err := BuildSnapshot(Input{Start: start, End: end, Now: testNow})
	require.NoError(t, err)

	assert.Zero(t, snapshot.TotalReports)
	assert.Zero(t, snapshot.Resolution.ResolutionRate)
	assert.Zero(t, snapshot.Resolution.AvgResolutionTimeDays)
	assert.Zero(t, snapshot.Comparison.ChangePercentage)
	assert.Zero(t, snapshot.Funnel.ConversionRate)
	assert.Zero(t, snapshot.ChannelUtilization)
	assert.Empty(t, snapshot.ByCategory)
	assert.Empty(t, snapshot.TopCategories)
	assert.Len(t, snapshot.MonthlyTrend, 12)
}

// TestBuildSnapshotScenarioC: a single-record category appears in the plain
// breakdown but not in the best/worst resolution rankings.
func TestBuildSnapshotScenarioC(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	created := start.AddDate(0, 0, 3)

	records := []schema.Record{
		closedRecord("Lone", schema.PriorityLow, created, 5),
		closedRecord("Pair", schema.PriorityLow, created, 10),
		openRecord("Pair", schema.PriorityLow, created),
	}

	snapshot, err := BuildSnapshot(Input{Records: records, Start: start, End: end, Now: testNow})
	require.NoError(t, err)

	require.NotNil(t, snapshot.ByCategory.Find("Lone"))
	for _, cr := range append(snapshot.Effectiveness.BestResolved, snapshot.Effectiveness.WorstResolved...) {
		assert.NotEqual(t, schema.Category("Lone"), cr.Category)
	}
}

// TestBuildSnapshotScenarioD: previous period empty, current has five
// records; the change percentage saturates to zero.
func TestBuildSnapshotScenarioD(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	var records []schema.Record
	for range 5 {
		records = append(records, openRecord("Fraud", schema.PriorityLow, start.AddDate(0, 0, 1)))
	}

	snapshot, err := BuildSnapshot(Input{Records: records, Start: start, End: end, Now: testNow})
	require.NoError(t, err)

	assert.Equal(t, 5, snapshot.TotalReports)
	assert.Zero(t, snapshot.Comparison.PreviousTotal)
	assert.Zero(t, snapshot.Comparison.ChangePercentage)
}

// TestBuildSnapshotInvalidWindow fails fast with no partial result.
func TestBuildSnapshotInvalidWindow(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	snapshot, err := BuildSnapshot(Input{Start: start, End: start.AddDate(0, 0, -5), Now: testNow})
	assert.ErrorIs(t, err, ErrInvalidWindow)
	assert.Nil(t, snapshot)
}

// TestBuildSnapshotMalformedRecord rejects closed_at before created_at at
// the boundary instead of corrupting resolution statistics.
func TestBuildSnapshotMalformedRecord(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	created := start.AddDate(0, 0, 5)
	closed := created.AddDate(0, 0, -2)

	records := []schema.Record{{
		ID: "bad", Category: "Fraud", Status: schema.StatusResolved,
		CreatedAt: created, ClosedAt: &closed,
	}}

	snapshot, err := BuildSnapshot(Input{Records: records, Start: start, End: end, Now: testNow})
	assert.Error(t, err)
	assert.Nil(t, snapshot)
}

// TestBuildSnapshotIdempotent: identical inputs yield identical snapshots.
func TestBuildSnapshotIdempotent(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	created := start.AddDate(0, 0, 10)

	records := []schema.Record{
		closedRecord("Fraud", schema.PriorityCritical, created, 12),
		openRecord("Fraud", schema.PriorityHigh, created),
		closedRecord("Waste", schema.PriorityLow, created, 40),
		openRecord("Harassment", schema.PriorityCritical, created),
	}
	in := Input{Records: records, Start: start, End: end, Now: testNow, ActiveEmployees: 200}

	first, err := BuildSnapshot(in)
	require.NoError(t, err)
	second, err := BuildSnapshot(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestBuildSnapshotScalars checks the anonymous share, the open critical
// count and the channel utilization against the employee headcount.
func TestBuildSnapshotScalars(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	created := start.AddDate(0, 0, 1)

	anon := openRecord("Fraud", schema.PriorityCritical, created)
	anon.IsAnonymous = true
	records := []schema.Record{
		anon,
		closedRecord("Fraud", schema.PriorityCritical, created, 4),
		openRecord("Waste", schema.PriorityLow, created),
		openRecord("Waste", schema.PriorityLow, created),
	}

	snapshot, err := BuildSnapshot(Input{
		Records: records, Start: start, End: end, Now: testNow, ActiveEmployees: 50,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, snapshot.AnonymousReports)
	assert.Equal(t, 25.0, snapshot.AnonymousPercentage)
	assert.Equal(t, 1, snapshot.OpenCriticalReports) // closed critical does not count
	assert.Equal(t, 8.0, snapshot.ChannelUtilization)
}
