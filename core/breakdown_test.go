package core

import (
	"testing"
	"time"

	"github.com/fairlens/fairlens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAggregateByCategory checks counts, percentages and first-seen order.
func TestAggregateByCategory(t *testing.T) {
	created := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	records := []schema.Record{
		openRecord("Fraud", schema.PriorityHigh, created),
		openRecord("Harassment", schema.PriorityMedium, created),
		closedRecord("Fraud", schema.PriorityHigh, created, 10),
		closedRecord("Fraud", schema.PriorityLow, created, 20),
	}

	breakdown := AggregateBy(records, byCategory)
	require.Len(t, breakdown, 2)

	assert.Equal(t, "Fraud", breakdown[0].Key)
	assert.Equal(t, 3, breakdown[0].Count)
	assert.Equal(t, 75.0, breakdown[0].Percentage)
	assert.Equal(t, 15.0, breakdown[0].AvgResolutionDays) // (10+20)/2, open record excluded

	assert.Equal(t, "Harassment", breakdown[1].Key)
	assert.Equal(t, 1, breakdown[1].Count)
	assert.Equal(t, 25.0, breakdown[1].Percentage)
	assert.Zero(t, breakdown[1].AvgResolutionDays) // no closed members
}

// TestAggregateByEmpty covers the zero-total fallback.
func TestAggregateByEmpty(t *testing.T) {
	breakdown := AggregateBy(nil, byCategory)
	assert.Empty(t, breakdown)
	assert.Zero(t, breakdown.TotalCount())
}

// TestAggregateByPercentageSum verifies percentages sum to 100 within
// epsilon for every non-empty dimension.
func TestAggregateByPercentageSum(t *testing.T) {
	created := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	records := []schema.Record{
		openRecord("A", schema.PriorityLow, created),
		openRecord("B", schema.PriorityMedium, created),
		openRecord("C", schema.PriorityHigh, created),
		closedRecord("A", schema.PriorityCritical, created, 5),
		openRecord("B", schema.PriorityLow, created),
		openRecord("D", schema.PriorityLow, created),
		closedRecord("E", schema.PriorityMedium, created, 7),
	}

	for _, key := range []KeyFunc{byStatus, byCategory, byPriority} {
		sum := 0.0
		for _, entry := range AggregateBy(records, key) {
			sum += entry.Percentage
			assert.LessOrEqual(t, entry.Count, len(records))
		}
		assert.InDelta(t, 100.0, sum, 0.0001)
	}
}
