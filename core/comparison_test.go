package core

import (
	"testing"
	"time"

	"github.com/fairlens/fairlens/schema"
	"github.com/stretchr/testify/assert"
)

// TestComparePeriods covers the count delta and rate delta math.
func TestComparePeriods(t *testing.T) {
	prevStart := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	prevEnd := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	current := []schema.Record{
		closedRecord("A", schema.PriorityLow, prevEnd, 5),
		openRecord("A", schema.PriorityLow, prevEnd),
		openRecord("B", schema.PriorityLow, prevEnd),
	}
	previous := []schema.Record{
		closedRecord("A", schema.PriorityLow, prevStart, 5),
		closedRecord("B", schema.PriorityLow, prevStart, 7),
	}

	cmp := ComparePeriods(current, previous, prevStart, prevEnd)

	assert.Equal(t, 2, cmp.PreviousTotal)
	assert.Equal(t, 100.0, cmp.PreviousResolutionRate)
	assert.InDelta(t, 50.0, cmp.ChangePercentage, 0.001) // (3-2)/2
	assert.InDelta(t, -66.666, cmp.ResolutionRateChange, 0.01)
	assert.False(t, cmp.IsImproving) // more volume and lower rate
}

// TestComparePeriodsSaturating pins the deliberate zero-previous edge case:
// the change percentage is 0, not infinite.
func TestComparePeriodsSaturating(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	current := []schema.Record{
		openRecord("A", schema.PriorityLow, start),
		openRecord("B", schema.PriorityLow, start),
		openRecord("C", schema.PriorityLow, start),
		openRecord("D", schema.PriorityLow, start),
		openRecord("E", schema.PriorityLow, start),
	}

	cmp := ComparePeriods(current, nil, start.AddDate(0, -1, 0), start)
	assert.Zero(t, cmp.ChangePercentage)
	assert.Zero(t, cmp.PreviousTotal)
}

// TestComparePeriodsImprovingOR verifies the permissive OR rule: either a
// lower volume or a higher resolution rate marks the period improving.
func TestComparePeriodsImprovingOR(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	prev := []schema.Record{
		openRecord("A", schema.PriorityLow, start.AddDate(0, -1, 0)),
		openRecord("B", schema.PriorityLow, start.AddDate(0, -1, 0)),
	}

	t.Run("fewer reports, same rate", func(t *testing.T) {
		cur := []schema.Record{openRecord("A", schema.PriorityLow, start)}
		assert.True(t, ComparePeriods(cur, prev, start.AddDate(0, -1, 0), start).IsImproving)
	})

	t.Run("more reports, higher rate", func(t *testing.T) {
		cur := []schema.Record{
			closedRecord("A", schema.PriorityLow, start, 3),
			openRecord("B", schema.PriorityLow, start),
			openRecord("C", schema.PriorityLow, start),
		}
		assert.True(t, ComparePeriods(cur, prev, start.AddDate(0, -1, 0), start).IsImproving)
	})

	t.Run("same volume, same rate", func(t *testing.T) {
		cur := []schema.Record{
			openRecord("A", schema.PriorityLow, start),
			openRecord("B", schema.PriorityLow, start),
		}
		assert.False(t, ComparePeriods(cur, prev, start.AddDate(0, -1, 0), start).IsImproving)
	})
}
