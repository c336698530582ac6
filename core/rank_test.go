package core

import (
	"testing"
	"time"

	"github.com/fairlens/fairlens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRankTopCategories checks descending order and the top-N cut.
func TestRankTopCategories(t *testing.T) {
	created := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	var records []schema.Record
	counts := map[string]int{"A": 4, "B": 6, "C": 1, "D": 3, "E": 2, "F": 5}
	for cat, n := range counts {
		for range n {
			records = append(records, openRecord(cat, schema.PriorityLow, created))
		}
	}

	top := RankTopCategories(AggregateBy(records, byCategory), nil, 5)
	require.Len(t, top, 5)

	assert.Equal(t, schema.Category("B"), top[0].Category)
	assert.Equal(t, 6, top[0].Count)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Count, top[i].Count)
	}
	// "C" with a single record misses the top five.
	for _, tc := range top {
		assert.NotEqual(t, schema.Category("C"), tc.Category)
	}
}

// TestClassifyTrend pins the fixed ten-percent band and the new-category
// guard: a category absent from the previous period is stable.
func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		previous int
		expected schema.Trend
	}{
		{"absent previously", 8, 0, schema.TrendStable},
		{"well above band", 12, 10, schema.TrendIncreasing},
		{"well below band", 8, 10, schema.TrendDecreasing},
		{"exactly plus ten percent", 11, 10, schema.TrendStable},
		{"exactly minus ten percent", 9, 10, schema.TrendStable},
		{"unchanged", 10, 10, schema.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyTrend(tt.current, tt.previous))
		})
	}
}

// TestRankTopCategoriesTrends exercises trend labels against a previous
// period record set.
func TestRankTopCategoriesTrends(t *testing.T) {
	created := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	prevCreated := created.AddDate(0, -1, 0)

	var current, previous []schema.Record
	for range 6 {
		current = append(current, openRecord("Growing", schema.PriorityLow, created))
	}
	for range 4 {
		previous = append(previous, openRecord("Growing", schema.PriorityLow, prevCreated))
	}
	for range 2 {
		current = append(current, openRecord("Shrinking", schema.PriorityLow, created))
	}
	for range 5 {
		previous = append(previous, openRecord("Shrinking", schema.PriorityLow, prevCreated))
	}
	current = append(current, openRecord("Brand New", schema.PriorityLow, created))

	top := RankTopCategories(AggregateBy(current, byCategory), previous, 5)
	byCat := make(map[schema.Category]schema.TopCategory)
	for _, tc := range top {
		byCat[tc.Category] = tc
	}

	assert.Equal(t, schema.TrendIncreasing, byCat["Growing"].Trend)
	assert.Equal(t, schema.TrendDecreasing, byCat["Shrinking"].Trend)
	assert.Equal(t, schema.TrendStable, byCat["Brand New"].Trend)
}
