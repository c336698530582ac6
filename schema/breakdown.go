package schema

// BreakdownEntry holds the aggregate for one group within a breakdown
// dimension (status, category or priority).
type BreakdownEntry struct {
	Key               string  `json:"key"`                 // Group key (status, category or priority value)
	Count             int     `json:"count"`               // Number of records in the group
	Percentage        float64 `json:"percentage"`          // 100 * count / total, 0 when total is 0
	AvgResolutionDays float64 `json:"avg_resolution_days"` // Mean resolution days over the group's closed subset
}

// Breakdown is an ordered grouping of records by one categorical dimension.
// Entries appear in first-seen record order; ranking is a separate stage.
type Breakdown []BreakdownEntry

// Find returns the entry for the given key, or nil when absent.
func (b Breakdown) Find(key string) *BreakdownEntry {
	for i := range b {
		if b[i].Key == key {
			return &b[i]
		}
	}
	return nil
}

// TotalCount sums the counts of all entries.
func (b Breakdown) TotalCount() int {
	total := 0
	for i := range b {
		total += b[i].Count
	}
	return total
}
