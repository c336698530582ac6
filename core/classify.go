package core

import (
	"fmt"

	"github.com/fairlens/fairlens/schema"
)

// ClassifyPerformance maps resolution rate and average resolution time to an
// ordinal class through a priority-ordered rule cascade. The first matching
// rule wins; this is deliberately not a weighted score.
func ClassifyPerformance(resolutionRate, avgTimeDays float64) schema.PerformanceClass {
	switch {
	case resolutionRate >= 90 && avgTimeDays <= 30:
		return schema.PerformanceExcellent
	case resolutionRate >= 80 && avgTimeDays <= 60:
		return schema.PerformanceGood
	case resolutionRate >= 60 || avgTimeDays <= 90:
		return schema.PerformanceAttention
	default:
		return schema.PerformanceCritical
	}
}

// EvaluateCompliance runs the independent compliance predicates and collects
// advisory text for each failure. The predicates are not mutually exclusive
// with the performance classification, and the emitted strings are opaque to
// consumers.
func EvaluateCompliance(snapshot *schema.Snapshot) schema.Compliance {
	c := schema.Compliance{
		GRICompliant:         snapshot.TotalReports > 0 && len(snapshot.ByCategory) > 0,
		ResolutionQualityMet: snapshot.Resolution.ResolutionRate >= 70 && snapshot.Resolution.AvgResolutionTimeDays <= 90,
	}

	if !c.GRICompliant {
		c.MissingData = append(c.MissingData,
			"No categorized reports available for the GRI 2-26 disclosure period")
		c.Recommendations = append(c.Recommendations,
			"Verify that the reporting channel is reachable and that incoming reports are being categorized")
	}
	if !c.ResolutionQualityMet {
		c.MissingData = append(c.MissingData,
			fmt.Sprintf("Resolution quality below threshold: rate %.1f%% (minimum 70%%), average %.1f days (maximum 90)",
				snapshot.Resolution.ResolutionRate, snapshot.Resolution.AvgResolutionTimeDays))
		c.Recommendations = append(c.Recommendations,
			"Review open investigations and assign owners to reports approaching the 90-day mark")
	}
	if snapshot.OpenCriticalReports > 0 {
		c.Recommendations = append(c.Recommendations,
			fmt.Sprintf("%d critical-priority report(s) remain open; prioritize their investigation", snapshot.OpenCriticalReports))
	}
	return c
}
