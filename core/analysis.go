package core

import (
	"fmt"
	"time"

	"github.com/fairlens/fairlens/schema"
)

// Input carries everything one engine invocation needs. Records is the full
// already-fetched record set for a company: the trailing trend and the
// recurrence detector intentionally look outside the reporting window, so
// callers must not pre-filter by period. Now is the injected evaluation
// instant; the engine never reads the system clock.
type Input struct {
	Records         []schema.Record
	Start           time.Time
	End             time.Time
	Now             time.Time
	ActiveEmployees int
}

// BuildSnapshot runs the analytics stages in dependency order and assembles
// one immutable metrics snapshot. The computation is synchronous,
// side-effect-free and deterministic: identical inputs yield identical
// snapshots, and concurrent invocations need no coordination.
func BuildSnapshot(in Input) (*schema.Snapshot, error) {
	prevStart, prevEnd, err := PreviousWindow(in.Start, in.End)
	if err != nil {
		return nil, err
	}

	for i := range in.Records {
		if err := in.Records[i].Validate(); err != nil {
			return nil, fmt.Errorf("malformed record: %w", err)
		}
	}

	current := filterWindow(in.Records, in.Start, in.End)
	previous := filterWindow(in.Records, prevStart, prevEnd)

	snapshot := &schema.Snapshot{
		PeriodStart:  in.Start,
		PeriodEnd:    in.End,
		GeneratedAt:  in.Now,
		TotalReports: len(current),
	}

	for i := range current {
		r := &current[i]
		if r.IsAnonymous {
			snapshot.AnonymousReports++
		}
		if r.Priority == schema.PriorityCritical && !r.IsClosed() {
			snapshot.OpenCriticalReports++
		}
	}
	snapshot.AnonymousPercentage = schema.SafePercent(snapshot.AnonymousReports, snapshot.TotalReports)
	snapshot.ChannelUtilization = schema.SafePercent(snapshot.TotalReports, in.ActiveEmployees)

	snapshot.ByStatus = AggregateBy(current, byStatus)
	snapshot.ByCategory = AggregateBy(current, byCategory)
	snapshot.ByPriority = AggregateBy(current, byPriority)

	snapshot.MonthlyTrend = MonthlyTrend(in.Records, in.Now)
	snapshot.Resolution = ResolutionStatistics(current, in.Now)
	snapshot.Comparison = ComparePeriods(current, previous, prevStart, prevEnd)
	snapshot.TopCategories = RankTopCategories(snapshot.ByCategory, previous, topCategoryLimit)
	snapshot.SystemicIssues = DetectSystemicIssues(in.Records, in.Now)
	snapshot.Funnel = BuildFunnel(current)
	snapshot.Effectiveness = ScoreEffectiveness(current, previous, snapshot.Resolution)

	snapshot.Performance = ClassifyPerformance(snapshot.Resolution.ResolutionRate, snapshot.Resolution.AvgResolutionTimeDays)
	snapshot.Compliance = EvaluateCompliance(snapshot)

	return snapshot, nil
}

// filterWindow selects records created within [start, end), preserving
// input order.
func filterWindow(records []schema.Record, start, end time.Time) []schema.Record {
	var out []schema.Record
	for i := range records {
		if inWindow(records[i].CreatedAt, start, end) {
			out = append(out, records[i])
		}
	}
	return out
}
