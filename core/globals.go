package core

// Fixed business constants for the analytics stages. These are deliberately
// constants rather than configuration: reports must stay reproducible across
// invocations and tenants, so thresholds are never adaptive.
const (
	// trailingTrendMonths is the length of the monthly trend, anchored to
	// the evaluation instant rather than the reporting window.
	trailingTrendMonths = 12

	// recurrenceWindowMonths is the trailing window inspected by the
	// systemic-issue detector.
	recurrenceWindowMonths = 6

	// recurrenceThreshold is the per-category count at or above which a
	// category is flagged as systemic.
	recurrenceThreshold = 3

	// topCategoryLimit caps the ranked category list.
	topCategoryLimit = 5

	// trendDeltaPct is the percentage delta beyond which a category is
	// labeled increasing or decreasing rather than stable.
	trendDeltaPct = 10.0

	// overdueAgeDays is the age past which an open record counts as overdue.
	overdueAgeDays = 90

	// targetResolutionRate is the fixed effectiveness target.
	targetResolutionRate = 85.0

	// speedScoreFactor scales the under-30-day percentage into the capped
	// resolution speed score.
	speedScoreFactor = 1.5

	// minRankableCategorySize excludes single-sample categories from the
	// best/worst resolution rankings.
	minRankableCategorySize = 2

	// resolutionRankLimit caps the best/worst resolved category lists.
	resolutionRankLimit = 3
)
