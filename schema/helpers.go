package schema

import "time"

// DaysBetween computes the whole-day duration from start to end using floor
// semantics. Every stage of the engine that needs a day difference goes
// through this helper so that floor-vs-round conventions cannot drift
// between stages. A negative span returns a negative day count; callers
// reject such records during validation.
func DaysBetween(start, end time.Time) int {
	d := end.Sub(start)
	days := int(d / (24 * time.Hour))
	if d < 0 && d%(24*time.Hour) != 0 {
		days--
	}
	return days
}

// SafePercent returns 100*part/total, or 0 when total is 0. Division by
// zero inside aggregation is a defined fallback, never NaN.
func SafePercent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(part) / float64(total)
}

// MonthStart returns midnight UTC on the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
