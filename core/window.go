package core

import (
	"errors"
	"time"
)

// ErrInvalidWindow is returned when a reporting window's end precedes its
// start. This is a caller error and fails fast with no partial result.
var ErrInvalidWindow = errors.New("invalid reporting window: end precedes start")

// PreviousWindow derives the comparison window for a [start, end) reporting
// period: an immediately preceding window of identical duration. This is
// pure duration arithmetic with no calendar alignment, so a 37-day window
// yields a 37-day comparison window.
func PreviousWindow(start, end time.Time) (time.Time, time.Time, error) {
	if end.Before(start) {
		return time.Time{}, time.Time{}, ErrInvalidWindow
	}
	span := end.Sub(start)
	return start.Add(-span), start, nil
}

// inWindow reports whether t falls in the half-open interval [start, end).
func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}
