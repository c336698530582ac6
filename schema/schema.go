// Package schema has models, constants and shared helpers for all parts of fairlens.
package schema

import (
	"fmt"
	"time"
)

// Record represents a single submitted ESG event, such as a whistleblower
// report or a compliance incident. Records are immutable inputs to the
// analytics engine; the engine never mutates or persists them.
type Record struct {
	ID          string       `json:"id"`           // Opaque unique identifier
	Category    Category     `json:"category"`     // Business-defined classification tag (open set)
	Priority    Priority     `json:"priority"`     // Ordinal severity tag
	Status      RecordStatus `json:"status"`       // Lifecycle tag; see IsClosed
	IsAnonymous bool         `json:"is_anonymous"` // Whether the report was filed anonymously
	CreatedAt   time.Time    `json:"created_at"`   // Event creation timestamp
	ClosedAt    *time.Time   `json:"closed_at"`    // Resolution timestamp, set only for closed records
}

// IsClosed reports whether the record's status is in the closed set.
func (r *Record) IsClosed() bool {
	return r.Status.IsClosed()
}

// ResolutionDays returns the whole-day resolution duration for a closed
// record. Open records return 0 and false.
func (r *Record) ResolutionDays() (int, bool) {
	if r.ClosedAt == nil {
		return 0, false
	}
	return DaysBetween(r.CreatedAt, *r.ClosedAt), true
}

// AgeDays returns the whole-day age of the record at the given instant.
func (r *Record) AgeDays(now time.Time) int {
	return DaysBetween(r.CreatedAt, now)
}

// Validate checks a record for data-quality violations. A closed_at before
// created_at would silently corrupt resolution-time statistics, so it is
// rejected at the boundary rather than swallowed into a negative duration.
func (r *Record) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("record has empty id")
	}
	if r.CreatedAt.IsZero() {
		return fmt.Errorf("record %s has no created_at", r.ID)
	}
	if r.ClosedAt != nil && r.ClosedAt.Before(r.CreatedAt) {
		return fmt.Errorf("record %s closed_at %s precedes created_at %s",
			r.ID, r.ClosedAt.Format(time.RFC3339), r.CreatedAt.Format(time.RFC3339))
	}
	if r.Status.IsClosed() && r.ClosedAt == nil {
		return fmt.Errorf("record %s has closed status %q but no closed_at", r.ID, r.Status)
	}
	return nil
}
