package core

import (
	"fmt"
	"time"

	"github.com/fairlens/fairlens/schema"
)

// testNow is the injected evaluation instant shared by engine tests.
var testNow = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

var recordSeq int

// openRecord builds an open record created at the given time.
func openRecord(category string, priority schema.Priority, createdAt time.Time) schema.Record {
	recordSeq++
	return schema.Record{
		ID:        fmt.Sprintf("r%03d", recordSeq),
		Category:  schema.Category(category),
		Priority:  priority,
		Status:    schema.StatusNew,
		CreatedAt: createdAt,
	}
}

// closedRecord builds a resolved record closed the given number of days
// after creation.
func closedRecord(category string, priority schema.Priority, createdAt time.Time, resolutionDays int) schema.Record {
	r := openRecord(category, priority, createdAt)
	r.Status = schema.StatusResolved
	closed := createdAt.AddDate(0, 0, resolutionDays)
	r.ClosedAt = &closed
	return r
}

// withStatus overrides a record's status without touching closed_at.
func withStatus(r schema.Record, status schema.RecordStatus) schema.Record {
	r.Status = status
	return r
}
