// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/fairlens/fairlens/schema"
)

// RecordStore defines the record-fetching collaborator of the analytics
// engine. The engine itself never touches a database; commands fetch through
// this interface and hand the materialized set to core.BuildSnapshot.
type RecordStore interface {
	// FetchRecords returns all records for a company. When start and end
	// are both zero the full record set is returned; the engine needs
	// records outside the reporting window for its trailing-window stages.
	FetchRecords(ctx context.Context, companyID string, start, end time.Time) ([]schema.Record, error)

	// Close releases the underlying database resources.
	Close() error
}

// EmployeeDirectory resolves the active employee headcount used for the
// channel-utilization percentage.
type EmployeeDirectory interface {
	CountActiveEmployees(ctx context.Context, companyID string) (int, error)
}

// StoreManager bundles the storage collaborators handed to commands.
type StoreManager interface {
	GetRecordStore() RecordStore
	GetEmployeeDirectory() EmployeeDirectory
	Close() error
}
