package reportstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/fairlens/fairlens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore migrates and opens a throwaway SQLite store.
func newTestStore(t *testing.T) *StoreImpl {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "fairlens_test.db")

	require.NoError(t, Migrate(schema.SQLiteBackend, dbPath, -1))

	store, err := NewStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// TestStoreFetchRecordsRoundTrip saves and fetches records through the
// public store surface.
func TestStoreFetchRecordsRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	created := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	closed := created.AddDate(0, 0, 12)

	records := []schema.Record{
		{
			ID: "r1", Category: "Fraud", Priority: schema.PriorityHigh,
			Status: schema.StatusResolved, CreatedAt: created, ClosedAt: &closed,
		},
		{
			ID: "r2", Category: "Harassment", Priority: schema.PriorityMedium,
			Status: schema.StatusNew, IsAnonymous: true, CreatedAt: created.AddDate(0, 0, 5),
		},
	}
	for i := range records {
		require.NoError(t, store.SaveRecord(ctx, "acme", &records[i]))
	}
	// A second company's records must not leak into the fetch.
	other := schema.Record{
		ID: "r3", Category: "Waste", Priority: schema.PriorityLow,
		Status: schema.StatusNew, CreatedAt: created,
	}
	require.NoError(t, store.SaveRecord(ctx, "globex", &other))

	fetched, err := store.FetchRecords(ctx, "acme", time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, fetched, 2)

	assert.Equal(t, "r1", fetched[0].ID)
	assert.Equal(t, schema.Category("Fraud"), fetched[0].Category)
	assert.Equal(t, schema.StatusResolved, fetched[0].Status)
	require.NotNil(t, fetched[0].ClosedAt)
	assert.Equal(t, closed, *fetched[0].ClosedAt)

	assert.Equal(t, "r2", fetched[1].ID)
	assert.True(t, fetched[1].IsAnonymous)
	assert.Nil(t, fetched[1].ClosedAt)
}

// TestStoreFetchRecordsWindow checks the half-open created_at filter.
func TestStoreFetchRecordsWindow(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	for _, r := range []schema.Record{
		{ID: "before", Category: "A", Priority: schema.PriorityLow, Status: schema.StatusNew, CreatedAt: start.Add(-time.Second)},
		{ID: "at-start", Category: "A", Priority: schema.PriorityLow, Status: schema.StatusNew, CreatedAt: start},
		{ID: "inside", Category: "A", Priority: schema.PriorityLow, Status: schema.StatusNew, CreatedAt: start.AddDate(0, 0, 15)},
		{ID: "at-end", Category: "A", Priority: schema.PriorityLow, Status: schema.StatusNew, CreatedAt: end},
	} {
		rec := r
		require.NoError(t, store.SaveRecord(ctx, "acme", &rec))
	}

	fetched, err := store.FetchRecords(ctx, "acme", start, end)
	require.NoError(t, err)
	require.Len(t, fetched, 2)
	assert.Equal(t, "at-start", fetched[0].ID)
	assert.Equal(t, "inside", fetched[1].ID)
}

// TestStoreSaveRecordValidates rejects malformed records at the boundary.
func TestStoreSaveRecordValidates(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	created := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	closed := created.AddDate(0, 0, -3)
	bad := schema.Record{
		ID: "bad", Category: "Fraud", Priority: schema.PriorityLow,
		Status: schema.StatusResolved, CreatedAt: created, ClosedAt: &closed,
	}

	assert.Error(t, store.SaveRecord(ctx, "acme", &bad))
}

// TestStoreCountActiveEmployees covers the upsert and the missing-row case.
func TestStoreCountActiveEmployees(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	count, err := store.CountActiveEmployees(ctx, "acme")
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, store.SetActiveEmployees(ctx, "acme", 120))
	require.NoError(t, store.SetActiveEmployees(ctx, "acme", 150))

	count, err = store.CountActiveEmployees(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, 150, count)
}

// TestMigrateRollback rolls the schema all the way down and back up.
func TestMigrateRollback(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fairlens_migrate.db")

	require.NoError(t, Migrate(schema.SQLiteBackend, dbPath, -1))

	version, dirty, err := MigrationVersion(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	assert.False(t, dirty)
	assert.Equal(t, uint(1), version)

	require.NoError(t, Migrate(schema.SQLiteBackend, dbPath, 0))
	require.NoError(t, Migrate(schema.SQLiteBackend, dbPath, -1))
}
