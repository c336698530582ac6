package reportstore

import (
	"github.com/fairlens/fairlens/internal/contract"
	"github.com/fairlens/fairlens/schema"
)

// ManagerImpl bundles the storage collaborators handed to commands. One
// store instance backs both interfaces.
type ManagerImpl struct {
	store *StoreImpl
}

var _ contract.StoreManager = &ManagerImpl{} // Compile-time check

// NewManager opens the configured backend and wraps it in a StoreManager.
func NewManager(backend schema.DatabaseBackend, connStr string) (*ManagerImpl, error) {
	store, err := NewStore(backend, connStr)
	if err != nil {
		return nil, err
	}
	return &ManagerImpl{store: store}, nil
}

// GetRecordStore returns the record-fetching collaborator.
func (m *ManagerImpl) GetRecordStore() contract.RecordStore {
	return m.store
}

// GetEmployeeDirectory returns the headcount collaborator.
func (m *ManagerImpl) GetEmployeeDirectory() contract.EmployeeDirectory {
	return m.store
}

// Close releases the underlying database resources.
func (m *ManagerImpl) Close() error {
	return m.store.Close()
}
