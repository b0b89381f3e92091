// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/dietmarja/curricula/schema"
)

// CatalogStore defines the interface for the catalogue snapshot store.
// This allows the storage layer to be mocked for testing.
type CatalogStore interface {
	// SaveModules replaces the stored catalogue snapshot.
	SaveModules(modules []schema.Module) error

	// LoadModules returns the stored catalogue snapshot, or an empty slice
	// if nothing has been stored.
	LoadModules() ([]schema.Module, error)

	// RecordRun stores the metadata of a completed selection run.
	RecordRun(when time.Time, role, topic string, meta schema.SelectionMetadata) error

	// ListRuns returns recorded selection runs, most recent first.
	ListRuns(limit int) ([]schema.RunRecord, error)

	// GetStatus returns status information about the store.
	GetStatus() (schema.StoreStatus, error)

	// Clear removes all stored data.
	Clear() error

	// Close closes the underlying connection.
	Close() error
}

// StoreManager defines the interface for accessing the catalogue store.
// A nil store from the manager means persistence is disabled.
type StoreManager interface {
	GetCatalogStore() CatalogStore
}
