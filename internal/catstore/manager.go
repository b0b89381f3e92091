package catstore

import (
	"sync"

	"github.com/dietmarja/curricula/internal/contract"
	"github.com/dietmarja/curricula/schema"
)

// CatalogStoreManager manages the CatalogStore instance for a process.
type CatalogStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	catalog      contract.CatalogStore
}

var _ contract.StoreManager = &CatalogStoreManager{} // Compile-time check

// SetCatalogStore installs the catalogue store after initialization.
func (mgr *CatalogStoreManager) SetCatalogStore(store contract.CatalogStore) {
	mgr.Lock()
	defer mgr.Unlock()
	mgr.catalog = store
}

// GetCatalogStore returns the catalogue CatalogStore, or nil when
// persistence is disabled.
func (mgr *CatalogStoreManager) GetCatalogStore() contract.CatalogStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.catalog
}

// Manager is the global catalogue store manager instance.
var Manager = &CatalogStoreManager{}

// InitStore initializes the catalogue store with the given backend and
// installs it in Manager. Any previously installed store is closed first.
func InitStore(backend schema.DatabaseBackend, connStr string) error {
	store, err := NewCatalogStore(backend, connStr)
	if err != nil {
		return err
	}
	if old := Manager.GetCatalogStore(); old != nil {
		_ = old.Close()
	}
	Manager.SetCatalogStore(store)
	return nil
}
