// Package iocache is for durable caching of remote I/O calls.
package iocache

import (
	"sync"

	"github.com/huangsam/gazer/internal/contract"
)

// CacheStoreManager manages the two named cache stores: the TTL'd relation
// snapshot store and the permanent profile store.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	relations    contract.CacheStore
	profiles     contract.CacheStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetRelationsStore returns the relation snapshot CacheStore.
func (mgr *CacheStoreManager) GetRelationsStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.relations
}

// GetProfilesStore returns the profile CacheStore.
func (mgr *CacheStoreManager) GetProfilesStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.profiles
}
