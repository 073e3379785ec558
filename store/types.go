package store

import "github.com/mvault/mvault"

// Use aliases so the store implementations and the interface definitions
// stay in sync without an import cycle.
type (
	ReadOnlyKVStore  = mvault.ReadOnlyKVStore
	SetDeleter       = mvault.SetDeleter
	KVStore          = mvault.KVStore
	Batch            = mvault.Batch
	Iterator         = mvault.Iterator
	CacheableKVStore = mvault.CacheableKVStore
	KVCacheWrap      = mvault.KVCacheWrap
)

// Model groups a key-value pair.
type Model struct {
	Key   []byte
	Value []byte
}
