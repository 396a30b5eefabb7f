// Package storage provides the string-keyed JSON blob persistence used by
// the domain store. Two implementations exist: a BoltDB-backed store for
// real deployments and an in-memory store used as the fallback when the
// database file cannot be opened, and in tests.
package storage

// Keys for the persisted collections.
const (
	KeyItems        = "items"
	KeyCart         = "cart"
	KeyTransactions = "transactions"
	KeySettings     = "settings"
)

// Blobs is a string-keyed blob store with JSON-serialized values.
type Blobs interface {
	// Get unmarshals the blob stored under key into dest. It reports false
	// when the key is absent. A stored blob that fails to decode surfaces an
	// error; callers are expected to fall back to their defaults.
	Get(key string, dest any) (bool, error)
	// Put marshals v and stores it under key, replacing any prior value.
	Put(key string, v any) error
	// Close releases underlying resources.
	Close() error
}
