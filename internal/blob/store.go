// Package blob defines the opaque key-value store contract used by the vault
// core for persistence, together with several interchangeable backends:
// in-memory, filesystem, SQLite, PostgreSQL, and S3-compatible object
// storage.
//
// The core always writes full serialized snapshots of its collections; a
// backend never interprets the stored bytes.
package blob

import "context"

// Store is the persistence contract of the vault core. Implementations must
// treat values as opaque bytes.
//
// Get returns common.ErrNotFound for an absent key. Remove of an absent key
// is a no-op.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
