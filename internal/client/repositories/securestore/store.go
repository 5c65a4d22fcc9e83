// Package securestore is the client's key-value secure storage. Values are
// opaque bytes; implementations keep them confidential at rest and apply the
// multi-key operations atomically.
package securestore

import (
	"context"
	"errors"
)

// ErrCorrupted is returned when a stored value fails to decrypt, e.g. after
// the device key changed or the database was tampered with.
var ErrCorrupted = errors.New("secure store value corrupted")

type Store interface {
	// Get returns (nil, false, nil) for an absent key.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete is a no-op for an absent key.
	Delete(ctx context.Context, key string) error
	// SetMany writes all pairs or none.
	SetMany(ctx context.Context, values map[string][]byte) error
	// DeleteMany removes all keys or none.
	DeleteMany(ctx context.Context, keys ...string) error
}
