// Package store provides the key-value storage abstraction the attendance
// core persists through, with in-memory, Redis and SQL-backed implementations.
package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a key does not exist in the store.
var ErrNotFound = errors.New("store: key not found")

// Store is a key-value storage interface. Values are opaque byte slices;
// callers serialize their own JSON. A zero TTL means no expiry.
type Store interface {
	// Set stores a key-value pair.
	Set(key string, value []byte, ttl time.Duration) error
	// Get retrieves a value by its key. Returns ErrNotFound for missing keys.
	Get(key string) ([]byte, error)
	// Delete removes a value by its key. Removing a missing key is not an error.
	Delete(key string) error
	// Del removes multiple values by their keys.
	Del(keys ...string) error
	// Exists checks if a key exists.
	Exists(key string) (bool, error)
	// Clear removes all data.
	Clear() error
	// Close releases resources held by the store.
	Close() error
}
