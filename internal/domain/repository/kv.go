// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when a key has no stored value.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the low-level persistence contract. Higher-level
// repositories serialize their aggregates to JSON and store them under
// well-known keys, mirroring a device-local preferences store.
type KeyValueStore interface {
	// Get retrieves the raw value stored under key.
	// Returns ErrKeyNotFound when the key has never been set or was deleted.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the value under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
