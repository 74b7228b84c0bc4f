// Package kv provides the key-value storage backends behind the repositories.
package kv

import (
	"context"
	"sync"

	"storefront/internal/domain/repository"
)

// memoryStore is an in-process KeyValueStore. It backs local development and
// tests; nothing survives a restart.
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryStore creates an empty in-memory key-value store.
func NewMemoryStore() repository.KeyValueStore {
	return &memoryStore{
		entries: make(map[string][]byte),
	}
}

// Get retrieves the raw value stored under key.
func (s *memoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return nil, repository.ErrKeyNotFound
	}

	copied := make([]byte, len(value))
	copy(copied, value)

	return copied, nil
}

// Set stores value under key, replacing any previous value.
func (s *memoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]byte, len(value))
	copy(copied, value)
	s.entries[key] = copied

	return nil
}

// Delete removes the value under key.
func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)

	return nil
}
