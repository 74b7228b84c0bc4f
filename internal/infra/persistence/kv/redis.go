package kv

import (
	"context"

	"storefront/config"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisStore is a KeyValueStore backed by Redis. Entries carry no TTL; they
// represent durable device state, not a cache.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed key-value store.
func NewRedisStore(cfg *config.RedisConfig) repository.KeyValueStore {
	return &redisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

// Get retrieves the raw value stored under key.
func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get")
	}

	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrap(err, "redis set")
	}

	return nil
}

// Delete removes the value under key.
func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrap(err, "redis del")
	}

	return nil
}

// Close releases the underlying connection pool.
func (s *redisStore) Close() error {
	return s.client.Close()
}
