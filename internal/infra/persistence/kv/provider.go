package kv

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// prefixedStore namespaces every key of the wrapped store.
type prefixedStore struct {
	prefix string
	inner  repository.KeyValueStore
}

func (s *prefixedStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

func (s *prefixedStore) Set(ctx context.Context, key string, value []byte) error {
	return s.inner.Set(ctx, s.prefix+key, value)
}

func (s *prefixedStore) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}

// Params holds dependencies for the key-value store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewKeyValueStore creates a KeyValueStore based on configuration
func NewKeyValueStore(params Params) (repository.KeyValueStore, error) {
	cfg := params.Config.Persistence
	logger := params.Logger

	provider := constants.PersistenceProviderMemory
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	var store repository.KeyValueStore
	var err error

	switch provider {
	case constants.PersistenceProviderMemory:
		logger.Info("Using in-memory key-value store")

		store = NewMemoryStore()

	case constants.PersistenceProviderRedis:
		if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis provider")
		}
		logger.Info("Using Redis key-value store",
			slog.String("addr", params.Config.Redis.Addr),
		)

		redisStore := NewRedisStore(params.Config.Redis)
		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				logger.Info("Closing Redis key-value store")

				if closer, ok := redisStore.(interface{ Close() error }); ok {
					return closer.Close()
				}

				return nil
			},
		})
		store = redisStore

	case constants.PersistenceProviderPostgres:
		if params.Config.Postgres == nil {
			return nil, errors.New("postgres connection is required for postgres provider")
		}
		logger.Info("Using Postgres key-value store")

		store, err = NewPostgresStore(PostgresParams{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown persistence provider: %s", provider)
	}

	if cfg != nil && cfg.KeyPrefix != "" {
		store = &prefixedStore{prefix: cfg.KeyPrefix, inner: store}
	}

	return store, nil
}

// Module provides the key-value store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewKeyValueStore),
)
