// Package persistence implements the domain repositories on top of the
// key-value store, serializing each aggregate as JSON under a fixed key.
package persistence

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

const ordersKey = "orders"

type orderHistoryRepository struct {
	store repository.KeyValueStore
}

// NewOrderHistoryRepository creates a key-value backed order history repository.
func NewOrderHistoryRepository(store repository.KeyValueStore) repository.OrderHistoryRepository {
	return &orderHistoryRepository{store: store}
}

// Load returns every stored order, newest first.
func (r *orderHistoryRepository) Load(ctx context.Context) ([]entity.Order, error) {
	raw, err := r.store.Get(ctx, ordersKey)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return []entity.Order{}, nil
		}

		return nil, errors.Wrap(err, "failed to get orders")
	}

	var orders []entity.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, errors.Wrap(err, "failed to decode orders")
	}

	return orders, nil
}

// Save replaces the stored history with the given orders.
func (r *orderHistoryRepository) Save(ctx context.Context, orders []entity.Order) error {
	raw, err := json.Marshal(orders)
	if err != nil {
		return errors.Wrap(err, "failed to encode orders")
	}

	if err := r.store.Set(ctx, ordersKey, raw); err != nil {
		return errors.Wrap(err, "failed to set orders")
	}

	return nil
}
