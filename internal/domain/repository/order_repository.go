package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderHistoryRepository persists the full order history as one aggregate.
// The history is small and always read whole, newest order first.
type OrderHistoryRepository interface {
	// Load returns every stored order, newest first.
	// An empty history returns an empty slice, not an error.
	Load(ctx context.Context) ([]entity.Order, error)

	// Save replaces the stored history with the given orders.
	Save(ctx context.Context, orders []entity.Order) error
}
