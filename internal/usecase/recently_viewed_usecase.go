package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// RecentlyViewedUsecase defines the interface for the browsing trail use cases.
// The trail is ordered most recently viewed first, holds no duplicates, and is
// capped at a configured maximum.
type RecentlyViewedUsecase interface {
	// List returns the trail in display order.
	List(ctx context.Context) ([]entity.Product, error)

	// Record moves the product to the front, inserting it if absent. When the
	// trail exceeds its cap the oldest entry drops off.
	Record(ctx context.Context, product entity.Product) error

	// Clear empties the trail.
	Clear(ctx context.Context) error
}
