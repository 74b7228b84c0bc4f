package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// RecentlyViewedRepository persists the browsing trail as one aggregate.
type RecentlyViewedRepository interface {
	// Load returns the trail in display order, most recently viewed first.
	// An empty trail returns an empty slice, not an error.
	Load(ctx context.Context) ([]entity.Product, error)

	// Save replaces the stored trail with the given products.
	Save(ctx context.Context, products []entity.Product) error
}
