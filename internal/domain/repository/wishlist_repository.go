package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// WishlistRepository persists the saved-for-later product list as one aggregate.
type WishlistRepository interface {
	// Load returns the wishlist in display order, most recently added first.
	// An empty wishlist returns an empty slice, not an error.
	Load(ctx context.Context) ([]entity.Product, error)

	// Save replaces the stored wishlist with the given products.
	Save(ctx context.Context, products []entity.Product) error
}
