package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// WishlistUsecase defines the interface for saved-for-later list use cases.
// The list is ordered most recently added first and holds no duplicates.
type WishlistUsecase interface {
	// List returns the wishlist in display order.
	List(ctx context.Context) ([]entity.Product, error)

	// Add inserts the product at the front. Adding a product already present
	// is a no-op.
	Add(ctx context.Context, product entity.Product) error

	// Remove deletes the product from the list. Removing a missing product
	// is a no-op.
	Remove(ctx context.Context, productID int) error

	// Toggle adds the product if absent and removes it if present.
	// Returns whether the product is on the list afterwards.
	Toggle(ctx context.Context, product entity.Product) (bool, error)

	// Contains reports whether the product is on the list.
	Contains(ctx context.Context, productID int) (bool, error)

	// Clear empties the list.
	Clear(ctx context.Context) error
}
