// Package usecase defines the application's use case interfaces and the
// data transfer objects they exchange with the delivery layer.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartView is the cart's full state: its lines plus the derived totals.
type CartView struct {
	Lines   []entity.CartLine  `json:"lines"`
	Summary entity.CartSummary `json:"summary"`
}

// CartUsecase defines the interface for shopping cart use cases.
// The cart is session-scoped and lives in memory only; it is not persisted
// across restarts.
type CartUsecase interface {
	// GetCart returns the current cart state.
	GetCart(ctx context.Context) (*CartView, error)

	// AddItem adds one unit of the product, merging into an existing line.
	AddItem(ctx context.Context, product entity.Product) (*CartView, error)

	// IncrementQuantity raises an existing line's quantity by one.
	// A missing line is a no-op.
	IncrementQuantity(ctx context.Context, productID int) (*CartView, error)

	// DecrementQuantity lowers an existing line's quantity by one.
	// Decrementing a quantity of one removes the line entirely.
	DecrementQuantity(ctx context.Context, productID int) (*CartView, error)

	// UpdateQuantity sets a line's quantity directly. Zero or negative removes
	// the line. Updating a missing line is a no-op.
	UpdateQuantity(ctx context.Context, productID int, quantity int) (*CartView, error)

	// RemoveItem removes a line regardless of quantity.
	RemoveItem(ctx context.Context, productID int) (*CartView, error)

	// Contains reports whether the product has a line in the cart.
	Contains(ctx context.Context, productID int) (bool, error)

	// QuantityFor returns the quantity of the product's line, zero when absent.
	QuantityFor(ctx context.Context, productID int) (int, error)

	// ClearCart removes every line.
	ClearCart(ctx context.Context) (*CartView, error)

	// TakeSnapshot atomically returns the current lines and empties the cart.
	// Checkout uses this so the order is built from exactly the lines removed.
	TakeSnapshot(ctx context.Context) ([]entity.CartLine, entity.CartSummary, error)

	// RestoreSnapshot puts snapshot lines back into the cart, merging
	// quantities with any lines added since. Checkout uses this to undo a
	// TakeSnapshot when persisting the order fails.
	RestoreSnapshot(ctx context.Context, lines []entity.CartLine) error
}
