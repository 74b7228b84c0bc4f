package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaceOrderInput carries the optional checkout details.
type PlaceOrderInput struct {
	ShippingAddress string `json:"shippingAddress"`
}

// OrderUsecase defines the interface for order management use cases
type OrderUsecase interface {
	// PlaceOrder checks out the current cart into a new confirmed order and
	// empties the cart. Fails on an empty cart.
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*entity.Order, error)

	// ListOrders returns the order history, newest first.
	ListOrders(ctx context.Context) ([]entity.Order, error)

	// ListRecentOrders returns the newest orders, capped at five.
	ListRecentOrders(ctx context.Context) ([]entity.Order, error)

	// ListActiveOrders returns the orders still in flight, excluding delivered
	// and cancelled ones.
	ListActiveOrders(ctx context.Context) ([]entity.Order, error)

	// ListCompletedOrders returns the delivered orders.
	ListCompletedOrders(ctx context.Context) ([]entity.Order, error)

	// GetOrder returns a single order by ID.
	GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// CancelOrder transitions an order to the cancelled status. The order stays
	// in the history. Orders already delivered or cancelled cannot be cancelled.
	CancelOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// GenerateTrackingQR generates a QR code encoding the order's tracking reference
	GenerateTrackingQR(ctx context.Context, orderID uuid.UUID) ([]byte, error)
}
