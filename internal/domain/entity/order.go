package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of a placed order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusConfirmed  OrderStatus = "Confirmed"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// IsTerminal reports whether the status ends the order's lifecycle.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// OrderLine is a cart line frozen at checkout. PriceAtPurchase keeps the price
// paid even if the catalog price changes later.
type OrderLine struct {
	ID              uuid.UUID       `json:"id"`
	Product         Product         `json:"product"` // Snapshot of the product at purchase time.
	Quantity        int             `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"priceAtPurchase"`
}

// LineTotal returns the frozen price × quantity for this line.
func (l OrderLine) LineTotal() decimal.Decimal {
	return l.PriceAtPurchase.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order is a record of a checkout. Only Status changes after creation, and
// only until it reaches a terminal state.
type Order struct {
	ID                uuid.UUID       `json:"id"`
	OrderNumber       string          `json:"orderNumber"` // Human-friendly reference, e.g. "SF-482913".
	Lines             []OrderLine     `json:"lines"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	ShippingCost      decimal.Decimal `json:"shippingCost"`
	Total             decimal.Decimal `json:"total"`
	Status            OrderStatus     `json:"status"`
	CreatedAt         time.Time       `json:"createdAt"`
	EstimatedDelivery *time.Time      `json:"estimatedDelivery,omitempty"`
	ShippingAddress   string          `json:"shippingAddress,omitempty"`
	TrackingNumber    string          `json:"trackingNumber,omitempty"`
}

// ItemCount returns the sum of line quantities.
func (o *Order) ItemCount() int {
	count := 0
	for _, line := range o.Lines {
		count += line.Quantity
	}

	return count
}
