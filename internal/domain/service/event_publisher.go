package service

import (
	"context"
	"time"
)

// Order event types emitted over the message queue.
const (
	OrderEventPlaced    = "order.placed"
	OrderEventCancelled = "order.cancelled"
)

// OrderEvent represents an order lifecycle change for downstream consumers.
type OrderEvent struct {
	Type        string    `json:"type"`
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Total       string    `json:"total"` // Decimal string, e.g. "55.98".
	ItemCount   int       `json:"item_count"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
