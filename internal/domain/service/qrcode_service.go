package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateTrackingQR generates a QR code encoding an order's tracking reference
	GenerateTrackingQR(orderID uuid.UUID, orderNumber string) ([]byte, error)

	// ParseTrackingQR parses QR code data and returns the order ID
	ParseTrackingQR(qrData string) (uuid.UUID, error)
}
