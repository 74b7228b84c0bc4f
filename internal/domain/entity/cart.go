package entity

import (
	"github.com/shopspring/decimal"
)

// CartLine pairs a product with a quantity inside the shopping cart.
// A cart never holds two lines for the same product ID, and a line's
// quantity is always at least 1; lines that would drop to zero are removed.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal returns price × quantity for this line.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartSummary carries the derived totals of a cart. It is computed on demand
// from the line collection and never stored.
type CartSummary struct {
	ItemCount    int             `json:"itemCount"` // Sum of line quantities.
	Subtotal     decimal.Decimal `json:"subtotal"`
	ShippingCost decimal.Decimal `json:"shippingCost"`
	Total        decimal.Decimal `json:"total"`
	IsEmpty      bool            `json:"isEmpty"`
}

// SummarizeCart derives the totals for a set of cart lines under the given rules.
func SummarizeCart(lines []CartLine, rules PricingRules) CartSummary {
	itemCount := 0
	subtotal := decimal.Zero
	for _, line := range lines {
		itemCount += line.Quantity
		subtotal = subtotal.Add(line.LineTotal())
	}

	shipping := rules.ShippingCost(subtotal)

	return CartSummary{
		ItemCount:    itemCount,
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Total:        subtotal.Add(shipping),
		IsEmpty:      len(lines) == 0,
	}
}
