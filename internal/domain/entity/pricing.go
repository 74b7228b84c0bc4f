package entity

import (
	"github.com/shopspring/decimal"
)

// Default pricing rules of the storefront. Orders above the threshold ship free,
// everything else pays the flat rate.
var (
	DefaultFreeShippingThreshold = decimal.NewFromInt(50)
	DefaultFlatShippingRate      = decimal.RequireFromString("5.99")
)

// PricingRules holds the shipping rule applied to carts and orders.
type PricingRules struct {
	FreeShippingThreshold decimal.Decimal
	FlatShippingRate      decimal.Decimal
}

// DefaultPricingRules returns the storefront's standard shipping rule.
func DefaultPricingRules() PricingRules {
	return PricingRules{
		FreeShippingThreshold: DefaultFreeShippingThreshold,
		FlatShippingRate:      DefaultFlatShippingRate,
	}
}

// ShippingCost returns the shipping charge for a given subtotal.
// Free shipping requires the subtotal to strictly exceed the threshold:
// a subtotal of exactly 50.00 still pays the flat rate.
func (r PricingRules) ShippingCost(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(r.FreeShippingThreshold) {
		return decimal.Zero
	}

	return r.FlatShippingRate
}
