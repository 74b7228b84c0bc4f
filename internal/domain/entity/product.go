// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"github.com/shopspring/decimal"
)

// Product is a catalog item as served by the remote store API.
// Products are immutable once fetched; the storefront never writes them back.
type Product struct {
	ID          int             `json:"id"`          // Catalog identifier assigned by the remote store.
	Title       string          `json:"title"`       // Display title.
	Price       decimal.Decimal `json:"price"`       // Current catalog price. Orders freeze their own copy.
	Description string          `json:"description"` // Marketing description.
	Category    string          `json:"category"`    // Category name, e.g. "electronics" or "men's clothing".
	Image       string          `json:"image"`       // URL of the product image.
	Rating      Rating          `json:"rating"`      // Aggregate customer rating.
}

// Rating is the aggregate review score attached to a product.
type Rating struct {
	Rate  float64 `json:"rate"`  // Average score in [0, 5].
	Count int     `json:"count"` // Number of reviews behind the average.
}
