// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogGateway defines the read-only access to the remote product catalog.
// Implementations talk to the upstream store API; the domain never caches
// or mutates catalog data.
type CatalogGateway interface {
	// FetchProducts retrieves the full product catalog.
	FetchProducts(ctx context.Context) ([]entity.Product, error)

	// FetchCategories retrieves the list of category names.
	FetchCategories(ctx context.Context) ([]string, error)

	// FetchProductsByCategory retrieves the products of a single category.
	// The category name is passed verbatim, including spaces and punctuation.
	FetchProductsByCategory(ctx context.Context, category string) ([]entity.Product, error)
}
