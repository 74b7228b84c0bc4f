package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Sort orders accepted by product search.
const (
	SortRelevance  = "relevance"
	SortPriceAsc   = "price_asc"
	SortPriceDesc  = "price_desc"
	SortRatingDesc = "rating_desc"
	SortNewest     = "newest"
)

// SearchQuery describes a product search: a free-text term plus optional
// filters. Zero-valued filters are ignored.
type SearchQuery struct {
	Text       string           `json:"text"`
	Categories []string         `json:"categories"`
	MinPrice   *decimal.Decimal `json:"minPrice"`
	MaxPrice   *decimal.Decimal `json:"maxPrice"`
	MinRating  float64          `json:"minRating"`
	Sort       string           `json:"sort"`
}

// CatalogUsecase defines the interface for product catalog use cases
type CatalogUsecase interface {
	// ListProducts returns the full catalog.
	ListProducts(ctx context.Context) ([]entity.Product, error)

	// ListCategories returns the category names.
	ListCategories(ctx context.Context) ([]string, error)

	// ListProductsByCategory returns the products of one category.
	ListProductsByCategory(ctx context.Context, category string) ([]entity.Product, error)

	// GetProduct returns a single product by its catalog ID.
	GetProduct(ctx context.Context, productID int) (*entity.Product, error)

	// Search filters and sorts the catalog. Text matches title, description
	// and category case-insensitively.
	Search(ctx context.Context, query SearchQuery) ([]entity.Product, error)
}
