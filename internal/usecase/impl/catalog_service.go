package impl

import (
	"context"
	"sort"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	catalogGateway service.CatalogGateway
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogGateway service.CatalogGateway
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogGateway: params.CatalogGateway,
	}
}

// ListProducts returns the full catalog.
func (s *catalogService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := s.catalogGateway.FetchProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch products")
	}

	return products, nil
}

// ListCategories returns the category names.
func (s *catalogService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := s.catalogGateway.FetchCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch categories")
	}

	return categories, nil
}

// ListProductsByCategory returns the products of one category.
func (s *catalogService) ListProductsByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	products, err := s.catalogGateway.FetchProductsByCategory(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch products by category")
	}

	return products, nil
}

// GetProduct returns a single product by its catalog ID.
func (s *catalogService) GetProduct(ctx context.Context, productID int) (*entity.Product, error) {
	products, err := s.catalogGateway.FetchProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch products")
	}

	for i := range products {
		if products[i].ID == productID {
			return &products[i], nil
		}
	}

	return nil, domainerrors.ErrProductNotFound
}

// Search filters and sorts the catalog.
func (s *catalogService) Search(ctx context.Context, query usecase.SearchQuery) ([]entity.Product, error) {
	products, err := s.catalogGateway.FetchProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch products")
	}

	matched := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if matchesQuery(p, query) {
			matched = append(matched, p)
		}
	}

	sortProducts(matched, query.Sort)

	return matched, nil
}

// matchesQuery applies the free-text term and every set filter.
func matchesQuery(p entity.Product, query usecase.SearchQuery) bool {
	if text := strings.ToLower(strings.TrimSpace(query.Text)); text != "" {
		if !strings.Contains(strings.ToLower(p.Title), text) &&
			!strings.Contains(strings.ToLower(p.Description), text) &&
			!strings.Contains(strings.ToLower(p.Category), text) {
			return false
		}
	}

	if len(query.Categories) > 0 {
		found := false
		for _, c := range query.Categories {
			if strings.EqualFold(c, p.Category) {
				found = true

				break
			}
		}
		if !found {
			return false
		}
	}

	if query.MinPrice != nil && p.Price.LessThan(*query.MinPrice) {
		return false
	}
	if query.MaxPrice != nil && p.Price.GreaterThan(*query.MaxPrice) {
		return false
	}
	if query.MinRating > 0 && p.Rating.Rate < query.MinRating {
		return false
	}

	return true
}

// sortProducts orders the results in place. Relevance keeps the catalog order;
// newest approximates recency by descending catalog ID.
func sortProducts(products []entity.Product, order string) {
	switch order {
	case usecase.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case usecase.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case usecase.SortRatingDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating.Rate > products[j].Rating.Rate
		})
	case usecase.SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID > products[j].ID
		})
	}
}
