package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mocks "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCatalog() []entity.Product {
	return []entity.Product{
		{
			ID:          1,
			Title:       "Fjallraven Backpack",
			Price:       decimal.RequireFromString("109.95"),
			Description: "Fits 15 inch laptops",
			Category:    "men's clothing",
			Rating:      entity.Rating{Rate: 3.9, Count: 120},
		},
		{
			ID:          2,
			Title:       "Mens Casual T-Shirt",
			Price:       decimal.RequireFromString("22.30"),
			Description: "Slim fit",
			Category:    "men's clothing",
			Rating:      entity.Rating{Rate: 4.1, Count: 259},
		},
		{
			ID:          3,
			Title:       "Solid Gold Petite Micropave",
			Price:       decimal.RequireFromString("168.00"),
			Description: "Satisfaction guaranteed",
			Category:    "jewelery",
			Rating:      entity.Rating{Rate: 4.6, Count: 400},
		},
		{
			ID:          4,
			Title:       "SanDisk SSD PLUS 1TB",
			Price:       decimal.RequireFromString("109.00"),
			Description: "Easy upgrade for faster boot up",
			Category:    "electronics",
			Rating:      entity.Rating{Rate: 2.9, Count: 470},
		},
	}
}

func newTestCatalogService(t *testing.T) (usecase.CatalogUsecase, *mocks.MockCatalogGateway) {
	t.Helper()

	gateway := mocks.NewMockCatalogGateway(t)
	svc := NewCatalogService(CatalogServiceParams{CatalogGateway: gateway})

	return svc, gateway
}

func TestCatalogService_GetProduct(t *testing.T) {
	t.Parallel()

	svc, gateway := newTestCatalogService(t)
	gateway.EXPECT().FetchProducts(mock.Anything).Return(testCatalog(), nil)

	product, err := svc.GetProduct(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Solid Gold Petite Micropave", product.Title)

	_, err = svc.GetProduct(context.Background(), 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_ListProducts_GatewayError(t *testing.T) {
	t.Parallel()

	svc, gateway := newTestCatalogService(t)
	gateway.EXPECT().FetchProducts(mock.Anything).Return(nil, domainerrors.ErrStoreUnavailable)

	products, err := svc.ListProducts(context.Background())
	require.Error(t, err)
	assert.Nil(t, products)
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}

func TestCatalogService_Search_Text(t *testing.T) {
	t.Parallel()

	svc, gateway := newTestCatalogService(t)
	gateway.EXPECT().FetchProducts(mock.Anything).Return(testCatalog(), nil)

	// The term matches titles, descriptions and categories, case-insensitively.
	results, err := svc.Search(context.Background(), usecase.SearchQuery{Text: "GOLD"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 3, results[0].ID)

	results, err = svc.Search(context.Background(), usecase.SearchQuery{Text: "laptops"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].ID)
}

func TestCatalogService_Search_Filters(t *testing.T) {
	t.Parallel()

	svc, gateway := newTestCatalogService(t)
	gateway.EXPECT().FetchProducts(mock.Anything).Return(testCatalog(), nil)

	minPrice := decimal.RequireFromString("100")
	maxPrice := decimal.RequireFromString("120")

	results, err := svc.Search(context.Background(), usecase.SearchQuery{
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].ID)
	assert.Equal(t, 4, results[1].ID)

	results, err = svc.Search(context.Background(), usecase.SearchQuery{
		Categories: []string{"Jewelery", "electronics"},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	results, err = svc.Search(context.Background(), usecase.SearchQuery{MinRating: 4.0})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 2, results[0].ID)
	assert.Equal(t, 3, results[1].ID)
}

func TestCatalogService_Search_Sorts(t *testing.T) {
	t.Parallel()

	svc, gateway := newTestCatalogService(t)
	gateway.EXPECT().FetchProducts(mock.Anything).Return(testCatalog(), nil)

	ids := func(products []entity.Product) []int {
		out := make([]int, 0, len(products))
		for _, p := range products {
			out = append(out, p.ID)
		}

		return out
	}

	results, err := svc.Search(context.Background(), usecase.SearchQuery{Sort: usecase.SortPriceAsc})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 1, 3}, ids(results))

	results, err = svc.Search(context.Background(), usecase.SearchQuery{Sort: usecase.SortPriceDesc})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 4, 2}, ids(results))

	results, err = svc.Search(context.Background(), usecase.SearchQuery{Sort: usecase.SortRatingDesc})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1, 4}, ids(results))

	results, err = svc.Search(context.Background(), usecase.SearchQuery{Sort: usecase.SortNewest})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2, 1}, ids(results))

	// Relevance keeps the catalog order.
	results, err = svc.Search(context.Background(), usecase.SearchQuery{Sort: usecase.SortRelevance})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, ids(results))
}
