package persistence

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/persistence/kv"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductListRepositories_UseSeparateKeys(t *testing.T) {
	t.Parallel()

	store := kv.NewMemoryStore()
	wishlist := NewWishlistRepository(store)
	recent := NewRecentlyViewedRepository(store)
	ctx := context.Background()

	products, err := wishlist.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	backpack := entity.Product{ID: 1, Title: "Backpack", Price: decimal.RequireFromString("109.95")}
	shirt := entity.Product{ID: 2, Title: "T-Shirt", Price: decimal.RequireFromString("22.30")}

	require.NoError(t, wishlist.Save(ctx, []entity.Product{backpack}))
	require.NoError(t, recent.Save(ctx, []entity.Product{shirt, backpack}))

	// The two lists share a store but never bleed into each other.
	products, err = wishlist.Load(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 1, products[0].ID)

	products, err = recent.Load(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, 2, products[0].ID)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("22.30")))
}
