package impl

import (
	"context"
	"testing"

	"storefront/internal/infra/persistence"
	"storefront/internal/infra/persistence/kv"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWishlistService() usecase.WishlistUsecase {
	return NewWishlistService(WishlistServiceParams{
		WishlistRepo: persistence.NewWishlistRepository(kv.NewMemoryStore()),
	})
}

func TestWishlistService_AddAndList(t *testing.T) {
	t.Parallel()

	svc := newTestWishlistService()
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, testProduct(1, "10.00")))
	require.NoError(t, svc.Add(ctx, testProduct(2, "20.00")))

	// Newest additions come first.
	products, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, 2, products[0].ID)
	assert.Equal(t, 1, products[1].ID)

	// Duplicates are ignored and keep the existing order.
	require.NoError(t, svc.Add(ctx, testProduct(1, "10.00")))
	products, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, 2, products[0].ID)
}

func TestWishlistService_Remove(t *testing.T) {
	t.Parallel()

	svc := newTestWishlistService()
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, testProduct(1, "10.00")))
	require.NoError(t, svc.Add(ctx, testProduct(2, "20.00")))

	require.NoError(t, svc.Remove(ctx, 1))

	products, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 2, products[0].ID)

	// Removing an absent product is a no-op.
	require.NoError(t, svc.Remove(ctx, 99))
}

func TestWishlistService_Clear(t *testing.T) {
	t.Parallel()

	svc := newTestWishlistService()
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, testProduct(1, "10.00")))
	require.NoError(t, svc.Add(ctx, testProduct(2, "20.00")))
	require.NoError(t, svc.Clear(ctx))

	products, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestWishlistService_Toggle(t *testing.T) {
	t.Parallel()

	svc := newTestWishlistService()
	ctx := context.Background()

	added, err := svc.Toggle(ctx, testProduct(1, "10.00"))
	require.NoError(t, err)
	assert.True(t, added)

	contains, err := svc.Contains(ctx, 1)
	require.NoError(t, err)
	assert.True(t, contains)

	added, err = svc.Toggle(ctx, testProduct(1, "10.00"))
	require.NoError(t, err)
	assert.False(t, added)

	contains, err = svc.Contains(ctx, 1)
	require.NoError(t, err)
	assert.False(t, contains)
}
