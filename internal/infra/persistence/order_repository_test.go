package persistence

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/persistence/kv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderHistoryRepository_RoundTrip(t *testing.T) {
	t.Parallel()

	repo := NewOrderHistoryRepository(kv.NewMemoryStore())
	ctx := context.Background()

	// A never-written history reads as empty.
	orders, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	order := entity.Order{
		ID:          uuid.New(),
		OrderNumber: "SF-482913",
		Lines: []entity.OrderLine{
			{
				ID:              uuid.New(),
				Product:         entity.Product{ID: 1, Title: "Backpack", Price: decimal.RequireFromString("109.95")},
				Quantity:        2,
				PriceAtPurchase: decimal.RequireFromString("109.95"),
			},
		},
		Subtotal:     decimal.RequireFromString("219.90"),
		ShippingCost: decimal.Zero,
		Total:        decimal.RequireFromString("219.90"),
		Status:       entity.OrderStatusConfirmed,
		CreatedAt:    time.Now().Truncate(time.Second),
	}
	require.NoError(t, repo.Save(ctx, []entity.Order{order}))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, order.ID, loaded[0].ID)
	assert.Equal(t, "SF-482913", loaded[0].OrderNumber)
	assert.Equal(t, entity.OrderStatusConfirmed, loaded[0].Status)
	require.Len(t, loaded[0].Lines, 1)
	assert.True(t, loaded[0].Lines[0].PriceAtPurchase.Equal(decimal.RequireFromString("109.95")))
	assert.True(t, loaded[0].Total.Equal(order.Total))
}
