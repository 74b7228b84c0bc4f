package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence"
	"storefront/internal/infra/persistence/kv"
	mocks "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderTestEnv struct {
	cart      usecase.CartUsecase
	orders    usecase.OrderUsecase
	orderRepo repository.OrderHistoryRepository
	publisher *mocks.MockEventPublisher
	qr        *mocks.MockQRCodeService
}

func newOrderTestEnv(t *testing.T) *orderTestEnv {
	t.Helper()

	cart := newTestCartService()
	orderRepo := persistence.NewOrderHistoryRepository(kv.NewMemoryStore())
	publisher := mocks.NewMockEventPublisher(t)
	qr := mocks.NewMockQRCodeService(t)

	orders := NewOrderService(OrderServiceParams{
		Cart:           cart,
		OrderRepo:      orderRepo,
		EventPublisher: publisher,
		QRCodeService:  qr,
		Config:         &config.Config{},
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &orderTestEnv{
		cart:      cart,
		orders:    orders,
		orderRepo: orderRepo,
		publisher: publisher,
		qr:        qr,
	}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	t.Parallel()

	env := newOrderTestEnv(t)
	ctx := context.Background()

	_, err := env.cart.AddItem(ctx, testProduct(1, "30.00"))
	require.NoError(t, err)
	_, err = env.cart.AddItem(ctx, testProduct(2, "25.00"))
	require.NoError(t, err)

	env.publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(_ context.Context, event *service.OrderEvent) {
			assert.Equal(t, service.OrderEventPlaced, event.Type)
			assert.Equal(t, 2, event.ItemCount)
		}).
		Return(nil).
		Once()

	order, err := env.orders.PlaceOrder(ctx, usecase.PlaceOrderInput{ShippingAddress: "1 Main St"})
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, entity.OrderStatusConfirmed, order.Status)
	assert.Regexp(t, `^SF-\d{6}$`, order.OrderNumber)
	assert.Len(t, order.Lines, 2)
	assert.True(t, order.Subtotal.Equal(decimal.RequireFromString("55.00")))
	assert.True(t, order.ShippingCost.IsZero())
	assert.True(t, order.Total.Equal(decimal.RequireFromString("55.00")))
	assert.Equal(t, "1 Main St", order.ShippingAddress)
	require.NotNil(t, order.EstimatedDelivery)
	assert.True(t, order.EstimatedDelivery.After(order.CreatedAt))

	// Line prices are frozen at purchase time.
	for _, line := range order.Lines {
		assert.True(t, line.PriceAtPurchase.Equal(line.Product.Price))
	}

	// Checkout empties the cart.
	view, err := env.cart.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}

func TestOrderService_PlaceOrder_EmptyCart(t *testing.T) {
	t.Parallel()

	env := newOrderTestEnv(t)

	order, err := env.orders.PlaceOrder(context.Background(), usecase.PlaceOrderInput{})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

// flakyOrderHistoryRepository fails on demand so checkout error paths can be
// exercised against a broken store.
type flakyOrderHistoryRepository struct {
	loadErr error
	saveErr error
	orders  []entity.Order
}

func (r *flakyOrderHistoryRepository) Load(_ context.Context) ([]entity.Order, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}

	return r.orders, nil
}

func (r *flakyOrderHistoryRepository) Save(_ context.Context, orders []entity.Order) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.orders = orders

	return nil
}

func TestOrderService_PlaceOrder_PersistenceFailureKeepsCart(t *testing.T) {
	t.Parallel()

	newEnv := func(t *testing.T, repo repository.OrderHistoryRepository) (usecase.CartUsecase, usecase.OrderUsecase) {
		t.Helper()

		cart := newTestCartService()
		orders := NewOrderService(OrderServiceParams{
			Cart:           cart,
			OrderRepo:      repo,
			EventPublisher: mocks.NewMockEventPublisher(t),
			QRCodeService:  mocks.NewMockQRCodeService(t),
			Config:         &config.Config{},
			Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		})

		return cart, orders
	}

	fill := func(t *testing.T, cart usecase.CartUsecase) {
		t.Helper()

		ctx := context.Background()
		_, err := cart.AddItem(ctx, testProduct(1, "30.00"))
		require.NoError(t, err)
		_, err = cart.AddItem(ctx, testProduct(1, "30.00"))
		require.NoError(t, err)
		_, err = cart.AddItem(ctx, testProduct(2, "25.00"))
		require.NoError(t, err)
	}

	t.Run("load failure", func(t *testing.T) {
		t.Parallel()

		cart, orders := newEnv(t, &flakyOrderHistoryRepository{loadErr: errors.New("history unavailable")})
		ctx := context.Background()
		fill(t, cart)

		order, err := orders.PlaceOrder(ctx, usecase.PlaceOrderInput{})
		require.Error(t, err)
		assert.Nil(t, order)

		// The cart survives the failed checkout untouched.
		view, err := cart.GetCart(ctx)
		require.NoError(t, err)
		require.Len(t, view.Lines, 2)
		assert.Equal(t, 2, view.Lines[0].Quantity)
		assert.Equal(t, 1, view.Lines[1].Quantity)
	})

	t.Run("save failure", func(t *testing.T) {
		t.Parallel()

		repo := &flakyOrderHistoryRepository{saveErr: errors.New("history unavailable")}
		cart, orders := newEnv(t, repo)
		ctx := context.Background()
		fill(t, cart)

		order, err := orders.PlaceOrder(ctx, usecase.PlaceOrderInput{})
		require.Error(t, err)
		assert.Nil(t, order)
		assert.Empty(t, repo.orders)

		view, err := cart.GetCart(ctx)
		require.NoError(t, err)
		require.Len(t, view.Lines, 2)
		assert.Equal(t, 3, view.Summary.ItemCount)
	})
}

func TestOrderService_PlaceOrder_PublishFailureDoesNotFailOrder(t *testing.T) {
	t.Parallel()

	env := newOrderTestEnv(t)
	ctx := context.Background()

	_, err := env.cart.AddItem(ctx, testProduct(1, "10.00"))
	require.NoError(t, err)

	env.publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).
		Return(errors.New("broker unreachable")).
		Once()

	order, err := env.orders.PlaceOrder(ctx, usecase.PlaceOrderInput{})
	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_ListOrders_NewestFirst(t *testing.T) {
	t.Parallel()

	env := newOrderTestEnv(t)
	ctx := context.Background()

	env.publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil).
		Times(2)

	_, err := env.cart.AddItem(ctx, testProduct(1, "10.00"))
	require.NoError(t, err)
	first, err := env.orders.PlaceOrder(ctx, usecase.PlaceOrderInput{})
	require.NoError(t, err)

	_, err = env.cart.AddItem(ctx, testProduct(2, "20.00"))
	require.NoError(t, err)
	second, err := env.orders.PlaceOrder(ctx, usecase.PlaceOrderInput{})
	require.NoError(t, err)

	orders, err := env.orders.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestOrderService_OrderFilters(t *testing.T) {
	t.Parallel()

	env := newOrderTestEnv(t)
	ctx := context.Background()

	env.publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil).
		Times(7)

	for i := 1; i <= 7; i++ {
		_, err := env.cart.AddItem(ctx, testProduct(i, "10.00"))
		require.NoError(t, err)
		_, err = env.orders.PlaceOrder(ctx, usecase.PlaceOrderInput{})
		require.NoError(t, err)
	}

	recent, err := env.orders.ListRecentOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, recent, 5)

	// Mark one delivered and cancel another directly in the history.
	history, err := env.orderRepo.Load(ctx)
	require.NoError(t, err)
	history[0].Status = entity.OrderStatusDelivered
	history[1].Status = entity.OrderStatusCancelled
	require.NoError(t, env.orderRepo.Save(ctx, history))

	active, err := env.orders.ListActiveOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 5)

	completed, err := env.orders.ListCompletedOrders(ctx)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, history[0].ID, completed[0].ID)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	t.Parallel()

	env := newOrderTestEnv(t)

	order, err := env.orders.GetOrder(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_CancelOrder(t *testing.T) {
	t.Parallel()

	env := newOrderTestEnv(t)
	ctx := context.Background()

	env.publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil).
		Times(2)

	_, err := env.cart.AddItem(ctx, testProduct(1, "10.00"))
	require.NoError(t, err)
	placed, err := env.orders.PlaceOrder(ctx, usecase.PlaceOrderInput{})
	require.NoError(t, err)

	cancelled, err := env.orders.CancelOrder(ctx, placed.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)

	// The cancelled order stays in the history.
	orders, err := env.orders.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, entity.OrderStatusCancelled, orders[0].Status)

	// A terminal order cannot be cancelled again.
	_, err = env.orders.CancelOrder(ctx, placed.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotCancellable)
}

func TestOrderService_CancelOrder_NotFound(t *testing.T) {
	t.Parallel()

	env := newOrderTestEnv(t)

	_, err := env.orders.CancelOrder(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_GenerateTrackingQR(t *testing.T) {
	t.Parallel()

	env := newOrderTestEnv(t)
	ctx := context.Background()

	env.publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil).
		Once()

	_, err := env.cart.AddItem(ctx, testProduct(1, "10.00"))
	require.NoError(t, err)
	placed, err := env.orders.PlaceOrder(ctx, usecase.PlaceOrderInput{})
	require.NoError(t, err)

	env.qr.EXPECT().
		GenerateTrackingQR(placed.ID, placed.OrderNumber).
		Return([]byte("png-bytes"), nil).
		Once()

	png, err := env.orders.GenerateTrackingQR(ctx, placed.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)

	// Unknown orders never reach the QR generator.
	_, err = env.orders.GenerateTrackingQR(ctx, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
