package impl

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultEstimatedDeliveryDays = 5
	recentOrdersLimit            = 5
)

type orderService struct {
	mu sync.Mutex

	cart           usecase.CartUsecase
	orderRepo      repository.OrderHistoryRepository
	eventPublisher service.EventPublisher
	qrcodeService  service.QRCodeService
	config         *config.Config
	logger         *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	Cart           usecase.CartUsecase
	OrderRepo      repository.OrderHistoryRepository
	EventPublisher service.EventPublisher
	QRCodeService  service.QRCodeService
	Config         *config.Config
	Logger         *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		cart:           params.Cart,
		orderRepo:      params.OrderRepo,
		eventPublisher: params.EventPublisher,
		qrcodeService:  params.QRCodeService,
		config:         params.Config,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// PlaceOrder checks out the current cart into a new confirmed order and empties the cart.
func (s *orderService) PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) (*entity.Order, error) {
	lines, summary, err := s.cart.TakeSnapshot(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to snapshot cart")
	}
	if len(lines) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	now := time.Now()
	estimated := now.AddDate(0, 0, s.estimatedDeliveryDays())

	orderLines := make([]entity.OrderLine, 0, len(lines))
	for _, line := range lines {
		orderLines = append(orderLines, entity.OrderLine{
			ID:              uuid.New(),
			Product:         line.Product,
			Quantity:        line.Quantity,
			PriceAtPurchase: line.Product.Price,
		})
	}

	order := entity.Order{
		ID:                uuid.New(),
		OrderNumber:       newOrderNumber(),
		Lines:             orderLines,
		Subtotal:          summary.Subtotal,
		ShippingCost:      summary.ShippingCost,
		Total:             summary.Total,
		Status:            entity.OrderStatusConfirmed,
		CreatedAt:         now,
		EstimatedDelivery: &estimated,
		ShippingAddress:   input.ShippingAddress,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.orderRepo.Load(ctx)
	if err != nil {
		s.restoreCart(ctx, lines)

		return nil, errors.Wrap(err, "failed to load order history")
	}

	history = append([]entity.Order{order}, history...)
	if err := s.orderRepo.Save(ctx, history); err != nil {
		s.restoreCart(ctx, lines)

		return nil, errors.Wrap(err, "failed to save order history")
	}

	s.publishEvent(ctx, service.OrderEventPlaced, &order)

	return &order, nil
}

// ListOrders returns the order history, newest first.
func (s *orderService) ListOrders(ctx context.Context) ([]entity.Order, error) {
	orders, err := s.orderRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order history")
	}

	return orders, nil
}

// ListRecentOrders returns the newest orders, capped at five.
func (s *orderService) ListRecentOrders(ctx context.Context) ([]entity.Order, error) {
	orders, err := s.orderRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order history")
	}

	if len(orders) > recentOrdersLimit {
		orders = orders[:recentOrdersLimit]
	}

	return orders, nil
}

// ListActiveOrders returns the orders still in flight.
func (s *orderService) ListActiveOrders(ctx context.Context) ([]entity.Order, error) {
	orders, err := s.orderRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order history")
	}

	active := make([]entity.Order, 0, len(orders))
	for _, order := range orders {
		if !order.Status.IsTerminal() {
			active = append(active, order)
		}
	}

	return active, nil
}

// ListCompletedOrders returns the delivered orders.
func (s *orderService) ListCompletedOrders(ctx context.Context) ([]entity.Order, error) {
	orders, err := s.orderRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order history")
	}

	completed := make([]entity.Order, 0, len(orders))
	for _, order := range orders {
		if order.Status == entity.OrderStatusDelivered {
			completed = append(completed, order)
		}
	}

	return completed, nil
}

// GetOrder returns a single order by ID.
func (s *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	orders, err := s.orderRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order history")
	}

	for i := range orders {
		if orders[i].ID == orderID {
			return &orders[i], nil
		}
	}

	return nil, domainerrors.ErrOrderNotFound
}

// CancelOrder transitions an order to the cancelled status. The order stays in
// the history so the cancellation remains visible.
func (s *orderService) CancelOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.orderRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order history")
	}

	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}

		if orders[i].Status.IsTerminal() {
			return nil, domainerrors.ErrOrderNotCancellable
		}

		orders[i].Status = entity.OrderStatusCancelled
		if err := s.orderRepo.Save(ctx, orders); err != nil {
			return nil, errors.Wrap(err, "failed to save order history")
		}

		s.publishEvent(ctx, service.OrderEventCancelled, &orders[i])

		return &orders[i], nil
	}

	return nil, domainerrors.ErrOrderNotFound
}

// GenerateTrackingQR generates a QR code encoding the order's tracking reference
func (s *orderService) GenerateTrackingQR(ctx context.Context, orderID uuid.UUID) ([]byte, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	qrCode, err := s.qrcodeService.GenerateTrackingQR(order.ID, order.OrderNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tracking QR")
	}

	return qrCode, nil
}

// restoreCart puts the snapshot back when checkout fails after the cart was
// emptied, so a persistence error never costs the customer their cart.
func (s *orderService) restoreCart(ctx context.Context, lines []entity.CartLine) {
	if err := s.cart.RestoreSnapshot(ctx, lines); err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to restore cart after checkout failure",
			slog.Any("error", err))
	}
}

// publishEvent emits an order lifecycle event. Publishing is best effort; a
// broker failure must not fail the order operation itself.
func (s *orderService) publishEvent(ctx context.Context, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		Type:        eventType,
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		Total:       order.Total.String(),
		ItemCount:   order.ItemCount(),
		OccurredAt:  time.Now(),
	}

	if err := s.eventPublisher.PublishOrderEvent(ctx, event); err != nil {
		s.log(ctx).WarnContext(ctx, "failed to publish order event",
			slog.String("type", eventType),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err))
	}
}

func (s *orderService) estimatedDeliveryDays() int {
	if s.config != nil && s.config.Pricing != nil && s.config.Pricing.EstimatedDeliveryDays > 0 {
		return s.config.Pricing.EstimatedDeliveryDays
	}

	return defaultEstimatedDeliveryDays
}

// newOrderNumber builds a human-friendly reference like "SF-482913".
func newOrderNumber() string {
	return "SF-" + strconv.Itoa(rand.IntN(900000)+100000)
}
