// Package impl provides the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"sync"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type cartService struct {
	mu    sync.Mutex
	lines []entity.CartLine
	rules entity.PricingRules
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	Config *config.Config
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		rules: pricingRulesFromConfig(params.Config),
	}
}

// pricingRulesFromConfig builds the pricing rules, falling back to the
// defaults when the config omits or misstates a value.
func pricingRulesFromConfig(cfg *config.Config) entity.PricingRules {
	rules := entity.DefaultPricingRules()
	if cfg == nil || cfg.Pricing == nil {
		return rules
	}

	if threshold, err := decimal.NewFromString(cfg.Pricing.FreeShippingThreshold); err == nil {
		rules.FreeShippingThreshold = threshold
	}
	if rate, err := decimal.NewFromString(cfg.Pricing.FlatShippingRate); err == nil {
		rules.FlatShippingRate = rate
	}

	return rules
}

// GetCart returns the current cart state.
func (s *cartService) GetCart(_ context.Context) (*usecase.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.view(), nil
}

// AddItem adds one unit of the product, merging into an existing line.
func (s *cartService) AddItem(_ context.Context, product entity.Product) (*usecase.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == product.ID {
			s.lines[i].Quantity++

			return s.view(), nil
		}
	}

	s.lines = append(s.lines, entity.CartLine{Product: product, Quantity: 1})

	return s.view(), nil
}

// IncrementQuantity raises an existing line's quantity by one.
func (s *cartService) IncrementQuantity(_ context.Context, productID int) (*usecase.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines[i].Quantity++

			break
		}
	}

	return s.view(), nil
}

// DecrementQuantity lowers an existing line's quantity by one.
// A quantity of one drops to zero and the line goes with it.
func (s *cartService) DecrementQuantity(_ context.Context, productID int) (*usecase.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID != productID {
			continue
		}

		if s.lines[i].Quantity <= 1 {
			s.removeAt(i)
		} else {
			s.lines[i].Quantity--
		}

		break
	}

	return s.view(), nil
}

// UpdateQuantity sets a line's quantity directly.
func (s *cartService) UpdateQuantity(_ context.Context, productID int, quantity int) (*usecase.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID != productID {
			continue
		}

		if quantity <= 0 {
			s.removeAt(i)
		} else {
			s.lines[i].Quantity = quantity
		}

		break
	}

	return s.view(), nil
}

// RemoveItem removes a line regardless of quantity.
func (s *cartService) RemoveItem(_ context.Context, productID int) (*usecase.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.removeAt(i)

			break
		}
	}

	return s.view(), nil
}

// Contains reports whether the product has a line in the cart.
func (s *cartService) Contains(_ context.Context, productID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			return true, nil
		}
	}

	return false, nil
}

// QuantityFor returns the quantity of the product's line, zero when absent.
func (s *cartService) QuantityFor(_ context.Context, productID int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			return s.lines[i].Quantity, nil
		}
	}

	return 0, nil
}

// ClearCart removes every line.
func (s *cartService) ClearCart(_ context.Context) (*usecase.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil

	return s.view(), nil
}

// TakeSnapshot atomically returns the current lines and empties the cart.
func (s *cartService) TakeSnapshot(_ context.Context) ([]entity.CartLine, entity.CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]entity.CartLine, len(s.lines))
	copy(lines, s.lines)
	summary := entity.SummarizeCart(lines, s.rules)
	s.lines = nil

	return lines, summary, nil
}

// RestoreSnapshot puts snapshot lines back, merging quantities with any
// lines added since the snapshot was taken. Restored lines keep their
// original position at the front of the cart.
func (s *cartService) RestoreSnapshot(_ context.Context, lines []entity.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	restored := make([]entity.CartLine, len(lines))
	copy(restored, lines)

	for _, line := range s.lines {
		if i := indexOfProduct(restored, line.Product.ID); i >= 0 {
			restored[i].Quantity += line.Quantity
		} else {
			restored = append(restored, line)
		}
	}

	s.lines = restored

	return nil
}

// indexOfProduct returns the index of the line holding productID, or -1.
func indexOfProduct(lines []entity.CartLine, productID int) int {
	for i := range lines {
		if lines[i].Product.ID == productID {
			return i
		}
	}

	return -1
}

// removeAt deletes the line at index i. Caller must hold the mutex.
func (s *cartService) removeAt(i int) {
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
}

// view builds a detached copy of the cart state. Caller must hold the mutex.
func (s *cartService) view() *usecase.CartView {
	lines := make([]entity.CartLine, len(s.lines))
	copy(lines, s.lines)

	return &usecase.CartView{
		Lines:   lines,
		Summary: entity.SummarizeCart(lines, s.rules),
	}
}
