package impl

import (
	"context"
	"sync"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultRecentlyViewedMaxItems = 20

type recentlyViewedService struct {
	mu sync.Mutex

	recentRepo repository.RecentlyViewedRepository
	maxItems   int
}

// RecentlyViewedServiceParams holds dependencies for RecentlyViewedService, injected by Fx.
type RecentlyViewedServiceParams struct {
	fx.In

	RecentRepo repository.RecentlyViewedRepository
	Config     *config.Config
}

// NewRecentlyViewedService creates a new recently viewed service instance
func NewRecentlyViewedService(params RecentlyViewedServiceParams) usecase.RecentlyViewedUsecase {
	maxItems := defaultRecentlyViewedMaxItems
	if params.Config != nil && params.Config.RecentlyViewed != nil && params.Config.RecentlyViewed.MaxItems > 0 {
		maxItems = params.Config.RecentlyViewed.MaxItems
	}

	return &recentlyViewedService{
		recentRepo: params.RecentRepo,
		maxItems:   maxItems,
	}
}

// List returns the trail in display order.
func (s *recentlyViewedService) List(ctx context.Context) ([]entity.Product, error) {
	products, err := s.recentRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recently viewed")
	}

	return products, nil
}

// Record moves the product to the front, inserting it if absent.
// The oldest entry drops off once the trail exceeds its cap.
func (s *recentlyViewedService) Record(ctx context.Context, product entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.recentRepo.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load recently viewed")
	}

	for i, p := range products {
		if p.ID == product.ID {
			products = append(products[:i], products[i+1:]...)

			break
		}
	}

	products = append([]entity.Product{product}, products...)
	if len(products) > s.maxItems {
		products = products[:s.maxItems]
	}

	if err := s.recentRepo.Save(ctx, products); err != nil {
		return errors.Wrap(err, "failed to save recently viewed")
	}

	return nil
}

// Clear empties the trail.
func (s *recentlyViewedService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.recentRepo.Save(ctx, []entity.Product{}); err != nil {
		return errors.Wrap(err, "failed to save recently viewed")
	}

	return nil
}
