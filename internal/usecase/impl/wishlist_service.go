package impl

import (
	"context"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type wishlistService struct {
	mu sync.Mutex

	wishlistRepo repository.WishlistRepository
}

// WishlistServiceParams holds dependencies for WishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	WishlistRepo repository.WishlistRepository
}

// NewWishlistService creates a new wishlist service instance
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: params.WishlistRepo,
	}
}

// List returns the wishlist in display order.
func (s *wishlistService) List(ctx context.Context) ([]entity.Product, error) {
	products, err := s.wishlistRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load wishlist")
	}

	return products, nil
}

// Add inserts the product at the front. Duplicates are ignored.
func (s *wishlistService) Add(ctx context.Context, product entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.wishlistRepo.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load wishlist")
	}

	for _, p := range products {
		if p.ID == product.ID {
			return nil
		}
	}

	products = append([]entity.Product{product}, products...)
	if err := s.wishlistRepo.Save(ctx, products); err != nil {
		return errors.Wrap(err, "failed to save wishlist")
	}

	return nil
}

// Remove deletes the product from the list.
func (s *wishlistService) Remove(ctx context.Context, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.wishlistRepo.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load wishlist")
	}

	for i, p := range products {
		if p.ID != productID {
			continue
		}

		products = append(products[:i], products[i+1:]...)
		if err := s.wishlistRepo.Save(ctx, products); err != nil {
			return errors.Wrap(err, "failed to save wishlist")
		}

		return nil
	}

	return nil
}

// Toggle adds the product if absent and removes it if present.
func (s *wishlistService) Toggle(ctx context.Context, product entity.Product) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.wishlistRepo.Load(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to load wishlist")
	}

	for i, p := range products {
		if p.ID != product.ID {
			continue
		}

		products = append(products[:i], products[i+1:]...)
		if err := s.wishlistRepo.Save(ctx, products); err != nil {
			return false, errors.Wrap(err, "failed to save wishlist")
		}

		return false, nil
	}

	products = append([]entity.Product{product}, products...)
	if err := s.wishlistRepo.Save(ctx, products); err != nil {
		return false, errors.Wrap(err, "failed to save wishlist")
	}

	return true, nil
}

// Clear empties the list.
func (s *wishlistService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.wishlistRepo.Save(ctx, []entity.Product{}); err != nil {
		return errors.Wrap(err, "failed to save wishlist")
	}

	return nil
}

// Contains reports whether the product is on the list.
func (s *wishlistService) Contains(ctx context.Context, productID int) (bool, error) {
	products, err := s.wishlistRepo.Load(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to load wishlist")
	}

	for _, p := range products {
		if p.ID == productID {
			return true, nil
		}
	}

	return false, nil
}
