package persistence

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

const (
	wishlistKey       = "wishlist"
	recentlyViewedKey = "recently_viewed"
)

// productListRepository stores an ordered product list under a single key.
// The wishlist and the browsing trail share this shape.
type productListRepository struct {
	store repository.KeyValueStore
	key   string
}

// NewWishlistRepository creates a key-value backed wishlist repository.
func NewWishlistRepository(store repository.KeyValueStore) repository.WishlistRepository {
	return &productListRepository{store: store, key: wishlistKey}
}

// NewRecentlyViewedRepository creates a key-value backed browsing trail repository.
func NewRecentlyViewedRepository(store repository.KeyValueStore) repository.RecentlyViewedRepository {
	return &productListRepository{store: store, key: recentlyViewedKey}
}

// Load returns the stored list in display order.
func (r *productListRepository) Load(ctx context.Context) ([]entity.Product, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return []entity.Product{}, nil
		}

		return nil, errors.Wrapf(err, "failed to get %s", r.key)
	}

	var products []entity.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", r.key)
	}

	return products, nil
}

// Save replaces the stored list with the given products.
func (r *productListRepository) Save(ctx context.Context, products []entity.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", r.key)
	}

	if err := r.store.Set(ctx, r.key, raw); err != nil {
		return errors.Wrapf(err, "failed to set %s", r.key)
	}

	return nil
}
