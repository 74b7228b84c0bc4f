package persistence

import (
	"context"
	"encoding/json"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

const accountKeyPrefix = "account:"

type accountRepository struct {
	store repository.KeyValueStore
}

// NewAccountRepository creates a key-value backed local account repository.
func NewAccountRepository(store repository.KeyValueStore) repository.AccountRepository {
	return &accountRepository{store: store}
}

// FindByEmail retrieves a local account by its email address.
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.LocalAccount, error) {
	raw, err := r.store.Get(ctx, accountKey(email))
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to get account")
	}

	var account entity.LocalAccount
	if err := json.Unmarshal(raw, &account); err != nil {
		return nil, errors.Wrap(err, "failed to decode account")
	}

	return &account, nil
}

// Save persists a local account, replacing any existing one for the email.
func (r *accountRepository) Save(ctx context.Context, account *entity.LocalAccount) error {
	raw, err := json.Marshal(account)
	if err != nil {
		return errors.Wrap(err, "failed to encode account")
	}

	if err := r.store.Set(ctx, accountKey(account.User.Email), raw); err != nil {
		return errors.Wrap(err, "failed to set account")
	}

	return nil
}

// accountKey builds the storage key for an email. Emails are matched
// case-insensitively.
func accountKey(email string) string {
	return accountKeyPrefix + strings.ToLower(strings.TrimSpace(email))
}
