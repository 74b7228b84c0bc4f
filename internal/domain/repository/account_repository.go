package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrAccountNotFound is returned when no local account exists for an email.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository persists accounts created on this device.
type AccountRepository interface {
	// FindByEmail retrieves a local account by its email address.
	// Returns ErrAccountNotFound when the email has never signed up here.
	FindByEmail(ctx context.Context, email string) (*entity.LocalAccount, error)

	// Save persists a local account, replacing any existing one for the email.
	Save(ctx context.Context, account *entity.LocalAccount) error
}
