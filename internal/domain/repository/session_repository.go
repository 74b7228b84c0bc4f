package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrSessionNotFound is returned when no session has been persisted.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists the signed-in identity and the onboarding flag.
// Clearing the session must leave the onboarding flag untouched so a returning
// user is not shown the welcome flow again.
type SessionRepository interface {
	// LoadSession returns the persisted session.
	// Returns ErrSessionNotFound when nobody is signed in.
	LoadSession(ctx context.Context) (*entity.Session, error)

	// SaveSession replaces the persisted session.
	SaveSession(ctx context.Context, session *entity.Session) error

	// ClearSession removes the persisted session. Clearing when no session
	// exists is not an error.
	ClearSession(ctx context.Context) error

	// LoadOnboarding reports whether onboarding has been completed.
	// A never-set flag reads as false.
	LoadOnboarding(ctx context.Context) (bool, error)

	// SaveOnboarding stores the onboarding completion flag.
	SaveOnboarding(ctx context.Context, completed bool) error
}
