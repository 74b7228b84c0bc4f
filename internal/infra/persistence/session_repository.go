package persistence

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

const (
	sessionKey    = "session"
	onboardingKey = "onboarding_completed"
)

type sessionRepository struct {
	store repository.KeyValueStore
}

// NewSessionRepository creates a key-value backed session repository.
func NewSessionRepository(store repository.KeyValueStore) repository.SessionRepository {
	return &sessionRepository{store: store}
}

// LoadSession returns the persisted session.
func (r *sessionRepository) LoadSession(ctx context.Context) (*entity.Session, error) {
	raw, err := r.store.Get(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to get session")
	}

	var session entity.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, errors.Wrap(err, "failed to decode session")
	}

	return &session, nil
}

// SaveSession replaces the persisted session.
func (r *sessionRepository) SaveSession(ctx context.Context, session *entity.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	if err := r.store.Set(ctx, sessionKey, raw); err != nil {
		return errors.Wrap(err, "failed to set session")
	}

	return nil
}

// ClearSession removes the persisted session. Only the session key is touched;
// the onboarding flag and other stored data stay in place.
func (r *sessionRepository) ClearSession(ctx context.Context) error {
	if err := r.store.Delete(ctx, sessionKey); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// LoadOnboarding reports whether onboarding has been completed.
func (r *sessionRepository) LoadOnboarding(ctx context.Context) (bool, error) {
	raw, err := r.store.Get(ctx, onboardingKey)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to get onboarding flag")
	}

	var completed bool
	if err := json.Unmarshal(raw, &completed); err != nil {
		return false, errors.Wrap(err, "failed to decode onboarding flag")
	}

	return completed, nil
}

// SaveOnboarding stores the onboarding completion flag.
func (r *sessionRepository) SaveOnboarding(ctx context.Context, completed bool) error {
	raw, err := json.Marshal(completed)
	if err != nil {
		return errors.Wrap(err, "failed to encode onboarding flag")
	}

	if err := r.store.Set(ctx, onboardingKey, raw); err != nil {
		return errors.Wrap(err, "failed to set onboarding flag")
	}

	return nil
}
