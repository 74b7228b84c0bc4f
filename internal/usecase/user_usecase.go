package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SignInInput carries the credentials for the remote store sign-in.
type SignInInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignUpInput carries the details for a locally created account.
type SignUpInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"`
}

// UserUsecase defines the interface for account and session use cases
type UserUsecase interface {
	// SignIn validates credentials against the remote store and persists the
	// resulting session. The store returns no profile, so the local user is
	// derived from the username.
	SignIn(ctx context.Context, input SignInInput) (*entity.AuthState, error)

	// SignUp creates a local account and signs it in immediately.
	SignUp(ctx context.Context, input SignUpInput) (*entity.AuthState, error)

	// SignOut clears the persisted session. The onboarding flag and other
	// stored data survive sign-out.
	SignOut(ctx context.Context) error

	// CurrentState restores the authentication state from the persisted session.
	CurrentState(ctx context.Context) (*entity.AuthState, error)

	// CompleteOnboarding marks the welcome flow as done. The flag is one-way.
	CompleteOnboarding(ctx context.Context) error

	// HasCompletedOnboarding reports whether the welcome flow was completed.
	HasCompletedOnboarding(ctx context.Context) (bool, error)
}
