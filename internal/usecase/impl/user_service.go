package impl

import (
	"context"
	"strings"
	"time"
	"unicode"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type userService struct {
	authGateway    service.AuthGateway
	sessionRepo    repository.SessionRepository
	accountRepo    repository.AccountRepository
	passwordHasher service.PasswordHasher
	tokenService   service.TokenService
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	AuthGateway    service.AuthGateway
	SessionRepo    repository.SessionRepository
	AccountRepo    repository.AccountRepository
	PasswordHasher service.PasswordHasher
	TokenService   service.TokenService
}

// NewUserService creates a new user service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		authGateway:    params.AuthGateway,
		sessionRepo:    params.SessionRepo,
		accountRepo:    params.AccountRepo,
		passwordHasher: params.PasswordHasher,
		tokenService:   params.TokenService,
	}
}

// SignIn validates credentials and persists the resulting session.
// Accounts created on this device are checked locally; anything else goes to
// the remote store.
func (s *userService) SignIn(ctx context.Context, input usecase.SignInInput) (*entity.AuthState, error) {
	account, err := s.accountRepo.FindByEmail(ctx, input.Username)
	if err != nil && !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if account != nil {
		return s.signInLocal(ctx, account, input.Password)
	}

	return s.signInRemote(ctx, input)
}

// signInLocal verifies the password against the stored hash and issues a
// fresh session token.
func (s *userService) signInLocal(ctx context.Context, account *entity.LocalAccount, password string) (*entity.AuthState, error) {
	if !s.passwordHasher.Check(password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := s.tokenService.GenerateToken(account.User.ID, account.User.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	return s.persistSession(ctx, account.User, token)
}

// signInRemote exchanges the credentials with the store API. The store returns
// only an opaque token, so the profile is derived from the username.
func (s *userService) signInRemote(ctx context.Context, input usecase.SignInInput) (*entity.AuthState, error) {
	token, err := s.authGateway.Login(ctx, input.Username, input.Password)
	if err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	user := entity.User{
		ID:        uuid.New(),
		Email:     input.Username,
		FirstName: deriveFirstName(input.Username),
		CreatedAt: time.Now(),
	}

	return s.persistSession(ctx, user, token)
}

// SignUp creates a local account and signs it in immediately.
func (s *userService) SignUp(ctx context.Context, input usecase.SignUpInput) (*entity.AuthState, error) {
	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed
	}

	user := entity.User{
		ID:        uuid.New(),
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		CreatedAt: time.Now(),
	}

	if err := s.accountRepo.Save(ctx, &entity.LocalAccount{User: user, PasswordHash: hash}); err != nil {
		return nil, errors.Wrap(err, "failed to save account")
	}

	token, err := s.tokenService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	return s.persistSession(ctx, user, token)
}

// SignOut clears the persisted session. Everything else stored on the device,
// including the onboarding flag, survives.
func (s *userService) SignOut(ctx context.Context) error {
	if err := s.sessionRepo.ClearSession(ctx); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}

	return nil
}

// CurrentState restores the authentication state from the persisted session.
func (s *userService) CurrentState(ctx context.Context) (*entity.AuthState, error) {
	session, err := s.sessionRepo.LoadSession(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return &entity.AuthState{Status: entity.AuthStatusUnauthenticated}, nil
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	user := session.User

	return &entity.AuthState{Status: entity.AuthStatusAuthenticated, User: &user}, nil
}

// CompleteOnboarding marks the welcome flow as done.
func (s *userService) CompleteOnboarding(ctx context.Context) error {
	if err := s.sessionRepo.SaveOnboarding(ctx, true); err != nil {
		return errors.Wrap(err, "failed to save onboarding flag")
	}

	return nil
}

// HasCompletedOnboarding reports whether the welcome flow was completed.
func (s *userService) HasCompletedOnboarding(ctx context.Context) (bool, error) {
	completed, err := s.sessionRepo.LoadOnboarding(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to load onboarding flag")
	}

	return completed, nil
}

// persistSession stores the session and returns the authenticated state.
func (s *userService) persistSession(ctx context.Context, user entity.User, token string) (*entity.AuthState, error) {
	session := &entity.Session{User: user, Token: token}
	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to save session")
	}

	return &entity.AuthState{Status: entity.AuthStatusAuthenticated, User: &user}, nil
}

// deriveFirstName builds a display name from the part of the username before
// the "@", capitalized.
func deriveFirstName(username string) string {
	local, _, _ := strings.Cut(username, "@")
	if local == "" {
		return ""
	}

	runes := []rune(local)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}
