package impl

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/persistence"
	"storefront/internal/infra/persistence/kv"
	mocks "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type userTestEnv struct {
	users       usecase.UserUsecase
	authGateway *mocks.MockAuthGateway
}

func newUserTestEnv(t *testing.T) *userTestEnv {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
	}
	cfg.SecretKey.Session = "test-session-secret"

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	store := kv.NewMemoryStore()
	authGateway := mocks.NewMockAuthGateway(t)

	users := NewUserService(UserServiceParams{
		AuthGateway:    authGateway,
		SessionRepo:    persistence.NewSessionRepository(store),
		AccountRepo:    persistence.NewAccountRepository(store),
		PasswordHasher: auth.NewBcryptHasher(cfg),
		TokenService:   tokenService,
	})

	return &userTestEnv{users: users, authGateway: authGateway}
}

func TestUserService_SignInRemote(t *testing.T) {
	t.Parallel()

	env := newUserTestEnv(t)
	ctx := context.Background()

	env.authGateway.EXPECT().
		Login(mock.Anything, "johnd@example.com", "m38rmF$").
		Return("remote-token", nil).
		Once()

	state, err := env.users.SignIn(ctx, usecase.SignInInput{
		Username: "johnd@example.com",
		Password: "m38rmF$",
	})
	require.NoError(t, err)
	require.NotNil(t, state)

	assert.Equal(t, entity.AuthStatusAuthenticated, state.Status)
	require.NotNil(t, state.User)
	assert.Equal(t, "johnd@example.com", state.User.Email)
	// The store only returns a token, so the name comes from the email.
	assert.Equal(t, "Johnd", state.User.FirstName)

	restored, err := env.users.CurrentState(ctx)
	require.NoError(t, err)
	assert.True(t, restored.IsAuthenticated())
}

func TestUserService_SignInRemote_InvalidCredentials(t *testing.T) {
	t.Parallel()

	env := newUserTestEnv(t)

	env.authGateway.EXPECT().
		Login(mock.Anything, "johnd@example.com", "wrong").
		Return("", domainerrors.ErrStoreUnavailable).
		Once()

	state, err := env.users.SignIn(context.Background(), usecase.SignInInput{
		Username: "johnd@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Nil(t, state)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_SignUpThenSignInLocal(t *testing.T) {
	t.Parallel()

	env := newUserTestEnv(t)
	ctx := context.Background()

	state, err := env.users.SignUp(ctx, usecase.SignUpInput{
		Email:     "jane@example.com",
		Password:  "hunter22",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.NoError(t, err)
	require.NotNil(t, state.User)
	assert.Equal(t, entity.AuthStatusAuthenticated, state.Status)
	assert.Equal(t, "Jane", state.User.FirstName)

	require.NoError(t, env.users.SignOut(ctx))

	restored, err := env.users.CurrentState(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.AuthStatusUnauthenticated, restored.Status)

	// A locally registered account signs back in without touching the store.
	state, err = env.users.SignIn(ctx, usecase.SignInInput{
		Username: "jane@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.True(t, state.IsAuthenticated())
	assert.Equal(t, "Jane", state.User.FirstName)
}

func TestUserService_SignInLocal_WrongPassword(t *testing.T) {
	t.Parallel()

	env := newUserTestEnv(t)
	ctx := context.Background()

	_, err := env.users.SignUp(ctx, usecase.SignUpInput{
		Email:     "jane@example.com",
		Password:  "hunter22",
		FirstName: "Jane",
	})
	require.NoError(t, err)

	state, err := env.users.SignIn(ctx, usecase.SignInInput{
		Username: "jane@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Nil(t, state)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_OnboardingSurvivesSignOut(t *testing.T) {
	t.Parallel()

	env := newUserTestEnv(t)
	ctx := context.Background()

	completed, err := env.users.HasCompletedOnboarding(ctx)
	require.NoError(t, err)
	assert.False(t, completed)

	require.NoError(t, env.users.CompleteOnboarding(ctx))

	_, err = env.users.SignUp(ctx, usecase.SignUpInput{
		Email:     "jane@example.com",
		Password:  "hunter22",
		FirstName: "Jane",
	})
	require.NoError(t, err)
	require.NoError(t, env.users.SignOut(ctx))

	completed, err = env.users.HasCompletedOnboarding(ctx)
	require.NoError(t, err)
	assert.True(t, completed)
}

func TestDeriveFirstName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Johnd", deriveFirstName("johnd@example.com"))
	assert.Equal(t, "Jane", deriveFirstName("jane"))
	assert.Equal(t, "", deriveFirstName("@example.com"))
	assert.Equal(t, "", deriveFirstName(""))
}
