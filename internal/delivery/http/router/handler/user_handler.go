package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account and session handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// OnboardingStatus reports whether the welcome flow was completed.
type OnboardingStatus struct {
	Completed bool `json:"completed"`
}

// SignIn handles the sign-in request.
func (h *UserHandler) SignIn(c echo.Context) error {
	var input usecase.SignInInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	state, err := h.uc.SignIn(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state, "Signed in")
}

// SignUp handles the account creation request.
func (h *UserHandler) SignUp(c echo.Context) error {
	var input usecase.SignUpInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-up input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	state, err := h.uc.SignUp(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, state, "Account created")
}

// SignOut handles the sign-out request.
func (h *UserHandler) SignOut(c echo.Context) error {
	if err := h.uc.SignOut(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Signed out")
}

// GetSession restores the authentication state from the persisted session.
func (h *UserHandler) GetSession(c echo.Context) error {
	state, err := h.uc.CurrentState(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state, "")
}

// CompleteOnboarding marks the welcome flow as done.
func (h *UserHandler) CompleteOnboarding(c echo.Context) error {
	if err := h.uc.CompleteOnboarding(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, OnboardingStatus{Completed: true}, "Onboarding completed")
}

// GetOnboarding reports whether the welcome flow was completed.
func (h *UserHandler) GetOnboarding(c echo.Context) error {
	completed, err := h.uc.HasCompletedOnboarding(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, OnboardingStatus{Completed: completed}, "")
}
