package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecentlyViewedHandler holds dependencies for browsing trail handlers.
type RecentlyViewedHandler struct {
	uc usecase.RecentlyViewedUsecase
}

// NewRecentlyViewedHandler is the constructor for RecentlyViewedHandler, injected by Fx.
func NewRecentlyViewedHandler(uc usecase.RecentlyViewedUsecase) *RecentlyViewedHandler {
	return &RecentlyViewedHandler{uc: uc}
}

// List returns the trail in display order.
func (h *RecentlyViewedHandler) List(c echo.Context) error {
	products, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// Record moves the posted product to the front of the trail.
func (h *RecentlyViewedHandler) Record(c echo.Context) error {
	var product entity.Product
	if err := c.Bind(&product); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product payload")
	}

	if err := h.uc.Record(c.Request().Context(), product); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "")
}

// Clear empties the trail.
func (h *RecentlyViewedHandler) Clear(c echo.Context) error {
	if err := h.uc.Clear(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Recently viewed cleared")
}
