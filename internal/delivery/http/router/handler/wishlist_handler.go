package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WishlistHandler holds dependencies for wishlist-related handlers.
type WishlistHandler struct {
	uc usecase.WishlistUsecase
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(uc usecase.WishlistUsecase) *WishlistHandler {
	return &WishlistHandler{uc: uc}
}

// ToggleResult reports the wishlist membership after a toggle.
type ToggleResult struct {
	InWishlist bool `json:"inWishlist"`
}

// ContainsResult reports whether a product is on the wishlist.
type ContainsResult struct {
	Contains bool `json:"contains"`
}

// List returns the wishlist in display order.
func (h *WishlistHandler) List(c echo.Context) error {
	products, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// Add inserts the posted product at the front of the wishlist.
func (h *WishlistHandler) Add(c echo.Context) error {
	var product entity.Product
	if err := c.Bind(&product); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product payload")
	}

	if err := h.uc.Add(c.Request().Context(), product); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Added to wishlist")
}

// Toggle flips the posted product's wishlist membership.
func (h *WishlistHandler) Toggle(c echo.Context) error {
	var product entity.Product
	if err := c.Bind(&product); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product payload")
	}

	added, err := h.uc.Toggle(c.Request().Context(), product)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ToggleResult{InWishlist: added}, "")
}

// Remove deletes a product from the wishlist.
func (h *WishlistHandler) Remove(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Product ID must be an integer")
	}

	if err := h.uc.Remove(c.Request().Context(), productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Removed from wishlist")
}

// Clear empties the wishlist.
func (h *WishlistHandler) Clear(c echo.Context) error {
	if err := h.uc.Clear(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Wishlist cleared")
}

// Contains reports whether a product is on the wishlist.
func (h *WishlistHandler) Contains(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Product ID must be an integer")
	}

	contains, err := h.uc.Contains(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ContainsResult{Contains: contains}, "")
}
