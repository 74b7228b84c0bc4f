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

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// UpdateQuantityRequest carries the target quantity for a cart line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartLineStatus reports a product's presence and quantity in the cart.
type CartLineStatus struct {
	InCart   bool `json:"inCart"`
	Quantity int  `json:"quantity"`
}

// GetCart returns the current cart state.
func (h *CartHandler) GetCart(c echo.Context) error {
	view, err := h.uc.GetCart(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// AddItem adds one unit of the posted product to the cart.
// The client already holds the product, so it ships the full payload.
func (h *CartHandler) AddItem(c echo.Context) error {
	var product entity.Product
	if err := c.Bind(&product); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product payload")
	}

	view, err := h.uc.AddItem(c.Request().Context(), product)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Item added to cart")
}

// IncrementQuantity raises a line's quantity by one.
func (h *CartHandler) IncrementQuantity(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Product ID must be an integer")
	}

	view, err := h.uc.IncrementQuantity(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// DecrementQuantity lowers a line's quantity by one.
func (h *CartHandler) DecrementQuantity(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Product ID must be an integer")
	}

	view, err := h.uc.DecrementQuantity(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// UpdateQuantity sets a line's quantity directly.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Product ID must be an integer")
	}

	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity payload")
	}

	view, err := h.uc.UpdateQuantity(c.Request().Context(), productID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// RemoveItem removes a line regardless of quantity.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Product ID must be an integer")
	}

	view, err := h.uc.RemoveItem(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Item removed from cart")
}

// GetLineStatus reports whether a product is in the cart and at what quantity.
func (h *CartHandler) GetLineStatus(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Product ID must be an integer")
	}

	ctx := c.Request().Context()
	quantity, err := h.uc.QuantityFor(ctx, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, CartLineStatus{
		InCart:   quantity > 0,
		Quantity: quantity,
	}, "")
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	view, err := h.uc.ClearCart(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Cart cleared")
}
