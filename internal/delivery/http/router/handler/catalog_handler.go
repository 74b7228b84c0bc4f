// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for catalog-related handlers.
type CatalogHandler struct {
	uc       usecase.CatalogUsecase
	recentUC usecase.RecentlyViewedUsecase
	logger   *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, recentUC usecase.RecentlyViewedUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:       uc,
		recentUC: recentUC,
		logger:   logger,
	}
}

// ListProducts handles the full catalog request.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// ListCategories handles the category list request.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// ListProductsByCategory handles the per-category catalog request.
// Category names carry spaces and apostrophes, so the path value may arrive escaped.
func (h *CatalogHandler) ListProductsByCategory(c echo.Context) error {
	category := c.Param("category")
	if unescaped, err := url.PathUnescape(category); err == nil {
		category = unescaped
	}

	products, err := h.uc.ListProductsByCategory(c.Request().Context(), category)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// GetProduct handles the single product request. A successful view is recorded
// on the browsing trail.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Product ID must be an integer")
	}

	ctx := c.Request().Context()
	product, err := h.uc.GetProduct(ctx, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.recentUC.Record(ctx, *product); err != nil {
		h.logger.WarnContext(ctx, "failed to record product view",
			slog.Int("product_id", product.ID),
			slog.Any("error", err))
	}

	return response.Success(c, http.StatusOK, product, "")
}

// SearchProducts handles the catalog search request.
func (h *CatalogHandler) SearchProducts(c echo.Context) error {
	var query usecase.SearchQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search query")
	}

	products, err := h.uc.Search(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
