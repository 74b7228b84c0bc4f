// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler        *handler.CatalogHandler
	CartHandler           *handler.CartHandler
	OrderHandler          *handler.OrderHandler
	WishlistHandler       *handler.WishlistHandler
	RecentlyViewedHandler *handler.RecentlyViewedHandler
	UserHandler           *handler.UserHandler
	RequestIDMiddleware   *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler        *handler.CatalogHandler
	cartHandler           *handler.CartHandler
	orderHandler          *handler.OrderHandler
	wishlistHandler       *handler.WishlistHandler
	recentlyViewedHandler *handler.RecentlyViewedHandler
	userHandler           *handler.UserHandler
	requestIDMiddleware   *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:        params.CatalogHandler,
		cartHandler:           params.CartHandler,
		orderHandler:          params.OrderHandler,
		wishlistHandler:       params.WishlistHandler,
		recentlyViewedHandler: params.RecentlyViewedHandler,
		userHandler:           params.UserHandler,
		requestIDMiddleware:   params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Catalog routes
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.catalogHandler.ListProducts)
		productGroup.GET("/categories", r.catalogHandler.ListCategories)
		productGroup.GET("/category/:category", r.catalogHandler.ListProductsByCategory)
		productGroup.GET("/:id", r.catalogHandler.GetProduct)
		productGroup.POST("/search", r.catalogHandler.SearchProducts)
	}

	// Cart routes
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.GET("/items/:id", r.cartHandler.GetLineStatus)
		cartGroup.PUT("/items/:id", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
		cartGroup.POST("/items/:id/increment", r.cartHandler.IncrementQuantity)
		cartGroup.POST("/items/:id/decrement", r.cartHandler.DecrementQuantity)
	}

	// Order routes
	orderGroup := e.Group("/orders")
	{
		orderGroup.POST("", r.orderHandler.PlaceOrder)
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/recent", r.orderHandler.ListRecentOrders)
		orderGroup.GET("/active", r.orderHandler.ListActiveOrders)
		orderGroup.GET("/completed", r.orderHandler.ListCompletedOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.POST("/:id/cancel", r.orderHandler.CancelOrder)
		orderGroup.GET("/:id/qr", r.orderHandler.GetTrackingQR)
	}

	// Wishlist routes
	wishlistGroup := e.Group("/wishlist")
	{
		wishlistGroup.GET("", r.wishlistHandler.List)
		wishlistGroup.POST("", r.wishlistHandler.Add)
		wishlistGroup.DELETE("", r.wishlistHandler.Clear)
		wishlistGroup.POST("/toggle", r.wishlistHandler.Toggle)
		wishlistGroup.GET("/:id", r.wishlistHandler.Contains)
		wishlistGroup.DELETE("/:id", r.wishlistHandler.Remove)
	}

	// Recently viewed routes
	recentGroup := e.Group("/recently-viewed")
	{
		recentGroup.GET("", r.recentlyViewedHandler.List)
		recentGroup.POST("", r.recentlyViewedHandler.Record)
		recentGroup.DELETE("", r.recentlyViewedHandler.Clear)
	}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.userHandler.SignIn)
		authGroup.POST("/register", r.userHandler.SignUp)
		authGroup.POST("/logout", r.userHandler.SignOut)
		authGroup.GET("/session", r.userHandler.GetSession)
	}

	// Onboarding routes
	onboardingGroup := e.Group("/onboarding")
	{
		onboardingGroup.GET("", r.userHandler.GetOnboarding)
		onboardingGroup.POST("/complete", r.userHandler.CompleteOnboarding)
	}
}
