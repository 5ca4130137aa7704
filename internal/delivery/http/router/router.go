// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"catalog/internal/delivery/http/middleware"
	"catalog/internal/delivery/http/router/handler"
	"catalog/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler *handler.ProductHandler
	ReviewHandler  *handler.ReviewHandler
	UserHandler    *handler.UserHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler *handler.ProductHandler
	reviewHandler  *handler.ReviewHandler
	userHandler    *handler.UserHandler
	orderHandler   *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler: params.ProductHandler,
		reviewHandler:  params.ReviewHandler,
		userHandler:    params.UserHandler,
		orderHandler:   params.OrderHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authenticate := r.authMiddleware.Authenticate
	requireAdmin := r.authMiddleware.RequireRole(entity.RoleAdmin)

	// Catalog routes: public reads, admin writes
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/top", r.productHandler.TopProducts)
		productGroup.GET("/:id", r.productHandler.GetProduct)

		productGroup.POST("/create", r.productHandler.CreateProduct, authenticate, requireAdmin)
		productGroup.PUT("/update/:id", r.productHandler.UpdateProduct, authenticate, requireAdmin)
		productGroup.DELETE("/delete/:id", r.productHandler.DeleteProduct, authenticate, requireAdmin)

		productGroup.POST("/:id/reviews", r.reviewHandler.SubmitReview, authenticate)

		productGroup.POST("/:id/images", r.productHandler.AddImage, authenticate, requireAdmin)
		productGroup.DELETE("/:id/images/:imageId", r.productHandler.DeleteImage, authenticate, requireAdmin)
		productGroup.POST("/:id/colors", r.productHandler.AddColor, authenticate, requireAdmin)
		productGroup.DELETE("/:id/colors/:colorId", r.productHandler.DeleteColor, authenticate, requireAdmin)
	}

	// Account routes
	userGroup := e.Group("/users")
	{
		userGroup.POST("/register", r.userHandler.Register)
		userGroup.POST("/login", r.userHandler.Login)

		userGroup.GET("/profile", r.userHandler.GetProfile, authenticate)
		userGroup.PUT("/profile", r.userHandler.UpdateProfile, authenticate)

		userGroup.GET("", r.userHandler.ListUsers, authenticate, requireAdmin)
		userGroup.GET("/:id", r.userHandler.GetUser, authenticate, requireAdmin)
		// Admin or self; the handler enforces ownership
		userGroup.PUT("/:id", r.userHandler.UpdateUser, authenticate)
		userGroup.DELETE("/:id", r.userHandler.DeleteUser, authenticate, requireAdmin)
	}

	// Order routes: all authenticated, admin for fulfilment
	orderGroup := e.Group("/orders", authenticate)
	{
		orderGroup.POST("", r.orderHandler.CreateOrder)
		orderGroup.GET("/myorders", r.orderHandler.ListMyOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)

		orderGroup.GET("", r.orderHandler.ListOrders, requireAdmin)
		orderGroup.PUT("/:id/pay", r.orderHandler.MarkPaid, requireAdmin)
		orderGroup.PUT("/:id/deliver", r.orderHandler.MarkDelivered, requireAdmin)
	}
}
