// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marzan/internal/delivery/http/middleware"
	"marzan/internal/delivery/http/router/handler"
	"marzan/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	LoyaltyHandler *handler.LoyaltyHandler
	AdminHandler   *handler.AdminHandler
	CatalogHandler *handler.CatalogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	loyaltyHandler *handler.LoyaltyHandler
	adminHandler   *handler.AdminHandler
	catalogHandler *handler.CatalogHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		loyaltyHandler: params.LoyaltyHandler,
		adminHandler:   params.AdminHandler,
		catalogHandler: params.CatalogHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Public catalog routes
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.catalogHandler.ListProducts)
		productGroup.GET("/:id", r.catalogHandler.GetProduct)
	}

	// Customer routes that require authentication
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.Get)
		profileGroup.PUT("", r.profileHandler.Update)
		profileGroup.GET("/cep/:cep", r.profileHandler.LookupCEP)
	}

	loyaltyGroup := e.Group("/loyalty")
	loyaltyGroup.Use(r.authMiddleware.Authenticate)
	{
		loyaltyGroup.POST("/redeem", r.loyaltyHandler.Redeem)
		loyaltyGroup.GET("/progress", r.loyaltyHandler.Progress)
		loyaltyGroup.GET("/history", r.loyaltyHandler.History)
		loyaltyGroup.GET("/reward/qr", r.loyaltyHandler.RewardQR)
	}

	// Staff routes that require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
	{
		adminGroup.POST("/codes", r.adminHandler.GenerateCode)
		adminGroup.GET("/codes", r.adminHandler.ListCodes)
		adminGroup.POST("/codes/:id/resend", r.adminHandler.ResendCode)
		adminGroup.POST("/codes/:id/whatsapp", r.adminHandler.WhatsAppShareLink)
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.GET("/rewards", r.adminHandler.ActiveRewards)
		adminGroup.POST("/rewards/:id/claim", r.adminHandler.ClaimReward)

		adminGroup.POST("/products", r.catalogHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.catalogHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.catalogHandler.DeleteProduct)
		adminGroup.POST("/products/:id/images", r.catalogHandler.AddImages)
		adminGroup.PUT("/products/:id/images/order", r.catalogHandler.ReorderImages)
		adminGroup.DELETE("/products/:id/images/:imageID", r.catalogHandler.RemoveImage)
	}
}
