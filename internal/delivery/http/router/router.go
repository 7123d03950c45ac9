// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"accounts/internal/delivery/http/middleware"
	"accounts/internal/delivery/http/router/handler"
	"accounts/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/google", r.authHandler.GoogleLogin)
		authGroup.POST("/verify-email/send", r.authHandler.SendVerificationEmail)
		authGroup.GET("/verify-email", r.authHandler.VerifyEmail)
		authGroup.GET("/profile", r.authHandler.Profile, r.authMiddleware.Authenticate)
	}

	// Account routes. Registration endpoints are public; the management
	// surface requires an ADMIN session.
	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.userHandler.CreateUser)
		userGroup.POST("/admin", r.userHandler.CreateAdmin)
		userGroup.POST("/merchant", r.userHandler.CreateMerchant)
	}

	adminOnly := []echo.MiddlewareFunc{
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleAdmin),
	}
	{
		userGroup.GET("", r.userHandler.List, adminOnly...)
		userGroup.GET("/verification/status/:id", r.userHandler.VerificationStatus, adminOnly...)
		userGroup.GET("/:id", r.userHandler.Get, adminOnly...)
		userGroup.PATCH("/:id", r.userHandler.Update, adminOnly...)
		userGroup.DELETE("/:id", r.userHandler.Delete, adminOnly...)
		userGroup.PATCH("/:id/verify", r.userHandler.Verify, adminOnly...)
	}
}
