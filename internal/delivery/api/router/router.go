// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"dukasync/internal/delivery/api/middleware"
	"dukasync/internal/delivery/api/router/handler"
	"dukasync/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	NavigationHandler *handler.NavigationHandler
	DashboardHandler  *handler.DashboardHandler
	ContactHandler    *handler.ContactHandler
	DownloadHandler   *handler.DownloadHandler
	SessionMiddleware *middleware.SessionMiddleware
	GuardMiddleware   *middleware.GuardMiddleware
	RateLimiter       *middleware.RateLimiter
	MetricsHandler    http.Handler `name:"metrics"`
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	navigationHandler *handler.NavigationHandler
	dashboardHandler  *handler.DashboardHandler
	contactHandler    *handler.ContactHandler
	downloadHandler   *handler.DownloadHandler
	sessionMiddleware *middleware.SessionMiddleware
	guardMiddleware   *middleware.GuardMiddleware
	rateLimiter       *middleware.RateLimiter
	metricsHandler    http.Handler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		navigationHandler: params.NavigationHandler,
		dashboardHandler:  params.DashboardHandler,
		contactHandler:    params.ContactHandler,
		downloadHandler:   params.DownloadHandler,
		sessionMiddleware: params.SessionMiddleware,
		guardMiddleware:   params.GuardMiddleware,
		rateLimiter:       params.RateLimiter,
		metricsHandler:    params.MetricsHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metricsHandler))

	api := e.Group("/api")
	api.Use(r.sessionMiddleware.Identify)

	// Auth routes; the form submissions are rate limited per client IP
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login, r.rateLimiter.Limit)
		authGroup.POST("/register", r.authHandler.Register, r.rateLimiter.Limit)
		authGroup.POST("/password-reset", r.authHandler.PasswordReset, r.rateLimiter.Limit)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/session", r.authHandler.Session)
		authGroup.POST("/token", r.authHandler.Token)
	}

	api.GET("/navigation", r.navigationHandler.Navigate)

	// Any signed-in user; answers where the role's dashboard lives
	api.GET("/dashboard", r.dashboardHandler.Home, r.guardMiddleware.Require())

	// Role dashboards, each reachable by its role only
	dashboards := api.Group("/dashboards")
	for _, role := range []entity.Role{entity.RoleAdmin, entity.RoleWholesaler, entity.RoleShopkeeper, entity.RoleCustomer} {
		dashboards.GET(dashboardSegment(role), r.dashboardHandler.Shell(role), r.guardMiddleware.Require(role))
	}

	api.POST("/contact", r.contactHandler.Submit, r.rateLimiter.Limit)

	downloads := api.Group("/downloads")
	{
		downloads.GET("/apk", r.downloadHandler.ApkLink)
		downloads.GET("/apk/qr", r.downloadHandler.ApkQRCode)
	}
}

// dashboardSegment mirrors the client route of the role's dashboard, e.g. /wholesalers.
func dashboardSegment(role entity.Role) string {
	return role.DashboardPath()[len(entity.DashboardPathFallback):]
}
