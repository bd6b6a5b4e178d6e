// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/slatehealth/health-plan-backend/internal/handler"
	"github.com/slatehealth/health-plan-backend/internal/middleware"
)

// RegisterRoutes registers the service-level routes that require no
// authentication: the root index and the health check used by load
// balancers and monitoring systems.
func RegisterRoutes(e *echo.Echo, h *handler.HealthHandler) {
	e.GET("/", h.Index)
	e.GET("/health", h.Health)
}

// RegisterPlans registers the public plan API under /api/v1/plans. These
// endpoints carry no auth so frontends can generate and browse plans
// without a session. When cache is non-nil it is applied to the read
// endpoints only; generation must never be served from cache.
func RegisterPlans(e *echo.Echo, p *handler.PlanHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/api/v1/plans")
	g.POST("/generate", p.Generate)
	if cache != nil {
		g.GET("/discover", p.Discover, cache)
		g.GET("/categories/:category", p.ByCategory, cache)
	} else {
		g.GET("/discover", p.Discover)
		g.GET("/categories/:category", p.ByCategory)
	}
	// Wildcard last so /discover and /categories match their own routes.
	g.GET("/:plan_id", p.GetByID)
}

// RegisterProtected registers the authenticated management API. All routes
// in this group require a valid Supabase access token.
func RegisterProtected(e *echo.Echo, p *handler.PlanHandler, jwtSecret string) {
	auth := e.Group("/api/v1")
	auth.Use(middleware.SupabaseAuth(jwtSecret))
	auth.GET("/me", handler.Me)
	auth.PUT("/plans/:plan_id", p.Update)
	auth.POST("/plans/:plan_id/deactivate", p.Deactivate)
	auth.DELETE("/plans/:plan_id", p.Delete)
}
