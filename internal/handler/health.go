package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// HealthHandler reports service liveness plus the state of its backing
// stores. Load balancers only need the HTTP 200; humans get the detail.
type HealthHandler struct {
	DB      *sql.DB
	Redis   *redis.Client // optional, nil when caching is disabled
	Version string
}

// Health answers GET /health. The service is reported healthy as long as the
// process can serve requests; degraded dependencies show up under "services"
// without flipping the status code, so a cache outage never takes the whole
// deployment out of rotation.
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	services := echo.Map{
		"database": h.pingDB(ctx),
		"cache":    h.pingRedis(ctx),
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "healthy",
		"version":   h.Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"services":  services,
	})
}

// Index answers GET / with a short service description and the endpoints a
// caller is most likely looking for.
func (h *HealthHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"service": "health-plan-backend",
		"version": h.Version,
		"endpoints": echo.Map{
			"health":   "/health",
			"generate": "/api/v1/plans/generate",
			"discover": "/api/v1/plans/discover",
			"plan":     "/api/v1/plans/{plan_id}",
		},
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) string {
	if h.DB == nil {
		return "not configured"
	}
	if err := h.DB.PingContext(ctx); err != nil {
		return "unreachable"
	}
	return "connected"
}

func (h *HealthHandler) pingRedis(ctx context.Context) string {
	if h.Redis == nil {
		return "not configured"
	}
	if err := h.Redis.Ping(ctx).Err(); err != nil {
		return "unreachable"
	}
	return "connected"
}
