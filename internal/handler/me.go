package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Me answers GET /api/v1/me for authenticated callers. It echoes the token
// claims the auth middleware placed in the context so clients can verify
// what identity the backend sees.
func Me(c echo.Context) error {
	return respond(c, http.StatusOK, "authenticated", echo.Map{
		"user_id": c.Get("user_id"),
		"email":   c.Get("email"),
		"role":    c.Get("role"),
	})
}
