// Package handler exposes HTTP handlers for both public and authenticated
// endpoints. Every JSON body follows the same envelope so clients can treat
// responses uniformly: {"success": bool, "message": string, "data": ...}.
package handler

import (
	"github.com/labstack/echo/v4"
)

// respond writes the standard success envelope with the given status code.
func respond(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, echo.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// fail writes the standard failure envelope with the given status code.
func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{
		"success": false,
		"message": message,
		"data":    nil,
	})
}
