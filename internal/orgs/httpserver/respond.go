package httpserver

import "github.com/labstack/echo/v4"

// Every response on this surface carries the {success, ...} envelope the
// frontend forms expect.

func respondData(c echo.Context, code int, data any) error {
	return c.JSON(code, map[string]any{"success": true, "data": data})
}

func respondError(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]any{"success": false, "error": msg})
}
