package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/movie-api/internal/handler"
)

// registerSystemRoutes registers the endpoints that sit outside /api:
// health status, the docs UI and the static assets it loads.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.Static("/static", handler.StaticDir)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
