// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/movie-api/internal/handler"
	"github.com/deppfellow/movie-api/internal/middleware"
	"github.com/deppfellow/movie-api/internal/server"
)

// NewRouter builds the Echo instance with global middleware, system routes
// and the /api routes.
//
// Middleware order matters: the request id must exist before the logger is
// built, the New Relic transaction before tracing attributes, and Recover
// sits innermost so a panic still passes through the request logger.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	api := router.Group("/api", middlewares.RateLimit.Limiter())
	registerMovieRoutes(api, h)
	registerUserRoutes(api, h)

	return router
}
