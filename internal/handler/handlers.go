package handler

import (
	"github.com/deppfellow/movie-api/internal/server"
	"github.com/deppfellow/movie-api/internal/service"
)

// Handlers groups all HTTP handlers so router setup receives a single value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Movies  *MovieHandler
	Users   *UserHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Movies:  NewMovieHandler(s, services.Movies),
		Users:   NewUserHandler(s, services.Users),
	}
}
