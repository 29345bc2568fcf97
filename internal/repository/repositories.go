package repository

import (
	"github.com/deppfellow/movie-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Movies *MovieRepository
	Users  *UserRepository
}

// NewRepositories constructs the repository container on the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Movies: NewMovieRepository(s.DB.Pool),
		Users:  NewUserRepository(s.DB.Pool),
	}
}
