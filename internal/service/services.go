package service

import (
	"github.com/deppfellow/movie-api/internal/repository"
)

type Services struct {
	Movies *MovieService
	Users  *UserService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Movies: NewMovieService(repos.Movies),
		Users:  NewUserService(repos.Users),
	}
}
