// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"context"

	"github.com/deppfellow/movie-api/internal/model/movie"
	"github.com/deppfellow/movie-api/internal/model/user"
)

// MovieRepository is the storage the movie service depends on.
type MovieRepository interface {
	List(ctx context.Context) ([]movie.Movie, error)
	GetByID(ctx context.Context, id int64) (*movie.Movie, error)
	Create(ctx context.Context, m movie.Movie) (int64, error)
	Update(ctx context.Context, m movie.Movie) error
	Delete(ctx context.Context, id int64) error
}

// UserRepository is the storage the user service depends on.
type UserRepository interface {
	List(ctx context.Context) ([]user.User, error)
	GetByID(ctx context.Context, id int64) (*user.User, error)
	Create(ctx context.Context, u user.User) (int64, error)
	Update(ctx context.Context, u user.User) error
	Delete(ctx context.Context, id int64) error
}
