package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/deppfellow/movie-api/internal/model/movie"
	"github.com/deppfellow/movie-api/internal/model/user"
)

type mockMovieRepository struct {
	mock.Mock
}

func (m *mockMovieRepository) List(ctx context.Context) ([]movie.Movie, error) {
	args := m.Called(ctx)
	movies, _ := args.Get(0).([]movie.Movie)
	return movies, args.Error(1)
}

func (m *mockMovieRepository) GetByID(ctx context.Context, id int64) (*movie.Movie, error) {
	args := m.Called(ctx, id)
	found, _ := args.Get(0).(*movie.Movie)
	return found, args.Error(1)
}

func (m *mockMovieRepository) Create(ctx context.Context, mv movie.Movie) (int64, error) {
	args := m.Called(ctx, mv)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMovieRepository) Update(ctx context.Context, mv movie.Movie) error {
	return m.Called(ctx, mv).Error(0)
}

func (m *mockMovieRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) List(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]user.User)
	return users, args.Error(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	found, _ := args.Get(0).(*user.User)
	return found, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, u user.User) (int64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, u user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
