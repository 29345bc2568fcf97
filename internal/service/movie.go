package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/movie-api/internal/model/movie"
)

type MovieService struct {
	repo MovieRepository
}

func NewMovieService(repo MovieRepository) *MovieService {
	return &MovieService{repo: repo}
}

// List returns every movie ordered by id. An empty table yields an
// empty, non-nil slice so it encodes as [].
func (s *MovieService) List(ctx context.Context) ([]movie.Movie, error) {
	movies, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if movies == nil {
		movies = []movie.Movie{}
	}
	return movies, nil
}

func (s *MovieService) Get(ctx context.Context, id int64) (*movie.Movie, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MovieService) Create(ctx context.Context, fields movie.Fields) (int64, error) {
	id, err := s.repo.Create(ctx, fields.ToMovie(0))
	if err != nil {
		return 0, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("movie_id", id).
		Str("title", *fields.Title).
		Msg("movie created")

	return id, nil
}

func (s *MovieService) Update(ctx context.Context, id int64, fields movie.Fields) error {
	if err := s.repo.Update(ctx, fields.ToMovie(id)); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().Int64("movie_id", id).Msg("movie updated")
	return nil
}

func (s *MovieService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().Int64("movie_id", id).Msg("movie deleted")
	return nil
}
