package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/movie-api/internal/model/movie"
	"github.com/deppfellow/movie-api/internal/sqlerr"
)

const (
	listMoviesQuery = `SELECT id, title, director, year, color, duration FROM movies ORDER BY id`

	getMovieQuery = `SELECT id, title, director, year, color, duration FROM movies WHERE id = $1`

	createMovieQuery = `INSERT INTO movies (title, director, year, color, duration)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

	updateMovieQuery = `UPDATE movies SET title = $1, director = $2, year = $3, color = $4, duration = $5 WHERE id = $6`

	deleteMovieQuery = `DELETE FROM movies WHERE id = $1`
)

type MovieRepository struct {
	db DBTX
}

func NewMovieRepository(db DBTX) *MovieRepository {
	return &MovieRepository{db: db}
}

func scanMovie(row pgx.Row) (movie.Movie, error) {
	var m movie.Movie
	err := row.Scan(&m.ID, &m.Title, &m.Director, &m.Year, &m.Color, &m.Duration)
	return m, err
}

func (r *MovieRepository) List(ctx context.Context) ([]movie.Movie, error) {
	rows, err := r.db.Query(ctx, listMoviesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	movies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (movie.Movie, error) {
		return scanMovie(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect movies: %w", err)
	}

	return movies, nil
}

func (r *MovieRepository) GetByID(ctx context.Context, id int64) (*movie.Movie, error) {
	m, err := scanMovie(r.db.QueryRow(ctx, getMovieQuery, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get movie %d: %w", id, notFound(movie.Table, err))
	}
	return &m, nil
}

// Create inserts m and returns the generated id. m.ID is ignored.
func (r *MovieRepository) Create(ctx context.Context, m movie.Movie) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, createMovieQuery, m.Title, m.Director, m.Year, m.Color, m.Duration).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create movie: %w", err)
	}
	return id, nil
}

// Update replaces every non-id column of the movie at m.ID.
func (r *MovieRepository) Update(ctx context.Context, m movie.Movie) error {
	tag, err := r.db.Exec(ctx, updateMovieQuery, m.Title, m.Director, m.Year, m.Color, m.Duration, m.ID)
	if err != nil {
		return fmt.Errorf("failed to update movie %d: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update movie %d: %w", m.ID, sqlerr.NotFound(movie.Table, pgx.ErrNoRows))
	}
	return nil
}

func (r *MovieRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteMovieQuery, id)
	if err != nil {
		return fmt.Errorf("failed to delete movie %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to delete movie %d: %w", id, sqlerr.NotFound(movie.Table, pgx.ErrNoRows))
	}
	return nil
}
