package router

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/deppfellow/movie-api/internal/model/movie"
	"github.com/deppfellow/movie-api/internal/model/user"
	"github.com/deppfellow/movie-api/internal/sqlerr"
)

type memMovies struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]movie.Movie
}

func newMemMovies() *memMovies {
	return &memMovies{rows: map[int64]movie.Movie{}}
}

func (r *memMovies) notFound(id int64) error {
	return fmt.Errorf("movie %d: %w", id, sqlerr.NotFound(movie.Table, pgx.ErrNoRows))
}

func (r *memMovies) List(context.Context) ([]movie.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []movie.Movie
	for _, m := range r.rows {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memMovies) GetByID(_ context.Context, id int64) (*movie.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.rows[id]
	if !ok {
		return nil, r.notFound(id)
	}
	return &m, nil
}

func (r *memMovies) Create(_ context.Context, m movie.Movie) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	m.ID = r.nextID
	r.rows[m.ID] = m
	return m.ID, nil
}

func (r *memMovies) Update(_ context.Context, m movie.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[m.ID]; !ok {
		return r.notFound(m.ID)
	}
	r.rows[m.ID] = m
	return nil
}

func (r *memMovies) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return r.notFound(id)
	}
	delete(r.rows, id)
	return nil
}

type memUsers struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]user.User
}

func newMemUsers() *memUsers {
	return &memUsers{rows: map[int64]user.User{}}
}

func (r *memUsers) notFound(id int64) error {
	return fmt.Errorf("user %d: %w", id, sqlerr.NotFound(user.Table, pgx.ErrNoRows))
}

func (r *memUsers) emailTaken(email string, except int64) error {
	for id, u := range r.rows {
		if u.Email == email && id != except {
			return &pgconn.PgError{
				Code:           "23505",
				Message:        `duplicate key value violates unique constraint "users_email_key"`,
				TableName:      user.Table,
				ConstraintName: "users_email_key",
			}
		}
	}
	return nil
}

func (r *memUsers) List(context.Context) ([]user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []user.User
	for _, u := range r.rows {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memUsers) GetByID(_ context.Context, id int64) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.rows[id]
	if !ok {
		return nil, r.notFound(id)
	}
	return &u, nil
}

func (r *memUsers) Create(_ context.Context, u user.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.emailTaken(u.Email, 0); err != nil {
		return 0, err
	}
	r.nextID++
	u.ID = r.nextID
	r.rows[u.ID] = u
	return u.ID, nil
}

func (r *memUsers) Update(_ context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[u.ID]; !ok {
		return r.notFound(u.ID)
	}
	if err := r.emailTaken(u.Email, u.ID); err != nil {
		return err
	}
	r.rows[u.ID] = u
	return nil
}

func (r *memUsers) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return r.notFound(id)
	}
	delete(r.rows, id)
	return nil
}
