package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/movie-api/internal/model/user"
	"github.com/deppfellow/movie-api/internal/sqlerr"
)

const (
	listUsersQuery = `SELECT id, firstname, lastname, email, city, language FROM users ORDER BY id`

	getUserQuery = `SELECT id, firstname, lastname, email, city, language FROM users WHERE id = $1`

	createUserQuery = `INSERT INTO users (firstname, lastname, email, city, language)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

	updateUserQuery = `UPDATE users SET firstname = $1, lastname = $2, email = $3, city = $4, language = $5 WHERE id = $6`

	deleteUserQuery = `DELETE FROM users WHERE id = $1`
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Firstname, &u.Lastname, &u.Email, &u.City, &u.Language)
	return u, err
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.Query(ctx, listUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (user.User, error) {
		return scanUser(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect users: %w", err)
	}

	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, getUserQuery, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, notFound(user.Table, err))
	}
	return &u, nil
}

// Create inserts u and returns the generated id. A duplicate email
// surfaces as a unique violation from PostgreSQL.
func (r *UserRepository) Create(ctx context.Context, u user.User) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, createUserQuery, u.Firstname, u.Lastname, u.Email, u.City, u.Language).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

func (r *UserRepository) Update(ctx context.Context, u user.User) error {
	tag, err := r.db.Exec(ctx, updateUserQuery, u.Firstname, u.Lastname, u.Email, u.City, u.Language, u.ID)
	if err != nil {
		return fmt.Errorf("failed to update user %d: %w", u.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update user %d: %w", u.ID, sqlerr.NotFound(user.Table, pgx.ErrNoRows))
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteUserQuery, id)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to delete user %d: %w", id, sqlerr.NotFound(user.Table, pgx.ErrNoRows))
	}
	return nil
}

// notFound marks pgx.ErrNoRows with table; other errors pass through.
func notFound(table string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return sqlerr.NotFound(table, err)
	}
	return err
}
