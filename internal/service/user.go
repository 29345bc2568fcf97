package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/movie-api/internal/model/user"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]user.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []user.User{}
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new user. Email uniqueness is enforced by the
// users_email_key constraint, not checked here.
func (s *UserService) Create(ctx context.Context, fields user.Fields) (int64, error) {
	id, err := s.repo.Create(ctx, fields.ToUser(0))
	if err != nil {
		return 0, err
	}

	zerolog.Ctx(ctx).Info().Int64("user_id", id).Msg("user created")
	return id, nil
}

func (s *UserService) Update(ctx context.Context, id int64, fields user.Fields) error {
	if err := s.repo.Update(ctx, fields.ToUser(id)); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().Int64("user_id", id).Msg("user updated")
	return nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
