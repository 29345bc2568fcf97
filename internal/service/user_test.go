package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/movie-api/internal/model/user"
)

func userFields() user.Fields {
	return user.Fields{
		Firstname: ptr("Ada"),
		Lastname:  ptr("Lovelace"),
		Email:     ptr("ada@example.com"),
		City:      ptr("London"),
		Language:  ptr("en"),
	}
}

func TestUserService_List(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("List", mock.Anything).Return([]user.User{{ID: 1, Email: "ada@example.com"}}, nil)

	users, err := NewUserService(repo).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserService_CreateError(t *testing.T) {
	boom := errors.New("boom")
	repo := new(mockUserRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(int64(0), boom)

	_, err := NewUserService(repo).Create(context.Background(), userFields())
	assert.ErrorIs(t, err, boom)
}

func TestUserService_Get(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&user.User{ID: 1, City: "London"}, nil)

	u, err := NewUserService(repo).Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "London", u.City)
}
