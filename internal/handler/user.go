package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/movie-api/internal/model"
	"github.com/deppfellow/movie-api/internal/model/user"
	"github.com/deppfellow/movie-api/internal/server"
	"github.com/deppfellow/movie-api/internal/service"
)

type UserHandler struct {
	Handler
	userService *service.UserService
}

func NewUserHandler(s *server.Server, userService *service.UserService) *UserHandler {
	return &UserHandler{
		Handler:     NewHandler(s),
		userService: userService,
	}
}

func (h *UserHandler) ListUsers(c echo.Context, _ *user.ListUsersPayload) ([]user.User, error) {
	return h.userService.List(c.Request().Context())
}

func (h *UserHandler) GetUser(c echo.Context, payload *user.GetUserPayload) (*user.User, error) {
	return h.userService.Get(c.Request().Context(), payload.ID)
}

func (h *UserHandler) CreateUser(c echo.Context, payload *user.CreateUserPayload) (model.CreatedResponse, error) {
	id, err := h.userService.Create(c.Request().Context(), payload.Fields)
	if err != nil {
		return model.CreatedResponse{}, err
	}
	return model.CreatedResponse{ID: id}, nil
}

func (h *UserHandler) UpdateUser(c echo.Context, payload *user.UpdateUserPayload) error {
	return h.userService.Update(c.Request().Context(), payload.ID, payload.Fields)
}

func (h *UserHandler) DeleteUser(c echo.Context, payload *user.DeleteUserPayload) error {
	return h.userService.Delete(c.Request().Context(), payload.ID)
}
