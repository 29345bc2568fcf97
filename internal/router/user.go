package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/movie-api/internal/handler"
	"github.com/deppfellow/movie-api/internal/model/user"
)

func registerUserRoutes(api *echo.Group, h *handler.Handlers) {
	u := h.Users
	users := api.Group("/users")

	users.GET("", handler.Handle(u.Handler, u.ListUsers, http.StatusOK, &user.ListUsersPayload{}))
	users.GET("/:id", handler.Handle(u.Handler, u.GetUser, http.StatusOK, &user.GetUserPayload{}))
	users.POST("", handler.Handle(u.Handler, u.CreateUser, http.StatusCreated, &user.CreateUserPayload{}))
	users.PUT("/:id", handler.HandleNoContent(u.Handler, u.UpdateUser, http.StatusNoContent, &user.UpdateUserPayload{}))
	users.DELETE("/:id", handler.HandleNoContent(u.Handler, u.DeleteUser, http.StatusNoContent, &user.DeleteUserPayload{}))
}
