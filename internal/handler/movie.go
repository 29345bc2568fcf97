package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/movie-api/internal/model"
	"github.com/deppfellow/movie-api/internal/model/movie"
	"github.com/deppfellow/movie-api/internal/server"
	"github.com/deppfellow/movie-api/internal/service"
)

type MovieHandler struct {
	Handler
	movieService *service.MovieService
}

func NewMovieHandler(s *server.Server, movieService *service.MovieService) *MovieHandler {
	return &MovieHandler{
		Handler:      NewHandler(s),
		movieService: movieService,
	}
}

func (h *MovieHandler) ListMovies(c echo.Context, _ *movie.ListMoviesPayload) ([]movie.Movie, error) {
	return h.movieService.List(c.Request().Context())
}

func (h *MovieHandler) GetMovie(c echo.Context, payload *movie.GetMoviePayload) (*movie.Movie, error) {
	return h.movieService.Get(c.Request().Context(), payload.ID)
}

func (h *MovieHandler) CreateMovie(c echo.Context, payload *movie.CreateMoviePayload) (model.CreatedResponse, error) {
	id, err := h.movieService.Create(c.Request().Context(), payload.Fields)
	if err != nil {
		return model.CreatedResponse{}, err
	}
	return model.CreatedResponse{ID: id}, nil
}

func (h *MovieHandler) UpdateMovie(c echo.Context, payload *movie.UpdateMoviePayload) error {
	return h.movieService.Update(c.Request().Context(), payload.ID, payload.Fields)
}

func (h *MovieHandler) DeleteMovie(c echo.Context, payload *movie.DeleteMoviePayload) error {
	return h.movieService.Delete(c.Request().Context(), payload.ID)
}
