package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/movie-api/internal/handler"
	"github.com/deppfellow/movie-api/internal/model/movie"
)

func registerMovieRoutes(api *echo.Group, h *handler.Handlers) {
	m := h.Movies
	movies := api.Group("/movies")

	movies.GET("", handler.Handle(m.Handler, m.ListMovies, http.StatusOK, &movie.ListMoviesPayload{}))
	movies.GET("/:id", handler.Handle(m.Handler, m.GetMovie, http.StatusOK, &movie.GetMoviePayload{}))
	movies.POST("", handler.Handle(m.Handler, m.CreateMovie, http.StatusCreated, &movie.CreateMoviePayload{}))
	movies.PUT("/:id", handler.HandleNoContent(m.Handler, m.UpdateMovie, http.StatusNoContent, &movie.UpdateMoviePayload{}))
	movies.DELETE("/:id", handler.HandleNoContent(m.Handler, m.DeleteMovie, http.StatusNoContent, &movie.DeleteMoviePayload{}))
}
