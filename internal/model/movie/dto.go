package movie

import (
	"github.com/go-playground/validator/v10"
)

// Fields are the client-supplied columns of a movie.
//
// They are pointers so that "required" means present in the body:
// a key that is missing or null fails, while "0" or 0 passes.
type Fields struct {
	Title    *string `json:"title" validate:"required"`
	Director *string `json:"director" validate:"required"`
	Year     *string `json:"year" validate:"required"`
	Color    *string `json:"color" validate:"required"`
	Duration *int    `json:"duration" validate:"required"`
}

// ToMovie copies the validated fields into a Movie with the given id.
func (f Fields) ToMovie(id int64) Movie {
	return Movie{
		ID:       id,
		Title:    *f.Title,
		Director: *f.Director,
		Year:     *f.Year,
		Color:    *f.Color,
		Duration: *f.Duration,
	}
}

// ------------------------------------------------------------

type ListMoviesPayload struct{}

func (p *ListMoviesPayload) Validate() error {
	return nil
}

// ------------------------------------------------------------

type GetMoviePayload struct {
	ID int64 `param:"id"`
}

func (p *GetMoviePayload) Validate() error {
	return nil
}

// ------------------------------------------------------------

type CreateMoviePayload struct {
	Fields
}

func (p *CreateMoviePayload) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// ------------------------------------------------------------

// UpdateMoviePayload replaces every non-id field of the movie at ID.
type UpdateMoviePayload struct {
	ID int64 `param:"id" json:"-"`
	Fields
}

func (p *UpdateMoviePayload) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// ------------------------------------------------------------

type DeleteMoviePayload struct {
	ID int64 `param:"id"`
}

func (p *DeleteMoviePayload) Validate() error {
	return nil
}
