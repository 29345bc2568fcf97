package user

import (
	"github.com/go-playground/validator/v10"
)

// Fields are the client-supplied columns of a user. A key that is
// missing or null fails "required"; format is left to storage.
type Fields struct {
	Firstname *string `json:"firstname" validate:"required"`
	Lastname  *string `json:"lastname" validate:"required"`
	Email     *string `json:"email" validate:"required"`
	City      *string `json:"city" validate:"required"`
	Language  *string `json:"language" validate:"required"`
}

// ToUser copies the validated fields into a User with the given id.
func (f Fields) ToUser(id int64) User {
	return User{
		ID:        id,
		Firstname: *f.Firstname,
		Lastname:  *f.Lastname,
		Email:     *f.Email,
		City:      *f.City,
		Language:  *f.Language,
	}
}

// ------------------------------------------------------------

type ListUsersPayload struct{}

func (p *ListUsersPayload) Validate() error {
	return nil
}

// ------------------------------------------------------------

type GetUserPayload struct {
	ID int64 `param:"id"`
}

func (p *GetUserPayload) Validate() error {
	return nil
}

// ------------------------------------------------------------

type CreateUserPayload struct {
	Fields
}

func (p *CreateUserPayload) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// ------------------------------------------------------------

type UpdateUserPayload struct {
	ID int64 `param:"id" json:"-"`
	Fields
}

func (p *UpdateUserPayload) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// ------------------------------------------------------------

type DeleteUserPayload struct {
	ID int64 `param:"id"`
}

func (p *DeleteUserPayload) Validate() error {
	return nil
}
