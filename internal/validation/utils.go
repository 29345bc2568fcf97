package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/deppfellow/movie-api/internal/errs"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
// - Define a request struct with validator tags (`validate:"required"`)
// - Implement Validate() error that runs validator.Struct(req)
type Validatable interface {
	Validate() error
}

// Client-facing messages for input that cannot be decoded. Echo's own
// messages name Go types and parser internals, so they only reach the logs.
const (
	invalidIDMessage   = "Invalid id"
	invalidBodyMessage = "Invalid request body"
)

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
// 1) path params are bound, then the JSON body.
// 2) payload.Validate() applies validation rules.
//
// A param or body that cannot be decoded is a 400. Echo's other binding
// errors, such as 415 for a body without a JSON content type, keep their
// status. A decoded payload that fails validation is a 422 listing every
// offending field.
func BindAndValidate(c echo.Context, payload Validatable) error {
	binder := &echo.DefaultBinder{}

	if err := binder.BindPathParams(c, payload); err != nil {
		logBindError(c, err)
		return errs.NewBadRequestError(invalidIDMessage, false, nil, nil)
	}

	if err := binder.BindBody(c, payload); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code != http.StatusBadRequest {
			return err
		}
		logBindError(c, err)
		return errs.NewBadRequestError(invalidBodyMessage, false, nil, nil)
	}

	if fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.ValidationError(fieldErrors)
	}

	return nil
}

func logBindError(c echo.Context, err error) {
	zerolog.Ctx(c.Request().Context()).Debug().
		Err(err).
		Str("path", c.Path()).
		Msg("failed to bind request")
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) []errs.FieldError {
	if err := v.Validate(); err != nil {
		return extractValidationErrors(err)
	}
	return nil
}

func extractValidationErrors(err error) []errs.FieldError {
	var fieldErrors []errs.FieldError

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []errs.FieldError{{Field: "body", Error: err.Error()}}
	}

	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		var msg string

		switch fe.Tag() {
		case "required":
			msg = "is required"

		case "min":
			// min tag means:
			// - for strings: minimum length
			// - for numbers: minimum value
			if fe.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", fe.Param())
			}

		case "max":
			if fe.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", fe.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", fe.Param())

		default:
			if fe.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, fe.Tag(), fe.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, fe.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return fieldErrors
}
