package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "UNPROCESSABLE_ENTITY", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnprocessableEntity)))
}

func TestConstructors(t *testing.T) {
	code := "USER_ALREADY_EXISTS"

	tests := []struct {
		name   string
		err    *HTTPError
		status int
		code   string
	}{
		{"bad request", NewBadRequestError("bad", false, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", NewNotFoundError("missing", true, nil), http.StatusNotFound, "NOT_FOUND"},
		{"conflict custom code", NewConflictError("dup", true, &code), http.StatusConflict, code},
		{"unprocessable", ValidationError([]FieldError{{Field: "title", Error: "is required"}}), http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY"},
		{"too many", NewTooManyRequestsError("slow down"), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestHTTPError_ErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NewNotFoundError("Movie not found", true, nil))

	var httpErr *HTTPError
	assert.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, "Movie not found", httpErr.Error())
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
}
