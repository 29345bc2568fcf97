package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/movie-api/internal/errs"
)

type samplePayload struct {
	ID    int64   `param:"id" json:"-"`
	Name  *string `json:"name" validate:"required"`
	Count *int    `json:"count" validate:"required"`
}

func (p *samplePayload) Validate() error {
	return validator.New().Struct(p)
}

func newContext(method, body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("4")
	return c
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestBindAndValidate_OK(t *testing.T) {
	var p samplePayload
	err := BindAndValidate(newContext(http.MethodPut, `{"name":"x","count":0}`), &p)
	require.NoError(t, err)
	assert.Equal(t, int64(4), p.ID)
	assert.Equal(t, "x", *p.Name)
	assert.Equal(t, 0, *p.Count)
}

func TestBindAndValidate_MissingFields(t *testing.T) {
	var p samplePayload
	httpErr := asHTTPError(t, BindAndValidate(newContext(http.MethodPost, `{"count":null}`), &p))

	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "name", Error: "is required"},
		{Field: "count", Error: "is required"},
	}, httpErr.Errors)
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	var p samplePayload
	httpErr := asHTTPError(t, BindAndValidate(newContext(http.MethodPost, `{"name":`), &p))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Invalid request body", httpErr.Message)
}

func TestBindAndValidate_WrongType(t *testing.T) {
	var p samplePayload
	httpErr := asHTTPError(t, BindAndValidate(newContext(http.MethodPost, `{"name":"x","count":"many"}`), &p))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Invalid request body", httpErr.Message)
	assert.NotContains(t, httpErr.Message, "Fields")
}

func TestBindAndValidate_BadParam(t *testing.T) {
	c := newContext(http.MethodDelete, "")
	c.SetParamValues("abc")

	var p samplePayload
	httpErr := asHTTPError(t, BindAndValidate(c, &p))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Invalid id", httpErr.Message)
	assert.NotContains(t, httpErr.Message, "strconv")
}

func TestBindAndValidate_UnsupportedMediaType(t *testing.T) {
	c := newContext(http.MethodPost, `{"name":"x","count":1}`)
	c.Request().Header.Del(echo.HeaderContentType)

	var p samplePayload
	err := BindAndValidate(c, &p)

	var he *echo.HTTPError
	require.True(t, errors.As(err, &he), "expected *echo.HTTPError, got %T", err)
	assert.Equal(t, http.StatusUnsupportedMediaType, he.Code)
}
