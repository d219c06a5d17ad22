package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "imagevault/pkg/errors"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestErrorMapsAppError(t *testing.T) {
	c, rec := newContext()

	err := Error(c, apperrors.NotFound("Image", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Image not found"}`, rec.Body.String())
}

func TestErrorHidesUnknownErrors(t *testing.T) {
	c, rec := newContext()

	err := Error(c, errors.New("connection string leaked"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection string")
}

func TestMessage(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Message(c, "Image deleted successfully"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true, "message": "Image deleted successfully"}`, rec.Body.String())
}
