package errs

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores("Not Found"))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", MakeUpperCaseWithUnderscores("Internal Server Error"))
	assert.Equal(t, "OK", MakeUpperCaseWithUnderscores("OK"))
}

func TestNewBadRequestError(t *testing.T) {
	err := NewBadRequestError("Validation failed", true, nil, []FieldError{{Field: "id", Error: "is required"}})

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "BAD_REQUEST", err.Code)
	assert.Equal(t, "Validation failed", err.Message)
	assert.True(t, err.Override)
	require.Len(t, err.Errors, 1)
	assert.Equal(t, "id", err.Errors[0].Field)
}

func TestNewBadRequestErrorCustomCode(t *testing.T) {
	code := "ITEM_ALREADY_EXISTS"
	err := NewBadRequestError("already exists", false, &code, nil)

	assert.Equal(t, "ITEM_ALREADY_EXISTS", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Item not found", false, nil)

	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, "Item not found", err.Error())
}

func TestNewInternalServerError(t *testing.T) {
	err := NewInternalServerError()

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", err.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), err.Message)
	assert.False(t, err.Override)
}

func TestHTTPErrorIsMatchesByType(t *testing.T) {
	err := NewNotFoundError("missing", false, nil)

	// Is matches any *HTTPError, regardless of status or code.
	assert.ErrorIs(t, fmt.Errorf("wrapped: %w", err), NewInternalServerError())
	assert.NotErrorIs(t, fmt.Errorf("plain"), err)
}

func TestWithMessageCopies(t *testing.T) {
	base := NewNotFoundError("original", true, nil)
	modified := base.WithMessage("replacement")

	assert.Equal(t, "replacement", modified.Message)
	assert.Equal(t, base.Code, modified.Code)
	assert.Equal(t, base.Status, modified.Status)
	assert.Equal(t, base.Override, modified.Override)
	assert.Equal(t, "original", base.Message, "the original must not be mutated")
}
