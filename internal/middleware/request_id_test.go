package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/items-api/internal/middleware"
	"github.com/deppfellow/items-api/internal/validation"
)

func runRequestID(t *testing.T, incoming string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(middleware.RequestIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := middleware.RequestID()
	err := mw(func(c echo.Context) error { return nil })(c)
	require.NoError(t, err)
	return c, rec
}

func TestRequestIDGeneratesWhenAbsent(t *testing.T) {
	c, rec := runRequestID(t, "")

	id := middleware.GetRequestID(c)
	assert.True(t, validation.IsValidUUID(id))
	assert.Equal(t, id, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRequestIDReusesIncomingHeader(t *testing.T) {
	c, rec := runRequestID(t, "upstream-id")

	assert.Equal(t, "upstream-id", middleware.GetRequestID(c))
	assert.Equal(t, "upstream-id", rec.Header().Get(middleware.RequestIDHeader))
}

func TestGetLoggerFallsBackToNop(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	// No ContextEnhancer ran; the fallback logger must be usable.
	logger := middleware.GetLogger(c)
	require.NotNil(t, logger)
	logger.Info().Msg("must not panic")
}
