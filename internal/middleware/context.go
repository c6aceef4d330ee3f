package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/deppfellow/items-api/internal/server"
)

// LoggerKey is the key for storing the request-scoped logger.
const LoggerKey = "logger"

// ContextEnhancer is a middleware helper that enriches request context.
//
// It builds a request-scoped logger with correlation fields
// (request_id, method, path, ip) and stores it in both the Echo
// context and the Go request context, so layers that only see a
// context.Context can still log with correlation.
type ContextEnhancer struct {
	server *server.Server
}

// NewContextEnhancer creates a ContextEnhancer using the app Server container.
func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns an Echo middleware.
//
// For every request, it:
//  1. gets the request ID (from the RequestID middleware)
//  2. creates a logger with request fields
//  3. stores that logger in Echo context + Go context
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Empty when the RequestID middleware didn't run first.
			requestID := GetRequestID(c)

			contextLogger := ce.server.Logger.With().
				Str("request_id", requestID).
				Str("method", c.Request().Method).
				Str("path", c.Path()). // route template (e.g. "/items/:id"), not raw URL
				Str("ip", c.RealIP()).
				Logger()

			c.Set(LoggerKey, &contextLogger)

			// Also store the logger in the Go request context so
			// non-Echo code (repositories, services) can fetch it
			// with zerolog.Ctx.
			ctx := contextLogger.WithContext(c.Request().Context())
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetLogger retrieves the request-scoped logger from Echo context.
//
// If EnhanceContext didn't run, it returns a no-op logger so callers
// never crash on a nil logger.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}
