// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/items-api/internal/handler"
	"github.com/deppfellow/items-api/internal/middleware"
	"github.com/deppfellow/items-api/internal/server"
)

// New builds the Echo instance: global error handler first, then the
// middleware chain in order, then the route groups.
//
// Middleware order matters: RequestID must run before the
// ContextEnhancer (the request logger needs the correlation id), and
// both before the request logger itself.
func New(s *server.Server, mw *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	e.Use(mw.Global.Recover())
	e.Use(middleware.RequestID())
	e.Use(mw.ContextEnhancer.EnhanceContext())
	e.Use(mw.Global.RequestLogger())
	e.Use(mw.Global.Secure())
	e.Use(mw.Global.CORS())

	registerSystemRoutes(e, h)
	registerItemRoutes(e, h)

	return e
}
