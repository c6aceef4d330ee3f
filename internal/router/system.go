package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/items-api/internal/handler"
)

// registerSystemRoutes registers "system" endpoints that are not part
// of business logic. Kept in a dedicated file so the business route
// files stay focused.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Health status endpoint (used by Kubernetes/monitors).
	r.GET("/status", h.Health.CheckHealth)
}
