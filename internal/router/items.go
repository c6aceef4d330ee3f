package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/items-api/internal/handler"
)

// registerItemRoutes maps the five item operations onto the /items group.
func registerItemRoutes(r *echo.Echo, h *handler.Handlers) {
	items := r.Group("/items")

	items.POST("", handler.Handle(h.Item.Handler, h.Item.Create, http.StatusOK))
	items.GET("", handler.Handle(h.Item.Handler, h.Item.List, http.StatusOK))
	items.GET("/:id", handler.Handle(h.Item.Handler, h.Item.Get, http.StatusOK))
	items.PUT("/:id", handler.HandleNoContent(h.Item.Handler, h.Item.Update, http.StatusNoContent))
	items.DELETE("/:id", handler.HandleNoContent(h.Item.Handler, h.Item.Delete, http.StatusNoContent))
}
