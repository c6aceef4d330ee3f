package handler

import (
	"github.com/deppfellow/items-api/internal/server"
	"github.com/deppfellow/items-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
//
// Like Middlewares and Services, a single container keeps router setup
// clean: one object is passed around instead of many. Handlers are the
// HTTP layer: parse input, validate, call services, return responses.
type Handlers struct {
	Health *HealthHandler // Health serves the service health endpoint.
	Item   *ItemHandler   // Item serves the /items CRUD endpoints.
}

// NewHandlers constructs the handler container.
//
// Parameters:
//   - s: application container (logger/config/db) handlers may need
//   - services: business layer container
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(s),
		Item:   NewItemHandler(s, services.Item),
	}
}
