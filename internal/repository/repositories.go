package repository

import (
	"github.com/deppfellow/items-api/internal/server"
)

// Repositories is a container for all repository instances.
//
// Repositories are initialized here from the shared dependencies on the
// application container (the pool lives on s.DB, the logger on
// s.Logger) and injected into the service layer.
type Repositories struct {
	Items *ItemRepository
}

// NewRepositories constructs the repository container.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Items: NewItemRepository(s),
	}
}
