package service

import (
	"github.com/deppfellow/items-api/internal/repository"
	"github.com/deppfellow/items-api/internal/server"
)

// Services is a container for all service instances, mirroring the
// Repositories and Handlers containers.
type Services struct {
	Item *ItemService
}

// NewServices constructs the service container from the application
// container and the repository container.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Item: NewItemService(s, repos.Items),
	}
}
