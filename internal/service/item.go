package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/deppfellow/items-api/internal/model"
	"github.com/deppfellow/items-api/internal/server"
)

// ItemStore is the persistence surface the item service depends on.
// *repository.ItemRepository is the production implementation; tests
// substitute in-memory fakes.
type ItemStore interface {
	Insert(ctx context.Context, item model.Item) error
	SelectAll(ctx context.Context) ([]model.Item, error)
	SelectByID(ctx context.Context, id string) (model.Item, error)
	Update(ctx context.Context, id, name, description string) error
	Delete(ctx context.Context, id string) error
}

// ItemService implements the five item operations.
//
// Each operation is a single statement against the store: no retries,
// no transactions, no cross-operation coordination. Errors are
// forwarded verbatim; the handler layer owns their interpretation.
type ItemService struct {
	server *server.Server
	store  ItemStore
}

// NewItemService constructs an ItemService over the given store.
func NewItemService(s *server.Server, store ItemStore) *ItemService {
	return &ItemService{
		server: s,
		store:  store,
	}
}

// Create generates an id for the new item and persists it. The id is a
// v4 UUID, assigned here and never reassigned.
func (s *ItemService) Create(ctx context.Context, name, description string) (model.Item, error) {
	item := model.Item{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
	}

	if err := s.store.Insert(ctx, item); err != nil {
		return model.Item{}, err
	}

	return item, nil
}

// List returns all stored items in table scan order.
func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	return s.store.SelectAll(ctx)
}

// Get returns the item with the given id. A miss surfaces as the
// driver's no-rows error.
func (s *ItemService) Get(ctx context.Context, id string) (model.Item, error) {
	return s.store.SelectByID(ctx, id)
}

// Update unconditionally overwrites name and description for the given
// id. Updating an id that does not exist matches zero rows and is not
// an error.
func (s *ItemService) Update(ctx context.Context, id, name, description string) error {
	return s.store.Update(ctx, id, name, description)
}

// Delete unconditionally removes the item with the given id. Deleting
// an absent id matches zero rows and is not an error.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
