package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/items-api/internal/model"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/deppfellow/items-api/internal/service"
)

// validate is the shared validator instance backing the request
// payloads' Validate methods.
var validate = validator.New()

// CreateItemRequest is the payload for POST /items.
//
// Name and Description deliberately carry no validation tags: empty
// strings are valid values and no length limit is enforced.
type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r *CreateItemRequest) Validate() error {
	return validate.Struct(r)
}

// ListItemsRequest is the (empty) payload for GET /items.
type ListItemsRequest struct{}

func (r *ListItemsRequest) Validate() error {
	return nil
}

// GetItemRequest binds the :id path parameter for GET /items/:id.
//
// The id is bound as an opaque string: a malformed id is simply an id
// that was never created, and the lookup turns it into a 404.
type GetItemRequest struct {
	ID string `param:"id" validate:"required"`
}

func (r *GetItemRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateItemRequest binds the :id path parameter plus the JSON body for
// PUT /items/:id.
type UpdateItemRequest struct {
	ID          string `param:"id" validate:"required"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r *UpdateItemRequest) Validate() error {
	return validate.Struct(r)
}

// DeleteItemRequest binds the :id path parameter for DELETE /items/:id.
type DeleteItemRequest struct {
	ID string `param:"id" validate:"required"`
}

func (r *DeleteItemRequest) Validate() error {
	return validate.Struct(r)
}

// ItemHandler serves the /items CRUD endpoints.
type ItemHandler struct {
	Handler
	items *service.ItemService
}

// NewItemHandler constructs an ItemHandler with access to shared
// dependencies and the item service.
func NewItemHandler(s *server.Server, items *service.ItemService) *ItemHandler {
	return &ItemHandler{
		Handler: NewHandler(s),
		items:   items,
	}
}

// Create handles POST /items. The server generates the id; the created
// item (including the id) is returned to the caller.
func (h *ItemHandler) Create(c echo.Context, req *CreateItemRequest) (model.Item, error) {
	return h.items.Create(c.Request().Context(), req.Name, req.Description)
}

// List handles GET /items. Order is unspecified; it reflects the
// underlying table scan order.
func (h *ItemHandler) List(c echo.Context, req *ListItemsRequest) ([]model.Item, error) {
	return h.items.List(c.Request().Context())
}

// Get handles GET /items/:id. A missing row surfaces as ErrNoRows from
// the repository, which the global error funnel turns into a 404.
func (h *ItemHandler) Get(c echo.Context, req *GetItemRequest) (model.Item, error) {
	return h.items.Get(c.Request().Context(), req.ID)
}

// Update handles PUT /items/:id.
//
// The update statement is unconditional: updating an id that does not
// exist matches zero rows and still succeeds with 204.
func (h *ItemHandler) Update(c echo.Context, req *UpdateItemRequest) error {
	return h.items.Update(c.Request().Context(), req.ID, req.Name, req.Description)
}

// Delete handles DELETE /items/:id.
//
// Like Update, the statement is unconditional; deleting an absent id
// still succeeds with 204.
func (h *ItemHandler) Delete(c echo.Context, req *DeleteItemRequest) error {
	return h.items.Delete(c.Request().Context(), req.ID)
}
