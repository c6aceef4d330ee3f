package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/items-api/internal/config"
	"github.com/deppfellow/items-api/internal/errs"
	"github.com/deppfellow/items-api/internal/handler"
	"github.com/deppfellow/items-api/internal/middleware"
	"github.com/deppfellow/items-api/internal/model"
	"github.com/deppfellow/items-api/internal/router"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/deppfellow/items-api/internal/service"
	"github.com/deppfellow/items-api/internal/validation"
)

// fakeItemStore is an in-memory service.ItemStore. It mirrors the SQL
// semantics the repository relies on: SelectByID reports a miss with
// pgx.ErrNoRows, Update/Delete on absent ids are silent no-ops, and
// SelectAll preserves insertion order.
type fakeItemStore struct {
	mu    sync.Mutex
	items map[string]model.Item
	order []string

	insertErr error
	selectErr error
}

func newFakeItemStore() *fakeItemStore {
	return &fakeItemStore{items: make(map[string]model.Item)}
}

func (f *fakeItemStore) Insert(_ context.Context, item model.Item) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.ID] = item
	f.order = append(f.order, item.ID)
	return nil
}

func (f *fakeItemStore) SelectAll(_ context.Context) ([]model.Item, error) {
	if f.selectErr != nil {
		return nil, f.selectErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	items := []model.Item{}
	for _, id := range f.order {
		items = append(items, f.items[id])
	}
	return items, nil
}

func (f *fakeItemStore) SelectByID(_ context.Context, id string) (model.Item, error) {
	if f.selectErr != nil {
		return model.Item{}, f.selectErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return model.Item{}, pgx.ErrNoRows
	}
	return item, nil
}

func (f *fakeItemStore) Update(_ context.Context, id, name, description string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if item, ok := f.items[id]; ok {
		item.Name = name
		item.Description = description
		f.items[id] = item
	}
	return nil
}

func (f *fakeItemStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; ok {
		delete(f.items, id)
		for i, existing := range f.order {
			if existing == id {
				f.order = append(f.order[:i], f.order[i+1:]...)
				break
			}
		}
	}
	return nil
}

// newTestRouter wires the full echo stack (middleware chain, error
// funnel, routes) over a fake store, so tests exercise exactly what
// production requests pass through short of the database.
func newTestRouter(t *testing.T) (*echo.Echo, *fakeItemStore) {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "0",
			ReadTimeout:        5,
			WriteTimeout:       10,
			IdleTimeout:        120,
			CORSAllowedOrigins: []string{"*"},
		},
		Logging: config.DefaultLoggingConfig(),
	}

	logger := zerolog.Nop()
	srv := &server.Server{Config: cfg, Logger: &logger}

	store := newFakeItemStore()
	services := &service.Services{Item: service.NewItemService(srv, store)}
	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	return router.New(srv, middlewares, handlers), store
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func createItem(t *testing.T, e *echo.Echo, name, description string) model.Item {
	t.Helper()

	body, err := json.Marshal(map[string]string{"name": name, "description": description})
	require.NoError(t, err)

	rec := doJSON(e, http.MethodPost, "/items", string(body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var item model.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	return item
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	e, _ := newTestRouter(t)

	created := createItem(t, e, "Item 1", "A sample item")

	assert.True(t, validation.IsValidUUID(created.ID), "id should be a generated UUID, got %q", created.ID)
	assert.Equal(t, "Item 1", created.Name)
	assert.Equal(t, "A sample item", created.Description)

	rec := doJSON(e, http.MethodGet, "/items/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched model.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)
}

func TestCreateGeneratesUniqueIDs(t *testing.T) {
	e, _ := newTestRouter(t)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		item := createItem(t, e, "dup", "dup")
		assert.False(t, seen[item.ID], "duplicate id %q", item.ID)
		seen[item.ID] = true
	}
}

func TestCreateAllowsEmptyFields(t *testing.T) {
	e, _ := newTestRouter(t)

	// No validation is performed on name/description; empty strings
	// are stored as-is.
	created := createItem(t, e, "", "")
	assert.Equal(t, "", created.Name)
	assert.Equal(t, "", created.Description)

	rec := doJSON(e, http.MethodGet, "/items/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestListReturnsAllItems(t *testing.T) {
	e, _ := newTestRouter(t)

	first := createItem(t, e, "first", "one")
	second := createItem(t, e, "second", "two")

	rec := doJSON(e, http.MethodGet, "/items", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []model.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, 2)
	assert.ElementsMatch(t, []model.Item{first, second}, items)
}

func TestListEmptyReturnsArray(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := doJSON(e, http.MethodGet, "/items", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestGetUnknownIDReturnsNotFound(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := doJSON(e, http.MethodGet, "/items/11111111-2222-3333-4444-555555555555", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var httpErr errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &httpErr))
	assert.Equal(t, "NOT_FOUND", httpErr.Code)
}

func TestUpdateExistingItem(t *testing.T) {
	e, _ := newTestRouter(t)

	created := createItem(t, e, "before", "old")

	rec := doJSON(e, http.MethodPut, "/items/"+created.ID, `{"name":"after","description":"new"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/items/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched model.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID, "id must never change on update")
	assert.Equal(t, "after", fetched.Name)
	assert.Equal(t, "new", fetched.Description)
}

func TestUpdateUnknownIDStillNoContent(t *testing.T) {
	e, _ := newTestRouter(t)

	// The update statement is unconditional: zero matched rows is
	// still a success.
	rec := doJSON(e, http.MethodPut, "/items/never-created", `{"name":"x","description":"y"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteExistingItem(t *testing.T) {
	e, _ := newTestRouter(t)

	created := createItem(t, e, "doomed", "soon gone")

	rec := doJSON(e, http.MethodDelete, "/items/"+created.ID, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodGet, "/items/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteUnknownIDStillNoContent(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := doJSON(e, http.MethodDelete, "/items/never-created", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCreateStoreFailureReturnsInternalError(t *testing.T) {
	e, store := newTestRouter(t)
	store.insertErr = errors.New("connection reset by peer")

	rec := doJSON(e, http.MethodPost, "/items", `{"name":"a","description":"b"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var httpErr errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &httpErr))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", httpErr.Code)
	// Driver details must never leak to clients.
	assert.NotContains(t, httpErr.Message, "connection reset")
}

func TestListStoreFailureReturnsInternalError(t *testing.T) {
	e, store := newTestRouter(t)
	store.selectErr = errors.New("dial tcp: connection refused")

	rec := doJSON(e, http.MethodGet, "/items", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUnknownRouteReturnsNotFound(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := doJSON(e, http.MethodGet, "/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var httpErr errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &httpErr))
	assert.Equal(t, "Route not found", httpErr.Message)
}

func TestMalformedJSONReturnsBadRequest(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := doJSON(e, http.MethodPost, "/items", `{"name": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResponsesCarryRequestID(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := doJSON(e, http.MethodGet, "/items", "")
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}
