package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/items-api/internal/middleware"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/deppfellow/items-api/internal/validation"
)

// Handler is the base handler type that holds shared application dependencies.
//
// It is embedded by concrete handlers (ItemHandler, HealthHandler) so
// they can access shared resources via *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
//
// It returns the struct by value; copying is cheap because the struct
// only contains a pointer field, and all copies point to the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// --- Generic typed handler plumbing -----------------------------------------

// HandlerFunc represents a typed endpoint function that receives a
// bound+validated request payload and returns a response or an error.
//
// Req is always a pointer type in practice (*CreateItemRequest etc.)
// because Echo's Bind needs a pointer to populate fields.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// HandlerFuncNoContent is a typed endpoint function for routes that
// return no response body (e.g. 204 No Content).
type HandlerFuncNoContent[Req validation.Validatable] func(c echo.Context, req Req) error

// ValidatablePtr constrains a type parameter to "pointer to Req that
// implements validation.Validatable". It lets Handle allocate a fresh
// request value per request instead of sharing one across goroutines.
type ValidatablePtr[Req any] interface {
	*Req
	validation.Validatable
}

// ResponseHandler defines how a successful handler result is written to
// the HTTP response.
type ResponseHandler interface {
	// Handle writes the HTTP response for the given result.
	Handle(c echo.Context, result interface{}) error

	// GetOperation returns an operation name used for structured logging.
	GetOperation() string
}

// JSONResponseHandler writes JSON responses with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

// NoContentResponseHandler writes responses with no body (typically 204).
type NoContentResponseHandler struct {
	status int
}

func (h NoContentResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.NoContent(h.status)
}

func (h NoContentResponseHandler) GetOperation() string {
	return "handler_no_content"
}

// handleRequest is the shared execution pipeline for all handlers.
//
// It eliminates endpoint boilerplate by centralizing:
//   - request binding + validation
//   - structured logging (with request context)
//   - timing (validation duration, handler duration, total duration)
//   - response writing (json / no-content)
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	method := c.Request().Method
	path := c.Path()

	// Use the context-enhanced logger set by the ContextEnhancer
	// middleware; it already includes correlation fields.
	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("method", method).
		Str("route", path).
		Logger()

	logger.Info().Msg("handling request")

	// ---------------- Validation phase ---------------------------------------
	validationStart := time.Now()

	// BindAndValidate populates req from the request (body + path
	// params) and runs payload.Validate().
	if err := validation.BindAndValidate(c, req); err != nil {
		validationDuration := time.Since(validationStart)

		logger.Error().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		// Return the error so the global error handler formats the response.
		return err
	}

	validationDuration := time.Since(validationStart)

	logger.Debug().
		Dur("validation_duration", validationDuration).
		Msg("request validation successful")

	// ---------------- Handler execution phase --------------------------------
	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")

		return err
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed handler with validation, error handling, logging,
// and JSON response writing, returning an echo.HandlerFunc that can be
// registered directly on routes.
//
// A fresh request value is allocated per request, so bound payloads are
// never shared between concurrent requests.
//
// Usage pattern:
//
//	items.POST("", handler.Handle(h.Item.Handler, h.Item.Create, http.StatusOK))
func Handle[Req any, PReq ValidatablePtr[Req], Res any](
	h Handler,
	handler HandlerFunc[PReq, Res],
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := PReq(new(Req))

		// Adapt the typed handler (Res) into the generic interface{} pipeline.
		return handleRequest(c, req, func(c echo.Context, req PReq) (interface{}, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}

// HandleNoContent is Handle for endpoints that return no body
// (e.g. DELETE success with 204).
func HandleNoContent[Req any, PReq ValidatablePtr[Req]](
	h Handler,
	handler HandlerFuncNoContent[PReq],
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := PReq(new(Req))

		return handleRequest(c, req, func(c echo.Context, req PReq) (interface{}, error) {
			err := handler(c, req)
			return nil, err
		}, NoContentResponseHandler{status: status})
	}
}
