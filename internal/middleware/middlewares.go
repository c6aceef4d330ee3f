package middleware

import (
	"github.com/deppfellow/items-api/internal/server"
)

// Middlewares is a lightweight container that groups all middleware
// components used by the HTTP server.
//
// Why this exists:
//   - avoid scattering middleware construction through routing/setup code
//   - provide a single place where shared dependencies (*server.Server)
//     are wired into middleware
//
// This is dependency injection in its simplest form: build once, reuse
// everywhere.
type Middlewares struct {
	// Global holds common middleware used across the whole API:
	// CORS, request logging, recovery, secure headers, and the global
	// error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger
	// (request_id, method, path, ip).
	ContextEnhancer *ContextEnhancer
}

// NewMiddlewares constructs all middleware components using the
// application container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
	}
}
