// Package middleware contains the HTTP middleware stack.
//
// Middleware wraps every request before it reaches a handler: request
// correlation, request-scoped logging, panic recovery, CORS, secure
// headers, and the global error handler that turns every error into a
// consistent JSON response.
package middleware
