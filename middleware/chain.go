// ABOUTME: Composition of request middleware around API handlers
// ABOUTME: Declares the Middleware type shared by logging, CORS, and rate limiting

package middleware

import "net/http"

// Middleware wraps a handler with request-scoped behavior.
type Middleware func(http.HandlerFunc) http.HandlerFunc

// Chain wraps h so the first middleware runs first.
// Chain(h, LogRequest, cors) is LogRequest(cors(h)). Nil entries are skipped.
func Chain(h http.HandlerFunc, middlewares ...Middleware) http.HandlerFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		if middlewares[i] == nil {
			continue
		}
		h = middlewares[i](h)
	}
	return h
}
