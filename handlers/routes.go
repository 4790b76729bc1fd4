// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes with their HTTP methods and handlers

package handlers

import (
	"net/http"

	"github.com/markalston/pc-build-advisor/middleware"
)

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // URL path pattern (e.g., "/api/v1/builds/{id}")
	Handler http.HandlerFunc // Handler function
}

// Routes returns all API routes for registration.
// Paths use net/http pattern syntax for path parameters.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health
		{Method: http.MethodGet, Path: "/api/v1/health", Handler: h.Health},

		// Catalog
		{Method: http.MethodGet, Path: "/api/v1/components", Handler: h.ListComponents},
		{Method: http.MethodGet, Path: "/api/v1/components/{id}", Handler: h.GetComponent},
		{Method: http.MethodGet, Path: "/api/v1/components/{id}/alternatives", Handler: h.GetAlternatives},

		// Builds
		{Method: http.MethodPost, Path: "/api/v1/builds", Handler: h.GenerateBuild},
		{Method: http.MethodPost, Path: "/api/v1/builds/variants", Handler: h.GenerateVariants},
		{Method: http.MethodGet, Path: "/api/v1/builds/{id}", Handler: h.GetBuild},
		{Method: http.MethodGet, Path: "/api/v1/builds/{id}/export", Handler: h.ExportBuild},

		// Compatibility
		{Method: http.MethodPost, Path: "/api/v1/compatibility", Handler: h.CheckCompatibility},

		// Budget
		{Method: http.MethodPost, Path: "/api/v1/budget/allocation", Handler: h.AllocateBudget},
		{Method: http.MethodPost, Path: "/api/v1/budget/analysis", Handler: h.AnalyzeBudget},

		// Documentation
		{Method: http.MethodGet, Path: "/api/v1/openapi.yaml", Handler: h.OpenAPISpec},
	}
}

// NewRouter registers every route behind the request middleware chain.
// Logging is outermost so every response carries a request id. Each path
// also answers OPTIONS so CORS preflights reach the CORS middleware.
// A nil limiter disables rate limiting.
func NewRouter(h *Handler, allowedOrigins []string, limiter *middleware.RateLimiter) *http.ServeMux {
	wrap := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.Chain(next,
			middleware.LogRequest,
			middleware.CORS(allowedOrigins),
			middleware.RateLimit(limiter, middleware.ClientIP),
		)
	}

	mux := http.NewServeMux()
	preflight := make(map[string]bool)
	for _, route := range h.Routes() {
		mux.HandleFunc(route.Method+" "+route.Path, wrap(route.Handler))
		if !preflight[route.Path] {
			preflight[route.Path] = true
			mux.HandleFunc(http.MethodOptions+" "+route.Path, wrap(methodNotAllowed))
		}
	}
	return mux
}

// methodNotAllowed backs the OPTIONS registrations; the CORS middleware answers preflights first.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusMethodNotAllowed)
}
