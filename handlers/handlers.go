// ABOUTME: HTTP handler wiring for the build advisor API
// ABOUTME: Holds the catalog, generator, and build store plus JSON response helpers

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/markalston/pc-build-advisor/catalog"
	"github.com/markalston/pc-build-advisor/config"
	"github.com/markalston/pc-build-advisor/models"
	"github.com/markalston/pc-build-advisor/services"
)

// maxRequestBodySize limits JSON request bodies to 1MB
const maxRequestBodySize = 1 << 20 // 1MB

const defaultMaxVariants = 3

type Handler struct {
	cfg       *config.Config
	catalog   *catalog.Catalog
	generator *services.BuildGenerator
	store     *services.BuildStore
}

// NewHandler wires handlers over an immutable catalog. cfg may be nil in
// tests, in which case defaults apply.
func NewHandler(cfg *config.Config, cat *catalog.Catalog, store *services.BuildStore) *Handler {
	h := &Handler{
		cfg:     cfg,
		catalog: cat,
		store:   store,
	}

	if cat != nil {
		h.generator = services.NewBuildGenerator(cat, services.UUIDGenerator{})
		if cfg != nil {
			h.generator.WithDefaultCompatibilityPriority(cfg.DefaultPrioritizeCompatibility)
		}
	}

	return h
}

func (h *Handler) maxVariants() int {
	if h.cfg != nil && h.cfg.MaxVariants > 0 {
		return h.cfg.MaxVariants
	}
	return defaultMaxVariants
}

// writeJSON writes a JSON response with the given status code.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// writeError writes a JSON error response.
func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.writeErrorDetails(w, message, "", code)
}

func (h *Handler) writeErrorDetails(w http.ResponseWriter, message, details string, code int) {
	h.writeJSON(w, code, models.ErrorResponse{
		Error:   message,
		Details: details,
		Code:    code,
	})
}

// decodeJSON reads a size-limited JSON body into dst. It writes the 400
// response itself and returns false on failure.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.writeError(w, "Request body too large", http.StatusBadRequest)
			return false
		}
		h.writeErrorDetails(w, "Invalid JSON", err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// writeServiceError maps engine errors to HTTP status codes
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrIncompleteCatalog), errors.Is(err, services.ErrNoCompatibleBuild):
		h.writeErrorDetails(w, "Unable to generate a build", err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, services.ErrBuildNotFound):
		h.writeError(w, "Build not found", http.StatusNotFound)
	case errors.Is(err, catalog.ErrUnknownComponent):
		h.writeErrorDetails(w, "Component not found", err.Error(), http.StatusNotFound)
	case errors.Is(err, catalog.ErrWrongCategory):
		h.writeErrorDetails(w, "Invalid build", err.Error(), http.StatusBadRequest)
	default:
		slog.Error("Request failed", "error", err)
		h.writeError(w, "Internal server error", http.StatusInternalServerError)
	}
}
