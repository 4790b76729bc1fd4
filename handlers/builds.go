// ABOUTME: HTTP handlers for build generation and retrieval
// ABOUTME: Generates single builds and variants, stores them, and exports them as text

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/markalston/pc-build-advisor/middleware"
	"github.com/markalston/pc-build-advisor/models"
	"github.com/markalston/pc-build-advisor/services"
)

// GenerateBuild runs the generator for one set of preferences and stores
// the result. Invalid builds are still returned with 200; the
// compatibility block carries the errors.
func (h *Handler) GenerateBuild(w http.ResponseWriter, r *http.Request) {
	if h.generator == nil {
		h.writeError(w, "Catalog not loaded", http.StatusServiceUnavailable)
		return
	}

	var req models.GenerateBuildRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Preferences.Validate(); err != nil {
		h.writeErrorDetails(w, "Invalid preferences", err.Error(), http.StatusBadRequest)
		return
	}

	fb, err := h.generator.Generate(&req.Preferences, req.Options)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	if h.store != nil {
		h.store.Save(fb)
	}
	slog.Info("Build generated",
		"request_id", middleware.RequestID(r.Context()),
		"build_id", fb.ID,
		"valid", fb.Compatibility.IsValid,
		"fallback", fb.Fallback,
		"total_price", fb.TotalPrice.StringFixed(2))

	h.writeJSON(w, http.StatusOK, fb)
}

// GenerateVariants returns balanced, performance and economy builds.
// Count defaults to and is capped at the configured maximum.
func (h *Handler) GenerateVariants(w http.ResponseWriter, r *http.Request) {
	if h.generator == nil {
		h.writeError(w, "Catalog not loaded", http.StatusServiceUnavailable)
		return
	}

	var req models.VariantsRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Preferences.Validate(); err != nil {
		h.writeErrorDetails(w, "Invalid preferences", err.Error(), http.StatusBadRequest)
		return
	}
	if req.Count < 0 {
		h.writeError(w, "Count must not be negative", http.StatusBadRequest)
		return
	}

	count := req.Count
	if count == 0 || count > h.maxVariants() {
		count = h.maxVariants()
	}

	builds, err := h.generator.GenerateVariants(r.Context(), &req.Preferences, count)
	if errors.Is(err, context.Canceled) {
		slog.Debug("Variant generation cancelled", "request_id", middleware.RequestID(r.Context()))
		return
	}
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	if h.store != nil {
		for i := range builds {
			h.store.Save(&builds[i])
		}
	}

	h.writeJSON(w, http.StatusOK, models.VariantsResponse{Builds: builds})
}

// GetBuild returns a previously generated build
func (h *Handler) GetBuild(w http.ResponseWriter, r *http.Request) {
	fb, ok := h.lookupBuild(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, fb)
}

// ExportBuild renders a previously generated build as a plain text parts list
func (h *Handler) ExportBuild(w http.ResponseWriter, r *http.Request) {
	fb, ok := h.lookupBuild(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(services.ExportText(fb))); err != nil {
		slog.Error("Failed to write export", "build_id", fb.ID, "error", err)
	}
}

func (h *Handler) lookupBuild(w http.ResponseWriter, r *http.Request) (*models.FinishedBuild, bool) {
	if h.store == nil {
		h.writeError(w, "Build store not configured", http.StatusServiceUnavailable)
		return nil, false
	}

	id := r.PathValue("id")
	if err := services.ValidateBuildID(id); err != nil {
		h.writeErrorDetails(w, "Invalid build id", err.Error(), http.StatusBadRequest)
		return nil, false
	}

	fb, err := h.store.Get(id)
	if err != nil {
		h.writeServiceError(w, err)
		return nil, false
	}
	return fb, true
}
