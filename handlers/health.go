// ABOUTME: HTTP handler for the health endpoint
// ABOUTME: Reports catalog source, size per category, and cached build count

package handlers

import (
	"net/http"
	"time"

	"github.com/markalston/pc-build-advisor/models"
)

// Health returns API health status including catalog and cache status.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthResponse{
		Status:         "ok",
		CatalogSource:  "not_loaded",
		CategoryCounts: make(map[string]int),
		Timestamp:      time.Now().UTC(),
	}

	if h.catalog != nil {
		resp.CatalogSource = h.catalog.Source()
		resp.CatalogSize = h.catalog.Len()
		for cat, n := range h.catalog.Counts() {
			resp.CategoryCounts[string(cat)] = n
		}
	} else {
		resp.Status = "degraded"
	}
	if h.store != nil {
		resp.CachedBuilds = h.store.Len()
	}

	h.writeJSON(w, http.StatusOK, resp)
}
