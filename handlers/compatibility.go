// ABOUTME: HTTP handler for checking a manually assembled build
// ABOUTME: Resolves component ids against the catalog and runs the compatibility checker

package handlers

import (
	"net/http"

	"github.com/markalston/pc-build-advisor/models"
	"github.com/markalston/pc-build-advisor/services"
)

// CheckCompatibility validates a build given as component ids
func (h *Handler) CheckCompatibility(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil {
		h.writeError(w, "Catalog not loaded", http.StatusServiceUnavailable)
		return
	}

	var req models.CompatibilityRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	build, err := h.catalog.Resolve(req.Build)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, models.CompatibilityResponse{
		Compatibility:  services.CheckCompatibility(&build, req.PrimaryUse...),
		TotalPrice:     services.TotalPrice(&build),
		EstimatedPower: services.EstimatedPower(&build),
	})
}
