// ABOUTME: HTTP handlers for budget planning
// ABOUTME: Exposes the per-category allocation table and the catalog-based budget analysis

package handlers

import (
	"net/http"

	"github.com/markalston/pc-build-advisor/models"
	"github.com/markalston/pc-build-advisor/services"
)

// AllocateBudget returns the spending envelope per category for a budget
// and performance level
func (h *Handler) AllocateBudget(w http.ResponseWriter, r *http.Request) {
	var req models.AllocationRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if !req.Budget.IsPositive() {
		h.writeError(w, "Budget must be positive", http.StatusBadRequest)
		return
	}
	if req.Performance != "" && !req.Performance.Valid() {
		h.writeError(w, "Invalid performance level", http.StatusBadRequest)
		return
	}

	tier := req.Performance.Tier()
	h.writeJSON(w, http.StatusOK, models.AllocationResponse{
		Tier:      tier,
		Envelopes: services.AllocateBudget(req.Budget, tier),
	})
}

// AnalyzeBudget compares the user's budget with catalog averages
func (h *Handler) AnalyzeBudget(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil {
		h.writeError(w, "Catalog not loaded", http.StatusServiceUnavailable)
		return
	}

	var req models.BudgetAnalysisRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Preferences.Validate(); err != nil {
		h.writeErrorDetails(w, "Invalid preferences", err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, http.StatusOK, services.AnalyzeBudget(h.catalog, &req.Preferences))
}
