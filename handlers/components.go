// ABOUTME: HTTP handlers for browsing the component catalog
// ABOUTME: Lists components by category and filters, looks up ids, and suggests alternatives

package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/markalston/pc-build-advisor/catalog"
	"github.com/markalston/pc-build-advisor/models"
	"github.com/markalston/pc-build-advisor/services"
	"github.com/shopspring/decimal"
)

// ListComponents returns catalog components. Without a category query
// parameter every component is returned and filters are ignored.
func (h *Handler) ListComponents(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil {
		h.writeError(w, "Catalog not loaded", http.StatusServiceUnavailable)
		return
	}

	q := r.URL.Query()
	raw := q.Get("category")
	if raw == "" {
		all := h.catalog.All()
		h.writeJSON(w, http.StatusOK, models.ComponentsResponse{Components: all, Count: len(all)})
		return
	}

	category, err := models.ParseCategory(raw)
	if err != nil {
		h.writeErrorDetails(w, "Invalid category", err.Error(), http.StatusBadRequest)
		return
	}

	filter, err := parseFilter(q)
	if err != nil {
		h.writeErrorDetails(w, "Invalid filter", err.Error(), http.StatusBadRequest)
		return
	}

	comps := h.catalog.Filter(category, filter)
	if comps == nil {
		comps = []models.Component{}
	}
	h.writeJSON(w, http.StatusOK, models.ComponentsResponse{Components: comps, Count: len(comps)})
}

// GetComponent returns one component by id
func (h *Handler) GetComponent(w http.ResponseWriter, r *http.Request) {
	comp, ok := h.lookupComponent(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, comp)
}

// GetAlternatives lists same-category components priced at or under the
// budget query parameter, defaulting to the component's own price
func (h *Handler) GetAlternatives(w http.ResponseWriter, r *http.Request) {
	comp, ok := h.lookupComponent(w, r)
	if !ok {
		return
	}

	budget := comp.Price
	if raw := r.URL.Query().Get("budget"); raw != "" {
		b, err := decimal.NewFromString(raw)
		if err != nil || b.IsNegative() {
			h.writeError(w, "Invalid budget", http.StatusBadRequest)
			return
		}
		budget = b
	}

	alts := services.Alternatives(h.catalog, comp, budget)
	if alts == nil {
		alts = []models.Component{}
	}
	h.writeJSON(w, http.StatusOK, models.ComponentsResponse{Components: alts, Count: len(alts)})
}

func (h *Handler) lookupComponent(w http.ResponseWriter, r *http.Request) (models.Component, bool) {
	if h.catalog == nil {
		h.writeError(w, "Catalog not loaded", http.StatusServiceUnavailable)
		return models.Component{}, false
	}

	id := r.PathValue("id")
	if err := services.ValidateComponentID(id); err != nil {
		h.writeErrorDetails(w, "Invalid component id", err.Error(), http.StatusBadRequest)
		return models.Component{}, false
	}

	comp, ok := h.catalog.ByID(id)
	if !ok {
		h.writeError(w, "Component not found", http.StatusNotFound)
		return models.Component{}, false
	}
	return comp, true
}

func parseFilter(q url.Values) (catalog.Filter, error) {
	f := catalog.Filter{
		Socket:     q.Get("socket"),
		MemoryType: q.Get("memory_type"),
	}

	if raw := q.Get("form_factor"); raw != "" {
		ff, err := models.ParseFormFactor(raw)
		if err != nil {
			return f, err
		}
		f.FitsFormFactor = ff
	}
	if raw := q.Get("min_wattage"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return f, fmt.Errorf("min_wattage must be a non-negative integer, got %q", raw)
		}
		f.MinWattage = n
	}
	if raw := q.Get("min_tier"); raw != "" {
		tier, err := models.ParseTier(raw)
		if err != nil {
			return f, err
		}
		f.MinTier = &tier
	}
	if raw := q.Get("max_price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil || price.IsNegative() {
			return f, fmt.Errorf("max_price must be a non-negative number, got %q", raw)
		}
		f.MaxPrice = &price
	}
	return f, nil
}
