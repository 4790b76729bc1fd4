// ABOUTME: Read-only indexed view over the component catalog
// ABOUTME: Lookup by category and id plus attribute filters used by the selector

package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/markalston/pc-build-advisor/models"
	"github.com/shopspring/decimal"
)

// Catalog is an immutable set of components. Safe for concurrent reads.
type Catalog struct {
	source     string
	components []models.Component
	byID       map[string]int
	byCategory map[models.Category][]int
}

// Filter narrows a category by attributes. Zero values disable a criterion.
// Criteria that do not apply to the filtered category are ignored.
type Filter struct {
	Socket         string            // CPU, motherboard, cooling (empty cooler socket list is universal)
	MemoryType     string            // memory, motherboard
	FitsFormFactor models.FormFactor // case: accepts a board this size; motherboard: fits a case this size
	MinWattage     int               // PSU
	MinTier        *models.Tier
	MaxPrice       *decimal.Decimal
}

// New indexes components, preserving their order. It rejects duplicate ids
// and components whose attributes do not match their category.
func New(source string, components []models.Component) (*Catalog, error) {
	c := &Catalog{
		source:     source,
		components: make([]models.Component, 0, len(components)),
		byID:       make(map[string]int, len(components)),
		byCategory: make(map[models.Category][]int),
	}

	for i, comp := range components {
		if err := comp.Validate(); err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		if _, dup := c.byID[comp.ID]; dup {
			return nil, fmt.Errorf("component %d: duplicate id %q", i, comp.ID)
		}
		idx := len(c.components)
		c.components = append(c.components, comp)
		c.byID[comp.ID] = idx
		c.byCategory[comp.Category] = append(c.byCategory[comp.Category], idx)
	}

	return c, nil
}

// Source describes where the catalog was loaded from
func (c *Catalog) Source() string {
	return c.source
}

// Len returns the number of components
func (c *Catalog) Len() int {
	return len(c.components)
}

// Counts returns the number of components per category
func (c *Catalog) Counts() map[models.Category]int {
	counts := make(map[models.Category]int, len(c.byCategory))
	for cat, idx := range c.byCategory {
		counts[cat] = len(idx)
	}
	return counts
}

// All returns a copy of every component in source order
func (c *Catalog) All() []models.Component {
	return slices.Clone(c.components)
}

// ByCategory returns the components of a category in source order
func (c *Catalog) ByCategory(cat models.Category) []models.Component {
	idx := c.byCategory[cat]
	out := make([]models.Component, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.components[i])
	}
	return out
}

// ByID returns the component with the given id
func (c *Catalog) ByID(id string) (models.Component, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Component{}, false
	}
	return c.components[i], true
}

// Filter returns the components of a category that satisfy f, in source order
func (c *Catalog) Filter(cat models.Category, f Filter) []models.Component {
	var out []models.Component
	for _, i := range c.byCategory[cat] {
		if f.Matches(c.components[i]) {
			out = append(out, c.components[i])
		}
	}
	return out
}

// Matches reports whether comp satisfies every applicable criterion
func (f Filter) Matches(comp models.Component) bool {
	if f.MaxPrice != nil && comp.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.MinTier != nil && comp.Tier < *f.MinTier {
		return false
	}

	switch comp.Category {
	case models.CategoryCPU:
		return f.Socket == "" || sameToken(comp.CPU.Socket, f.Socket)
	case models.CategoryMotherboard:
		mb := comp.Motherboard
		if f.Socket != "" && !sameToken(mb.Socket, f.Socket) {
			return false
		}
		if f.MemoryType != "" && !sameToken(mb.MemoryType, f.MemoryType) {
			return false
		}
		return f.FitsFormFactor.Fits(mb.FormFactor)
	case models.CategoryMemory:
		return f.MemoryType == "" || sameToken(comp.Memory.Type, f.MemoryType)
	case models.CategoryPSU:
		return comp.PSU.Wattage >= f.MinWattage
	case models.CategoryCase:
		return comp.Case.FormFactor.Fits(f.FitsFormFactor)
	case models.CategoryCooling:
		return f.Socket == "" || SupportsSocket(comp, f.Socket)
	}
	return true
}

// SupportsSocket reports whether a cooler mounts on socket.
// An empty socket list means universal.
func SupportsSocket(cooler models.Component, socket string) bool {
	if cooler.Cooling == nil || len(cooler.Cooling.Sockets) == 0 {
		return true
	}
	for _, s := range cooler.Cooling.Sockets {
		if sameToken(s, socket) {
			return true
		}
	}
	return false
}

func sameToken(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
