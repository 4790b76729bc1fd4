// ABOUTME: Resolves a build described by component ids into catalog components
// ABOUTME: Used by the compatibility endpoint and the CLI check command

package catalog

import (
	"errors"
	"fmt"

	"github.com/markalston/pc-build-advisor/models"
)

var (
	// ErrUnknownComponent means a referenced id is not in the catalog
	ErrUnknownComponent = errors.New("unknown component")

	// ErrWrongCategory means an id was placed in a slot of another category
	ErrWrongCategory = errors.New("component in wrong slot")
)

// Resolve looks up every id in sel. Empty slots stay empty so the
// compatibility checker can report them.
func (c *Catalog) Resolve(sel models.BuildSelection) (models.CandidateBuild, error) {
	var b models.CandidateBuild

	single := []struct {
		id   string
		cat  models.Category
		slot **models.Component
	}{
		{sel.CPU, models.CategoryCPU, &b.CPU},
		{sel.GPU, models.CategoryGPU, &b.GPU},
		{sel.Motherboard, models.CategoryMotherboard, &b.Motherboard},
		{sel.PSU, models.CategoryPSU, &b.PSU},
		{sel.Case, models.CategoryCase, &b.Case},
		{sel.Cooling, models.CategoryCooling, &b.Cooling},
	}
	for _, s := range single {
		if s.id == "" {
			continue
		}
		comp, err := c.lookup(s.id, s.cat)
		if err != nil {
			return models.CandidateBuild{}, err
		}
		*s.slot = &comp
	}

	multi := []struct {
		ids  []string
		cat  models.Category
		slot *[]models.Component
	}{
		{sel.Memory, models.CategoryMemory, &b.Memory},
		{sel.Storage, models.CategoryStorage, &b.Storage},
	}
	for _, m := range multi {
		for _, id := range m.ids {
			comp, err := c.lookup(id, m.cat)
			if err != nil {
				return models.CandidateBuild{}, err
			}
			*m.slot = append(*m.slot, comp)
		}
	}

	return b, nil
}

func (c *Catalog) lookup(id string, want models.Category) (models.Component, error) {
	comp, ok := c.ByID(id)
	if !ok {
		return models.Component{}, fmt.Errorf("%w: %q", ErrUnknownComponent, id)
	}
	if comp.Category != want {
		return models.Component{}, fmt.Errorf("%w: %q is a %s, not a %s", ErrWrongCategory, id, comp.Category, want)
	}
	return comp, nil
}
