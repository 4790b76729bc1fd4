// ABOUTME: Build working state, compatibility triage, and finished build output
// ABOUTME: CandidateBuild is filled slot by slot; FinishedBuild is immutable once produced

package models

import (
	"github.com/shopspring/decimal"
)

// CandidateBuild maps each category to its selected component(s).
// Memory and storage hold small ordered lists.
type CandidateBuild struct {
	CPU         *Component  `json:"cpu,omitempty"`
	GPU         *Component  `json:"gpu,omitempty"`
	Motherboard *Component  `json:"motherboard,omitempty"`
	Memory      []Component `json:"memory,omitempty"`
	Storage     []Component `json:"storage,omitempty"`
	PSU         *Component  `json:"psu,omitempty"`
	Case        *Component  `json:"case,omitempty"`
	Cooling     *Component  `json:"cooling,omitempty"`
}

// Parts returns every selected component, flattening list slots, in build order
func (b *CandidateBuild) Parts() []Component {
	var parts []Component
	for _, c := range []*Component{b.CPU, b.Motherboard} {
		if c != nil {
			parts = append(parts, *c)
		}
	}
	parts = append(parts, b.Memory...)
	if b.GPU != nil {
		parts = append(parts, *b.GPU)
	}
	parts = append(parts, b.Storage...)
	for _, c := range []*Component{b.PSU, b.Case, b.Cooling} {
		if c != nil {
			parts = append(parts, *c)
		}
	}
	return parts
}

// MemoryCapacityGB sums the capacity of every memory kit
func (b *CandidateBuild) MemoryCapacityGB() int {
	total := 0
	for _, m := range b.Memory {
		if m.Memory != nil {
			total += m.Memory.CapacityGB
		}
	}
	return total
}

// HasNVMe reports whether any storage device uses the NVMe interface
func (b *CandidateBuild) HasNVMe() bool {
	for _, s := range b.Storage {
		if s.Storage != nil && s.Storage.Interface == InterfaceNVMe {
			return true
		}
	}
	return false
}

// CompatibilityResult is the checker's triage. IsValid is true iff Errors is empty.
type CompatibilityResult struct {
	IsValid     bool     `json:"is_valid"`
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}

// Relaxation records a selection constraint that was dropped to find a candidate
type Relaxation struct {
	Category Category `json:"category"`
	Dropped  string   `json:"dropped"`
}

// FinishedBuild is the engine's output for one generation
type FinishedBuild struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Components       CandidateBuild      `json:"components"`
	TotalPrice       decimal.Decimal     `json:"total_price"`
	EstimatedPower   int                 `json:"estimated_power"`
	Compatibility    CompatibilityResult `json:"compatibility"`
	PerformanceScore int                 `json:"performance_score"`
	ValueScore       int                 `json:"value_score"`
	Description      string              `json:"description"`
	Recommendations  []string            `json:"recommendations"`
	Fallback         bool                `json:"fallback"`
	Relaxations      []Relaxation        `json:"relaxations,omitempty"`
}
