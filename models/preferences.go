// ABOUTME: User preferences and generation options that drive build generation
// ABOUTME: Use-case tags, performance levels, brand leanings, and priority weights

package models

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// UseCase is a primary-use tag from the questionnaire
type UseCase string

const (
	UseGamingAAA    UseCase = "gaming-aaa"
	UseGamingCasual UseCase = "gaming-casual"
	UseVideoEditing UseCase = "content-video"
	UsePhotoEditing UseCase = "content-photo"
	UseProgramming  UseCase = "programming"
	UseOffice       UseCase = "office"
	UseStreaming    UseCase = "streaming"
	UseModeling3D   UseCase = "modeling-3d"
	UseAIML         UseCase = "ai-ml"
	UseGeneral      UseCase = "general"
)

// UseCases lists every known use-case tag
var UseCases = []UseCase{
	UseGamingAAA, UseGamingCasual, UseVideoEditing, UsePhotoEditing, UseProgramming,
	UseOffice, UseStreaming, UseModeling3D, UseAIML, UseGeneral,
}

// gpuUseCases need a dedicated graphics card
var gpuUseCases = []UseCase{UseGamingAAA, UseGamingCasual, UseVideoEditing, UseModeling3D, UseAIML}

// highMemoryUseCases raise the memory capacity threshold to 32GB
var highMemoryUseCases = []UseCase{UseVideoEditing, UseModeling3D, UseAIML}

// bulkStorageUseCases benefit from a secondary high-capacity drive
var bulkStorageUseCases = []UseCase{UseVideoEditing, UseModeling3D}

// PerformanceLevel is the user's target performance level
type PerformanceLevel string

const (
	PerformanceBudget   PerformanceLevel = "budget"
	PerformanceBalanced PerformanceLevel = "balanced"
	PerformanceHighEnd  PerformanceLevel = "high-end"
)

// Tier maps a performance level to the component tier the engine targets.
// Unknown levels map to mid.
func (p PerformanceLevel) Tier() Tier {
	switch p {
	case PerformanceBudget:
		return TierBudget
	case PerformanceHighEnd:
		return TierHigh
	}
	return TierMid
}

// Valid reports whether p is a known performance level
func (p PerformanceLevel) Valid() bool {
	switch p {
	case PerformanceBudget, PerformanceBalanced, PerformanceHighEnd:
		return true
	}
	return false
}

// BudgetRange is a spending range. Max is the binding constraint.
type BudgetRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// BrandPreferences are soft brand filters
type BrandPreferences struct {
	Preferred []string `json:"preferred"`
	Avoid     []string `json:"avoid"`
}

// Priorities are 1-10 weights gathered by the questionnaire
type Priorities struct {
	QuietOperation   int `json:"quiet_operation"`
	EnergyEfficiency int `json:"energy_efficiency"`
	FutureProofing   int `json:"future_proofing"`
	Aesthetics       int `json:"aesthetics"`
}

// Special requirement tags recognised by the selector
const (
	RequirementCompact         = "compact"
	RequirementSmallFormFactor = "small-form-factor"
)

// UserPreferences is one user's stated intent. The engine never mutates it.
type UserPreferences struct {
	ID                  string           `json:"id"`
	PrimaryUse          []UseCase        `json:"primary_use"`
	Budget              BudgetRange      `json:"budget"`
	Performance         PerformanceLevel `json:"performance"`
	Brands              BrandPreferences `json:"brands"`
	Priorities          Priorities       `json:"priorities"`
	SpecialRequirements []string         `json:"special_requirements,omitempty"`
}

// Validate checks the fields the engine relies on
func (p *UserPreferences) Validate() error {
	if !p.Budget.Max.IsPositive() {
		return fmt.Errorf("budget max must be positive")
	}
	if p.Budget.Min.IsNegative() {
		return fmt.Errorf("budget min must not be negative")
	}
	if p.Budget.Min.GreaterThan(p.Budget.Max) {
		return fmt.Errorf("budget min %s exceeds max %s", p.Budget.Min, p.Budget.Max)
	}
	if p.Performance != "" && !p.Performance.Valid() {
		return fmt.Errorf("unknown performance level %q", p.Performance)
	}
	for name, v := range map[string]int{
		"quiet_operation":   p.Priorities.QuietOperation,
		"energy_efficiency": p.Priorities.EnergyEfficiency,
		"future_proofing":   p.Priorities.FutureProofing,
		"aesthetics":        p.Priorities.Aesthetics,
	} {
		if v != 0 && (v < 1 || v > 10) {
			return fmt.Errorf("priority %s must be between 1 and 10, got %d", name, v)
		}
	}
	return nil
}

// Uses reports whether any of the given use cases is a primary use
func (p *UserPreferences) Uses(cases ...UseCase) bool {
	for _, u := range p.PrimaryUse {
		if slices.Contains(cases, u) {
			return true
		}
	}
	return false
}

// NeedsGPU reports whether a primary use requires a dedicated graphics card
func (p *UserPreferences) NeedsGPU() bool {
	return p.Uses(gpuUseCases...)
}

// NeedsHighMemory reports whether a primary use calls for 32GB or more
func (p *UserPreferences) NeedsHighMemory() bool {
	return p.Uses(highMemoryUseCases...)
}

// NeedsBulkStorage reports whether a primary use benefits from a second drive
func (p *UserPreferences) NeedsBulkStorage() bool {
	return p.Uses(bulkStorageUseCases...)
}

// WantsCompact reports whether the user asked for a small build
func (p *UserPreferences) WantsCompact() bool {
	for _, r := range p.SpecialRequirements {
		switch strings.ToLower(strings.TrimSpace(r)) {
		case RequirementCompact, RequirementSmallFormFactor:
			return true
		}
	}
	return false
}

// GenerationOptions tune a single generation. Nil fields take their defaults.
type GenerationOptions struct {
	Budget                  *BudgetRange `json:"budget,omitempty"`
	PrioritizeCompatibility *bool        `json:"prioritize_compatibility,omitempty"`
	PrioritizePerformance   *bool        `json:"prioritize_performance,omitempty"`
	PrioritizeValue         *bool        `json:"prioritize_value,omitempty"`
	IncludeCooling          *bool        `json:"include_cooling,omitempty"`
	IncludeCase             *bool        `json:"include_case,omitempty"`
}

// ResolvedOptions is GenerationOptions with every default applied
type ResolvedOptions struct {
	Budget                  BudgetRange
	PrioritizeCompatibility bool
	PrioritizePerformance   bool
	PrioritizeValue         bool
	IncludeCooling          bool
	IncludeCase             bool
}

// Resolve applies defaults from prefs. defaultCompat is used when
// PrioritizeCompatibility is unset.
func (o *GenerationOptions) Resolve(prefs *UserPreferences, defaultCompat bool) ResolvedOptions {
	r := ResolvedOptions{
		Budget:                  prefs.Budget,
		PrioritizeCompatibility: defaultCompat,
		PrioritizePerformance:   prefs.Performance == PerformanceHighEnd,
		PrioritizeValue:         prefs.Performance == PerformanceBudget,
		IncludeCooling:          true,
		IncludeCase:             true,
	}
	if o == nil {
		return r
	}
	if o.Budget != nil {
		r.Budget = *o.Budget
	}
	pick := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	pick(&r.PrioritizeCompatibility, o.PrioritizeCompatibility)
	pick(&r.PrioritizePerformance, o.PrioritizePerformance)
	pick(&r.PrioritizeValue, o.PrioritizeValue)
	pick(&r.IncludeCooling, o.IncludeCooling)
	pick(&r.IncludeCase, o.IncludeCase)
	return r
}

// Bool returns a pointer to b, for populating GenerationOptions
func Bool(b bool) *bool {
	return &b
}
