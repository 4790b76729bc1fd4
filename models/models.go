// ABOUTME: Request and response bodies for the build advisor HTTP API
// ABOUTME: JSON-serializable structures shared by the server and the CLI client

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GenerateBuildRequest is the body of POST /api/v1/builds
type GenerateBuildRequest struct {
	Preferences UserPreferences    `json:"preferences"`
	Options     *GenerationOptions `json:"options,omitempty"`
}

// VariantsRequest is the body of POST /api/v1/builds/variants
type VariantsRequest struct {
	Preferences UserPreferences `json:"preferences"`
	Count       int             `json:"count,omitempty"`
}

// VariantsResponse lists generated builds in balanced, performance, economy order
type VariantsResponse struct {
	Builds []FinishedBuild `json:"builds"`
}

// BuildSelection names catalog components by ID for a manually assembled build
type BuildSelection struct {
	CPU         string   `json:"cpu,omitempty" yaml:"cpu"`
	GPU         string   `json:"gpu,omitempty" yaml:"gpu"`
	Motherboard string   `json:"motherboard,omitempty" yaml:"motherboard"`
	Memory      []string `json:"memory,omitempty" yaml:"memory"`
	Storage     []string `json:"storage,omitempty" yaml:"storage"`
	PSU         string   `json:"psu,omitempty" yaml:"psu"`
	Case        string   `json:"case,omitempty" yaml:"case"`
	Cooling     string   `json:"cooling,omitempty" yaml:"cooling"`
}

// CompatibilityRequest is the body of POST /api/v1/compatibility
type CompatibilityRequest struct {
	Build      BuildSelection `json:"build"`
	PrimaryUse []UseCase      `json:"primary_use,omitempty"`
}

// CompatibilityResponse reports the triage plus aggregates for a manual build
type CompatibilityResponse struct {
	Compatibility  CompatibilityResult `json:"compatibility"`
	TotalPrice     decimal.Decimal     `json:"total_price"`
	EstimatedPower int                 `json:"estimated_power"`
}

// AllocationRequest is the body of POST /api/v1/budget/allocation
type AllocationRequest struct {
	Budget      decimal.Decimal  `json:"budget"`
	Performance PerformanceLevel `json:"performance"`
}

// AllocationResponse lists the per-category spending envelope
type AllocationResponse struct {
	Tier      Tier                         `json:"tier"`
	Envelopes map[Category]decimal.Decimal `json:"envelopes"`
}

// BudgetAnalysisRequest is the body of POST /api/v1/budget/analysis
type BudgetAnalysisRequest struct {
	Preferences UserPreferences `json:"preferences"`
}

// BudgetAnalysis compares the user's budget against catalog averages
type BudgetAnalysis struct {
	RecommendedBudget decimal.Decimal              `json:"recommended_budget"`
	AveragePrices     map[Category]decimal.Decimal `json:"average_prices"`
	Assessment        string                       `json:"assessment"`
	Tips              []string                     `json:"tips"`
}

// ComponentsResponse lists catalog components
type ComponentsResponse struct {
	Components []Component `json:"components"`
	Count      int         `json:"count"`
}

// HealthResponse is returned by GET /api/v1/health
type HealthResponse struct {
	Status         string         `json:"status"`
	CatalogSource  string         `json:"catalog_source"`
	CatalogSize    int            `json:"catalog_size"`
	CategoryCounts map[string]int `json:"category_counts"`
	CachedBuilds   int            `json:"cached_builds"`
	Timestamp      time.Time      `json:"timestamp"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code"`
}
