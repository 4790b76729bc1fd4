// ABOUTME: Actionable recommendations attached to finished builds
// ABOUTME: Derived from use cases, budget usage, compatibility warnings, and priorities

package services

import (
	"fmt"

	"github.com/markalston/pc-build-advisor/models"
	"github.com/shopspring/decimal"
)

const (
	// MaxRecommendations caps the recommendations attached to a build
	MaxRecommendations = 3

	futureProofingThreshold = 7
)

var (
	lowBudgetUse  = decimal.NewFromInt(80)
	fullBudgetUse = decimal.NewFromInt(100)
)

// Recommend returns at most MaxRecommendations hints, most specific first
func Recommend(fb *models.FinishedBuild, prefs *models.UserPreferences, budget models.BudgetRange) []string {
	b := &fb.Components
	var recs []string

	if prefs.Uses(models.UseGamingAAA) && b.GPU != nil && b.GPU.Tier == models.TierBudget {
		recs = append(recs, "Consider a stronger graphics card for recent AAA games")
	}
	if prefs.Uses(models.UseVideoEditing) && b.MemoryCapacityGB() < recommendedMemoryGB {
		recs = append(recs, "32GB of memory is recommended for professional video editing")
	}
	if prefs.Uses(models.UseStreaming) && b.GPU == nil {
		recs = append(recs, "A dedicated graphics card would improve streaming performance")
	}

	if budget.Max.IsPositive() {
		used := fb.TotalPrice.Div(budget.Max).Mul(decimal.NewFromInt(100))
		switch {
		case used.GreaterThan(fullBudgetUse):
			recs = append(recs, fmt.Sprintf("Build exceeds your budget by %s", fb.TotalPrice.Sub(budget.Max).StringFixed(2)))
		case used.LessThan(lowBudgetUse):
			recs = append(recs, fmt.Sprintf("Budget %s%% used, there is room to upgrade performance", used.Round(0)))
		}
	}

	if len(fb.Compatibility.Warnings) > 0 {
		recs = append(recs, "Review the compatibility warnings before purchasing")
	}
	if prefs.Priorities.FutureProofing >= futureProofingThreshold {
		recs = append(recs, "This platform leaves room for future upgrades")
	}

	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}
	return recs
}
