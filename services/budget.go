// ABOUTME: Budget allocator mapping a total budget and tier to per-category envelopes
// ABOUTME: The fraction table is the single tunable policy surface

package services

import (
	"github.com/markalston/pc-build-advisor/models"
	"github.com/shopspring/decimal"
)

// Allocation is the spending envelope per category
type Allocation map[models.Category]decimal.Decimal

// Envelope returns the allotment for a category, zero when absent
func (a Allocation) Envelope(cat models.Category) decimal.Decimal {
	return a[cat]
}

// budgetFractions are shares of the total budget per tier. Each share caps
// its category and rows do not sum to 1. Every column is non-decreasing
// from budget to enthusiast.
var budgetFractions = map[models.Tier]map[models.Category]string{
	models.TierBudget: {
		models.CategoryCPU: "0.15", models.CategoryGPU: "0.25", models.CategoryMotherboard: "0.08", models.CategoryMemory: "0.10",
		models.CategoryStorage: "0.10", models.CategoryPSU: "0.08", models.CategoryCase: "0.06", models.CategoryCooling: "0.05",
	},
	models.TierMid: {
		models.CategoryCPU: "0.18", models.CategoryGPU: "0.30", models.CategoryMotherboard: "0.10", models.CategoryMemory: "0.12",
		models.CategoryStorage: "0.12", models.CategoryPSU: "0.08", models.CategoryCase: "0.06", models.CategoryCooling: "0.06",
	},
	models.TierHigh: {
		models.CategoryCPU: "0.20", models.CategoryGPU: "0.35", models.CategoryMotherboard: "0.12", models.CategoryMemory: "0.15",
		models.CategoryStorage: "0.15", models.CategoryPSU: "0.10", models.CategoryCase: "0.08", models.CategoryCooling: "0.10",
	},
	models.TierEnthusiast: {
		models.CategoryCPU: "0.22", models.CategoryGPU: "0.40", models.CategoryMotherboard: "0.15", models.CategoryMemory: "0.18",
		models.CategoryStorage: "0.18", models.CategoryPSU: "0.12", models.CategoryCase: "0.10", models.CategoryCooling: "0.15",
	},
}

// BudgetFraction returns the share of the total budget a category receives
// at a tier. Unknown tiers use the mid row.
func BudgetFraction(tier models.Tier, cat models.Category) decimal.Decimal {
	row, ok := budgetFractions[tier]
	if !ok {
		row = budgetFractions[models.TierMid]
	}
	f, ok := row[cat]
	if !ok {
		return decimal.Zero
	}
	return decimal.RequireFromString(f)
}

// AllocateBudget splits total into per-category envelopes for tier
func AllocateBudget(total decimal.Decimal, tier models.Tier) Allocation {
	alloc := make(Allocation, len(models.Categories))
	for _, cat := range models.Categories {
		alloc[cat] = total.Mul(BudgetFraction(tier, cat))
	}
	return alloc
}
