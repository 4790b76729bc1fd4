// ABOUTME: Catalog-wide advice: component alternatives and budget analysis
// ABOUTME: Compares a user's budget with average prices for their target tier

package services

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/markalston/pc-build-advisor/catalog"
	"github.com/markalston/pc-build-advisor/models"
	"github.com/shopspring/decimal"
)

// MaxAlternatives caps the alternatives returned for one component
const MaxAlternatives = 5

// Budget assessments
const (
	AssessmentInsufficient = "insufficient"
	AssessmentAppropriate  = "appropriate"
	AssessmentGenerous     = "generous"
)

var (
	insufficientRatio = decimal.RequireFromString("0.8")
	generousRatio     = decimal.RequireFromString("1.3")
)

// analysisCategories are priced in a budget analysis. Cooling is not.
var analysisCategories = []models.Category{
	models.CategoryCPU,
	models.CategoryGPU,
	models.CategoryMotherboard,
	models.CategoryMemory,
	models.CategoryStorage,
	models.CategoryPSU,
	models.CategoryCase,
}

// Alternatives lists other components of the same category priced at or
// under budget, highest tier first and cheapest first within a tier
func Alternatives(cat *catalog.Catalog, comp models.Component, budget decimal.Decimal) []models.Component {
	var alts []models.Component
	for _, c := range cat.ByCategory(comp.Category) {
		if c.ID != comp.ID && !c.Price.GreaterThan(budget) {
			alts = append(alts, c)
		}
	}
	slices.SortStableFunc(alts, func(a, b models.Component) int {
		if d := cmp.Compare(b.Tier, a.Tier); d != 0 {
			return d
		}
		return a.Price.Cmp(b.Price)
	})
	if len(alts) > MaxAlternatives {
		alts = alts[:MaxAlternatives]
	}
	return alts
}

// AnalyzeBudget averages catalog prices within one tier of the target tier
// for each category and compares the sum with the user's budget. GPUs are
// only priced when a primary use needs one.
func AnalyzeBudget(cat *catalog.Catalog, prefs *models.UserPreferences) models.BudgetAnalysis {
	tier := prefs.Performance.Tier()
	averages := make(map[models.Category]decimal.Decimal)
	recommended := decimal.Zero

	for _, category := range analysisCategories {
		if category == models.CategoryGPU && !prefs.NeedsGPU() {
			continue
		}
		comps := keep(cat.ByCategory(category), func(c models.Component) bool { return c.Tier.Within(tier) })
		if len(comps) == 0 {
			comps = cat.ByCategory(category)
		}
		if len(comps) == 0 {
			continue
		}
		sum := decimal.Zero
		for _, c := range comps {
			sum = sum.Add(c.Price)
		}
		avg := sum.Div(decimal.NewFromInt(int64(len(comps)))).Round(2)
		averages[category] = avg
		recommended = recommended.Add(avg)
	}

	analysis := models.BudgetAnalysis{
		RecommendedBudget: recommended.Round(0),
		AveragePrices:     averages,
	}

	current := prefs.Budget.Max
	switch {
	case current.LessThan(recommended.Mul(insufficientRatio)):
		analysis.Assessment = AssessmentInsufficient
		analysis.Tips = []string{
			fmt.Sprintf("Budget is below the %s typically needed for a %s tier build", analysis.RecommendedBudget, tier),
			"Consider used or refurbished components",
		}
	case current.GreaterThan(recommended.Mul(generousRatio)):
		analysis.Assessment = AssessmentGenerous
		analysis.Tips = []string{
			"Generous budget, there is room for significant upgrades",
			"Invest in high-end components for longevity",
		}
	default:
		analysis.Assessment = AssessmentAppropriate
		analysis.Tips = []string{
			"Budget is appropriate for your needs",
			"Good balance between performance and price",
		}
	}
	return analysis
}
