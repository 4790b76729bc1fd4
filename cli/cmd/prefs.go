// ABOUTME: Preference and generation-option flags shared by build commands
// ABOUTME: Converts flag values into UserPreferences and GenerationOptions

package cmd

import (
	"fmt"
	"strings"

	"github.com/markalston/pc-build-advisor/models"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// prefFlags holds the raw flag values for one command
type prefFlags struct {
	uses         []string
	budget       string
	budgetMin    string
	performance  string
	prefer       []string
	avoid        []string
	requirements []string
	quiet        int
	efficiency   int
	futureProof  int
	aesthetics   int

	prioritizePerformance bool
	prioritizeValue       bool
	noCompatibility       bool
	noCase                bool
	noCooling             bool
}

// register adds the preference flags to cmd. withOptions adds the generation options too.
func (p *prefFlags) register(cmd *cobra.Command, withOptions bool) {
	f := cmd.Flags()
	f.StringSliceVar(&p.uses, "use", []string{string(models.UseGeneral)}, "Primary uses, e.g. gaming-aaa,streaming")
	f.StringVar(&p.budget, "budget", "", "Maximum budget in USD (required)")
	f.StringVar(&p.budgetMin, "budget-min", "", "Minimum budget in USD")
	f.StringVar(&p.performance, "performance", string(models.PerformanceBalanced), "Performance level: budget, balanced, high-end")
	f.StringSliceVar(&p.prefer, "prefer", nil, "Preferred brands")
	f.StringSliceVar(&p.avoid, "avoid", nil, "Brands to avoid")
	f.StringSliceVar(&p.requirements, "require", nil, "Special requirements, e.g. compact")
	f.IntVar(&p.quiet, "quiet", 0, "Quiet operation priority (1-10)")
	f.IntVar(&p.efficiency, "efficiency", 0, "Energy efficiency priority (1-10)")
	f.IntVar(&p.futureProof, "future-proofing", 0, "Future-proofing priority (1-10)")
	f.IntVar(&p.aesthetics, "aesthetics", 0, "Aesthetics priority (1-10)")

	if withOptions {
		f.BoolVar(&p.prioritizePerformance, "prioritize-performance", false, "Favor the most capable parts in each budget envelope")
		f.BoolVar(&p.prioritizeValue, "prioritize-value", false, "Favor price-to-performance in each budget envelope")
		f.BoolVar(&p.noCompatibility, "no-compatibility-priority", false, "Allow the fallback path to return builds with compatibility errors")
		f.BoolVar(&p.noCase, "no-case", false, "Leave the case out of the build")
		f.BoolVar(&p.noCooling, "no-cooling", false, "Leave the aftermarket cooler out of the build")
	}
}

// preferences converts the flags into validated preferences
func (p *prefFlags) preferences() (*models.UserPreferences, error) {
	if strings.TrimSpace(p.budget) == "" {
		return nil, fmt.Errorf("--budget is required")
	}
	maxBudget, err := decimal.NewFromString(strings.TrimSpace(p.budget))
	if err != nil {
		return nil, fmt.Errorf("invalid --budget %q", p.budget)
	}
	minBudget := decimal.Zero
	if strings.TrimSpace(p.budgetMin) != "" {
		if minBudget, err = decimal.NewFromString(strings.TrimSpace(p.budgetMin)); err != nil {
			return nil, fmt.Errorf("invalid --budget-min %q", p.budgetMin)
		}
	}

	prefs := &models.UserPreferences{
		Budget:      models.BudgetRange{Min: minBudget, Max: maxBudget},
		Performance: models.PerformanceLevel(strings.ToLower(p.performance)),
		Brands: models.BrandPreferences{
			Preferred: p.prefer,
			Avoid:     p.avoid,
		},
		Priorities: models.Priorities{
			QuietOperation:   p.quiet,
			EnergyEfficiency: p.efficiency,
			FutureProofing:   p.futureProof,
			Aesthetics:       p.aesthetics,
		},
		SpecialRequirements: p.requirements,
	}
	for _, u := range p.uses {
		uc, err := parseUseCase(u)
		if err != nil {
			return nil, err
		}
		prefs.PrimaryUse = append(prefs.PrimaryUse, uc)
	}

	if err := prefs.Validate(); err != nil {
		return nil, err
	}
	return prefs, nil
}

// options returns the generation options for flags the user set, nil when none were
func (p *prefFlags) options(cmd *cobra.Command) *models.GenerationOptions {
	f := cmd.Flags()
	var opts models.GenerationOptions
	set := false

	if f.Changed("prioritize-performance") {
		opts.PrioritizePerformance = models.Bool(p.prioritizePerformance)
		set = true
	}
	if f.Changed("prioritize-value") {
		opts.PrioritizeValue = models.Bool(p.prioritizeValue)
		set = true
	}
	if f.Changed("no-compatibility-priority") {
		opts.PrioritizeCompatibility = models.Bool(!p.noCompatibility)
		set = true
	}
	if f.Changed("no-case") {
		opts.IncludeCase = models.Bool(!p.noCase)
		set = true
	}
	if f.Changed("no-cooling") {
		opts.IncludeCooling = models.Bool(!p.noCooling)
		set = true
	}

	if !set {
		return nil
	}
	return &opts
}

var knownUseCases = []models.UseCase{
	models.UseGamingAAA,
	models.UseGamingCasual,
	models.UseVideoEditing,
	models.UsePhotoEditing,
	models.UseProgramming,
	models.UseOffice,
	models.UseStreaming,
	models.UseModeling3D,
	models.UseAIML,
	models.UseGeneral,
}

func parseUseCase(s string) (models.UseCase, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, uc := range knownUseCases {
		if string(uc) == s {
			return uc, nil
		}
	}
	return "", fmt.Errorf("unknown use %q", s)
}
