// ABOUTME: Generates balanced, performance, and economy build variants concurrently
// ABOUTME: Each variant is an independent generation over the shared read-only catalog

package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/markalston/pc-build-advisor/models"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Variant names
const (
	VariantBalanced    = "balanced"
	VariantPerformance = "performance"
	VariantEconomy     = "economy"
)

var (
	performanceStretch   = decimal.RequireFromString("1.1")
	economyShrink        = decimal.RequireFromString("0.8")
	performanceThreshold = decimal.NewFromInt(1000)
)

type variantSpec struct {
	name string
	opts models.GenerationOptions
}

func variantSpecs(prefs *models.UserPreferences) []variantSpec {
	specs := []variantSpec{{
		name: VariantBalanced,
		opts: models.GenerationOptions{
			PrioritizePerformance: models.Bool(false),
			PrioritizeValue:       models.Bool(true),
		},
	}}

	if prefs.Budget.Max.GreaterThan(performanceThreshold) {
		stretched := models.BudgetRange{Min: prefs.Budget.Min, Max: prefs.Budget.Max.Mul(performanceStretch)}
		specs = append(specs, variantSpec{
			name: VariantPerformance,
			opts: models.GenerationOptions{
				Budget:                &stretched,
				PrioritizePerformance: models.Bool(true),
				PrioritizeValue:       models.Bool(false),
			},
		})
	}

	shrunk := models.BudgetRange{Min: prefs.Budget.Min, Max: prefs.Budget.Max.Mul(economyShrink)}
	specs = append(specs, variantSpec{
		name: VariantEconomy,
		opts: models.GenerationOptions{
			Budget:                &shrunk,
			PrioritizePerformance: models.Bool(false),
			PrioritizeValue:       models.Bool(true),
		},
	})
	return specs
}

// GenerateVariants returns up to count builds in balanced, performance,
// economy order. The performance variant only exists for budgets above
// 1000. Variants with no compatible pair are omitted.
func (g *BuildGenerator) GenerateVariants(ctx context.Context, prefs *models.UserPreferences, count int) ([]models.FinishedBuild, error) {
	specs := variantSpecs(prefs)
	results := make([]*models.FinishedBuild, len(specs))

	eg, ctx := errgroup.WithContext(ctx)
	for i, spec := range specs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fb, err := g.Generate(prefs, &spec.opts)
			if errors.Is(err, ErrNoCompatibleBuild) {
				slog.Debug("Variant skipped", "variant", spec.name, "error", err)
				return nil
			}
			if err != nil {
				return err
			}
			fb.Name = fb.Name + " (" + spec.name + ")"
			results[i] = fb
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	builds := make([]models.FinishedBuild, 0, len(results))
	for _, fb := range results {
		if fb != nil {
			builds = append(builds, *fb)
		}
	}
	if len(builds) == 0 {
		return nil, ErrNoCompatibleBuild
	}
	if count > 0 && len(builds) > count {
		builds = builds[:count]
	}
	return builds, nil
}
