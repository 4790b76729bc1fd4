// ABOUTME: Build sources for CLI commands
// ABOUTME: Generates builds through the API or an in-process engine over a local catalog

package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/markalston/pc-build-advisor/catalog"
	"github.com/markalston/pc-build-advisor/cli/internal/client"
	"github.com/markalston/pc-build-advisor/models"
	"github.com/markalston/pc-build-advisor/services"
)

// buildSource is where commands get builds and compatibility checks from
type buildSource interface {
	Generate(ctx context.Context, prefs *models.UserPreferences, opts *models.GenerationOptions) (*models.FinishedBuild, error)
	Variants(ctx context.Context, prefs *models.UserPreferences, count int) ([]models.FinishedBuild, error)
	Check(ctx context.Context, req *models.CompatibilityRequest) (*models.CompatibilityResponse, error)
}

// newBuildSource picks the in-process engine when --catalog is set, the API otherwise
func newBuildSource() (buildSource, error) {
	if catalogPath == "" {
		return &remoteSource{client: client.New(GetAPIURL())}, nil
	}
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return nil, err
	}
	return &localSource{
		catalog:   cat,
		generator: services.NewBuildGenerator(cat, services.UUIDGenerator{}),
	}, nil
}

type remoteSource struct {
	client *client.Client
}

func (s *remoteSource) Generate(ctx context.Context, prefs *models.UserPreferences, opts *models.GenerationOptions) (*models.FinishedBuild, error) {
	return s.client.GenerateBuild(ctx, &models.GenerateBuildRequest{Preferences: *prefs, Options: opts})
}

func (s *remoteSource) Variants(ctx context.Context, prefs *models.UserPreferences, count int) ([]models.FinishedBuild, error) {
	resp, err := s.client.GenerateVariants(ctx, &models.VariantsRequest{Preferences: *prefs, Count: count})
	if err != nil {
		return nil, err
	}
	return resp.Builds, nil
}

func (s *remoteSource) Check(ctx context.Context, req *models.CompatibilityRequest) (*models.CompatibilityResponse, error) {
	return s.client.CheckCompatibility(ctx, req)
}

type localSource struct {
	catalog   *catalog.Catalog
	generator *services.BuildGenerator
}

func (s *localSource) Generate(ctx context.Context, prefs *models.UserPreferences, opts *models.GenerationOptions) (*models.FinishedBuild, error) {
	return s.generator.Generate(prefs, opts)
}

func (s *localSource) Variants(ctx context.Context, prefs *models.UserPreferences, count int) ([]models.FinishedBuild, error) {
	return s.generator.GenerateVariants(ctx, prefs, count)
}

func (s *localSource) Check(ctx context.Context, req *models.CompatibilityRequest) (*models.CompatibilityResponse, error) {
	build, err := s.catalog.Resolve(req.Build)
	if err != nil {
		return nil, err
	}
	return &models.CompatibilityResponse{
		Compatibility:  services.CheckCompatibility(&build, req.PrimaryUse...),
		TotalPrice:     services.TotalPrice(&build),
		EstimatedPower: services.EstimatedPower(&build),
	}, nil
}

// formatJSON renders v as indented JSON
func formatJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(data)
}
