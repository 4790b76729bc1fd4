// ABOUTME: Test helpers for e2e tests
// ABOUTME: Builds the full server stack from environment configuration

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/markalston/pc-build-advisor/cache"
	"github.com/markalston/pc-build-advisor/catalog"
	"github.com/markalston/pc-build-advisor/config"
	"github.com/markalston/pc-build-advisor/handlers"
	"github.com/markalston/pc-build-advisor/middleware"
	"github.com/markalston/pc-build-advisor/models"
	"github.com/markalston/pc-build-advisor/services"
	"github.com/shopspring/decimal"
)

// newTestServer wires config, catalog, build store, and the middleware
// chain the same way main does, using env for configuration.
//
// Example:
//
//	srv := newTestServer(t, map[string]string{
//	    "CORS_ALLOWED_ORIGINS": "https://example.com",
//	})
func newTestServer(t *testing.T, env map[string]string) *httptest.Server {
	t.Helper()

	for key, value := range env {
		t.Setenv(key, value)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	store := services.NewBuildStore(cache.New[*models.FinishedBuild](ctx, time.Duration(cfg.BuildCacheTTL)*time.Second))

	var limiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	h := handlers.NewHandler(cfg, cat, store)
	srv := httptest.NewServer(handlers.NewRouter(h, cfg.CORSAllowedOrigins, limiter))
	t.Cleanup(srv.Close)
	return srv
}

func gamingRequest(budget int64) models.GenerateBuildRequest {
	return models.GenerateBuildRequest{
		Preferences: models.UserPreferences{
			PrimaryUse:  []models.UseCase{models.UseGamingAAA},
			Budget:      models.BudgetRange{Max: decimal.NewFromInt(budget)},
			Performance: models.PerformanceBalanced,
		},
	}
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	return resp
}
