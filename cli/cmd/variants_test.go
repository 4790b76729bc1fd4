// ABOUTME: Tests for the variants command
// ABOUTME: Verifies variant count handling and table formatting

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/markalston/pc-build-advisor/models"
	"github.com/markalston/pc-build-advisor/services"
	"github.com/shopspring/decimal"
)

func TestVariantsCommand_Remote(t *testing.T) {
	useTestBackend(t)

	var buf bytes.Buffer
	exitCode := runVariants(context.Background(), &buf, gamingFlags("1500"), 3)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\n%s", exitCode, buf.String())
	}
	out := buf.String()
	for _, name := range []string{services.VariantBalanced, services.VariantPerformance, services.VariantEconomy} {
		if !strings.Contains(out, "("+name+")") {
			t.Errorf("expected %s variant in output\n%s", name, out)
		}
	}
	if !strings.Contains(out, "3 variant(s) generated") {
		t.Errorf("expected variant count summary\n%s", out)
	}
}

func TestVariantsCommand_LocalJSONCount(t *testing.T) {
	useTestCatalog(t)
	withJSONOutput(t)

	var buf bytes.Buffer
	exitCode := runVariants(context.Background(), &buf, gamingFlags("1500"), 2)
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\n%s", exitCode, buf.String())
	}

	var resp models.VariantsResponse
	if err := json.Unmarshal(buf.Bytes(), &resp); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(resp.Builds) != 2 {
		t.Errorf("expected 2 builds, got %d", len(resp.Builds))
	}
}

func TestVariantsCommand_NoPerformanceVariantOnSmallBudget(t *testing.T) {
	useTestCatalog(t)

	var buf bytes.Buffer
	if exitCode := runVariants(context.Background(), &buf, gamingFlags("1000"), 3); exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\n%s", exitCode, buf.String())
	}
	if strings.Contains(buf.String(), "("+services.VariantPerformance+")") {
		t.Errorf("expected no performance variant at or below $1000\n%s", buf.String())
	}
}

func TestVariantsCommand_InvalidCount(t *testing.T) {
	for _, count := range []int{0, 6, -1} {
		var buf bytes.Buffer
		if exitCode := runVariants(context.Background(), &buf, gamingFlags("1500"), count); exitCode != 2 {
			t.Errorf("count %d: expected exit code 2, got %d", count, exitCode)
		}
	}
}

func TestFormatVariantsHuman(t *testing.T) {
	builds := []models.FinishedBuild{
		{
			Name:          "A very long build name that will certainly not fit the column (balanced)",
			TotalPrice:    decimal.NewFromInt(1450),
			Compatibility: models.CompatibilityResult{IsValid: true},
		},
		{
			Name:          "Broken Build",
			TotalPrice:    decimal.NewFromInt(700),
			Compatibility: models.CompatibilityResult{IsValid: false, Errors: []string{"a", "b"}},
		},
		{
			Name:          "Tight Build",
			Compatibility: models.CompatibilityResult{IsValid: true, Warnings: []string{"w"}},
		},
	}

	out := formatVariantsHuman(builds)

	for _, want := range []string{"$1450.00", "✓ compatible", "✗ 2 error(s)", "✓ 1 warning(s)", "…"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\n%s", want, out)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("expected short, got %s", got)
	}
	if got := truncate("abcdefghij", 5); got != "abcd…" {
		t.Errorf("expected abcd…, got %s", got)
	}
}
