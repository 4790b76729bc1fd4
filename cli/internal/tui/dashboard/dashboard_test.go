// ABOUTME: Tests for dashboard component
// ABOUTME: Validates parts list, totals, and triage rendering

package dashboard

import (
	"strings"
	"testing"

	"github.com/markalston/pc-build-advisor/models"
	"github.com/shopspring/decimal"
)

func testBuild() *models.FinishedBuild {
	return &models.FinishedBuild{
		Name:        "AMD Gaming Build",
		Description: "Balanced 1440p gaming",
		Components: models.CandidateBuild{
			CPU: &models.Component{ID: "cpu-7600", Category: models.CategoryCPU, Brand: "AMD", Model: "Ryzen 5 7600", Price: decimal.NewFromInt(199), Tier: models.TierMid},
			GPU: &models.Component{ID: "gpu-4070", Category: models.CategoryGPU, Brand: "NVIDIA", Model: "RTX 4070", Price: decimal.NewFromInt(549), Tier: models.TierHigh},
		},
		TotalPrice:       decimal.NewFromInt(748),
		EstimatedPower:   265,
		PerformanceScore: 72,
		ValueScore:       81,
		Compatibility: models.CompatibilityResult{
			IsValid:  true,
			Warnings: []string{"PSU headroom is tight"},
		},
		Recommendations: []string{"Consider a 2TB drive"},
	}
}

func TestDashboardView(t *testing.T) {
	d := New(testBuild(), decimal.NewFromInt(1000), 120, 40)
	view := d.View()

	tests := []string{
		"AMD Gaming Build",
		"Ryzen 5 7600",
		"RTX 4070",
		"$748.00",
		"$1000.00",
		"265W",
		"PSU headroom is tight",
		"Consider a 2TB drive",
		"WARN",
	}
	for _, expected := range tests {
		if !strings.Contains(view, expected) {
			t.Errorf("expected view to contain %q\nView:\n%s", expected, view)
		}
	}
}

func TestDashboardInvalidBuild(t *testing.T) {
	b := testBuild()
	b.Compatibility = models.CompatibilityResult{IsValid: false, Errors: []string{"Socket mismatch"}}
	b.Fallback = true

	view := New(b, decimal.Zero, 120, 40).View()

	for _, expected := range []string{"INVALID", "FALLBACK", "Socket mismatch"} {
		if !strings.Contains(view, expected) {
			t.Errorf("expected view to contain %q", expected)
		}
	}
	if strings.Contains(view, " of $") {
		t.Error("expected no budget line when budget is zero")
	}
}

func TestDashboardNilBuild(t *testing.T) {
	d := New(nil, decimal.Zero, 80, 24)
	if !strings.Contains(d.View(), "Generating") {
		t.Error("expected generating message when build is nil")
	}
}

func TestDashboardUpdate(t *testing.T) {
	d := New(nil, decimal.Zero, 120, 40)
	d.Update(testBuild())

	if !strings.Contains(d.View(), "AMD Gaming Build") {
		t.Error("expected view to show build after update")
	}
}
