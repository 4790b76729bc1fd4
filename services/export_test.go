// ABOUTME: Tests for plain-text build export
// ABOUTME: Verifies the parts list, totals, and triage sections

package services

import (
	"strings"
	"testing"
)

func TestExportText(t *testing.T) {
	b := validBuild()
	b.Case = nil
	fb := finishedFrom(b)
	fb.Name = "AMD Enthusiast Build"
	fb.EstimatedPower = EstimatedPower(&b)
	fb.PerformanceScore = PerformanceScore(&b)
	fb.Recommendations = []string{"Review the compatibility warnings before purchasing"}

	out := ExportText(fb)

	for _, want := range []string{
		"AMD Enthusiast Build\n====================\n",
		"CPU:",
		"Power Supply:",
		"$349.00",
		"$1593.00",
		"Estimated power: 405W",
		"Performance score: 51",
		"Warnings:\n  - No case selected",
		"Recommendations:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected export to contain %q, got:\n%s", want, out)
		}
	}

	if strings.Contains(out, "Errors:") {
		t.Error("Expected no Errors section for a valid build")
	}
	if strings.Contains(out, "Case:") {
		t.Error("Expected no Case line when no case is selected")
	}
}
