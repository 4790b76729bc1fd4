// ABOUTME: Plain-text export of a finished build
// ABOUTME: Parts list with prices followed by the compatibility triage

package services

import (
	"fmt"
	"strings"

	"github.com/markalston/pc-build-advisor/models"
)

var categoryLabels = map[models.Category]string{
	models.CategoryCPU:         "CPU",
	models.CategoryGPU:         "GPU",
	models.CategoryMotherboard: "Motherboard",
	models.CategoryMemory:      "Memory",
	models.CategoryStorage:     "Storage",
	models.CategoryPSU:         "Power Supply",
	models.CategoryCase:        "Case",
	models.CategoryCooling:     "Cooling",
}

// ExportText renders a build as a parts list suitable for sharing
func ExportText(fb *models.FinishedBuild) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s\n", fb.Name)
	fmt.Fprintf(&sb, "%s\n", strings.Repeat("=", len(fb.Name)))
	if fb.Description != "" {
		fmt.Fprintf(&sb, "%s\n", fb.Description)
	}
	sb.WriteString("\n")

	for _, c := range fb.Components.Parts() {
		fmt.Fprintf(&sb, "%-13s %-48s %10s\n", categoryLabels[c.Category]+":", c.Name(), "$"+c.Price.StringFixed(2))
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%-13s %-48s %10s\n", "Total:", "", "$"+fb.TotalPrice.StringFixed(2))
	fmt.Fprintf(&sb, "Estimated power: %dW\n", fb.EstimatedPower)
	fmt.Fprintf(&sb, "Performance score: %d  Value score: %d\n", fb.PerformanceScore, fb.ValueScore)

	writeList(&sb, "Errors", fb.Compatibility.Errors)
	writeList(&sb, "Warnings", fb.Compatibility.Warnings)
	writeList(&sb, "Suggestions", fb.Compatibility.Suggestions)
	writeList(&sb, "Recommendations", fb.Recommendations)

	return sb.String()
}

func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(sb, "  - %s\n", item)
	}
}
