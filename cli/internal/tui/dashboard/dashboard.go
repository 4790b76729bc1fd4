// ABOUTME: Dashboard component displaying a generated build
// ABOUTME: Shows the parts list, budget usage, scores, and compatibility triage

package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/pc-build-advisor/cli/internal/tui/icons"
	"github.com/markalston/pc-build-advisor/cli/internal/tui/styles"
	"github.com/markalston/pc-build-advisor/cli/internal/tui/widgets"
	"github.com/markalston/pc-build-advisor/models"
	"github.com/shopspring/decimal"
)

// Dashboard displays one finished build
type Dashboard struct {
	build  *models.FinishedBuild
	budget decimal.Decimal
	width  int
	height int
}

// New creates a new dashboard for a build generated against budget
func New(build *models.FinishedBuild, budget decimal.Decimal, width, height int) *Dashboard {
	return &Dashboard{
		build:  build,
		budget: budget,
		width:  width,
		height: height,
	}
}

// Update swaps the displayed build
func (d *Dashboard) Update(build *models.FinishedBuild) {
	d.build = build
}

// SetSize updates the dashboard dimensions
func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// View renders the dashboard
func (d *Dashboard) View() string {
	if d.build == nil {
		return styles.Panel.Width(d.width).Render("Generating build...")
	}

	b := d.build
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(b.Name))
	sb.WriteString("  ")
	sb.WriteString(widgets.CompatibilityBadge(b.Compatibility))
	if b.Fallback {
		sb.WriteString(" ")
		sb.WriteString(widgets.Badge("FALLBACK", widgets.StatusWarning))
	}
	sb.WriteString("\n")
	if b.Description != "" {
		sb.WriteString(styles.Subtitle.Render(b.Description))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	for _, c := range b.Components.Parts() {
		label := icons.ForCategory(c.Category).String() + " " + string(c.Category)
		sb.WriteString(fmt.Sprintf("%s %s %s %s\n",
			styles.LabelStyle.Render(label),
			styles.ValueStyle.Render(c.Name()),
			widgets.TierBadge(c.Tier),
			styles.PriceStyle.Render("$"+c.Price.StringFixed(2)),
		))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Total: %s", styles.PriceStyle.Render("$"+b.TotalPrice.StringFixed(2))))
	if d.budget.IsPositive() {
		sb.WriteString(fmt.Sprintf(" of $%s\n", d.budget.StringFixed(2)))
		sb.WriteString(widgets.BudgetBar(b.TotalPrice, d.budget, 20))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Estimated power: %dW\n\n", b.EstimatedPower))

	sb.WriteString("Performance ")
	sb.WriteString(widgets.ScoreBar(b.PerformanceScore, 20))
	sb.WriteString("\nValue       ")
	sb.WriteString(widgets.ScoreBar(b.ValueScore, 20))
	sb.WriteString("\n")

	writeItems(&sb, b.Compatibility.Errors, widgets.StatusCritical)
	writeItems(&sb, b.Compatibility.Warnings, widgets.StatusWarning)
	writeItems(&sb, b.Compatibility.Suggestions, widgets.StatusInfo)
	writeItems(&sb, b.Recommendations, widgets.StatusNeutral)

	return lipgloss.NewStyle().
		Width(d.width).
		Height(d.height).
		Render(sb.String())
}

func writeItems(sb *strings.Builder, items []string, level widgets.StatusLevel) {
	if len(items) == 0 {
		return
	}
	sb.WriteString("\n")
	for _, item := range items {
		sb.WriteString(widgets.StatusText(item, level))
		sb.WriteString("\n")
	}
}
