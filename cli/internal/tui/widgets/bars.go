// ABOUTME: Score and budget bars for build result views
// ABOUTME: Scores color by quality, budget bars by how close spend is to the limit

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/pc-build-advisor/cli/internal/tui/styles"
	"github.com/shopspring/decimal"
)

// fill returns the number of filled cells for percent of width
func fill(percent float64, width int) int {
	percent = min(max(percent, 0), 100)
	return min(int(percent/100.0*float64(width)), width)
}

// ScoreBar renders a 0-100 score; higher scores are greener
func ScoreBar(score int, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := fill(float64(score), width)

	color := styles.ScoreColor(float64(score))
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(styles.Surface).Render(strings.Repeat("░", width-filled))

	return fmt.Sprintf("[%s] %3d", bar, score)
}

// BudgetBar renders spend against a budget. Spend over 95% of the limit turns amber,
// and spend over the limit turns red.
func BudgetBar(spent, budget decimal.Decimal, width int) string {
	if width <= 0 {
		width = 20
	}
	percent := 0.0
	if budget.IsPositive() {
		percent = spent.Div(budget).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}
	filled := fill(percent, width)

	color := styles.Secondary
	switch {
	case percent > 100:
		color = styles.Danger
	case percent >= 95:
		color = styles.Warning
	}

	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(styles.Surface).Render(strings.Repeat("░", width-filled))

	label := lipgloss.NewStyle().Foreground(color).Render(fmt.Sprintf("%3.0f%%", percent))
	return fmt.Sprintf("[%s] %s", bar, label)
}
