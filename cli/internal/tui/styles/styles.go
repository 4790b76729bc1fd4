// ABOUTME: Shared lipgloss styles for the build advisor TUI
// ABOUTME: Defines the palette, panels, and score coloring used by every view

package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - Core palette
	Primary   = lipgloss.Color("#2563EB") // Blue
	Secondary = lipgloss.Color("#10B981") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Danger    = lipgloss.Color("#EF4444") // Red
	Muted     = lipgloss.Color("#6B7280") // Gray
	Text      = lipgloss.Color("#F9FAFB") // Light

	// Colors - Extended palette
	Accent  = lipgloss.Color("#60A5FA") // Lighter blue for highlights
	Surface = lipgloss.Color("#374151") // Elevated surface background
	Price   = lipgloss.Color("#FBBF24") // Gold for money

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted)

	StatusOK = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	StatusWarning = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	StatusCritical = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(0, 1)

	Help = lipgloss.NewStyle().
		Foreground(Muted).
		MarginTop(1)

	// Category label in the parts list
	LabelStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			Width(12)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Text)

	PriceStyle = lipgloss.NewStyle().
			Foreground(Price).
			Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)

// ScoreColor picks the color for a 0-100 score: higher is better
func ScoreColor(score float64) lipgloss.Color {
	switch {
	case score >= 75:
		return Secondary
	case score >= 50:
		return Warning
	}
	return Danger
}
