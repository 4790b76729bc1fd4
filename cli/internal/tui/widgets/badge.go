// ABOUTME: Status badge widgets for quick visual status indication
// ABOUTME: Renders compatibility, tier, and fallback badges for build views

package widgets

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/pc-build-advisor/cli/internal/tui/icons"
	"github.com/markalston/pc-build-advisor/models"
)

// StatusLevel represents the severity of a status
type StatusLevel int

const (
	StatusOK StatusLevel = iota
	StatusWarning
	StatusCritical
	StatusInfo
	StatusNeutral
)

// Badge colors
var (
	BadgeOKBg      = lipgloss.Color("#10B981")
	BadgeOKFg      = lipgloss.Color("#FFFFFF")
	BadgeWarnBg    = lipgloss.Color("#F59E0B")
	BadgeWarnFg    = lipgloss.Color("#000000")
	BadgeCritBg    = lipgloss.Color("#EF4444")
	BadgeCritFg    = lipgloss.Color("#FFFFFF")
	BadgeInfoBg    = lipgloss.Color("#3B82F6")
	BadgeInfoFg    = lipgloss.Color("#FFFFFF")
	BadgeNeutralBg = lipgloss.Color("#6B7280")
	BadgeNeutralFg = lipgloss.Color("#FFFFFF")
)

func levelColors(level StatusLevel) (bg, fg lipgloss.Color) {
	switch level {
	case StatusOK:
		return BadgeOKBg, BadgeOKFg
	case StatusWarning:
		return BadgeWarnBg, BadgeWarnFg
	case StatusCritical:
		return BadgeCritBg, BadgeCritFg
	case StatusInfo:
		return BadgeInfoBg, BadgeInfoFg
	}
	return BadgeNeutralBg, BadgeNeutralFg
}

// Badge renders a colored status badge
func Badge(text string, level StatusLevel) string {
	bg, fg := levelColors(level)

	style := lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Padding(0, 1).
		Bold(true)

	return style.Render(text)
}

// CompatibilityLevel maps a compatibility triage to a status level
func CompatibilityLevel(c models.CompatibilityResult) StatusLevel {
	switch {
	case !c.IsValid:
		return StatusCritical
	case len(c.Warnings) > 0:
		return StatusWarning
	}
	return StatusOK
}

// CompatibilityBadge renders VALID, WARN, or INVALID for a triage
func CompatibilityBadge(c models.CompatibilityResult) string {
	switch level := CompatibilityLevel(c); level {
	case StatusCritical:
		return Badge("INVALID", level)
	case StatusWarning:
		return Badge("WARN", level)
	default:
		return Badge("VALID", level)
	}
}

// TierBadge renders a component tier
func TierBadge(t models.Tier) string {
	switch t {
	case models.TierEnthusiast:
		return Badge(t.String(), StatusCritical)
	case models.TierHigh:
		return Badge(t.String(), StatusWarning)
	case models.TierMid:
		return Badge(t.String(), StatusInfo)
	}
	return Badge(t.String(), StatusNeutral)
}

// StatusIcon returns the appropriate icon for a status level
func StatusIcon(level StatusLevel) string {
	bg, _ := levelColors(level)
	switch level {
	case StatusOK:
		return lipgloss.NewStyle().Foreground(bg).Render(icons.CheckOK.String())
	case StatusWarning:
		return lipgloss.NewStyle().Foreground(bg).Render(icons.Warning.String())
	case StatusCritical:
		return lipgloss.NewStyle().Foreground(bg).Render(icons.Critical.String())
	case StatusInfo:
		return lipgloss.NewStyle().Foreground(bg).Render(icons.Info.String())
	default:
		return lipgloss.NewStyle().Foreground(bg).Render("•")
	}
}

// StatusText returns styled status text with icon
func StatusText(text string, level StatusLevel) string {
	bg, _ := levelColors(level)
	textStyle := lipgloss.NewStyle().Foreground(bg)
	return fmt.Sprintf("%s %s", StatusIcon(level), textStyle.Render(text))
}
