// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Runs the preferences wizard, generates builds, and shows the results

package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/pc-build-advisor/cli/internal/tui/dashboard"
	"github.com/markalston/pc-build-advisor/cli/internal/tui/icons"
	"github.com/markalston/pc-build-advisor/cli/internal/tui/styles"
	"github.com/markalston/pc-build-advisor/cli/internal/tui/wizard"
	"github.com/markalston/pc-build-advisor/models"
	"github.com/shopspring/decimal"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenWizard Screen = iota
	ScreenGenerating
	ScreenResult
)

// Layout constants
const (
	minTerminalWidth = 80
	panelPadding     = 4
)

// GenerateFunc produces one or more builds for the given preferences
type GenerateFunc func(ctx context.Context, prefs *models.UserPreferences) ([]models.FinishedBuild, error)

// buildsGeneratedMsg is sent when generation completes
type buildsGeneratedMsg struct {
	builds []models.FinishedBuild
	err    error
}

// App is the root model for the TUI
type App struct {
	generate GenerateFunc
	screen   Screen
	width    int
	height   int
	err      error

	initial  *models.UserPreferences
	prefs    *models.UserPreferences
	builds   []models.FinishedBuild
	selected int

	wizardScreen *wizard.Wizard
	dashboard    *dashboard.Dashboard
}

// New creates a new TUI application. initial seeds the wizard defaults and may be nil.
func New(generate GenerateFunc, initial *models.UserPreferences) *App {
	return &App{
		generate:     generate,
		screen:       ScreenWizard,
		initial:      initial,
		wizardScreen: wizard.New(initial),
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return a.wizardScreen.Init()
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.dashboard != nil {
			a.dashboard.SetSize(a.contentWidth(), a.contentHeight())
		}
		if a.screen == ScreenWizard {
			return a.updateWizard(msg)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.screen {
		case ScreenWizard:
			return a.updateWizard(msg)
		case ScreenResult:
			return a.updateResult(msg)
		}
		if msg.String() == "q" {
			return a, tea.Quit
		}
		return a, nil

	case wizard.WizardCompleteMsg:
		a.prefs = msg.Preferences
		a.screen = ScreenGenerating
		a.err = nil
		return a, a.generateBuilds(msg.Preferences)

	case wizard.WizardCancelledMsg:
		if len(a.builds) > 0 {
			a.screen = ScreenResult
			return a, nil
		}
		return a, tea.Quit

	case buildsGeneratedMsg:
		a.screen = ScreenResult
		a.err = msg.err
		a.builds = msg.builds
		a.selected = 0
		if msg.err == nil && len(msg.builds) == 0 {
			a.err = fmt.Errorf("no builds generated")
		}
		if a.err == nil {
			a.dashboard = dashboard.New(&a.builds[0], a.budget(), a.contentWidth(), a.contentHeight())
		}
		return a, nil
	}

	if a.screen == ScreenWizard {
		return a.updateWizard(msg)
	}
	return a, nil
}

func (a *App) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := a.wizardScreen.Update(msg)
	a.wizardScreen = model.(*wizard.Wizard)
	return a, cmd
}

func (a *App) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "w":
		return a, a.restartWizard()
	case "right", "l", "tab":
		a.selectBuild(a.selected + 1)
	case "left", "h", "shift+tab":
		a.selectBuild(a.selected - 1)
	}
	return a, nil
}

// selectBuild wraps i into range and shows that build
func (a *App) selectBuild(i int) {
	if len(a.builds) == 0 || a.dashboard == nil {
		return
	}
	n := len(a.builds)
	a.selected = ((i % n) + n) % n
	a.dashboard.Update(&a.builds[a.selected])
}

// restartWizard reopens the wizard seeded with the last answers
func (a *App) restartWizard() tea.Cmd {
	seed := a.prefs
	if seed == nil {
		seed = a.initial
	}
	a.wizardScreen = wizard.New(seed)
	a.wizardScreen.SetWidth(a.width)
	a.screen = ScreenWizard
	return a.wizardScreen.Init()
}

// generateBuilds calls the generator off the update loop
func (a *App) generateBuilds(prefs *models.UserPreferences) tea.Cmd {
	return func() tea.Msg {
		builds, err := a.generate(context.Background(), prefs)
		return buildsGeneratedMsg{builds: builds, err: err}
	}
}

func (a *App) budget() decimal.Decimal {
	if a.prefs == nil {
		return decimal.Zero
	}
	return a.prefs.Budget.Max
}

// Builds returns the generated builds
func (a *App) Builds() []models.FinishedBuild {
	return a.builds
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenWizard:
		content = a.wizardScreen.View()
	case ScreenGenerating:
		content = styles.Panel.Width(a.contentWidth()).Render(icons.App.String() + " Generating builds...")
	case ScreenResult:
		content = a.viewResult()
	}

	return a.wrapWithFrame(content)
}

func (a *App) viewResult() string {
	if a.err != nil {
		return styles.StatusCritical.Render("Error: " + a.err.Error())
	}
	if a.dashboard == nil {
		return ""
	}
	return styles.Panel.Width(a.contentWidth()).Render(a.dashboard.View())
}

func (a *App) contentWidth() int {
	return max(a.width, minTerminalWidth) - panelPadding
}

// contentHeight leaves room for header, footer, and panel border
func (a *App) contentHeight() int {
	return max(a.height-6, 0)
}

// renderHeader creates the header bar with app branding and the variant position
func (a *App) renderHeader() string {
	width := max(a.width, minTerminalWidth)

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := fmt.Sprintf(" %s %s", icons.App.String(), titleStyle.Render("PC Build Advisor"))

	rightText := ""
	if a.screen == ScreenResult && len(a.builds) > 1 {
		rightText = contextStyle.Render(fmt.Sprintf("Build %d of %d", a.selected+1, len(a.builds))) + " "
	}

	fillWidth := max(width-4-lipgloss.Width(leftText)-lipgloss.Width(rightText), 0)
	header := "╭─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╮"

	return borderStyle.Render(header)
}

// renderFooter creates the footer with keyboard shortcuts for the current screen
func (a *App) renderFooter() string {
	width := max(a.width, minTerminalWidth)

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)

	var shortcuts []string
	switch a.screen {
	case ScreenWizard:
		shortcuts = []string{"↑↓ Select", "Enter Confirm", "Esc Cancel"}
	case ScreenGenerating:
		shortcuts = []string{"q Quit"}
	case ScreenResult:
		shortcuts = []string{"←→ Variant", "w New build", "q Quit"}
	}

	var styled []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		styled = append(styled, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
	}

	leftText := " " + strings.Join(styled, "  ")
	fillWidth := max(width-4-lipgloss.Width(leftText), 0)
	footer := "╰─" + leftText + strings.Repeat("─", fillWidth) + "─╯"

	return borderStyle.Render(footer)
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// Run starts the TUI and returns the builds generated in the session
func Run(generate GenerateFunc, initial *models.UserPreferences) ([]models.FinishedBuild, error) {
	app := New(generate, initial)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return nil, err
	}
	return app.Builds(), nil
}
