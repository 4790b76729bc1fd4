// ABOUTME: Build preferences questionnaire as a bubbletea model
// ABOUTME: Uses huh forms with visual progress indicator for step navigation

package wizard

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/pc-build-advisor/cli/internal/tui/icons"
	"github.com/markalston/pc-build-advisor/cli/internal/tui/styles"
	"github.com/markalston/pc-build-advisor/models"
	"github.com/shopspring/decimal"
)

// WizardCompleteMsg is sent when the wizard finishes successfully
type WizardCompleteMsg struct {
	Preferences *models.UserPreferences
}

// WizardCancelledMsg is sent when the wizard is cancelled
type WizardCancelledMsg struct{}

// Wizard manages the preferences questionnaire as a bubbletea model
type Wizard struct {
	prefs *models.UserPreferences
	form  *huh.Form
	step  int
	width int

	// Form field values (strings for huh)
	useCases     []string
	budget       string
	performance  string
	preferred    string
	avoid        string
	requirements []string
	quiet        string
	efficiency   string
	futureProof  string
	aesthetics   string
}

// Step names for progress indicator
var stepNames = []string{"Use & Budget", "Brands", "Priorities"}

// createTheme returns a huh theme built on the shared palette
func createTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Group.Title = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true).
		MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().
		Foreground(styles.Muted).
		MarginBottom(1)

	// Focused field styles
	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(styles.Primary)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(styles.Accent).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(styles.Danger).
		SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(styles.Danger)

	// Select field styles
	t.Focused.SelectSelector = lipgloss.NewStyle().
		Foreground(styles.Primary).
		SetString("> ")
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().
		Foreground(styles.Primary).
		SetString("> ")
	t.Focused.Option = lipgloss.NewStyle().
		Foreground(styles.Text)
	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(styles.Secondary).
		Bold(true)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().
		Foreground(styles.Secondary).
		SetString("[x] ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().
		Foreground(styles.Muted).
		SetString("[ ] ")

	// Text input styles
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(styles.Primary)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(styles.Primary)
	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(styles.Text)

	// Blurred field styles (inherit from focused with muted colors)
	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Blurred.SelectSelector = lipgloss.NewStyle().
		Foreground(styles.Muted).
		SetString("  ")
	t.Blurred.Option = lipgloss.NewStyle().
		Foreground(styles.Muted)

	return t
}

var useCaseOptions = []huh.Option[string]{
	huh.NewOption("AAA gaming", string(models.UseGamingAAA)),
	huh.NewOption("Casual gaming", string(models.UseGamingCasual)),
	huh.NewOption("Video editing", string(models.UseVideoEditing)),
	huh.NewOption("Photo editing", string(models.UsePhotoEditing)),
	huh.NewOption("3D modeling", string(models.UseModeling3D)),
	huh.NewOption("AI / machine learning", string(models.UseAIML)),
	huh.NewOption("Streaming", string(models.UseStreaming)),
	huh.NewOption("Programming", string(models.UseProgramming)),
	huh.NewOption("Office", string(models.UseOffice)),
	huh.NewOption("General use", string(models.UseGeneral)),
}

var performanceOptions = []huh.Option[string]{
	huh.NewOption("Budget", string(models.PerformanceBudget)),
	huh.NewOption("Balanced (recommended)", string(models.PerformanceBalanced)),
	huh.NewOption("High-end", string(models.PerformanceHighEnd)),
}

var requirementOptions = []huh.Option[string]{
	huh.NewOption("Compact build", models.RequirementCompact),
}

var priorityOptions = []huh.Option[string]{
	huh.NewOption("Don't care (1)", "1"),
	huh.NewOption("Low (3)", "3"),
	huh.NewOption("Medium (5)", "5"),
	huh.NewOption("High (8)", "8"),
	huh.NewOption("Essential (10)", "10"),
}

// New creates a new wizard. Fields of initial, when given, become the defaults.
func New(initial *models.UserPreferences) *Wizard {
	w := &Wizard{
		step:        1,
		useCases:    []string{string(models.UseGamingCasual)},
		budget:      "1200",
		performance: string(models.PerformanceBalanced),
		quiet:       "5",
		efficiency:  "5",
		futureProof: "5",
		aesthetics:  "3",
	}

	if initial != nil {
		if len(initial.PrimaryUse) > 0 {
			w.useCases = w.useCases[:0]
			for _, u := range initial.PrimaryUse {
				w.useCases = append(w.useCases, string(u))
			}
		}
		if initial.Budget.Max.IsPositive() {
			w.budget = initial.Budget.Max.String()
		}
		if initial.Performance.Valid() {
			w.performance = string(initial.Performance)
		}
		w.preferred = strings.Join(initial.Brands.Preferred, ", ")
		w.avoid = strings.Join(initial.Brands.Avoid, ", ")
		w.requirements = append(w.requirements, initial.SpecialRequirements...)
		setPriority(&w.quiet, initial.Priorities.QuietOperation)
		setPriority(&w.efficiency, initial.Priorities.EnergyEfficiency)
		setPriority(&w.futureProof, initial.Priorities.FutureProofing)
		setPriority(&w.aesthetics, initial.Priorities.Aesthetics)
	}

	w.form = w.createStep1Form()
	return w
}

func setPriority(dst *string, v int) {
	if v >= 1 && v <= 10 {
		*dst = strconv.Itoa(v)
	}
}

func (w *Wizard) createStep1Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("What will you use this PC for?").
				Description("Space to toggle, Enter to confirm").
				Options(useCaseOptions...).
				Value(&w.useCases).
				Validate(validateUseCases),
			huh.NewInput().
				Title("Maximum budget (USD)").
				Placeholder("e.g., 1500").
				CharLimit(8).
				Value(&w.budget).
				Validate(validateBudget),
			huh.NewSelect[string]().
				Title("Performance level").
				Options(performanceOptions...).
				Value(&w.performance),
		).Title("Step 1: Use & Budget").
			Description("Tell us what the build is for and what you can spend"),
	).WithTheme(createTheme())
}

func (w *Wizard) createStep2Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Preferred brands").
				Description("Comma separated, leave empty for no preference").
				Placeholder("e.g., AMD, Corsair").
				Value(&w.preferred),
			huh.NewInput().
				Title("Brands to avoid").
				Description("Comma separated").
				Value(&w.avoid),
			huh.NewMultiSelect[string]().
				Title("Special requirements").
				Options(requirementOptions...).
				Value(&w.requirements),
		).Title("Step 2: Brands").
			Description("Brand preferences are soft: they never rule out a compatible build"),
	).WithTheme(createTheme())
}

func (w *Wizard) createStep3Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Quiet operation").
				Options(priorityOptions...).
				Value(&w.quiet),
			huh.NewSelect[string]().
				Title("Energy efficiency").
				Options(priorityOptions...).
				Value(&w.efficiency),
			huh.NewSelect[string]().
				Title("Future-proofing").
				Options(priorityOptions...).
				Value(&w.futureProof),
			huh.NewSelect[string]().
				Title("Aesthetics").
				Options(priorityOptions...).
				Value(&w.aesthetics),
		).Title("Step 3: Priorities").
			Description("How much does each of these matter to you?"),
	).WithTheme(createTheme())
}

// Init implements tea.Model
func (w *Wizard) Init() tea.Cmd {
	return w.form.Init()
}

// Update implements tea.Model
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		form, cmd := w.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			w.form = f
		}
		return w, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return w, func() tea.Msg { return WizardCancelledMsg{} }
		}
	}

	// Update the current form
	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}

	if w.form.State == huh.StateCompleted {
		return w.advanceStep()
	}

	return w, cmd
}

func (w *Wizard) advanceStep() (tea.Model, tea.Cmd) {
	switch w.step {
	case 1:
		w.step = 2
		w.form = w.createStep2Form()
		return w, w.form.Init()

	case 2:
		w.step = 3
		w.form = w.createStep3Form()
		return w, w.form.Init()

	case 3:
		prefs, err := w.buildPreferences()
		if err != nil {
			// Step 1 validation makes this unreachable in practice
			return w, func() tea.Msg { return WizardCancelledMsg{} }
		}
		w.prefs = prefs
		return w, func() tea.Msg {
			return WizardCompleteMsg{Preferences: prefs}
		}
	}

	return w, nil
}

// buildPreferences converts the collected form values
func (w *Wizard) buildPreferences() (*models.UserPreferences, error) {
	budget, err := decimal.NewFromString(strings.TrimSpace(w.budget))
	if err != nil {
		return nil, fmt.Errorf("invalid budget %q", w.budget)
	}

	prefs := &models.UserPreferences{
		Budget:      models.BudgetRange{Max: budget},
		Performance: models.PerformanceLevel(w.performance),
		Brands: models.BrandPreferences{
			Preferred: splitList(w.preferred),
			Avoid:     splitList(w.avoid),
		},
		Priorities: models.Priorities{
			QuietOperation:   atoiOr(w.quiet, 5),
			EnergyEfficiency: atoiOr(w.efficiency, 5),
			FutureProofing:   atoiOr(w.futureProof, 5),
			Aesthetics:       atoiOr(w.aesthetics, 5),
		},
		SpecialRequirements: w.requirements,
	}
	for _, u := range w.useCases {
		prefs.PrimaryUse = append(prefs.PrimaryUse, models.UseCase(u))
	}

	if err := prefs.Validate(); err != nil {
		return nil, err
	}
	return prefs, nil
}

// SetWidth sets the wizard width for proper rendering
func (w *Wizard) SetWidth(width int) {
	w.width = width
}

// View implements tea.Model
func (w *Wizard) View() string {
	var sb strings.Builder

	sb.WriteString(w.renderProgress())
	sb.WriteString("\n\n")
	sb.WriteString(w.form.View())

	return sb.String()
}

// renderProgress renders the step progress indicator
func (w *Wizard) renderProgress() string {
	width := max(w.width-1, 60)

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary)

	var steps []string
	for i, name := range stepNames {
		stepNum := i + 1
		var indicator string
		var nameStyle lipgloss.Style

		switch {
		case stepNum < w.step:
			indicator = lipgloss.NewStyle().Foreground(styles.Secondary).Render(icons.CheckOK.String())
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		case stepNum == w.step:
			indicator = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true).Render("●")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
		default:
			indicator = lipgloss.NewStyle().Foreground(styles.Muted).Render("○")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		}

		steps = append(steps, fmt.Sprintf("%s %s", indicator, nameStyle.Render(name)))
	}

	stepsLine := strings.Join(steps, "    ")

	// Progress bar line format: "│  " + bar + " │" = 5 chars overhead
	barWidth := width - 5
	filledWidth := (w.step * barWidth) / len(stepNames)
	emptyWidth := barWidth - filledWidth

	filledBar := lipgloss.NewStyle().Foreground(styles.Primary).Render(strings.Repeat("━", filledWidth))
	emptyBar := lipgloss.NewStyle().Foreground(styles.Surface).Render(strings.Repeat("─", emptyWidth))

	titleWidth := lipgloss.Width("Progress")
	topBorder := "┌─ " + titleStyle.Render("Progress") + " " + strings.Repeat("─", max(0, width-5-titleWidth)) + "┐"
	stepsPadding := max(0, width-4-lipgloss.Width(stepsLine))

	return borderStyle.Render(strings.Join([]string{
		topBorder,
		"│ " + stepsLine + strings.Repeat(" ", stepsPadding) + " │",
		"│  " + filledBar + emptyBar + " │",
		"└" + strings.Repeat("─", width-2) + "┘",
	}, "\n"))
}

// Preferences returns the collected preferences, nil until the wizard completes
func (w *Wizard) Preferences() *models.UserPreferences {
	return w.prefs
}

func validateUseCases(v []string) error {
	if len(v) == 0 {
		return fmt.Errorf("select at least one use")
	}
	return nil
}

func validateBudget(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !d.IsPositive() {
		return fmt.Errorf("must be a positive amount")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func atoiOr(s string, def int) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
