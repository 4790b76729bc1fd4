// ABOUTME: Integration tests for TUI app
// ABOUTME: Tests screen transitions, variant cycling, and frame width

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/pc-build-advisor/cli/internal/tui/wizard"
	"github.com/markalston/pc-build-advisor/models"
	"github.com/shopspring/decimal"
)

func stubGenerate(builds ...models.FinishedBuild) GenerateFunc {
	return func(ctx context.Context, prefs *models.UserPreferences) ([]models.FinishedBuild, error) {
		return builds, nil
	}
}

func testPrefs() *models.UserPreferences {
	return &models.UserPreferences{
		PrimaryUse:  []models.UseCase{models.UseGamingAAA},
		Budget:      models.BudgetRange{Max: decimal.NewFromInt(1500)},
		Performance: models.PerformanceBalanced,
	}
}

func TestAppInitialState(t *testing.T) {
	app := New(stubGenerate(), nil)

	if app.screen != ScreenWizard {
		t.Errorf("expected initial screen to be ScreenWizard, got %d", app.screen)
	}
	if app.wizardScreen == nil {
		t.Error("expected wizard to be initialized")
	}
}

func TestAppWizardCompleteGenerates(t *testing.T) {
	builds := []models.FinishedBuild{
		{Name: "Build (balanced)", TotalPrice: decimal.NewFromInt(1400)},
		{Name: "Build (performance)", TotalPrice: decimal.NewFromInt(1500)},
	}
	app := New(stubGenerate(builds...), nil)
	app.width = 100
	app.height = 40

	model, cmd := app.Update(wizard.WizardCompleteMsg{Preferences: testPrefs()})
	app = model.(*App)

	if app.screen != ScreenGenerating {
		t.Fatalf("expected ScreenGenerating, got %d", app.screen)
	}
	if cmd == nil {
		t.Fatal("expected generate command")
	}

	model, _ = app.Update(cmd())
	app = model.(*App)

	if app.screen != ScreenResult {
		t.Fatalf("expected ScreenResult, got %d", app.screen)
	}
	if app.dashboard == nil {
		t.Fatal("expected dashboard to be created")
	}
	if len(app.Builds()) != 2 {
		t.Errorf("expected 2 builds, got %d", len(app.Builds()))
	}

	view := app.View()
	if !strings.Contains(view, "Build (balanced)") {
		t.Error("expected first build in view")
	}
	if !strings.Contains(view, "Build 1 of 2") {
		t.Error("expected variant position in header")
	}
}

func TestAppVariantCycling(t *testing.T) {
	builds := []models.FinishedBuild{{Name: "A"}, {Name: "B"}, {Name: "C"}}
	app := New(stubGenerate(), nil)
	app.Update(buildsGeneratedMsg{builds: builds})

	tests := []struct {
		key      tea.KeyType
		expected int
	}{
		{tea.KeyRight, 1},
		{tea.KeyRight, 2},
		{tea.KeyRight, 0},
		{tea.KeyLeft, 2},
	}
	for _, tc := range tests {
		app.Update(tea.KeyMsg{Type: tc.key})
		if app.selected != tc.expected {
			t.Errorf("expected selected %d, got %d", tc.expected, app.selected)
		}
	}
}

func TestAppGenerateError(t *testing.T) {
	app := New(stubGenerate(), nil)

	model, _ := app.Update(buildsGeneratedMsg{err: errors.New("backend down")})
	app = model.(*App)

	if app.screen != ScreenResult {
		t.Errorf("expected ScreenResult, got %d", app.screen)
	}
	if !strings.Contains(app.View(), "backend down") {
		t.Error("expected error in view")
	}
}

func TestAppEmptyBuildsIsError(t *testing.T) {
	app := New(stubGenerate(), nil)
	app.Update(buildsGeneratedMsg{})

	if app.err == nil {
		t.Error("expected error when no builds are returned")
	}
	if app.dashboard != nil {
		t.Error("expected no dashboard without builds")
	}
}

func TestAppWizardCancelled(t *testing.T) {
	app := New(stubGenerate(), nil)

	_, cmd := app.Update(wizard.WizardCancelledMsg{})
	if cmd == nil {
		t.Fatal("expected quit command when cancelling with no builds")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}

	// With results on screen, cancel returns to them
	app.Update(buildsGeneratedMsg{builds: []models.FinishedBuild{{Name: "A"}}})
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")})
	if app.screen != ScreenWizard {
		t.Fatalf("expected ScreenWizard after w, got %d", app.screen)
	}
	app.Update(wizard.WizardCancelledMsg{})
	if app.screen != ScreenResult {
		t.Errorf("expected ScreenResult after cancel, got %d", app.screen)
	}
}

func TestAppViewFooter(t *testing.T) {
	app := New(stubGenerate(), nil)
	app.width = 100

	if !strings.Contains(app.View(), "Esc") {
		t.Error("expected wizard footer to show Esc")
	}

	app.Update(buildsGeneratedMsg{builds: []models.FinishedBuild{{Name: "A"}}})
	if !strings.Contains(app.View(), "New build") {
		t.Error("expected result footer to show New build")
	}
}

func TestFrameAlignment(t *testing.T) {
	for _, targetWidth := range []int{60, 80, 100, 120} {
		t.Run(fmt.Sprintf("width_%d", targetWidth), func(t *testing.T) {
			app := New(stubGenerate(), nil)
			model, _ := app.Update(tea.WindowSizeMsg{Width: targetWidth, Height: 30})
			app = model.(*App)
			app.Update(buildsGeneratedMsg{builds: []models.FinishedBuild{{Name: "A"}, {Name: "B"}}})

			expectedWidth := max(targetWidth, 80)
			lines := strings.Split(app.View(), "\n")

			header := lines[0]
			if w := lipgloss.Width(header); w != expectedWidth {
				t.Errorf("header width: expected %d, got %d", expectedWidth, w)
			}
			footer := lines[len(lines)-1]
			if w := lipgloss.Width(footer); w != expectedWidth {
				t.Errorf("footer width: expected %d, got %d", expectedWidth, w)
			}
		})
	}
}
