// ABOUTME: Wizard command for the pcbuild CLI
// ABOUTME: Launches the interactive preferences questionnaire and build viewer

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/markalston/pc-build-advisor/cli/internal/tui"
	"github.com/markalston/pc-build-advisor/models"
	"github.com/spf13/cobra"
)

var wizardCount int

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Answer a few questions and browse generated builds",
	Long: `Launch an interactive questionnaire covering use, budget, brands, and priorities,
then browse the generated build variants. Press w on the results to start over.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := newBuildSource()
		if err != nil {
			return err
		}

		builds, err := tui.Run(wizardGenerateFunc(src, wizardCount), nil)
		if err != nil {
			return fmt.Errorf("wizard failed: %w", err)
		}

		if IsJSONOutput() && len(builds) > 0 {
			fmt.Fprintln(os.Stdout, formatJSON(models.VariantsResponse{Builds: builds}))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(wizardCmd)
	wizardCmd.Flags().IntVar(&wizardCount, "count", 3, "Number of build variants to generate")
}

// wizardGenerateFunc adapts a build source to the TUI generator signature
func wizardGenerateFunc(src buildSource, count int) tui.GenerateFunc {
	return func(ctx context.Context, prefs *models.UserPreferences) ([]models.FinishedBuild, error) {
		return src.Variants(ctx, prefs, count)
	}
}
