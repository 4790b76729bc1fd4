// ABOUTME: Generate command for the pcbuild CLI
// ABOUTME: Produces one build from flag preferences via the API or a local catalog

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/markalston/pc-build-advisor/models"
	"github.com/markalston/pc-build-advisor/services"
	"github.com/spf13/cobra"
)

var generateFlags prefFlags

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a build from preferences",
	Long: `Generate a single compatible build for a budget and a set of preferences.

Examples:
  pcbuild generate --budget 1500 --use gaming-aaa
  pcbuild generate --budget 900 --use office,programming --performance budget --no-case
  pcbuild generate --budget 2500 --use content-video --catalog ./components.yaml

Exit codes:
  0 - Build generated and compatible
  1 - Build generated with compatibility errors
  2 - Error (connectivity, invalid input, no build possible)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runGenerate(ctx, os.Stdout, &generateFlags, generateFlags.options(cmd))
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateFlags.register(generateCmd, true)
}

// runGenerate generates one build and returns exit code
func runGenerate(ctx context.Context, w io.Writer, flags *prefFlags, opts *models.GenerationOptions) int {
	prefs, err := flags.preferences()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	src, err := newBuildSource()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	build, err := src.Generate(ctx, prefs, opts)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(build))
	} else {
		fmt.Fprint(w, formatBuildHuman(build))
	}

	if !build.Compatibility.IsValid {
		return 1
	}
	return 0
}

// formatBuildHuman renders a build as its parts list with the build id on top
func formatBuildHuman(build *models.FinishedBuild) string {
	out := services.ExportText(build)
	if build.ID != "" {
		out = fmt.Sprintf("Build ID: %s\n\n", build.ID) + out
	}
	if build.Fallback {
		out += "\nNote: no build met every preference; this is the closest compatible fallback.\n"
	}
	return out
}
