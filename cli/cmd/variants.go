// ABOUTME: Variants command for the pcbuild CLI
// ABOUTME: Generates balanced, performance, and economy builds side by side

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/markalston/pc-build-advisor/models"
	"github.com/spf13/cobra"
)

var (
	variantsFlags prefFlags
	variantCount  int
	variantDetail bool
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "Generate build variants for comparison",
	Long: `Generate up to three builds for the same preferences: balanced, performance
(budget stretched by 10%, only for budgets over $1000), and economy (80% of budget).

Exit codes:
  0 - At least one variant generated
  2 - Error (connectivity, invalid input, no build possible)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runVariants(ctx, os.Stdout, &variantsFlags, variantCount)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(variantsCmd)
	variantsFlags.register(variantsCmd, false)
	variantsCmd.Flags().IntVar(&variantCount, "count", 3, "Maximum number of variants (1-5)")
	variantsCmd.Flags().BoolVar(&variantDetail, "detail", false, "Print the full parts list for every variant")
}

// runVariants generates the variants and returns exit code
func runVariants(ctx context.Context, w io.Writer, flags *prefFlags, count int) int {
	if count < 1 || count > 5 {
		fmt.Fprintln(w, "Error: --count must be between 1 and 5")
		return 2
	}

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

	builds, err := src.Variants(ctx, prefs, count)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(models.VariantsResponse{Builds: builds}))
		return 0
	}

	fmt.Fprintln(w, formatVariantsHuman(builds))
	if variantDetail {
		for i := range builds {
			fmt.Fprintln(w)
			fmt.Fprint(w, formatBuildHuman(&builds[i]))
		}
	}
	return 0
}

// formatVariantsHuman renders a comparison table of the variants
func formatVariantsHuman(builds []models.FinishedBuild) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%-40s %10s %7s %5s %5s  %s\n", "Build", "Total", "Power", "Perf", "Value", "Status")
	for _, b := range builds {
		status := "✓ compatible"
		if !b.Compatibility.IsValid {
			status = fmt.Sprintf("✗ %d error(s)", len(b.Compatibility.Errors))
		} else if len(b.Compatibility.Warnings) > 0 {
			status = fmt.Sprintf("✓ %d warning(s)", len(b.Compatibility.Warnings))
		}
		fmt.Fprintf(&sb, "%-40s %10s %6dW %5d %5d  %s\n",
			truncate(b.Name, 40), "$"+b.TotalPrice.StringFixed(2), b.EstimatedPower, b.PerformanceScore, b.ValueScore, status)
	}
	fmt.Fprintf(&sb, "\n%d variant(s) generated", len(builds))

	return sb.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
