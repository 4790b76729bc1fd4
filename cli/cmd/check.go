// ABOUTME: Check command for the pcbuild CLI
// ABOUTME: Validates a hand-assembled build file for CI and scripting

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
	"gopkg.in/yaml.v3"
)

var checkUses []string

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Check a build for compatibility",
	Long: `Check a build described by component ids in a YAML or JSON file.

Example file:
  cpu: cpu-ryzen5-7600
  motherboard: mb-b650-tomahawk
  memory: [ram-ddr5-32-6000]
  storage: [ssd-990pro-1tb]
  psu: psu-rm750e

Exit codes:
  0 - Build is compatible
  1 - Build has compatibility errors
  2 - Error (connectivity, unreadable file, unknown component)`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runCheck(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringSliceVar(&checkUses, "use", nil, "Primary uses, for use-specific suggestions")
}

// runCheck checks the build in path and returns exit code
func runCheck(ctx context.Context, w io.Writer, path string) int {
	sel, err := readBuildSelection(path)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	req := &models.CompatibilityRequest{Build: *sel}
	for _, u := range checkUses {
		uc, err := parseUseCase(u)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		req.PrimaryUse = append(req.PrimaryUse, uc)
	}

	src, err := newBuildSource()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	resp, err := src.Check(ctx, req)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(resp))
	} else {
		fmt.Fprintln(w, formatCheckHuman(resp))
	}

	if !resp.Compatibility.IsValid {
		return 1
	}
	return 0
}

// readBuildSelection parses a YAML or JSON build file
func readBuildSelection(path string) (*models.BuildSelection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading build file: %w", err)
	}

	var sel models.BuildSelection
	if err := yaml.Unmarshal(data, &sel); err != nil {
		return nil, fmt.Errorf("parsing build file %s: %w", path, err)
	}
	if sel.CPU == "" && sel.Motherboard == "" && len(sel.Memory) == 0 && len(sel.Storage) == 0 && sel.PSU == "" {
		return nil, fmt.Errorf("build file %s names no components", path)
	}
	return &sel, nil
}

// formatCheckHuman formats the compatibility triage for human readability
func formatCheckHuman(resp *models.CompatibilityResponse) string {
	var sb strings.Builder
	c := resp.Compatibility

	for _, e := range c.Errors {
		fmt.Fprintf(&sb, "✗ %s\n", e)
	}
	for _, warn := range c.Warnings {
		fmt.Fprintf(&sb, "⚠ %s\n", warn)
	}
	for _, s := range c.Suggestions {
		fmt.Fprintf(&sb, "• %s\n", s)
	}

	fmt.Fprintf(&sb, "\nTotal: $%s  Estimated power: %dW\n", resp.TotalPrice.StringFixed(2), resp.EstimatedPower)
	if c.IsValid {
		fmt.Fprintf(&sb, "PASSED: build is compatible (%d warning(s))", len(c.Warnings))
	} else {
		fmt.Fprintf(&sb, "FAILED: %d compatibility error(s)", len(c.Errors))
	}

	return sb.String()
}
