// ABOUTME: Health command for the pcbuild CLI
// ABOUTME: Checks backend connectivity and catalog status

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/markalston/pc-build-advisor/cli/internal/client"
	"github.com/markalston/pc-build-advisor/models"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend connectivity",
	Long:  `Check connectivity to the PC Build Advisor backend and report its catalog status.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runHealth(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

// runHealth executes the health check and returns exit code
func runHealth(ctx context.Context, w io.Writer) int {
	url := GetAPIURL()
	c := client.New(url)

	resp, err := c.Health(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatHealthJSON(url, resp))
	} else {
		fmt.Fprintln(w, formatHealthHuman(url, resp))
	}

	if resp.Status != "ok" {
		return 1
	}
	return 0
}

// formatHealthHuman formats health response for human readability
func formatHealthHuman(url string, resp *models.HealthResponse) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Backend:       %s\n", url)
	fmt.Fprintf(&sb, "Status:        %s\n", resp.Status)
	fmt.Fprintf(&sb, "Catalog:       %s (%d components)\n", resp.CatalogSource, resp.CatalogSize)
	fmt.Fprintf(&sb, "Cached Builds: %d", resp.CachedBuilds)

	categories := make([]string, 0, len(resp.CategoryCounts))
	for c := range resp.CategoryCounts {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		fmt.Fprintf(&sb, "\n  %-12s %d", c+":", resp.CategoryCounts[c])
	}

	return sb.String()
}

// formatHealthJSON formats health response as JSON
func formatHealthJSON(url string, resp *models.HealthResponse) string {
	return formatJSON(struct {
		Backend string `json:"backend"`
		*models.HealthResponse
	}{Backend: url, HealthResponse: resp})
}
