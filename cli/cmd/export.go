// ABOUTME: Export command for the pcbuild CLI
// ABOUTME: Fetches a cached build from the backend as a parts list or JSON

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/markalston/pc-build-advisor/cli/internal/client"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export BUILD_ID",
	Short: "Print a previously generated build",
	Long: `Print a build the backend generated earlier as a shareable parts list.
Builds are kept for the backend's cache lifetime (BUILD_CACHE_TTL).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runExport(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

// runExport prints the build and returns exit code
func runExport(ctx context.Context, w io.Writer, id string) int {
	c := client.New(GetAPIURL())

	if IsJSONOutput() {
		build, err := c.GetBuild(ctx, id)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		fmt.Fprintln(w, formatJSON(build))
		return 0
	}

	text, err := c.ExportBuild(ctx, id)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	fmt.Fprint(w, text)
	return 0
}
