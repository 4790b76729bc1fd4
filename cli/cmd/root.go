// ABOUTME: Root command for the pcbuild CLI
// ABOUTME: Handles global flags, logging, and configuration

package cmd

import (
	"log/slog"
	"os"

	"github.com/markalston/pc-build-advisor/logger"
	"github.com/spf13/cobra"
)

var (
	apiURL      string
	jsonOutput  bool
	catalogPath string
	logLevel    string
)

const defaultAPIURL = "http://localhost:8080"

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "pcbuild",
	Short: "CLI for the PC Build Advisor",
	Long: `pcbuild generates compatible PC builds from a budget and a set of preferences.

Commands talk to the advisor API, or run the engine in-process when --catalog is given.

Environment Variables:
  PCBUILD_API_URL     Backend API URL (default: http://localhost:8080)
  PCBUILD_NERD_FONTS  Force Nerd Font icons on (1) or off (0) in the wizard`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(logger.New(logLevel, "text", os.Stderr))
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides PCBUILD_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Run in-process against this YAML/JSON catalog instead of the API")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level for stderr diagnostics (debug, info, warn, error)")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("PCBUILD_API_URL"); envURL != "" {
		return envURL
	}
	return defaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}
