// ABOUTME: Entry point for the pcbuild CLI
// ABOUTME: Command-line tool for generating and checking PC builds

package main

import (
	"fmt"
	"os"

	"github.com/markalston/pc-build-advisor/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
