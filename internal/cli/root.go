package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time
var Version = "dev"

// NewRootCmd creates the root command for the 'gridtable' CLI
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "gridtable",
		Short:   "Render image directories as HTML table galleries",
		Version: Version,
		Long: `gridtable - static HTML gallery generator

Renders the images found in a directory as an HTML table with a
configurable column count, fill order and thumbnail sizing, and writes a
standalone gallery page.

Commands:
  render <directory>    Render a directory of images to an HTML page
`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRenderCmd())

	return rootCmd
}

// Execute runs the CLI and exits the process on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
