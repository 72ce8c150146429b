package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pathnet",
	Short: "pathnet - Eulerian path circuit description converter",
	Long: `pathnet converts circuit descriptions written as Eulerian path strings
(component terminals listed in the order they are electrically connected)
into netlist formats:
  - SPICE netlists for circuit simulators
  - netlistsvg JSON for schematic rendering
  - KiCad netlists for board tools

Examples:
  pathnet convert data/                    # SPICE netlists into ./output
  pathnet convert data/ --format json      # netlistsvg JSON documents
  pathnet convert data/ -f kicad -o nets/  # KiCad netlists into ./nets
  pathnet info output/amp_spice.sp         # summarize a generated deck`,
	Version: "0.2.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Optional .env next to the working directory may set PATHNET_* defaults
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
