package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/OpenTraceLab/pathnet/internal/converter"
	"github.com/spf13/cobra"
)

var (
	convertFormat    string
	convertOutputDir string
)

var convertCmd = &cobra.Command{
	Use:   "convert <input_dir>",
	Short: "Convert path description files to netlists",
	Long: `Convert every .txt file in the input directory to the chosen netlist
format. Each file must contain one Eulerian path string, e.g.

  VDD->PM1_S->PM1_D->VOUT->NM1_D->NM1_S->VSS

Output files land in the output directory (created if missing):
  spice  ->  <name>_spice.sp
  json   ->  <name>.json
  kicad  ->  <name>.net

The default output directory can also be set through the
PATHNET_OUTPUT_DIR environment variable or a .env file.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "spice", "output format: spice, json, or kicad")
	convertCmd.Flags().StringVarP(&convertOutputDir, "output-dir", "o", "output", "output directory path")
}

func runConvert(cmd *cobra.Command, args []string) error {
	outputDir := convertOutputDir
	if !cmd.Flags().Changed("output-dir") {
		if env := os.Getenv("PATHNET_OUTPUT_DIR"); env != "" {
			outputDir = env
		}
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	results, err := converter.Run(converter.Options{
		InputDir:  args[0],
		OutputDir: outputDir,
		Format:    converter.Format(convertFormat),
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	for _, res := range results {
		fmt.Printf("✓ %s -> %s (%d components)\n", res.Input, res.Output, res.Components)
	}
	fmt.Printf("Converted %d file(s) to %s\n", len(results), outputDir)
	return nil
}
