// Package converter drives batch conversion: it walks an input
// directory of path description files, interprets each one, and writes
// the serialized netlists to an output directory.
package converter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/OpenTraceLab/pathnet/pkg/euler"
	"github.com/OpenTraceLab/pathnet/pkg/netlist"
)

// Format selects the output representation.
type Format string

const (
	FormatSpice Format = "spice"
	FormatJSON  Format = "json"
	FormatKiCad Format = "kicad"
)

// Options configure a conversion run.
type Options struct {
	InputDir  string
	OutputDir string
	Format    Format

	// Logger receives progress at debug level. Nil means slog.Default().
	Logger *slog.Logger
}

// Result describes one converted file.
type Result struct {
	Input      string // input file path
	Output     string // written file path
	Components int    // component instances found in the path
}

// Run converts every .txt file directly under opts.InputDir, creating
// opts.OutputDir if needed. It returns one Result per converted file.
// Interpretation itself never fails; all errors here are I/O or option
// errors.
func Run(opts Options) ([]Result, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	if err := validFormat(opts.Format); err != nil {
		return nil, err
	}

	info, err := os.Stat(opts.InputDir)
	if err != nil {
		return nil, fmt.Errorf("input directory not found at %s: %w", opts.InputDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", opts.InputDir)
	}

	entries, err := os.ReadDir(opts.InputDir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", opts.InputDir, err)
	}

	var inputs []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".txt") {
			inputs = append(inputs, e.Name())
		}
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no .txt files found in %s", opts.InputDir)
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	results := make([]Result, 0, len(inputs))
	for _, name := range inputs {
		inPath := filepath.Join(opts.InputDir, name)
		outPath := filepath.Join(opts.OutputDir, outputName(name, opts.Format))
		log.Debug("converting", "input", inPath, "output", outPath)

		res, err := convertFile(inPath, outPath, opts.Format)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func convertFile(inPath, outPath string, format Format) (Result, error) {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", inPath, err)
	}

	circ := euler.Interpret(string(data))

	var out []byte
	switch format {
	case FormatSpice:
		out = []byte(netlist.Spice(circ))
	case FormatJSON:
		out, err = netlist.SVGJSON(circ)
		if err != nil {
			return Result{}, fmt.Errorf("serializing %s: %w", inPath, err)
		}
	case FormatKiCad:
		out = []byte(netlist.KiCad(circ))
	}

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", outPath, err)
	}
	return Result{Input: inPath, Output: outPath, Components: circ.Len()}, nil
}

// outputName maps an input file name to its output file name:
// amp.txt becomes amp_spice.sp, amp.json, or amp.net.
func outputName(input string, format Format) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	switch format {
	case FormatJSON:
		return base + ".json"
	case FormatKiCad:
		return base + ".net"
	default:
		return base + "_spice.sp"
	}
}

func validFormat(f Format) error {
	switch f {
	case FormatSpice, FormatJSON, FormatKiCad:
		return nil
	}
	return fmt.Errorf("unknown format %q (want spice, json, or kicad)", f)
}
