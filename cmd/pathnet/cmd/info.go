package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/OpenTraceLab/pathnet/pkg/spice"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <netlist_file>",
	Short: "Show SPICE netlist information",
	Long: `Parse a SPICE netlist file and display a summary: title, element
counts, and the node names it references. Intended for inspecting decks
produced by the convert command, but works on any deck using the same
card subset.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	parser, err := spice.NewParser()
	if err != nil {
		return err
	}
	deck, err := parser.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("error parsing netlist: %w", err)
	}

	fmt.Printf("Netlist: %s\n", filename)
	if title := deck.Title(); title != "" {
		fmt.Printf("Title: %s\n", title)
	}
	fmt.Println()

	cards := deck.Cards()
	byElement := make(map[string]int)
	nodes := make(map[string]bool)
	for _, card := range cards {
		byElement[card.Element()]++
		for _, node := range card.Nodes() {
			nodes[node] = true
		}
	}

	fmt.Println("Statistics:")
	fmt.Printf("  Cards: %d\n", len(cards))
	var elements []string
	for e := range byElement {
		elements = append(elements, e)
	}
	sort.Strings(elements)
	for _, e := range elements {
		fmt.Printf("  %s: %d\n", e, byElement[e])
	}
	fmt.Printf("  Terminated (.END): %v\n", deck.HasEnd())
	fmt.Println()

	if len(nodes) > 0 {
		var names []string
		for n := range nodes {
			names = append(names, n)
		}
		sort.Strings(names)
		fmt.Printf("Nodes: %s\n", strings.Join(names, ", "))
	}
	return nil
}
