package netlist

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/pathnet/pkg/euler"
)

// pinRef is one terminal attached to a net.
type pinRef struct {
	comp string
	pin  euler.Terminal
}

// KiCad renders the circuit as a KiCad netlist s-expression. This is a
// simplified export for basic connectivity: one component entry per
// instance and one net entry per connected net name. Unlike boundary
// scan discovery, single-pin nets are kept; their names were chosen by
// whoever wrote the path and usually mark rails or ports.
func KiCad(circ *euler.Circuit) string {
	var b strings.Builder
	b.WriteString("(export (version D)\n")
	b.WriteString("  (design\n")
	b.WriteString("    (source \"eulerian path conversion\")\n")
	b.WriteString("  )\n")

	b.WriteString("  (components\n")
	for _, comp := range circ.Components() {
		fmt.Fprintf(&b, "    (comp (ref %s))\n", comp.Name())
	}
	b.WriteString("  )\n")

	// Group pins by net. Components are already sorted and terminals are
	// walked in declared order, so each net's pin list is deterministic.
	netPins := make(map[string][]pinRef)
	for _, comp := range circ.Components() {
		for _, term := range comp.Type.Terminals() {
			if net, ok := comp.Nodes[term]; ok {
				netPins[net] = append(netPins[net], pinRef{comp: comp.Name(), pin: term})
			}
		}
	}

	b.WriteString("  (nets\n")
	for code, net := range circ.Nets() {
		fmt.Fprintf(&b, "    (net (code %d) (name %s)\n", code+1, quoteSexp(net))
		for _, pin := range netPins[net] {
			fmt.Fprintf(&b, "      (node (ref %s) (pin %s))\n", pin.comp, pin.pin)
		}
		b.WriteString("    )\n")
	}
	b.WriteString("  )\n")
	b.WriteString(")\n")

	return b.String()
}

// quoteSexp wraps a net name in double quotes, escaping backslashes and
// embedded quotes so the emitted s-expression stays well formed no
// matter what the path author called the net.
func quoteSexp(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
