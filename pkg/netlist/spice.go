// Package netlist serializes interpreted circuits into netlist formats:
// SPICE decks for simulators, netlistsvg JSON for schematic rendering,
// and KiCad netlists for board tools.
package netlist

import (
	"strings"

	"github.com/OpenTraceLab/pathnet/pkg/euler"
)

// NotConnected is the placeholder emitted for terminals the path never
// connected to a net.
const NotConnected = "NC"

// spiceCard describes how one component type serializes to a SPICE
// element card: the element letter and the trailing model name or
// default value.
type spiceCard struct {
	letter string
	suffix string
}

var spiceCards = map[euler.ComponentType]spiceCard{
	euler.NMOS:      {"M", "nmos_model"},
	euler.PMOS:      {"M", "pmos_model"},
	euler.Resistor:  {"R", "1k"},
	euler.Capacitor: {"C", "1p"},
}

// Spice renders the circuit as a SPICE netlist. Components appear in
// (type prefix, id) order, one card each:
//
//	M1 VOUT VIN VSS NC nmos_model
//	R1 VIN VOUT 1k
func Spice(circ *euler.Circuit) string {
	var b strings.Builder
	b.WriteString("* Generated SPICE netlist\n")

	for _, comp := range circ.Components() {
		card := spiceCards[comp.Type]
		b.WriteString(card.letter)
		b.WriteString(comp.ID)
		for _, term := range comp.Type.Terminals() {
			b.WriteByte(' ')
			b.WriteString(comp.Node(term, NotConnected))
		}
		b.WriteByte(' ')
		b.WriteString(card.suffix)
		b.WriteByte('\n')
	}

	b.WriteString(".END\n")
	return b.String()
}
