package netlist

import (
	"encoding/json"
	"strings"

	"github.com/OpenTraceLab/pathnet/pkg/euler"
)

// Structures matching the netlistsvg / Yosys JSON input format.

type svgDocument struct {
	Modules map[string]svgModule `json:"modules"`
}

type svgModule struct {
	Ports map[string]svgPort `json:"ports"`
	Cells map[string]svgCell `json:"cells"`
}

type svgPort struct {
	Direction string `json:"direction"`
	Bits      []int  `json:"bits"`
}

type svgCell struct {
	Type           string            `json:"type"`
	PortDirections map[string]string `json:"port_directions"`
	Connections    map[string][]int  `json:"connections"`
}

var svgCellTypes = map[euler.ComponentType]string{
	euler.NMOS:      "nmos",
	euler.PMOS:      "pmos",
	euler.Resistor:  "resistor",
	euler.Capacitor: "capacitor",
}

// inputPortPrefixes marks nets that look like supplies, bias rails or
// driven inputs; they surface as input ports of the top module.
var inputPortPrefixes = []string{"VDD", "VSS", "GND", "VIN", "VCLK", "VB", "IB"}

// SVGJSON renders the circuit as a netlistsvg-compatible JSON document
// with a single "top" module. Every connected net gets an integer bit
// id, assigned from 1 in sorted net-name order; nets matching common
// supply/input/output naming conventions additionally become top-level
// ports so the rendered schematic shows them at the boundary.
func SVGJSON(circ *euler.Circuit) ([]byte, error) {
	nets := circ.Nets()
	netBits := make(map[string]int, len(nets))
	for i, net := range nets {
		netBits[net] = i + 1
	}

	ports := make(map[string]svgPort)
	for _, net := range nets {
		direction := portDirection(net)
		if direction == "inout" {
			continue
		}
		ports[net] = svgPort{Direction: direction, Bits: []int{netBits[net]}}
	}

	cells := make(map[string]svgCell, circ.Len())
	for _, comp := range circ.Components() {
		dirs := make(map[string]string)
		for _, term := range comp.Type.Terminals() {
			dirs[string(term)] = "input"
		}
		conns := make(map[string][]int, len(comp.Nodes))
		for term, net := range comp.Nodes {
			conns[string(term)] = []int{netBits[net]}
		}
		cells[comp.Name()] = svgCell{
			Type:           svgCellTypes[comp.Type],
			PortDirections: dirs,
			Connections:    conns,
		}
	}

	doc := svgDocument{
		Modules: map[string]svgModule{
			"top": {Ports: ports, Cells: cells},
		},
	}
	return json.MarshalIndent(doc, "", "  ")
}

// portDirection classifies a net name by naming convention: VOUT* nets
// are outputs, supply/bias/input rails are inputs, everything else is an
// internal net ("inout") and gets no port.
func portDirection(net string) string {
	upper := strings.ToUpper(net)
	if strings.HasPrefix(upper, "VOUT") {
		return "output"
	}
	for _, prefix := range inputPortPrefixes {
		if strings.HasPrefix(upper, prefix) {
			return "input"
		}
	}
	return "inout"
}
