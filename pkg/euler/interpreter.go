package euler

import (
	"sort"
	"strings"
)

// Separator delimits tokens in a path string.
const Separator = "->"

// Circuit is the result of interpreting one path string: every component
// instance the path connected, with its terminal-to-net mapping.
type Circuit struct {
	byName     map[string]*Component
	components []*Component
}

func newCircuit() *Circuit {
	return &Circuit{byName: make(map[string]*Component)}
}

// Interpret builds the circuit described by an Eulerian path string.
//
// Leading and trailing whitespace of the whole input is trimmed; the
// tokens themselves are kept verbatim, embedded spaces included. An
// empty input, or one with no terminal tokens, yields an empty circuit.
// Interpret never fails: malformed tokens are net names.
func Interpret(input string) *Circuit {
	path := strings.Split(strings.TrimSpace(input), Separator)
	circ := newCircuit()

	for i, tok := range path {
		ref, ok := ParseTerminal(tok)
		if !ok {
			continue
		}
		// Left neighbor first: when both sides offer a net, the left one
		// is kept and the right one discarded.
		if i > 0 {
			circ.record(ref, path[i-1])
		}
		if i < len(path)-1 {
			circ.record(ref, path[i+1])
		}
	}

	sort.Slice(circ.components, func(i, j int) bool {
		a, b := circ.components[i], circ.components[j]
		if a.Type.Prefix() != b.Type.Prefix() {
			return a.Type.Prefix() < b.Type.Prefix()
		}
		return lessNumeric(a.ID, b.ID)
	})
	return circ
}

// lessNumeric orders two decimal digit strings by value, with no length
// limit. Ids of equal value but different spelling (1 vs 01) fall back
// to the literal text so the order stays total.
func lessNumeric(a, b string) bool {
	ta, tb := strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")
	if len(ta) != len(tb) {
		return len(ta) < len(tb)
	}
	if ta != tb {
		return ta < tb
	}
	return a < b
}

// record stores neighbor as the net for ref's terminal, unless the
// neighbor belongs to ref's own component or the terminal already has a
// net (first write wins). A component instance comes into existence on
// its first recorded connection; a terminal surrounded only by its own
// component's tokens therefore contributes nothing.
func (c *Circuit) record(ref TerminalRef, neighbor string) {
	name := ref.Component()
	if neighbor == name {
		return
	}
	if nref, ok := ParseTerminal(neighbor); ok && nref.Component() == name {
		return
	}

	comp := c.byName[name]
	if comp == nil {
		comp = &Component{Type: ref.Type, ID: ref.ID, Nodes: make(map[Terminal]string)}
		c.byName[name] = comp
		c.components = append(c.components, comp)
	}
	if _, taken := comp.Nodes[ref.Terminal]; taken {
		return
	}
	comp.Nodes[ref.Terminal] = neighbor
}

// Component looks up an instance by identifier, e.g. "NM1". It returns
// nil when the path never connected that component.
func (c *Circuit) Component(name string) *Component {
	return c.byName[name]
}

// Components returns all instances sorted by (type prefix, numeric id).
// The slice is shared with the circuit and must not be modified.
func (c *Circuit) Components() []*Component {
	return c.components
}

// Len returns the number of component instances.
func (c *Circuit) Len() int { return len(c.components) }

// Nets returns the distinct net names referenced by any terminal
// connection, sorted. Bare tokens that never became a connection do not
// appear.
func (c *Circuit) Nets() []string {
	seen := make(map[string]bool)
	for _, comp := range c.components {
		for _, net := range comp.Nodes {
			seen[net] = true
		}
	}
	nets := make([]string, 0, len(seen))
	for net := range seen {
		nets = append(nets, net)
	}
	sort.Strings(nets)
	return nets
}
