package euler

import (
	"regexp"
)

// ComponentType identifies one of the recognized device kinds.
type ComponentType int

const (
	NMOS ComponentType = iota
	PMOS
	Resistor
	Capacitor
)

// Terminal is a single-letter terminal code: D, G, S, B for transistors,
// P, N for passives.
type Terminal string

// typeTable is the closed set of component types, each with its
// identifier prefix and legal terminal letters. Entries are indexed by
// ComponentType value. Adding a component type is a one-line edit here;
// the terminal patterns are derived from it.
var typeTable = []struct {
	Type      ComponentType
	Name      string
	Prefix    string
	Terminals string
}{
	{NMOS, "NMOS", "NM", "DGSB"},
	{PMOS, "PMOS", "PM", "DGSB"},
	{Resistor, "Resistor", "R", "PN"},
	{Capacitor, "Capacitor", "C", "PN"},
}

// terminalPatterns holds one anchored pattern per type, e.g.
// ^NM(\d+)_([DGSB])$ for NMOS. Matching is case-sensitive: a lowercase
// or otherwise off-pattern prefix is an opaque net name.
var terminalPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(typeTable))
	for i, e := range typeTable {
		patterns[i] = regexp.MustCompile(`^` + e.Prefix + `(\d+)_([` + e.Terminals + `])$`)
	}
	return patterns
}()

// Prefix returns the identifier prefix used in path tokens (NM, PM, R, C).
func (t ComponentType) Prefix() string { return typeTable[t].Prefix }

// Terminals returns the type's legal terminal codes in serialization order.
func (t ComponentType) Terminals() []Terminal {
	letters := typeTable[t].Terminals
	terms := make([]Terminal, len(letters))
	for i := range letters {
		terms[i] = Terminal(letters[i : i+1])
	}
	return terms
}

func (t ComponentType) String() string { return typeTable[t].Name }

// TerminalRef is the parsed form of a path token that names a component
// terminal, e.g. NM1_D. ID holds the digits exactly as written: the
// identity of a component is textual, so NM01 and NM1 are distinct
// instances and the bare token NM01 is the owning identifier of NM01_D.
type TerminalRef struct {
	Type     ComponentType
	ID       string
	Terminal Terminal
}

// Component returns the owning component identifier, e.g. "NM1".
func (r TerminalRef) Component() string {
	return r.Type.Prefix() + r.ID
}

// ParseTerminal classifies a raw path token. The boolean is false when
// the token is a plain net name rather than a terminal reference: an
// unrecognized or lowercase prefix, a missing numeric id, or a terminal
// letter outside the type's legal set all fall through to net names.
// R1_D is a net name, not a Resistor terminal: D is not in {P, N}.
func ParseTerminal(tok string) (TerminalRef, bool) {
	for i, pattern := range terminalPatterns {
		m := pattern.FindStringSubmatch(tok)
		if m == nil {
			continue
		}
		return TerminalRef{Type: typeTable[i].Type, ID: m[1], Terminal: Terminal(m[2])}, true
	}
	return TerminalRef{}, false
}

// Component is one placed device: a type, a numeric id, and the net
// discovered for each of its terminals.
type Component struct {
	Type ComponentType

	// ID is the instance's digits as written in the path, e.g. "01".
	ID string

	// Nodes maps terminal code to connected net name. Terminals with no
	// discovered connection are absent; serializers substitute their own
	// "not connected" placeholder.
	Nodes map[Terminal]string
}

// Name returns the component identifier, e.g. "NM1".
func (c *Component) Name() string {
	return c.Type.Prefix() + c.ID
}

// Node returns the net connected to term, or fallback when the terminal
// has no recorded connection.
func (c *Component) Node(term Terminal, fallback string) string {
	if net, ok := c.Nodes[term]; ok {
		return net
	}
	return fallback
}
