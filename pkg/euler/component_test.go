package euler

import (
	"reflect"
	"testing"
)

func TestParseTerminal(t *testing.T) {
	tests := []struct {
		tok  string
		want TerminalRef
		ok   bool
	}{
		{"NM1_D", TerminalRef{NMOS, "1", "D"}, true},
		{"NM12_B", TerminalRef{NMOS, "12", "B"}, true},
		{"NM01_D", TerminalRef{NMOS, "01", "D"}, true}, // digits kept verbatim
		{"PM3_G", TerminalRef{PMOS, "3", "G"}, true},
		{"R1_P", TerminalRef{Resistor, "1", "P"}, true},
		{"C42_N", TerminalRef{Capacitor, "42", "N"}, true},
		{"R1234567890123456789012345_P", TerminalRef{Resistor, "1234567890123456789012345", "P"}, true},

		{"NM1", TerminalRef{}, false},     // bare identifier
		{"R1_Z", TerminalRef{}, false},    // Z is nobody's terminal
		{"R1_D", TerminalRef{}, false},    // D is legal for NMOS, not Resistor
		{"C1_G", TerminalRef{}, false},    // G is legal for transistors only
		{"nm1_D", TerminalRef{}, false},   // prefixes are case-sensitive
		{"NM_D", TerminalRef{}, false},    // missing numeric id
		{"NM1_DG", TerminalRef{}, false},  // exactly one terminal letter
		{"XNM1_D", TerminalRef{}, false},  // anchored at the start
		{"NM1_D ", TerminalRef{}, false},  // anchored at the end
		{"VDD", TerminalRef{}, false},
		{"", TerminalRef{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			got, ok := ParseTerminal(tt.tok)
			if ok != tt.ok {
				t.Fatalf("ParseTerminal(%q) ok = %v, want %v", tt.tok, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseTerminal(%q) = %+v, want %+v", tt.tok, got, tt.want)
			}
		})
	}
}

func TestTerminalRefComponent(t *testing.T) {
	ref := TerminalRef{Type: PMOS, ID: "7", Terminal: "S"}
	if got := ref.Component(); got != "PM7" {
		t.Errorf("Component() = %q, want %q", got, "PM7")
	}

	// The identifier keeps the id's spelling.
	ref = TerminalRef{Type: NMOS, ID: "01", Terminal: "D"}
	if got := ref.Component(); got != "NM01" {
		t.Errorf("Component() = %q, want %q", got, "NM01")
	}
}

func TestComponentTypeTerminals(t *testing.T) {
	tests := []struct {
		typ  ComponentType
		want []Terminal
	}{
		{NMOS, []Terminal{"D", "G", "S", "B"}},
		{PMOS, []Terminal{"D", "G", "S", "B"}},
		{Resistor, []Terminal{"P", "N"}},
		{Capacitor, []Terminal{"P", "N"}},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			if got := tt.typ.Terminals(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Terminals() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComponentNode(t *testing.T) {
	comp := &Component{Type: NMOS, ID: "1", Nodes: map[Terminal]string{"D": "VOUT"}}
	if got := comp.Node("D", "NC"); got != "VOUT" {
		t.Errorf("Node(D) = %q, want %q", got, "VOUT")
	}
	if got := comp.Node("B", "NC"); got != "NC" {
		t.Errorf("Node(B) = %q, want fallback %q", got, "NC")
	}
}
