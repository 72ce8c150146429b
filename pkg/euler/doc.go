// Package euler interprets Eulerian path circuit descriptions.
//
// An Eulerian path string lists component terminals and net names in the
// order an electrical traversal visits them, separated by "->":
//
//	VDD->PM1_S->PM1_D->VOUT->NM1_D->NM1_S->VSS
//
// A token of the form <prefix><id>_<terminal> names one terminal of one
// component instance (PM1_S is the source of PMOS number 1). Every other
// token is a bare net name. The path carries no explicit edge list; the
// interpreter recovers the connectivity by looking at each terminal
// token's immediate neighbors in the sequence.
//
// # Overview
//
// Interpretation is a single left-to-right pass:
//  1. Split the input on "->", keeping token order and duplicates.
//  2. For each terminal token, take the connected net from the adjacent
//     tokens: left neighbor first, then right.
//  3. Neighbors belonging to the same component instance (its bare name
//     or another of its terminals) are not connections and are skipped.
//  4. The first net recorded for a terminal wins; later candidates are
//     silently discarded. This is the documented policy for shared nets,
//     not an error.
//
// Tokens that fail to parse as terminals are net names, never errors;
// the interpreter has no failure mode for malformed input.
//
// # Usage
//
//	circ := euler.Interpret(data)
//	for _, comp := range circ.Components() {
//		fmt.Println(comp.Name(), comp.Nodes)
//	}
//
// The result is immutable after Interpret returns, and Interpret itself
// keeps no state between calls, so it is safe to use from concurrent
// goroutines on independent inputs.
package euler
