package spice

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// DeckLexer defines the lexical structure of a SPICE deck. SPICE is
// line-oriented: comments run from '*' to end of line, '.'-prefixed
// words are directives, and everything else on a line is a field of an
// element card. Line breaks are significant so they are their own token
// rather than whitespace.
var DeckLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments - '*' to end of line
	{Name: "Comment", Pattern: `\*[^\n]*`},

	// Dot directives (.END, .TRAN, ...)
	{Name: "Directive", Pattern: `\.[^\s]+`},

	// Line breaks terminate cards
	{Name: "EOL", Pattern: `\r?\n`},

	// Intra-line whitespace
	{Name: "Whitespace", Pattern: `[ \t]+`},

	// Card fields: names, node names, values, model names
	{Name: "Word", Pattern: `[^\s]+`},
})
