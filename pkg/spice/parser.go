// Package spice reads SPICE netlist decks back into a typed model. It
// covers the subset this project generates — comment lines, element
// cards, dot directives — which is enough to summarize and round-trip
// converted netlists.
package spice

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// Deck is a parsed SPICE netlist.
type Deck struct {
	Statements []*Statement `parser:"( @@ | EOL )*"`
}

// Statement is one line of a deck: a comment, a dot directive, or an
// element card.
type Statement struct {
	Comment   string `parser:"  @Comment"`
	Directive string `parser:"| @Directive"`
	Card      *Card  `parser:"| @@"`
}

// Card is one element card: the element name followed by its node,
// value and model fields, exactly as written.
type Card struct {
	Name   string   `parser:"@Word"`
	Fields []string `parser:"@Word*"`
}

// cardNodeCount gives the number of node fields after the name for the
// element letters this project emits. Unknown letters fall back to "all
// fields but the last".
var cardNodeCount = map[string]int{
	"M": 4, // drain gate source body
	"R": 2,
	"C": 2,
	"L": 2,
	"V": 2,
	"I": 2,
}

// Element returns the element letter of the card (M, R, C, ...).
func (c *Card) Element() string {
	if c.Name == "" {
		return ""
	}
	return strings.ToUpper(c.Name[:1])
}

// Nodes returns the card's node name fields.
func (c *Card) Nodes() []string {
	n, ok := cardNodeCount[c.Element()]
	if !ok {
		n = len(c.Fields) - 1
	}
	if n < 0 {
		n = 0
	}
	if n > len(c.Fields) {
		n = len(c.Fields)
	}
	return c.Fields[:n]
}

// Title returns the first comment line with the '*' marker stripped, or
// "" when the deck has no comment.
func (d *Deck) Title() string {
	for _, s := range d.Statements {
		if s.Comment != "" {
			return strings.TrimSpace(strings.TrimPrefix(s.Comment, "*"))
		}
	}
	return ""
}

// Cards returns all element cards in deck order.
func (d *Deck) Cards() []*Card {
	var cards []*Card
	for _, s := range d.Statements {
		if s.Card != nil {
			cards = append(cards, s.Card)
		}
	}
	return cards
}

// HasEnd reports whether the deck is terminated by a .END directive.
func (d *Deck) HasEnd() bool {
	for _, s := range d.Statements {
		if strings.EqualFold(s.Directive, ".END") {
			return true
		}
	}
	return false
}

// Parser parses SPICE decks.
type Parser struct {
	parser *participle.Parser[Deck]
}

// NewParser creates a new deck parser instance.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[Deck](
		participle.Lexer(DeckLexer),
		participle.Elide("Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse parses a deck from a reader.
func (p *Parser) Parse(r io.Reader) (*Deck, error) {
	deck, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return deck, nil
}

// ParseString parses a deck from a string.
func (p *Parser) ParseString(input string) (*Deck, error) {
	deck, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return deck, nil
}

// ParseFile parses a deck from a file path.
func (p *Parser) ParseFile(filename string) (*Deck, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}
