package parser

import (
	"fmt"
	"io"

	"github.com/dhamidi/tinyc/lexer"
)

// Terminal is a parse tree leaf: exactly one consumed token plus the
// display label of the terminal rule that matched it.
type Terminal struct {
	Token lexer.Token
	label string
}

func (t Terminal) Display(w io.Writer, depth int, label string) {
	if label == "" {
		label = t.label
	}
	fmt.Fprintf(w, "%s%s: %s\n", makeIndent(depth), label, t.Token.Literal)
}

func (t Terminal) Signature() string {
	return t.Token.Literal
}

// terminalSpec is the single generic terminal matcher. Every terminal
// rule of the grammar is one of these, instantiated with a token
// predicate and a display label; there is no per-terminal parsing code.
type terminalSpec struct {
	label string
	match func(lexer.Kind) bool
}

// parse consumes exactly the next token when it satisfies the
// predicate; on a mismatch it consumes nothing.
func (s terminalSpec) parse(c *Cursor) (Terminal, error) {
	tok := c.Peek()
	if tok == nil {
		return Terminal{}, &Error{Expected: []string{s.label}}
	}
	if !s.match(tok.Kind) {
		return Terminal{}, &Error{Expected: []string{s.label}, Got: tok}
	}
	c.Next()
	return Terminal{Token: *tok, label: s.label}, nil
}

func matchKind(kind lexer.Kind) func(lexer.Kind) bool {
	return func(k lexer.Kind) bool { return k == kind }
}

// One matcher per lexical category the grammar consumes.
var (
	typeName   = terminalSpec{"{type}", lexer.Kind.IsType}
	identifier = terminalSpec{"{identifier}", matchKind(lexer.TokenIdent)}
	literal    = terminalSpec{"{literal}", lexer.Kind.IsLiteral}
	kwReturn   = terminalSpec{"return", matchKind(lexer.TokenReturn)}
	plus       = terminalSpec{"+", matchKind(lexer.TokenPlus)}
	minus      = terminalSpec{"-", matchKind(lexer.TokenMinus)}
	star       = terminalSpec{"*", matchKind(lexer.TokenStar)}
	slash      = terminalSpec{"/", matchKind(lexer.TokenSlash)}
	equals     = terminalSpec{"=", matchKind(lexer.TokenAssign)}
	semicolon  = terminalSpec{";", matchKind(lexer.TokenSemicolon)}
	lparen     = terminalSpec{"(", matchKind(lexer.TokenLParen)}
	rparen     = terminalSpec{")", matchKind(lexer.TokenRParen)}
	lbrace     = terminalSpec{"{", matchKind(lexer.TokenLBrace)}
	rbrace     = terminalSpec{"}", matchKind(lexer.TokenRBrace)}
	comma      = terminalSpec{",", matchKind(lexer.TokenComma)}
)
