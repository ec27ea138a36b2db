package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/tinyc/lexer"
)

// Node is implemented by every parse tree node. Display writes the
// node's indented subtree to w; an empty label selects the node's
// default heading. Signature returns the in-order concatenation of the
// subtree's lexemes with single spaces where the grammar separates
// tokens, and is reused in list-combinator error messages.
type Node interface {
	Display(w io.Writer, depth int, label string)
	Signature() string
}

// Error reports that a rule's required token or sub-rule was not found.
// Expected holds the labels of every construct tried (more than one for
// sum rules); Got is the offending token, or nil when input was
// exhausted.
type Error struct {
	Expected []string
	Got      *lexer.Token
}

func (e *Error) Error() string {
	expected := ""
	switch len(e.Expected) {
	case 0:
		expected = "nothing"
	case 1:
		expected = "`" + e.Expected[0] + "`"
	default:
		expected = "one of {`" + strings.Join(e.Expected, "`, `") + "`}"
	}
	if e.Got == nil {
		return fmt.Sprintf("expected %s, but found nothing instead", expected)
	}
	return fmt.Sprintf("expected %s, but found `%s` instead", expected, e.Got.Literal)
}

const indentPiece = "    "

func makeIndent(depth int) string {
	return strings.Repeat(indentPiece, depth)
}

// Parse parses a complete token stream as a single function definition,
// the grammar's root rule. Tokens left over after the root rule are an
// error.
func Parse(tokens []lexer.Token) (*FunctionDefinition, error) {
	c := NewCursor(tokens)
	fn, err := parseFunctionDefinition(c)
	if err != nil {
		return nil, err
	}
	if tok := c.Peek(); tok != nil {
		return nil, &Error{Expected: []string{"end of input"}, Got: tok}
	}
	return fn, nil
}

// ParseExpression parses a complete token stream as a single expression.
func ParseExpression(tokens []lexer.Token) (*Expression, error) {
	c := NewCursor(tokens)
	expr, err := parseExpression(c)
	if err != nil {
		return nil, err
	}
	if tok := c.Peek(); tok != nil {
		return nil, &Error{Expected: []string{"end of input"}, Got: tok}
	}
	return expr, nil
}
