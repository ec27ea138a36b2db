// Package format renders lexer and parser output in the shapes the
// command line tools print: a token table, an indented parse tree, and
// a JSON document.
package format

import (
	"encoding"

	"github.com/dhamidi/tinyc/lexer"
	"github.com/dhamidi/tinyc/parser"
)

// Result is the unit every encoder consumes: the token stream of one
// source file and, when the file was parsed, its tree.
type Result struct {
	File   string
	Tokens []lexer.Token
	Tree   *parser.FunctionDefinition
}

type Encoder interface {
	encoding.TextMarshaler
	Encode(res *Result) error
}
