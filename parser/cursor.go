package parser

import "github.com/dhamidi/tinyc/lexer"

// Cursor is a read position into a fully materialized token stream.
// Forking is a value copy; a fork advances independently of its origin
// until Commit writes its position back. The underlying token slice is
// shared and never mutated.
type Cursor struct {
	tokens []lexer.Token
	pos    int
}

func NewCursor(tokens []lexer.Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// Peek returns the next token without advancing, or nil at end of input.
func (c *Cursor) Peek() *lexer.Token {
	if c.pos >= len(c.tokens) {
		return nil
	}
	return &c.tokens[c.pos]
}

// Next consumes and returns the next token, or nil at end of input.
func (c *Cursor) Next() *lexer.Token {
	tok := c.Peek()
	if tok != nil {
		c.pos++
	}
	return tok
}

// Fork copies the cursor. Advancing the copy never affects the original.
func (c *Cursor) Fork() Cursor {
	return *c
}

// Commit adopts a fork's position after a successful trial parse.
func (c *Cursor) Commit(fork Cursor) {
	c.pos = fork.pos
}

// Pos returns the current index into the token stream.
func (c *Cursor) Pos() int {
	return c.pos
}
