package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhamidi/tinyc/lexer"
)

func scan(t *testing.T, src string) []lexer.Token {
	t.Helper()
	tokens, err := lexer.Scan([]byte(src), "test.tc")
	require.NoError(t, err)
	return tokens
}

func TestCursorPeekNext(t *testing.T) {
	c := NewCursor(scan(t, "int x"))

	tok := c.Peek()
	require.NotNil(t, tok)
	require.Equal(t, lexer.TokenInt, tok.Kind)
	require.Equal(t, 0, c.Pos(), "Peek must not advance")

	require.Equal(t, lexer.TokenInt, c.Next().Kind)
	require.Equal(t, lexer.TokenIdent, c.Next().Kind)
	require.Nil(t, c.Next())
	require.Nil(t, c.Peek())
}

func TestCursorForkIsIndependent(t *testing.T) {
	c := NewCursor(scan(t, "int x = 1"))

	fork := c.Fork()
	fork.Next()
	fork.Next()

	require.Equal(t, 0, c.Pos(), "advancing a fork must not move the original")
	require.Equal(t, 2, fork.Pos())
	require.Equal(t, lexer.TokenInt, c.Peek().Kind)
}

func TestCursorCommit(t *testing.T) {
	c := NewCursor(scan(t, "int x = 1"))

	fork := c.Fork()
	fork.Next()
	fork.Next()
	c.Commit(fork)

	require.Equal(t, 2, c.Pos())
	require.Equal(t, lexer.TokenAssign, c.Peek().Kind)
}

func TestFailedAlternativeLeavesCursorUntouched(t *testing.T) {
	c := NewCursor(scan(t, "return x"))

	before := c.Peek()
	fork := c.Fork()
	_, err := parseAssignmentStatement(&fork)
	require.Error(t, err, "an assignment cannot start with `return`")

	require.Equal(t, 0, c.Pos())
	require.Equal(t, before, c.Peek())

	// The next alternative still succeeds from the same position.
	stmt, err := parseStatement(c)
	require.NoError(t, err)
	require.NotNil(t, stmt.Return)
	require.Nil(t, stmt.Assign)
}
