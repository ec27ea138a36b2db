package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhamidi/tinyc/lexer"
)

func parseParams(c *Cursor) (*Delimited[*FunctionParameter, Terminal], error) {
	return parseDelimited(c, "Function Parameters", parseFunctionParameter, comma.parse)
}

func parseStatements(c *Cursor) (*Terminated[*Statement, Terminal], error) {
	return parseTerminated(c, "Compound Statements", parseStatement, semicolon.parse)
}

func TestDelimitedEmpty(t *testing.T) {
	c := NewCursor(scan(t, ")"))

	list, err := parseParams(c)
	require.NoError(t, err)
	require.Empty(t, list.Items)
	require.Equal(t, 0, c.Pos(), "an empty list consumes nothing")
	require.Equal(t, "", list.Signature())
}

func TestDelimitedSingleItem(t *testing.T) {
	c := NewCursor(scan(t, "int x"))

	list, err := parseParams(c)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	require.Nil(t, list.Items[0].Delim)
	require.Equal(t, "int x", list.Signature())
}

func TestDelimitedTwoItems(t *testing.T) {
	c := NewCursor(scan(t, "int x, float y"))

	list, err := parseParams(c)
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	require.NotNil(t, list.Items[0].Delim, "the first item keeps its separator")
	require.Nil(t, list.Items[1].Delim, "the last item has no trailing delimiter")
	require.Equal(t, "int x, float y", list.Signature())
}

func TestDelimitedStopsBeforeUnrelatedToken(t *testing.T) {
	c := NewCursor(scan(t, "int x, float y)"))

	list, err := parseParams(c)
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	require.Equal(t, lexer.TokenRParen, c.Peek().Kind, "the closing paren is left for the caller")
}

func TestDelimitedDanglingDelimiter(t *testing.T) {
	c := NewCursor(scan(t, "int x,"))

	_, err := parseParams(c)
	require.Error(t, err)
	require.ErrorContains(t, err, "while parsing Function Parameters")
}

func TestTerminatedEmpty(t *testing.T) {
	c := NewCursor(scan(t, "}"))

	list, err := parseStatements(c)
	require.NoError(t, err)
	require.Empty(t, list.Items)
	require.Equal(t, 0, c.Pos())
}

func TestTerminatedTwoItems(t *testing.T) {
	c := NewCursor(scan(t, "x = 1; y = 2;"))

	list, err := parseStatements(c)
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	require.Equal(t, "x = 1; y = 2;", list.Signature())
	require.Nil(t, c.Peek(), "both statements and delimiters are consumed")
}

func TestTerminatedMissingFinalDelimiter(t *testing.T) {
	for _, src := range []string{"x = 1", "x = 1; y = 2"} {
		t.Run(src, func(t *testing.T) {
			c := NewCursor(scan(t, src))

			_, err := parseStatements(c)
			require.Error(t, err)
			require.ErrorContains(t, err, "while parsing Compound Statements")
		})
	}
}

func TestTerminatedStopsAtNonStatement(t *testing.T) {
	c := NewCursor(scan(t, "x = 1; }"))

	list, err := parseStatements(c)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	require.Equal(t, lexer.TokenRBrace, c.Peek().Kind)
}
