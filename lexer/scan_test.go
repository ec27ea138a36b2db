package lexer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var ignoreSpans = cmpopts.IgnoreFields(Token{}, "Span")

func TestScanProgram(t *testing.T) {
	src := "int main(int x, float y) {x = 1 + 2; return (float)x;}"
	want := []Token{
		{Kind: TokenInt, Literal: "int"},
		{Kind: TokenIdent, Literal: "main"},
		{Kind: TokenLParen, Literal: "("},
		{Kind: TokenInt, Literal: "int"},
		{Kind: TokenIdent, Literal: "x"},
		{Kind: TokenComma, Literal: ","},
		{Kind: TokenFloat, Literal: "float"},
		{Kind: TokenIdent, Literal: "y"},
		{Kind: TokenRParen, Literal: ")"},
		{Kind: TokenLBrace, Literal: "{"},
		{Kind: TokenIdent, Literal: "x"},
		{Kind: TokenAssign, Literal: "="},
		{Kind: TokenIntLiteral, Literal: "1"},
		{Kind: TokenPlus, Literal: "+"},
		{Kind: TokenIntLiteral, Literal: "2"},
		{Kind: TokenSemicolon, Literal: ";"},
		{Kind: TokenReturn, Literal: "return"},
		{Kind: TokenLParen, Literal: "("},
		{Kind: TokenFloat, Literal: "float"},
		{Kind: TokenRParen, Literal: ")"},
		{Kind: TokenIdent, Literal: "x"},
		{Kind: TokenSemicolon, Literal: ";"},
	}

	got, err := Scan([]byte(src), "main.tc")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if diff := cmp.Diff(want, got, ignoreSpans); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
}

func TestTrailingWhitespaceDoesNotChangeStream(t *testing.T) {
	tests := []string{
		"int x",
		"x = 1;",
		"3.14",
		"return y",
	}

	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			plain, err := Scan([]byte(src), "test.tc")
			if err != nil {
				t.Fatalf("Scan: %v", err)
			}
			padded, err := Scan([]byte(src+" \t\n\v\f\r "), "test.tc")
			if err != nil {
				t.Fatalf("Scan padded: %v", err)
			}
			if diff := cmp.Diff(plain, padded, ignoreSpans); diff != "" {
				t.Errorf("padded stream differs (-plain +padded):\n%s", diff)
			}
		})
	}
}

func TestScanReader(t *testing.T) {
	tokens, err := ScanReader(strings.NewReader("int x"), "test.tc")
	if err != nil {
		t.Fatalf("ScanReader: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2", len(tokens))
	}
	if tokens[0].Kind != TokenInt || tokens[1].Kind != TokenIdent {
		t.Errorf("got %v %v", tokens[0].Kind, tokens[1].Kind)
	}
}
