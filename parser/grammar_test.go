package parser

import (
	"errors"
	"strings"
	"testing"
)

func TestParseProgram(t *testing.T) {
	src := "int main(int x, float y) {x = 1 + 2; return (float)x;}"

	fn, err := Parse(scan(t, src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := fn.ReturnType.Token.Literal; got != "int" {
		t.Errorf("return type = %q, want %q", got, "int")
	}
	if got := fn.Name.Token.Literal; got != "main" {
		t.Errorf("name = %q, want %q", got, "main")
	}
	if got := len(fn.Params.Items); got != 2 {
		t.Errorf("parameter count = %d, want 2", got)
	}
	if got := len(fn.Body.Items); got != 2 {
		t.Errorf("statement count = %d, want 2", got)
	}
	if got := fn.Signature(); got != src {
		t.Errorf("root signature = %q, want %q", got, src)
	}
}

func TestRootSignatureReproducesSource(t *testing.T) {
	tests := []string{
		"int f() {}",
		"int f() {return 1;}",
		"float g(float y) {y = y * 2.5; return y;}",
		"int h(int a, int b) {return a + b;}",
		"int main(int x, float y) {x = 1 + 2; return (float)x;}",
	}

	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			fn, err := Parse(scan(t, src))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got := fn.Signature(); got != src {
				t.Errorf("signature = %q, want %q", got, src)
			}
		})
	}
}

func TestParseExpressionVariants(t *testing.T) {
	tests := []struct {
		input      string
		arithmetic bool
	}{
		{"42", true},
		{"3.14", true},
		{"x", true},
		{"x + 1", true},
		{"x * y", true},
		{"(int)x", false},
		{"(float)value", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, err := ParseExpression(scan(t, tt.input))
			if err != nil {
				t.Fatalf("ParseExpression: %v", err)
			}
			if tt.arithmetic && expr.Arithmetic == nil {
				t.Error("want arithmetic expression")
			}
			if !tt.arithmetic && expr.Typecast == nil {
				t.Error("want typecast expression")
			}
		})
	}
}

// Chains of the same-precedence operator group to the right: the
// extension recurses into a full subexpression instead of iterating.
func TestRightAssociativity(t *testing.T) {
	expr, err := ParseExpression(scan(t, "a - b - c"))
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}
	arith := expr.Arithmetic
	if arith == nil {
		t.Fatal("want arithmetic expression")
	}
	if got := arith.Term.Signature(); got != "a" {
		t.Errorf("left operand = %q, want %q", got, "a")
	}
	if arith.Extend == nil || arith.Extend.Op.Token.Literal != "-" {
		t.Fatal("want a - extension")
	}
	if got := arith.Extend.Rhs.Signature(); got != "b - c" {
		t.Errorf("right operand = %q, want %q (right grouping)", got, "b - c")
	}
	inner := arith.Extend.Rhs
	if inner.Extend == nil || inner.Extend.Rhs.Signature() != "c" {
		t.Error("want the inner extension to hold c")
	}
}

func TestRightAssociativityMultiplication(t *testing.T) {
	expr, err := ParseExpression(scan(t, "a * b * c"))
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}
	term := expr.Arithmetic.Term
	if term.Extend == nil {
		t.Fatal("want a * extension")
	}
	if got := term.Extend.Rhs.Signature(); got != "b * c" {
		t.Errorf("right operand = %q, want %q (right grouping)", got, "b * c")
	}
}

func TestPrecedence(t *testing.T) {
	expr, err := ParseExpression(scan(t, "a - b * c"))
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}
	arith := expr.Arithmetic
	if got := arith.Term.Signature(); got != "a" {
		t.Errorf("left operand = %q, want %q", got, "a")
	}
	if arith.Extend == nil {
		t.Fatal("want a - extension")
	}
	rhs := arith.Extend.Rhs
	if rhs.Term.Extend == nil || rhs.Term.Signature() != "b * c" {
		t.Errorf("right operand = %q, want the product %q", rhs.Signature(), "b * c")
	}
}

func TestSumCombinedError(t *testing.T) {
	_, err := parseStatement(NewCursor(scan(t, "+ x")))
	if err == nil {
		t.Fatal("parse succeeded, want error")
	}
	var parseErr *Error
	if !errors.As(err, &parseErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if len(parseErr.Expected) != 2 {
		t.Errorf("expected list = %v, want both alternatives", parseErr.Expected)
	}
	msg := err.Error()
	for _, label := range []string{"Assignment Statement", "Return Statement"} {
		if !strings.Contains(msg, label) {
			t.Errorf("message %q does not name %q", msg, label)
		}
	}
}

func TestErrorAtEndOfInput(t *testing.T) {
	_, err := Parse(scan(t, "int main("))
	if err == nil {
		t.Fatal("Parse succeeded, want error")
	}
	var parseErr *Error
	if !errors.As(err, &parseErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if parseErr.Got != nil {
		t.Errorf("Got = %v, want nil for exhausted input", parseErr.Got)
	}
	if !strings.Contains(err.Error(), "found nothing instead") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"main() {}",
		"int () {}",
		"int main {}",
		"int main() {",
		"int main() {return 1}",
		"int main(int) {}",
		"int main(int x,) {}",
		"int main() {} extra",
		"int main() {x = ;}",
		"int main() {x = 1 +;}",
	}

	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			if _, err := Parse(scan(t, src)); err == nil {
				t.Error("Parse succeeded, want error")
			}
		})
	}
}

func TestDisplayTree(t *testing.T) {
	fn, err := Parse(scan(t, "int f() {return x;}"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var buf strings.Builder
	fn.Display(&buf, 0, "")

	want := strings.Join([]string{
		"Function Definition: int f() {return x;}",
		"    Function Return Type: int",
		"    Function Identifier: f",
		"    Left Paren: (",
		"    Function Parameters: ",
		"    Right Paren: )",
		"    Left Curly: {",
		"    Compound Statements: return x;",
		"        Statement:",
		"            Return Statement: return x",
		"                Return: return",
		"                Expression:",
		"                    Arithmetic Expression: x",
		"                        Term: x",
		"                            Factor: x",
		"                                Variable: x",
		"    Right Curly: }",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("display output mismatch:\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestDisplayLabelOverride(t *testing.T) {
	expr, err := ParseExpression(scan(t, "42"))
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}

	var buf strings.Builder
	expr.Display(&buf, 1, "Initializer")

	if !strings.HasPrefix(buf.String(), "    Initializer:") {
		t.Errorf("output = %q, want the override label at depth 1", buf.String())
	}
}

func TestTerminalConsumesExactlyOneToken(t *testing.T) {
	c := NewCursor(scan(t, "int x"))

	tok, err := typeName.parse(c)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tok.Token.Literal != "int" {
		t.Errorf("literal = %q, want %q", tok.Token.Literal, "int")
	}
	if c.Pos() != 1 {
		t.Errorf("pos = %d, want 1", c.Pos())
	}

	// A mismatch consumes nothing.
	if _, err := typeName.parse(c); err == nil {
		t.Fatal("parse succeeded on identifier, want error")
	}
	if c.Pos() != 1 {
		t.Errorf("pos after failed parse = %d, want 1", c.Pos())
	}
}
