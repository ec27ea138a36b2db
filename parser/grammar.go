package parser

import (
	"fmt"
	"io"
	"strings"
)

// FunctionDefinition is the grammar's root rule:
//
//	<FUNCTION DEFINITION> -> type identifier (<FUNCTION PARAMETERS>){<COMPOUND STATEMENTS>}
type FunctionDefinition struct {
	ReturnType Terminal
	Name       Terminal
	LParen     Terminal
	Params     *Delimited[*FunctionParameter, Terminal]
	RParen     Terminal
	LBrace     Terminal
	Body       *Terminated[*Statement, Terminal]
	RBrace     Terminal
}

func parseFunctionDefinition(c *Cursor) (*FunctionDefinition, error) {
	fn := &FunctionDefinition{}
	fork := c.Fork()

	var err error
	if fn.ReturnType, err = typeName.parse(&fork); err != nil {
		return nil, err
	}
	if fn.Name, err = identifier.parse(&fork); err != nil {
		return nil, err
	}
	if fn.LParen, err = lparen.parse(&fork); err != nil {
		return nil, err
	}
	if fn.Params, err = parseDelimited(&fork, "Function Parameters", parseFunctionParameter, comma.parse); err != nil {
		return nil, err
	}
	if fn.RParen, err = rparen.parse(&fork); err != nil {
		return nil, err
	}
	if fn.LBrace, err = lbrace.parse(&fork); err != nil {
		return nil, err
	}
	if fn.Body, err = parseTerminated(&fork, "Compound Statements", parseStatement, semicolon.parse); err != nil {
		return nil, err
	}
	if fn.RBrace, err = rbrace.parse(&fork); err != nil {
		return nil, err
	}

	c.Commit(fork)
	return fn, nil
}

func (f *FunctionDefinition) Display(w io.Writer, depth int, label string) {
	if label == "" {
		label = "Function Definition"
	}
	fmt.Fprintf(w, "%s%s: %s\n", makeIndent(depth), label, f.Signature())

	f.ReturnType.Display(w, depth+1, "Function Return Type")
	f.Name.Display(w, depth+1, "Function Identifier")
	f.LParen.Display(w, depth+1, "Left Paren")
	f.Params.Display(w, depth+1, "Function Parameters")
	f.RParen.Display(w, depth+1, "Right Paren")
	f.LBrace.Display(w, depth+1, "Left Curly")
	f.Body.Display(w, depth+1, "Compound Statements")
	f.RBrace.Display(w, depth+1, "Right Curly")
}

func (f *FunctionDefinition) Signature() string {
	var sig strings.Builder
	sig.WriteString(f.ReturnType.Signature())
	sig.WriteString(" ")
	sig.WriteString(f.Name.Signature())
	sig.WriteString(f.LParen.Signature())
	sig.WriteString(f.Params.Signature())
	sig.WriteString(f.RParen.Signature())
	sig.WriteString(" ")
	sig.WriteString(f.LBrace.Signature())
	sig.WriteString(f.Body.Signature())
	sig.WriteString(f.RBrace.Signature())
	return sig.String()
}

// FunctionParameter:
//
//	<FUNCTION PARAMETER> -> type identifier
type FunctionParameter struct {
	Type Terminal
	Name Terminal
}

func parseFunctionParameter(c *Cursor) (*FunctionParameter, error) {
	param := &FunctionParameter{}
	fork := c.Fork()

	var err error
	if param.Type, err = typeName.parse(&fork); err != nil {
		return nil, err
	}
	if param.Name, err = identifier.parse(&fork); err != nil {
		return nil, err
	}

	c.Commit(fork)
	return param, nil
}

func (p *FunctionParameter) Display(w io.Writer, depth int, label string) {
	if label == "" {
		label = "Function Parameter"
	}
	fmt.Fprintf(w, "%s%s: %s\n", makeIndent(depth), label, p.Signature())

	p.Type.Display(w, depth+1, "Parameter Type")
	p.Name.Display(w, depth+1, "Parameter Identifier")
}

func (p *FunctionParameter) Signature() string {
	return p.Type.Signature() + " " + p.Name.Signature()
}

// Statement is a sum:
//
//	<STATEMENT> -> <ASSIGNMENT STATEMENT>
//	             | <RETURN STATEMENT>
//
// Exactly one field is non-nil.
type Statement struct {
	Assign *AssignmentStatement
	Return *ReturnStatement
}

func parseStatement(c *Cursor) (*Statement, error) {
	fork := c.Fork()
	if assign, err := parseAssignmentStatement(&fork); err == nil {
		c.Commit(fork)
		return &Statement{Assign: assign}, nil
	}

	fork = c.Fork()
	if ret, err := parseReturnStatement(&fork); err == nil {
		c.Commit(fork)
		return &Statement{Return: ret}, nil
	}

	return nil, &Error{
		Expected: []string{"Assignment Statement", "Return Statement"},
		Got:      c.Peek(),
	}
}

func (s *Statement) Display(w io.Writer, depth int, label string) {
	if label == "" {
		label = "Statement"
	}
	fmt.Fprintf(w, "%s%s:\n", makeIndent(depth), label)

	if s.Assign != nil {
		s.Assign.Display(w, depth+1, "")
	} else {
		s.Return.Display(w, depth+1, "")
	}
}

func (s *Statement) Signature() string {
	if s.Assign != nil {
		return s.Assign.Signature()
	}
	return s.Return.Signature()
}

// AssignmentStatement:
//
//	<ASSIGNMENT STATEMENT> -> identifier = <EXPRESSION>
type AssignmentStatement struct {
	Name   Terminal
	Equals Terminal
	Expr   *Expression
}

func parseAssignmentStatement(c *Cursor) (*AssignmentStatement, error) {
	assign := &AssignmentStatement{}
	fork := c.Fork()

	var err error
	if assign.Name, err = identifier.parse(&fork); err != nil {
		return nil, err
	}
	if assign.Equals, err = equals.parse(&fork); err != nil {
		return nil, err
	}
	if assign.Expr, err = parseExpression(&fork); err != nil {
		return nil, err
	}

	c.Commit(fork)
	return assign, nil
}

func (a *AssignmentStatement) Display(w io.Writer, depth int, label string) {
	if label == "" {
		label = "Assignment Statement"
	}
	fmt.Fprintf(w, "%s%s: %s\n", makeIndent(depth), label, a.Signature())

	a.Name.Display(w, depth+1, "Identifier")
	a.Equals.Display(w, depth+1, "Equals")
	a.Expr.Display(w, depth+1, "")
}

func (a *AssignmentStatement) Signature() string {
	return a.Name.Signature() + " " + a.Equals.Signature() + " " + a.Expr.Signature()
}

// ReturnStatement:
//
//	<RETURN STATEMENT> -> return <EXPRESSION>
type ReturnStatement struct {
	Return Terminal
	Expr   *Expression
}

func parseReturnStatement(c *Cursor) (*ReturnStatement, error) {
	ret := &ReturnStatement{}
	fork := c.Fork()

	var err error
	if ret.Return, err = kwReturn.parse(&fork); err != nil {
		return nil, err
	}
	if ret.Expr, err = parseExpression(&fork); err != nil {
		return nil, err
	}

	c.Commit(fork)
	return ret, nil
}

func (r *ReturnStatement) Display(w io.Writer, depth int, label string) {
	if label == "" {
		label = "Return Statement"
	}
	fmt.Fprintf(w, "%s%s: %s\n", makeIndent(depth), label, r.Signature())

	r.Return.Display(w, depth+1, "Return")
	r.Expr.Display(w, depth+1, "")
}

func (r *ReturnStatement) Signature() string {
	return r.Return.Signature() + " " + r.Expr.Signature()
}

// Expression is a sum:
//
//	<EXPRESSION> -> <ARITHMETIC EXPRESSION>
//	              | <TYPECAST EXPRESSION>
//
// Arithmetic is tried first; the ordering is a tie-break rule and must
// not be reordered.
type Expression struct {
	Arithmetic *ArithmeticExpression
	Typecast   *TypecastExpression
}

func parseExpression(c *Cursor) (*Expression, error) {
	fork := c.Fork()
	if arith, err := parseArithmeticExpression(&fork); err == nil {
		c.Commit(fork)
		return &Expression{Arithmetic: arith}, nil
	}

	fork = c.Fork()
	if cast, err := parseTypecastExpression(&fork); err == nil {
		c.Commit(fork)
		return &Expression{Typecast: cast}, nil
	}

	return nil, &Error{
		Expected: []string{"Arithmetic Expression", "Typecast Expression"},
		Got:      c.Peek(),
	}
}

func (e *Expression) Display(w io.Writer, depth int, label string) {
	if label == "" {
		label = "Expression"
	}
	fmt.Fprintf(w, "%s%s:\n", makeIndent(depth), label)

	if e.Arithmetic != nil {
		e.Arithmetic.Display(w, depth+1, "")
	} else {
		e.Typecast.Display(w, depth+1, "")
	}
}

func (e *Expression) Signature() string {
	if e.Arithmetic != nil {
		return e.Arithmetic.Signature()
	}
	return e.Typecast.Signature()
}

// TypecastExpression:
//
//	<TYPECAST EXPRESSION> -> (type)identifier
type TypecastExpression struct {
	LParen Terminal
	Type   Terminal
	RParen Terminal
	Name   Terminal
}

func parseTypecastExpression(c *Cursor) (*TypecastExpression, error) {
	cast := &TypecastExpression{}
	fork := c.Fork()

	var err error
	if cast.LParen, err = lparen.parse(&fork); err != nil {
		return nil, err
	}
	if cast.Type, err = typeName.parse(&fork); err != nil {
		return nil, err
	}
	if cast.RParen, err = rparen.parse(&fork); err != nil {
		return nil, err
	}
	if cast.Name, err = identifier.parse(&fork); err != nil {
		return nil, err
	}

	c.Commit(fork)
	return cast, nil
}

func (t *TypecastExpression) Display(w io.Writer, depth int, label string) {
	if label == "" {
		label = "Typecast Expression"
	}
	fmt.Fprintf(w, "%s%s: %s\n", makeIndent(depth), label, t.Signature())

	t.LParen.Display(w, depth+1, "Left Paren")
	t.Type.Display(w, depth+1, "Cast Type")
	t.RParen.Display(w, depth+1, "Right Paren")
	t.Name.Display(w, depth+1, "Cast Identifier")
}

func (t *TypecastExpression) Signature() string {
	return t.LParen.Signature() + t.Type.Signature() + t.RParen.Signature() + t.Name.Signature()
}

// ArithmeticExpression:
//
//	<ARITHMETIC EXPRESSION> -> <TERM><TERM'>
type ArithmeticExpression struct {
	Term   *Term
	Extend *TermExtend // nil when the expression is a bare term
}

func parseArithmeticExpression(c *Cursor) (*ArithmeticExpression, error) {
	arith := &ArithmeticExpression{}
	fork := c.Fork()

	var err error
	if arith.Term, err = parseTerm(&fork); err != nil {
		return nil, err
	}
	if arith.Extend, err = parseTermExtend(&fork); err != nil {
		return nil, err
	}

	c.Commit(fork)
	return arith, nil
}

func (a *ArithmeticExpression) Display(w io.Writer, depth int, label string) {
	if label == "" {
		label = "Arithmetic Expression"
	}
	fmt.Fprintf(w, "%s%s: %s\n", makeIndent(depth), label, a.Signature())

	a.Term.Display(w, depth+1, "")
	if a.Extend != nil {
		a.Extend.Display(w, depth+1, "")
	}
}

func (a *ArithmeticExpression) Signature() string {
	if a.Extend == nil {
		return a.Term.Signature()
	}
	return a.Term.Signature() + " " + a.Extend.Signature()
}

// Term:
//
//	<TERM> -> <FACTOR><FACTOR'>
type Term struct {
	Factor *Factor
	Extend *FactorExtend // nil when the term is a bare factor
}

func parseTerm(c *Cursor) (*Term, error) {
	term := &Term{}
	fork := c.Fork()

	var err error
	if term.Factor, err = parseFactor(&fork); err != nil {
		return nil, err
	}
	if term.Extend, err = parseFactorExtend(&fork); err != nil {
		return nil, err
	}

	c.Commit(fork)
	return term, nil
}

func (t *Term) Display(w io.Writer, depth int, label string) {
	if label == "" {
		label = "Term"
	}
	fmt.Fprintf(w, "%s%s: %s\n", makeIndent(depth), label, t.Signature())

	t.Factor.Display(w, depth+1, "")
	if t.Extend != nil {
		t.Extend.Display(w, depth+1, "")
	}
}

func (t *Term) Signature() string {
	if t.Extend == nil {
		return t.Factor.Signature()
	}
	return t.Factor.Signature() + " " + t.Extend.Signature()
}

// TermExtend:
//
//	<TERM'> -> +<ARITHMETIC EXPRESSION>
//	         | -<ARITHMETIC EXPRESSION>
//	         | ε
//
// The ε alternative is the nil *TermExtend in the parent. The recursion
// into a full arithmetic expression (not an iteration) is what makes
// chains of + and - group to the right: "a - b - c" is a - (b - c).
type TermExtend struct {
	Op  Terminal
	Rhs *ArithmeticExpression
}

// parseTermExtend returns (nil, nil) when no operator follows; an
// operator with no operand after it is an error.
func parseTermExtend(c *Cursor) (*TermExtend, error) {
	if c.Peek() == nil {
		return nil, nil
	}

	fork := c.Fork()
	if op, err := plus.parse(&fork); err == nil {
		rhs, err := parseArithmeticExpression(&fork)
		if err != nil {
			return nil, err
		}
		c.Commit(fork)
		return &TermExtend{Op: op, Rhs: rhs}, nil
	}

	fork = c.Fork()
	if op, err := minus.parse(&fork); err == nil {
		rhs, err := parseArithmeticExpression(&fork)
		if err != nil {
			return nil, err
		}
		c.Commit(fork)
		return &TermExtend{Op: op, Rhs: rhs}, nil
	}

	return nil, nil
}

func (e *TermExtend) Display(w io.Writer, depth int, label string) {
	// The operand stays at the caller's depth: the extension continues
	// the expression rather than nesting under it.
	fmt.Fprintf(w, "%sOperator: %s\n", makeIndent(depth), e.Op.Signature())
	e.Rhs.Display(w, depth, "")
}

func (e *TermExtend) Signature() string {
	return e.Op.Signature() + " " + e.Rhs.Signature()
}

// Factor is a sum:
//
//	<FACTOR> -> identifier
//	          | literal
type Factor struct {
	Ident   *Terminal
	Literal *Terminal
}

func parseFactor(c *Cursor) (*Factor, error) {
	fork := c.Fork()
	if ident, err := identifier.parse(&fork); err == nil {
		c.Commit(fork)
		return &Factor{Ident: &ident}, nil
	}

	fork = c.Fork()
	if lit, err := literal.parse(&fork); err == nil {
		c.Commit(fork)
		return &Factor{Literal: &lit}, nil
	}

	return nil, &Error{
		Expected: []string{identifier.label, literal.label},
		Got:      c.Peek(),
	}
}

func (f *Factor) Display(w io.Writer, depth int, label string) {
	if label == "" {
		label = "Factor"
	}
	fmt.Fprintf(w, "%s%s: %s\n", makeIndent(depth), label, f.Signature())

	if f.Ident != nil {
		f.Ident.Display(w, depth+1, "Variable")
	} else {
		f.Literal.Display(w, depth+1, "Literal")
	}
}

func (f *Factor) Signature() string {
	if f.Ident != nil {
		return f.Ident.Signature()
	}
	return f.Literal.Signature()
}

// FactorExtend:
//
//	<FACTOR'> -> *<TERM>
//	           | /<TERM>
//	           | ε
//
// Like TermExtend, the recursion into a full Term groups chains of *
// and / to the right.
type FactorExtend struct {
	Op  Terminal
	Rhs *Term
}

func parseFactorExtend(c *Cursor) (*FactorExtend, error) {
	if c.Peek() == nil {
		return nil, nil
	}

	fork := c.Fork()
	if op, err := star.parse(&fork); err == nil {
		rhs, err := parseTerm(&fork)
		if err != nil {
			return nil, err
		}
		c.Commit(fork)
		return &FactorExtend{Op: op, Rhs: rhs}, nil
	}

	fork = c.Fork()
	if op, err := slash.parse(&fork); err == nil {
		rhs, err := parseTerm(&fork)
		if err != nil {
			return nil, err
		}
		c.Commit(fork)
		return &FactorExtend{Op: op, Rhs: rhs}, nil
	}

	return nil, nil
}

func (e *FactorExtend) Display(w io.Writer, depth int, label string) {
	fmt.Fprintf(w, "%sOperator: %s\n", makeIndent(depth), e.Op.Signature())
	e.Rhs.Display(w, depth, "")
}

func (e *FactorExtend) Signature() string {
	return e.Op.Signature() + " " + e.Rhs.Signature()
}
