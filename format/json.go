package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/tinyc/lexer"
	"github.com/dhamidi/tinyc/parser"
)

type JSONEncoder struct {
	w   io.Writer
	res *Result
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(res *Result) error {
	e.res = res
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := e.buildResult()
	return json.MarshalIndent(data, "", "  ")
}

type jsonResult struct {
	File   string      `json:"file,omitempty"`
	Tokens []jsonToken `json:"tokens"`
	Tree   *jsonNode   `json:"tree,omitempty"`
}

type jsonToken struct {
	Kind   string `json:"kind"`
	Lexeme string `json:"lexeme"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Offset int    `json:"offset"`
}

type jsonNode struct {
	Rule      string     `json:"rule"`
	Signature string     `json:"signature,omitempty"`
	Children  []jsonNode `json:"children,omitempty"`
}

func (e *JSONEncoder) buildResult() jsonResult {
	data := jsonResult{
		File:   e.res.File,
		Tokens: e.buildTokens(),
	}
	if e.res.Tree != nil {
		tree := buildFunctionDefinition(e.res.Tree)
		data.Tree = &tree
	}
	return data
}

func (e *JSONEncoder) buildTokens() []jsonToken {
	tokens := make([]jsonToken, len(e.res.Tokens))
	for i, tok := range e.res.Tokens {
		tokens[i] = jsonToken{
			Kind:   tok.Kind.String(),
			Lexeme: tok.Literal,
			Line:   tok.Span.Start.Line,
			Column: tok.Span.Start.Column,
			Offset: tok.Span.Start.Offset,
		}
	}
	return tokens
}

func terminalNode(rule string, tok lexer.Token) jsonNode {
	return jsonNode{Rule: rule, Signature: tok.Literal}
}

func buildFunctionDefinition(fn *parser.FunctionDefinition) jsonNode {
	node := jsonNode{
		Rule:      "FunctionDefinition",
		Signature: fn.Signature(),
		Children: []jsonNode{
			terminalNode("ReturnType", fn.ReturnType.Token),
			terminalNode("Name", fn.Name.Token),
		},
	}
	for _, item := range fn.Params.Items {
		node.Children = append(node.Children, buildFunctionParameter(item.Elem))
	}
	for _, item := range fn.Body.Items {
		node.Children = append(node.Children, buildStatement(item.Elem))
	}
	return node
}

func buildFunctionParameter(param *parser.FunctionParameter) jsonNode {
	return jsonNode{
		Rule:      "FunctionParameter",
		Signature: param.Signature(),
		Children: []jsonNode{
			terminalNode("Type", param.Type.Token),
			terminalNode("Name", param.Name.Token),
		},
	}
}

func buildStatement(stmt *parser.Statement) jsonNode {
	if stmt.Assign != nil {
		return jsonNode{
			Rule:      "AssignmentStatement",
			Signature: stmt.Assign.Signature(),
			Children: []jsonNode{
				terminalNode("Name", stmt.Assign.Name.Token),
				buildExpression(stmt.Assign.Expr),
			},
		}
	}
	return jsonNode{
		Rule:      "ReturnStatement",
		Signature: stmt.Return.Signature(),
		Children: []jsonNode{
			buildExpression(stmt.Return.Expr),
		},
	}
}

func buildExpression(expr *parser.Expression) jsonNode {
	if expr.Typecast != nil {
		return jsonNode{
			Rule:      "TypecastExpression",
			Signature: expr.Typecast.Signature(),
			Children: []jsonNode{
				terminalNode("Type", expr.Typecast.Type.Token),
				terminalNode("Name", expr.Typecast.Name.Token),
			},
		}
	}
	return buildArithmeticExpression(expr.Arithmetic)
}

func buildArithmeticExpression(arith *parser.ArithmeticExpression) jsonNode {
	node := jsonNode{
		Rule:      "ArithmeticExpression",
		Signature: arith.Signature(),
		Children:  []jsonNode{buildTerm(arith.Term)},
	}
	if arith.Extend != nil {
		node.Children = append(node.Children,
			terminalNode("Operator", arith.Extend.Op.Token),
			buildArithmeticExpression(arith.Extend.Rhs),
		)
	}
	return node
}

func buildTerm(term *parser.Term) jsonNode {
	node := jsonNode{
		Rule:      "Term",
		Signature: term.Signature(),
		Children:  []jsonNode{buildFactor(term.Factor)},
	}
	if term.Extend != nil {
		node.Children = append(node.Children,
			terminalNode("Operator", term.Extend.Op.Token),
			buildTerm(term.Extend.Rhs),
		)
	}
	return node
}

func buildFactor(factor *parser.Factor) jsonNode {
	if factor.Ident != nil {
		return terminalNode("Variable", factor.Ident.Token)
	}
	return terminalNode("Literal", factor.Literal.Token)
}
