package parser

import (
	"strings"

	"golang.org/x/exp/ebnf"
)

// Grammar is the EBNF of the language accepted by Parse. Capitalized
// names are syntactic productions implemented by this package;
// lowercased names are lexical productions implemented by the lexer.
const Grammar = `SourceFile = FunctionDefinition .

FunctionDefinition = type identifier "(" FunctionParameters ")" "{" CompoundStatements "}" .
FunctionParameters = [ FunctionParameter { "," FunctionParameter } ] .
FunctionParameter  = type identifier .
CompoundStatements = { Statement ";" } .

Statement           = AssignmentStatement | ReturnStatement .
AssignmentStatement = identifier "=" Expression .
ReturnStatement     = "return" Expression .

Expression           = ArithmeticExpression | TypecastExpression .
TypecastExpression   = "(" type ")" identifier .
ArithmeticExpression = Term [ TermExtend ] .
Term                 = Factor [ FactorExtend ] .
TermExtend           = ( "+" | "-" ) ArithmeticExpression .
FactorExtend         = ( "*" | "/" ) Term .
Factor               = identifier | literal .

type       = "int" | "float" .
identifier = letter { letter | digit | "_" } .
literal    = digits [ "." digits ] .
digits     = digit { digit } .
letter     = "a" … "z" | "A" … "Z" | "_" .
digit      = "0" … "9" .
`

// CheckGrammar parses and verifies Grammar, reporting undefined or
// unreachable productions.
func CheckGrammar() error {
	grammar, err := ebnf.Parse("tinyc.ebnf", strings.NewReader(Grammar))
	if err != nil {
		return err
	}
	return ebnf.Verify(grammar, "SourceFile")
}
