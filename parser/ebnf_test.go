package parser

import (
	"strings"
	"testing"
)

func TestCheckGrammar(t *testing.T) {
	if err := CheckGrammar(); err != nil {
		t.Fatalf("CheckGrammar: %v", err)
	}
}

func TestGrammarNamesEveryRule(t *testing.T) {
	rules := []string{
		"SourceFile",
		"FunctionDefinition",
		"FunctionParameters",
		"FunctionParameter",
		"CompoundStatements",
		"Statement",
		"AssignmentStatement",
		"ReturnStatement",
		"Expression",
		"TypecastExpression",
		"ArithmeticExpression",
		"Term",
		"TermExtend",
		"FactorExtend",
		"Factor",
	}
	for _, rule := range rules {
		if !strings.Contains(Grammar, rule+" ") {
			t.Errorf("grammar does not define %s", rule)
		}
	}
}
