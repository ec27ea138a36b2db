package lexer

import "fmt"

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Span struct {
	Start Position
	End   Position
}

type Kind int

const (
	TokenError Kind = iota

	// Literals and identifiers
	TokenIntLiteral
	TokenFloatLiteral
	TokenIdent

	// Type keywords
	TokenInt
	TokenFloat

	// Keywords
	TokenReturn

	// Symbols
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenAssign
	TokenSemicolon
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenUnderscore
	TokenComma
	TokenDot
)

var kindNames = map[Kind]string{
	TokenError:        "Error",
	TokenIntLiteral:   "IntLiteral",
	TokenFloatLiteral: "FloatLiteral",
	TokenIdent:        "Identifier",
	TokenInt:          "int",
	TokenFloat:        "float",
	TokenReturn:       "return",
	TokenPlus:         "+",
	TokenMinus:        "-",
	TokenStar:         "*",
	TokenSlash:        "/",
	TokenAssign:       "=",
	TokenSemicolon:    ";",
	TokenLParen:       "(",
	TokenRParen:       ")",
	TokenLBrace:       "{",
	TokenRBrace:       "}",
	TokenUnderscore:   "_",
	TokenComma:        ",",
	TokenDot:          ".",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsType reports whether k is one of the type keywords.
func (k Kind) IsType() bool {
	return k == TokenInt || k == TokenFloat
}

// IsSymbol reports whether k is a punctuation symbol.
func (k Kind) IsSymbol() bool {
	return k >= TokenPlus && k <= TokenDot
}

// IsLiteral reports whether k is an integer or float literal.
func (k Kind) IsLiteral() bool {
	return k == TokenIntLiteral || k == TokenFloatLiteral
}

type Token struct {
	Kind    Kind
	Span    Span
	Literal string
}

var keywords = map[string]Kind{
	"int":    TokenInt,
	"float":  TokenFloat,
	"return": TokenReturn,
}

// LookupKeyword maps a completed lexeme to its keyword kind, or TokenIdent
// when the lexeme is not a reserved word.
func LookupKeyword(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return TokenIdent
}
