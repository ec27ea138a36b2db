package lexer

// CharClass is the lexical classification of a single input byte.
type CharClass int

const (
	ClassUnknown CharClass = iota
	ClassLetter
	ClassDigit
	ClassSymbol
)

var charClassNames = map[CharClass]string{
	ClassUnknown: "Unknown",
	ClassLetter:  "Letter",
	ClassDigit:   "Digit",
	ClassSymbol:  "Symbol",
}

func (c CharClass) String() string {
	if name, ok := charClassNames[c]; ok {
		return name
	}
	return "Unknown"
}

var symbolKinds = map[byte]Kind{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'/': TokenSlash,
	'=': TokenAssign,
	';': TokenSemicolon,
	'(': TokenLParen,
	')': TokenRParen,
	'{': TokenLBrace,
	'}': TokenRBrace,
	'_': TokenUnderscore,
	',': TokenComma,
	'.': TokenDot,
}

// IsSpace reports whether ch is one of the recognized whitespace bytes.
// The tokenizer consults this before classifying a byte.
func IsSpace(ch byte) bool {
	switch ch {
	case '\t', '\n', '\v', '\f', '\r', ' ':
		return true
	}
	return false
}

// Classify assigns ch a character class. For ClassSymbol the second return
// value is the symbol's token kind; for every other class it is TokenError.
// Bytes outside the printable 7-bit ASCII window classify as ClassUnknown.
func Classify(ch byte) (CharClass, Kind) {
	if ch < 0x21 || ch > 0x7E {
		return ClassUnknown, TokenError
	}
	if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') {
		return ClassLetter, TokenError
	}
	if ch >= '0' && ch <= '9' {
		return ClassDigit, TokenError
	}
	if kind, ok := symbolKinds[ch]; ok {
		return ClassSymbol, kind
	}
	return ClassUnknown, TokenError
}
