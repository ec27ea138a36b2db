package lexer

import "fmt"

// Error is a fatal lexical error: an unexpected byte given the lexeme
// accumulated so far, or a byte outside the supported character set.
type Error struct {
	Byte    byte
	Pos     Position
	Partial string
}

func (e *Error) Error() string {
	if e.Partial != "" {
		return fmt.Sprintf("unexpected character %q after %q at %s", e.Byte, e.Partial, e.Pos)
	}
	return fmt.Sprintf("unsupported character %q at %s", e.Byte, e.Pos)
}

type state int

const (
	// stateScroll skips whitespace between lexemes. Initial state.
	stateScroll state = iota
	// stateNumber accumulates an integer literal.
	stateNumber
	// stateNumberFloat accumulates a float literal after the '.' promotion.
	stateNumberFloat
	// stateIdent accumulates a generic identifier.
	stateIdent
	// stateKeyword tracks a reserved-word prefix. The machine stays here
	// only while every byte seen so far matches keyword[:matched].
	stateKeyword
)

// keywordStart returns the reserved word whose first byte is ch, if any.
func keywordStart(ch byte) string {
	switch ch {
	case 'i':
		return "int"
	case 'f':
		return "float"
	case 'r':
		return "return"
	}
	return ""
}

// Machine is the tokenizer state machine. It consumes one byte per Tick,
// accumulating a lexeme buffer and emitting zero, one, or two completed
// tokens per step. Tokens are never emitted partially: a lexeme is flushed
// only when a byte that cannot extend it arrives.
type Machine struct {
	state   state
	keyword string
	matched int
	buf     []byte
	start   Position
	pos     Position
}

func NewMachine(file string) *Machine {
	return &Machine{
		pos: Position{File: file, Line: 1, Column: 1},
	}
}

// Tick advances the machine by one input byte.
func (m *Machine) Tick(ch byte) ([]Token, error) {
	tokens, err := m.step(ch)
	if err != nil {
		return nil, err
	}
	m.pos = nextPos(m.pos, ch)
	return tokens, nil
}

// Finalize models end of input as an implicit trailing whitespace byte,
// flushing any pending lexeme exactly once.
func (m *Machine) Finalize() ([]Token, error) {
	return m.Tick(' ')
}

func (m *Machine) step(ch byte) ([]Token, error) {
	switch m.state {
	case stateScroll:
		return m.stepScroll(ch)
	case stateNumber:
		return m.stepNumber(ch)
	case stateNumberFloat:
		return m.stepNumberFloat(ch)
	case stateIdent:
		return m.stepIdent(ch)
	case stateKeyword:
		return m.stepKeyword(ch)
	}
	return nil, m.unexpected(ch)
}

func (m *Machine) stepScroll(ch byte) ([]Token, error) {
	if IsSpace(ch) {
		return nil, nil
	}
	class, sym := Classify(ch)
	switch class {
	case ClassLetter:
		m.begin(ch)
		if kw := keywordStart(ch); kw != "" {
			m.state = stateKeyword
			m.keyword = kw
			m.matched = 1
		} else {
			m.state = stateIdent
		}
		return nil, nil
	case ClassDigit:
		m.begin(ch)
		m.state = stateNumber
		return nil, nil
	case ClassSymbol:
		if sym == TokenUnderscore {
			// Underscore opens an identifier rather than standing alone.
			m.begin(ch)
			m.state = stateIdent
			return nil, nil
		}
		return []Token{m.symbolToken(sym, ch)}, nil
	}
	return nil, m.unexpected(ch)
}

func (m *Machine) stepKeyword(ch byte) ([]Token, error) {
	if IsSpace(ch) {
		return []Token{m.flush()}, nil
	}
	class, sym := Classify(ch)
	switch class {
	case ClassLetter:
		if m.matched < len(m.keyword) && ch == m.keyword[m.matched] {
			m.matched++
			m.buf = append(m.buf, ch)
			return nil, nil
		}
		// The prefix was a coincidental substring of a longer identifier.
		m.state = stateIdent
		m.buf = append(m.buf, ch)
		return nil, nil
	case ClassDigit:
		m.state = stateIdent
		m.buf = append(m.buf, ch)
		return nil, nil
	case ClassSymbol:
		if sym == TokenUnderscore {
			m.state = stateIdent
			m.buf = append(m.buf, ch)
			return nil, nil
		}
		return []Token{m.flush(), m.symbolToken(sym, ch)}, nil
	}
	return nil, m.unexpected(ch)
}

func (m *Machine) stepIdent(ch byte) ([]Token, error) {
	if IsSpace(ch) {
		return []Token{m.flush()}, nil
	}
	class, sym := Classify(ch)
	switch class {
	case ClassLetter, ClassDigit:
		m.buf = append(m.buf, ch)
		return nil, nil
	case ClassSymbol:
		if sym == TokenUnderscore {
			m.buf = append(m.buf, ch)
			return nil, nil
		}
		return []Token{m.flush(), m.symbolToken(sym, ch)}, nil
	}
	return nil, m.unexpected(ch)
}

func (m *Machine) stepNumber(ch byte) ([]Token, error) {
	if IsSpace(ch) {
		return []Token{m.flush()}, nil
	}
	class, sym := Classify(ch)
	switch class {
	case ClassDigit:
		m.buf = append(m.buf, ch)
		return nil, nil
	case ClassSymbol:
		if sym == TokenDot {
			m.buf = append(m.buf, ch)
			m.state = stateNumberFloat
			return nil, nil
		}
		return []Token{m.flush(), m.symbolToken(sym, ch)}, nil
	}
	return nil, m.unexpected(ch)
}

func (m *Machine) stepNumberFloat(ch byte) ([]Token, error) {
	if IsSpace(ch) {
		return []Token{m.flush()}, nil
	}
	class, sym := Classify(ch)
	switch class {
	case ClassDigit:
		m.buf = append(m.buf, ch)
		return nil, nil
	case ClassSymbol:
		if sym == TokenDot {
			// A second '.' cannot extend a float literal.
			return nil, m.unexpected(ch)
		}
		return []Token{m.flush(), m.symbolToken(sym, ch)}, nil
	}
	return nil, m.unexpected(ch)
}

// begin starts a fresh lexeme whose first byte is ch.
func (m *Machine) begin(ch byte) {
	m.start = m.pos
	m.buf = append(m.buf[:0], ch)
}

// flush completes the pending lexeme and returns the machine to the
// whitespace-scrolling state. The token kind depends on the state the
// flush happens from: a fully matched reserved word becomes its keyword
// token, a partial match degrades to an identifier.
func (m *Machine) flush() Token {
	kind := TokenIdent
	switch m.state {
	case stateNumber:
		kind = TokenIntLiteral
	case stateNumberFloat:
		kind = TokenFloatLiteral
	case stateKeyword:
		if m.matched == len(m.keyword) {
			kind = keywords[m.keyword]
		}
	}
	tok := Token{
		Kind:    kind,
		Span:    Span{Start: m.start, End: m.pos},
		Literal: string(m.buf),
	}
	m.state = stateScroll
	m.buf = m.buf[:0]
	return tok
}

func (m *Machine) symbolToken(kind Kind, ch byte) Token {
	return Token{
		Kind:    kind,
		Span:    Span{Start: m.pos, End: nextPos(m.pos, ch)},
		Literal: string(ch),
	}
}

func (m *Machine) unexpected(ch byte) error {
	return &Error{
		Byte:    ch,
		Pos:     m.pos,
		Partial: string(m.buf),
	}
}

func nextPos(p Position, ch byte) Position {
	p.Offset++
	if ch == '\n' {
		p.Line++
		p.Column = 1
	} else {
		p.Column++
	}
	return p
}
