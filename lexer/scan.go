// Package lexer converts raw source bytes of the tinyc language into a
// classified token stream.
//
// Tokenization is a single left-to-right pass driven by a finite-state
// machine (Machine) that consumes one byte at a time. Each byte is first
// tested against the whitespace set, then classified (Classify) as a
// letter, digit, or punctuation symbol. Reserved words are recognized with
// maximal munch: the machine tracks keyword prefixes byte by byte and
// falls back to a plain identifier the moment a byte breaks the prefix,
// so "intx" is one identifier and never the keyword "int" plus "x".
//
// Lexical errors are fatal: Scan returns no partial token stream once an
// unsupported byte or an invalid transition is hit.
package lexer

import "io"

// Scan drives a fresh Machine over input and returns the fully
// materialized token stream. The returned slice is source-ordered and
// never mutated afterwards; callers share it freely.
func Scan(input []byte, file string) ([]Token, error) {
	m := NewMachine(file)
	var tokens []Token
	for _, ch := range input {
		flushed, err := m.Tick(ch)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, flushed...)
	}
	flushed, err := m.Finalize()
	if err != nil {
		return nil, err
	}
	return append(tokens, flushed...), nil
}

// ScanReader reads r to exhaustion and scans the result.
func ScanReader(r io.Reader, file string) ([]Token, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Scan(input, file)
}
