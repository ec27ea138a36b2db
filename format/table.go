package format

import (
	"fmt"
	"io"
	"strings"
)

// TableEncoder prints the token stream as a two-column table, one row
// per token:
//
//	TOKEN                   |LEXEME
//	                        |
//	int                     |int
//	Identifier              |main
type TableEncoder struct {
	w   io.Writer
	res *Result
}

func NewTableEncoder(w io.Writer) *TableEncoder {
	return &TableEncoder{w: w}
}

func (e *TableEncoder) Encode(res *Result) error {
	e.res = res
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TableEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%-24s|%s\n%-24s|\n", "TOKEN", "LEXEME", "")
	for _, tok := range e.res.Tokens {
		fmt.Fprintf(&sb, "%-24s|%s\n", tok.Kind.String(), tok.Literal)
	}

	return []byte(sb.String()), nil
}
