package format

import (
	"io"
	"strings"
)

// TreeEncoder prints the parse tree as an indented outline, four spaces
// per level, each rule heading followed by the signature of its
// subtree.
type TreeEncoder struct {
	w   io.Writer
	res *Result
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(res *Result) error {
	e.res = res
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	if e.res.Tree != nil {
		e.res.Tree.Display(&sb, 0, "")
	}
	return []byte(sb.String()), nil
}
