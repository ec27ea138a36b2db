package parser

import (
	"fmt"
	"io"
	"strings"
)

// DelimitedItem pairs a parsed element with the delimiter that followed
// it. Delim is nil on the final element only.
type DelimitedItem[E, D Node] struct {
	Elem  E
	Delim *D
}

// Delimited is a list of zero or more elements separated, but never
// terminated, by a delimiter: "int x, float y" parses, "int x," does
// not.
type Delimited[E, D Node] struct {
	Items []DelimitedItem[E, D]
	label string
}

// parseDelimited parses a delimited list on a fork of c. An element
// failure on the very first attempt yields an empty list; a missing
// delimiter after an element ends the list without consuming anything
// further; an element failure right after a delimiter is a hard error
// (dangling delimiter).
func parseDelimited[E, D Node](c *Cursor, label string, elem func(*Cursor) (E, error), delim func(*Cursor) (D, error)) (*Delimited[E, D], error) {
	list := &Delimited[E, D]{label: label}
	fork := c.Fork()

	e, err := elem(&fork)
	if err != nil {
		return list, nil
	}

	d, err := delim(&fork)
	if err != nil {
		list.Items = append(list.Items, DelimitedItem[E, D]{Elem: e})
		c.Commit(fork)
		return list, nil
	}
	list.Items = append(list.Items, DelimitedItem[E, D]{Elem: e, Delim: &d})

	for {
		e, err := elem(&fork)
		if err != nil {
			return nil, fmt.Errorf("while parsing %s: %w", label, err)
		}

		d, err := delim(&fork)
		if err != nil {
			list.Items = append(list.Items, DelimitedItem[E, D]{Elem: e})
			c.Commit(fork)
			return list, nil
		}
		list.Items = append(list.Items, DelimitedItem[E, D]{Elem: e, Delim: &d})
	}
}

func (l *Delimited[E, D]) Display(w io.Writer, depth int, label string) {
	if label == "" {
		label = l.label
	}
	fmt.Fprintf(w, "%s%s: %s\n", makeIndent(depth), label, l.Signature())
	for _, item := range l.Items {
		item.Elem.Display(w, depth+1, "")
	}
}

func (l *Delimited[E, D]) Signature() string {
	var sig strings.Builder
	for _, item := range l.Items {
		sig.WriteString(item.Elem.Signature())
		if item.Delim != nil {
			sig.WriteString((*item.Delim).Signature())
			sig.WriteString(" ")
		}
	}
	return sig.String()
}

// TerminatedItem pairs a parsed element with its mandatory trailing
// delimiter.
type TerminatedItem[E, D Node] struct {
	Elem  E
	Delim D
}

// Terminated is a list of zero or more elements each mandatorily
// followed by a delimiter: "x = 1; y = 2;" parses, "x = 1; y = 2" does
// not.
type Terminated[E, D Node] struct {
	Items []TerminatedItem[E, D]
	label string
}

// parseTerminated parses a terminated list on a fork of c. An element
// failure on the first attempt yields an empty list; a missing delimiter
// after any element is a hard error; after at least one item, an element
// failure ends the list.
func parseTerminated[E, D Node](c *Cursor, label string, elem func(*Cursor) (E, error), delim func(*Cursor) (D, error)) (*Terminated[E, D], error) {
	list := &Terminated[E, D]{label: label}
	fork := c.Fork()

	e, err := elem(&fork)
	if err != nil {
		return list, nil
	}

	d, err := delim(&fork)
	if err != nil {
		return nil, fmt.Errorf("while parsing %s: %w", label, err)
	}
	list.Items = append(list.Items, TerminatedItem[E, D]{Elem: e, Delim: d})

	for {
		e, err := elem(&fork)
		if err != nil {
			c.Commit(fork)
			return list, nil
		}

		d, err := delim(&fork)
		if err != nil {
			return nil, fmt.Errorf("while parsing %s: %w", label, err)
		}
		list.Items = append(list.Items, TerminatedItem[E, D]{Elem: e, Delim: d})
	}
}

func (l *Terminated[E, D]) Display(w io.Writer, depth int, label string) {
	if label == "" {
		label = l.label
	}
	fmt.Fprintf(w, "%s%s: %s\n", makeIndent(depth), label, l.Signature())
	for _, item := range l.Items {
		item.Elem.Display(w, depth+1, "")
	}
}

func (l *Terminated[E, D]) Signature() string {
	sigs := make([]string, 0, len(l.Items))
	for _, item := range l.Items {
		sigs = append(sigs, item.Elem.Signature()+item.Delim.Signature())
	}
	return strings.Join(sigs, " ")
}
