package docfmt

import (
	"fmt"
	"strings"
)

// DefaultMaxDepth is the nesting limit used when [Formatter.MaxDepth] is zero.
const DefaultMaxDepth = 64

const (
	bullet       = " * "
	paragraphEnd = "\n\n"
)

// Realiser turns document elements into realised text leaves.
type Realiser interface {
	Realise(e Element) (Leaf, error)
	RealiseAll(elems []Element) ([]Leaf, error)
}

var _ Realiser = Formatter{}

// Formatter lays out a document tree as plain text. The zero value is ready
// to use. A Formatter holds no state between calls and is safe for
// concurrent use.
type Formatter struct {
	// MaxDepth bounds tree nesting; the root is level 1.
	// Default: DefaultMaxDepth. A negative value disables the check.
	MaxDepth int

	// Width wraps paragraph text to at most Width display columns.
	// Default: no wrapping.
	Width int
}

// Realise returns the laid-out text of e. A nil element yields an empty
// leaf, a [Leaf] is returned unchanged and a node with an unrecognized
// category yields an empty leaf. The only error is one wrapping
// [ErrTooDeep].
func (f Formatter) Realise(e Element) (Leaf, error) {
	s, err := f.realise(e, 1)
	if err != nil {
		return Leaf{}, err
	}
	return Leaf{Text: s}, nil
}

// RealiseAll realises each element on its own. The result has the same
// length and order as elems; a nil input gives an empty result.
func (f Formatter) RealiseAll(elems []Element) ([]Leaf, error) {
	out := make([]Leaf, 0, len(elems))
	for _, e := range elems {
		l, err := f.Realise(e)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// Realise realises e with the zero [Formatter].
func Realise(e Element) (Leaf, error) {
	return Formatter{}.Realise(e)
}

// RealiseAll realises elems with the zero [Formatter].
func RealiseAll(elems []Element) ([]Leaf, error) {
	return Formatter{}.RealiseAll(elems)
}

func (f Formatter) maxDepth() int {
	if f.MaxDepth == 0 {
		return DefaultMaxDepth
	}
	return f.MaxDepth
}

func (f Formatter) realise(e Element, depth int) (string, error) {
	switch el := e.(type) {
	case Leaf:
		return el.Text, nil
	case *Leaf:
		if el == nil {
			return "", nil
		}
		return el.Text, nil
	case *Node:
		if el == nil {
			return "", nil
		}
		if limit := f.maxDepth(); limit > 0 && depth > limit {
			return "", fmt.Errorf("%w: %s node below %d levels", ErrTooDeep, el.Category, limit)
		}
		return f.realiseNode(el, depth)
	}
	return "", nil
}

func (f Formatter) realiseNode(n *Node, depth int) (string, error) {
	var sb strings.Builder
	switch n.Category {
	case Document, Section, List:
		if n.Title != "" {
			sb.WriteString(n.Title)
			sb.WriteByte('\n')
		}
		for _, child := range n.Children {
			s, err := f.realise(child, depth+1)
			if err != nil {
				return "", err
			}
			sb.WriteString(s)
		}
	case Paragraph:
		var body strings.Builder
		for _, child := range n.Children {
			s, err := f.realise(child, depth+1)
			if err != nil {
				return "", err
			}
			if s == "" {
				continue
			}
			if body.Len() > 0 {
				body.WriteByte(' ')
			}
			body.WriteString(s)
		}
		if f.Width > 0 {
			sb.WriteString(wrapText(body.String(), f.Width))
		} else {
			sb.WriteString(body.String())
		}
		sb.WriteString(paragraphEnd)
	case Sentence:
		sb.WriteString(n.Text)
	case ListItem:
		text, err := f.itemText(n, depth)
		if err != nil {
			return "", err
		}
		sb.WriteString(bullet)
		sb.WriteString(text)
	}
	return sb.String(), nil
}

// itemText returns the node's own Text, or when that is empty, its
// children realised in order and concatenated.
func (f Formatter) itemText(n *Node, depth int) (string, error) {
	if n.Text != "" || len(n.Children) == 0 {
		return n.Text, nil
	}
	var sb strings.Builder
	for _, child := range n.Children {
		s, err := f.realise(child, depth+1)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}
