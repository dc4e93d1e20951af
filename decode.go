package docfmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

var errTrailingData = errors.New("unexpected data after document")

// wireElement is the serialized shape of an element. An element carrying
// nothing but text is a text leaf.
type wireElement struct {
	Category string        `json:"category,omitempty" yaml:"category,omitempty"`
	Title    string        `json:"title,omitempty" yaml:"title,omitempty"`
	Text     string        `json:"text,omitempty" yaml:"text,omitempty"`
	Children []wireElement `json:"children,omitempty" yaml:"children,omitempty"`
}

// Decode reads one serialized document tree from r. JSON and YAML use the
// {category, title, text, children} shape; Plain reads the whole input as a
// single pre-realised [Leaf]. The input must hold exactly one document.
//
// An object with only text is a [Leaf]. Unknown category names, and objects
// with a title or children but no category, decode to a node with an
// unrecognized category rather than failing.
func Decode(r io.Reader, f Format) (Element, error) {
	var (
		we  wireElement
		err error
	)
	switch f {
	case Plain:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return Leaf{Text: string(data)}, nil
	case JSON:
		we, err = decodeJSON(r)
	case YAML:
		we, err = decodeYAML(r)
	default:
		return nil, fmt.Errorf("%w: cannot decode %q", ErrUnsupportedFormat, f)
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrDecode)
		}
		return nil, fmt.Errorf("%w: %s", ErrDecode, err)
	}
	return we.element(), nil
}

// Unmarshal decodes a serialized document tree from data.
func Unmarshal(data []byte, f Format) (Element, error) {
	return Decode(bytes.NewReader(data), f)
}

func (we wireElement) element() Element {
	if we.Category == "" && we.Title == "" && len(we.Children) == 0 {
		return Leaf{Text: we.Text}
	}
	// Unknown names leave the zero Category, which realises to nothing.
	c, _ := ParseCategory(we.Category)
	n := &Node{Category: c, Title: we.Title, Text: we.Text}
	if len(we.Children) > 0 {
		n.Children = make([]Element, len(we.Children))
		for i, child := range we.Children {
			n.Children[i] = child.element()
		}
	}
	return n
}
