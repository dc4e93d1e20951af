package docfmt

import (
	"bytes"
	"fmt"
	"io"
)

// Format is an encoding for realised leaves and serialized trees.
type Format string

const (
	Plain Format = "plain"
	JSON  Format = "json"
	JSONL Format = "jsonl"
	YAML  Format = "yaml"
)

var formats = []Format{Plain, JSON, JSONL, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name such as a CLI flag value.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write realises elems and writes the resulting leaves to w in format f.
// Nothing is written if any element fails to realise.
func (fm Formatter) Write(w io.Writer, f Format, elems ...Element) error {
	if !supported(f) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	leaves, err := fm.RealiseAll(elems)
	if err != nil {
		return err
	}
	switch f {
	case JSON:
		return writeJSON(w, leaves)
	case JSONL:
		return writeJSONL(w, leaves)
	case YAML:
		return writeYAML(w, leaves)
	default:
		return writePlain(w, leaves)
	}
}

// Marshal realises elems and returns the encoded leaves.
func (fm Formatter) Marshal(f Format, elems ...Element) ([]byte, error) {
	var buf bytes.Buffer
	if err := fm.Write(&buf, f, elems...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes elems with the zero [Formatter].
func Write(w io.Writer, f Format, elems ...Element) error {
	return Formatter{}.Write(w, f, elems...)
}

// Marshal encodes elems with the zero [Formatter].
func Marshal(f Format, elems ...Element) ([]byte, error) {
	return Formatter{}.Marshal(f, elems...)
}

func supported(f Format) bool {
	for _, known := range formats {
		if f == known {
			return true
		}
	}
	return false
}
