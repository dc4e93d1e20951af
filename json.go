package docfmt

import (
	"encoding/json"
	"errors"
	"io"
)

func writeJSON(w io.Writer, leaves []Leaf) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if len(leaves) == 1 {
		return enc.Encode(leaves[0])
	}
	return enc.Encode(leaves)
}

func decodeJSON(r io.Reader) (wireElement, error) {
	var we wireElement
	dec := json.NewDecoder(r)
	if err := dec.Decode(&we); err != nil {
		return we, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return we, errTrailingData
	}
	return we, nil
}
