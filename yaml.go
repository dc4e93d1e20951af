package docfmt

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, leaves []Leaf) error {
	enc := yaml.NewEncoder(w)
	if len(leaves) == 1 {
		if err := enc.Encode(leaves[0]); err != nil {
			return err
		}
	} else {
		if err := enc.Encode(leaves); err != nil {
			return err
		}
	}
	return enc.Close()
}

func decodeYAML(r io.Reader) (wireElement, error) {
	var we wireElement
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&we); err != nil {
		return we, err
	}
	var next yaml.Node
	if err := dec.Decode(&next); !errors.Is(err, io.EOF) {
		return we, errTrailingData
	}
	return we, nil
}
