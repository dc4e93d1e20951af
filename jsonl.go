package docfmt

import (
	"encoding/json"
	"io"
)

func writeJSONL(w io.Writer, leaves []Leaf) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, l := range leaves {
		if err := enc.Encode(l); err != nil {
			return err
		}
	}
	return nil
}
