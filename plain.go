package docfmt

import "io"

func writePlain(w io.Writer, leaves []Leaf) error {
	for _, l := range leaves {
		if _, err := io.WriteString(w, l.Text); err != nil {
			return err
		}
	}
	return nil
}
