package docfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText reflows s on whitespace into lines of at most width display
// columns. A word wider than width gets a line to itself.
func wrapText(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width && !strings.ContainsAny(s, "\n\t") {
		return s
	}
	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, word := range strings.Fields(s) {
		w := runewidth.StringWidth(word)
		if lineWidth > 0 && lineWidth+1+w > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += w
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
