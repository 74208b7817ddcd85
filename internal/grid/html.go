package grid

import (
	"html"
	"strconv"
	"strings"
)

// attr is a single HTML attribute. Attributes with empty values are
// skipped when writing, so callers can pass optional attributes
// unconditionally.
type attr struct {
	key string
	val string
}

// writeTag writes an opening tag with the given attributes. Values are
// attribute-escaped; empty values omit the attribute entirely.
func writeTag(b *strings.Builder, name string, attrs ...attr) {
	b.WriteString("<")
	b.WriteString(name)
	for _, a := range attrs {
		if a.val == "" {
			continue
		}
		b.WriteString(" ")
		b.WriteString(a.key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.val))
		b.WriteString(`"`)
	}
	b.WriteString(">")
}

// cellWidth formats the uniform per-cell width for the given column
// count as a percentage, with at most two decimals.
func cellWidth(columns int) string {
	s := strconv.FormatFloat(100/float64(columns), 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s + "%"
}
