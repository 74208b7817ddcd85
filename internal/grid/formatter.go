// Package grid renders ordered entity collections as HTML tables.
//
// The formatter places entities on a rectangular grid with a configurable
// column count and traversal order, then renders any leftover entities that
// do not fill a complete row as their own single-row table appended after
// the main one. Entities are opaque: per-entity content is obtained through
// optional callbacks on Config.
package grid

import "strings"

// Format renders entities as one or more concatenated HTML <table> blocks.
// An empty entity slice yields an empty string. Format never fails: missing
// callbacks, missing thumbnail files and out-of-range column counts all
// degrade to sparser output.
func Format[T any](entities []T, cfg Config[T]) string {
	var b strings.Builder
	writeTables(&b, entities, cfg)
	return b.String()
}

func writeTables[T any](b *strings.Builder, entities []T, cfg Config[T]) {
	if len(entities) == 0 {
		return
	}

	// Never render more columns than entities. Clamping also guarantees
	// at least one full row, so the remainder is always smaller than the
	// batch and the recursion below terminates.
	columns := cfg.Columns
	if columns < 1 {
		columns = 1
	}
	if columns > len(entities) {
		columns = len(entities)
	}
	rows := len(entities) / columns
	width := cellWidth(columns)

	writeTag(b, "table", attr{"class", cfg.Style.TableClass}, attr{"id", cfg.Style.TableID})
	b.WriteString("\n")
	for r := 0; r < rows; r++ {
		writeTag(b, "tr", attr{"class", cfg.Style.RowClass})
		for c := 0; c < columns; c++ {
			writeCell(b, entities[cfg.Order.index(r, c, columns, rows)], cfg, width)
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n")

	if rest := entities[rows*columns:]; len(rest) > 0 {
		// Leftovers become a single centered row: the recursive call
		// clamps its column count to the remainder size, so they divide
		// evenly and recurse no further.
		next := cfg
		next.Columns = len(rest)
		writeTables(b, rest, next)
	}
}
