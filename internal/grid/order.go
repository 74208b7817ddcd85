package grid

import (
	"fmt"
	"strings"
)

// Order specifies how entities are assigned to grid positions.
type Order int

const (
	// RowMajor fills each row left to right before starting the next row.
	RowMajor Order = iota
	// ColumnMajor fills each column top to bottom before starting the next column.
	ColumnMajor
)

// ParseOrder parses a string into an Order with validation.
// Returns RowMajor for empty strings (default behavior).
func ParseOrder(s string) (Order, error) {
	if s == "" {
		return RowMajor, nil // Default to row-major for backward compatibility
	}

	switch strings.ToLower(s) {
	case "row", "ltr", "left-to-right":
		return RowMajor, nil
	case "column", "ttd", "top-to-down":
		return ColumnMajor, nil
	default:
		return RowMajor, fmt.Errorf("invalid order '%s': must be 'left-to-right' or 'top-to-down'", s)
	}
}

// String returns the string representation of the order.
func (o Order) String() string {
	switch o {
	case ColumnMajor:
		return "top-to-down"
	default:
		return "left-to-right"
	}
}

// index returns the entity index for row r, column c of a grid with the
// given column count and number of full rows.
func (o Order) index(r, c, columns, rows int) int {
	if o == ColumnMajor {
		return c*rows + r
	}
	return r*columns + c
}
