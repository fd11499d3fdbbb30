// Package models defines data structures shared across the merger.
package models

import (
	"math"
	"strconv"
	"strings"
)

// CellType tags the variant held by a Cell.
type CellType int

const (
	// TypeBlank marks a cell with no value.
	TypeBlank CellType = iota
	// TypeString marks a text cell.
	TypeString
	// TypeNumber marks a numeric cell.
	TypeNumber
	// TypeBool marks a boolean cell.
	TypeBool
	// TypeError marks a cell carrying a spreadsheet error value (e.g. #DIV/0!).
	TypeError
)

// Cell is a tagged value at one sheet coordinate.
type Cell struct {
	// Type selects which value field is meaningful.
	Type CellType
	// Text holds the value for TypeString and TypeError cells.
	Text string
	// Number holds the value for TypeNumber cells.
	Number float64
	// Bool holds the value for TypeBool cells.
	Bool bool
	// Format is an optional display format string, e.g. "0.00".
	Format string
}

// IsEmpty reports whether the cell carries no usable value.
func (c Cell) IsEmpty() bool {
	switch c.Type {
	case TypeBlank:
		return true
	case TypeString:
		return c.Text == ""
	}
	return false
}

// Float coerces the cell value to a number. Native numeric cells pass
// through; string cells are parsed as a decimal number. The second
// return value is false when no finite number can be produced.
func (c Cell) Float() (float64, bool) {
	switch c.Type {
	case TypeNumber:
		if math.IsNaN(c.Number) || math.IsInf(c.Number, 0) {
			return 0, false
		}
		return c.Number, true
	case TypeString:
		v, err := strconv.ParseFloat(strings.TrimSpace(c.Text), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	}
	return 0, false
}
