package codec

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jtboss/supplierpricelistmerger/pkg/merger/models"
)

// CellRef converts 0-based (row, col) coordinates to an A1-style
// cell reference.
func CellRef(row, col int) (string, error) {
	return excelize.CoordinatesToCellName(col+1, row+1)
}

// ParseCellRef converts an A1-style cell reference back to 0-based
// (row, col) coordinates.
func ParseCellRef(ref string) (row, col int, err error) {
	c, r, err := excelize.CellNameToCoordinates(ref)
	if err != nil {
		return 0, 0, err
	}
	return r - 1, c - 1, nil
}

// RangeRef converts a used range to an A1-style range reference
// such as "A1:F10".
func RangeRef(r models.Range) (string, error) {
	start, err := CellRef(r.StartRow, r.StartCol)
	if err != nil {
		return "", err
	}
	end, err := CellRef(r.EndRow, r.EndCol)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", start, end), nil
}

// ParseRangeRef decodes an A1-style range reference into a used range.
func ParseRangeRef(ref string) (models.Range, error) {
	start, end, ok := strings.Cut(ref, ":")
	if !ok {
		return models.Range{}, fmt.Errorf("invalid range reference %q", ref)
	}

	sr, sc, err := ParseCellRef(start)
	if err != nil {
		return models.Range{}, err
	}
	er, ec, err := ParseCellRef(end)
	if err != nil {
		return models.Range{}, err
	}
	return models.Range{StartRow: sr, EndRow: er, StartCol: sc, EndCol: ec}, nil
}
