package master

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jtboss/supplierpricelistmerger/pkg/merger/markup"
	"github.com/jtboss/supplierpricelistmerger/pkg/merger/models"
)

// buildSheet lays out rows of values starting at (0,0). Strings become
// text cells, float64 values numeric cells, nil leaves a gap.
func buildSheet(rows [][]interface{}) *models.Sheet {
	s := models.NewSheet()
	maxCol := 0
	for r, row := range rows {
		for c, v := range row {
			if c > maxCol {
				maxCol = c
			}
			switch val := v.(type) {
			case nil:
				continue
			case string:
				s.SetCell(r, c, models.Cell{Type: models.TypeString, Text: val})
			case float64:
				s.SetCell(r, c, models.Cell{Type: models.TypeNumber, Number: val})
			default:
				panic(fmt.Sprintf("unsupported fixture value %T", v))
			}
		}
	}
	s.Range = &models.Range{StartRow: 0, EndRow: len(rows) - 1, StartCol: 0, EndCol: maxCol}
	return s
}

func TestAddMarkupColumns(t *testing.T) {
	sheet := buildSheet([][]interface{}{
		{"Code", "Price", "Description"},
		{"A1", 100.0, "Widget"},
		{"A2", 20.0, "Sprocket"},
	})

	out, err := AddMarkupColumns(sheet, 1)
	if err != nil {
		t.Fatalf("AddMarkupColumns failed: %v", err)
	}

	if out.Range.EndCol != 7 {
		t.Errorf("expected range to end at column 7, got %d", out.Range.EndCol)
	}
	if out.Range.Cols() != 8 {
		t.Errorf("expected 3+5 columns, got %d", out.Range.Cols())
	}

	// Original cells are copied verbatim.
	for coord, cell := range sheet.Cells {
		got, ok := out.Cell(coord.Row, coord.Col)
		if !ok || got != cell {
			t.Errorf("original cell at %+v not preserved: got %+v, want %+v", coord, got, cell)
		}
	}

	// Markup labels in emission order, immediately after the last column.
	for i, rate := range markup.Rates {
		cell, ok := out.Cell(0, 3+i)
		if !ok || cell.Type != models.TypeString || cell.Text != rate.Label {
			t.Errorf("header at column %d: got %+v, expected label %q", 3+i, cell, rate.Label)
		}
	}

	// 100 marked up across the five tiers.
	expected := []float64{105, 110, 115, 120, 130}
	for i, want := range expected {
		cell, ok := out.Cell(1, 3+i)
		if !ok || cell.Type != models.TypeNumber {
			t.Fatalf("expected numeric markup cell at (1,%d), got %+v", 3+i, cell)
		}
		if cell.Number != want {
			t.Errorf("markup %d: got %v, expected %v", i, cell.Number, want)
		}
		if cell.Format != "0.00" {
			t.Errorf("markup %d: expected format 0.00, got %q", i, cell.Format)
		}
	}
}

func TestAddMarkupColumnsInvalidRows(t *testing.T) {
	sheet := buildSheet([][]interface{}{
		{"Code", "Cost"},
		{"A1", nil},     // missing cost cell
		{"A2", ""},      // blank cost cell
		{"A3", "cheap"}, // non-numeric cost
		{"A4", -5.0},    // negative cost
		{"A5", "12.50"}, // numeric string is valid
	})

	out, err := AddMarkupColumns(sheet, 1)
	if err != nil {
		t.Fatalf("AddMarkupColumns failed: %v", err)
	}

	for row := 1; row <= 4; row++ {
		for i := range markup.Rates {
			cell, ok := out.Cell(row, 2+i)
			if !ok || cell.Type != models.TypeString || cell.Text != "N/A" {
				t.Errorf("row %d column %d: expected N/A marker, got %+v", row, 2+i, cell)
			}
		}
	}

	cell, ok := out.Cell(5, 2)
	if !ok || cell.Type != models.TypeNumber || cell.Number != 13.13 {
		t.Errorf("numeric string cost: expected 13.13, got %+v", cell)
	}
}

func TestAddMarkupColumnsAppendsWidths(t *testing.T) {
	sheet := buildSheet([][]interface{}{
		{"Code", "Cost"},
		{"A1", 10.0},
	})
	sheet.ColWidths = []float64{8, 14}

	out, err := AddMarkupColumns(sheet, 1)
	if err != nil {
		t.Fatalf("AddMarkupColumns failed: %v", err)
	}
	if len(out.ColWidths) != 7 {
		t.Fatalf("expected 2+5 width entries, got %d", len(out.ColWidths))
	}
	for i := 2; i < 7; i++ {
		if out.ColWidths[i] != markupColWidth {
			t.Errorf("width %d: expected default %v, got %v", i, float64(markupColWidth), out.ColWidths[i])
		}
	}
}

func TestAddMarkupColumnsErrors(t *testing.T) {
	sheet := buildSheet([][]interface{}{{"Cost"}, {10.0}})

	if _, err := AddMarkupColumns(sheet, -1); !errors.Is(err, ErrCostColumnNotFound) {
		t.Errorf("expected ErrCostColumnNotFound, got %v", err)
	}
	if _, err := AddMarkupColumns(models.NewSheet(), 0); !errors.Is(err, ErrInvalidSheet) {
		t.Errorf("expected ErrInvalidSheet, got %v", err)
	}
	if _, err := AddMarkupColumns(nil, 0); !errors.Is(err, ErrInvalidSheet) {
		t.Errorf("expected ErrInvalidSheet for nil sheet, got %v", err)
	}
}
