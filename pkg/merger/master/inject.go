// Package master builds the consolidated master workbook: it injects
// markup columns into supplier sheets, resolves collision-free sheet
// names, and assembles the output workbook file by file.
package master

import (
	"errors"

	"github.com/jtboss/supplierpricelistmerger/pkg/merger/markup"
	"github.com/jtboss/supplierpricelistmerger/pkg/merger/models"
)

var (
	// ErrCostColumnNotFound indicates the injector was called with a
	// cost column index of -1.
	ErrCostColumnNotFound = errors.New("cost column not found")
	// ErrInvalidSheet indicates the sheet has no valid used range.
	ErrInvalidSheet = errors.New("invalid worksheet: no used range")
	// ErrNoValidWorksheets indicates assembly produced zero sheets.
	ErrNoValidWorksheets = errors.New("no valid worksheets to include in master workbook")
)

// noDataMarker is written into markup cells when a row's cost cell is
// missing, blank, or rejected by the calculator.
const noDataMarker = "N/A"

// markupColWidth is the default width for appended markup columns.
const markupColWidth = 12

// markupNumberFormat is the display format applied to markup values.
const markupNumberFormat = "0.00"

// AddMarkupColumns returns a new sheet carrying a verbatim copy of every
// original cell plus five markup columns immediately after the original
// last column: labels on the header row, computed tiers on every data
// row. Rows whose cost cell cannot produce a valid non-negative number
// get the "N/A" marker in all five columns.
func AddMarkupColumns(sheet *models.Sheet, costColumnIndex int) (*models.Sheet, error) {
	if costColumnIndex == -1 {
		return nil, ErrCostColumnNotFound
	}
	if sheet == nil || sheet.Range == nil || !sheet.Range.Valid() {
		return nil, ErrInvalidSheet
	}
	r := *sheet.Range

	out := models.NewSheet()
	for coord, cell := range sheet.Cells {
		out.Cells[coord] = cell
	}

	for i, rate := range markup.Rates {
		out.SetCell(r.StartRow, r.EndCol+1+i, models.Cell{
			Type: models.TypeString,
			Text: rate.Label,
		})
	}

	for row := r.StartRow + 1; row <= r.EndRow; row++ {
		injectRow(out, sheet, row, costColumnIndex, r.EndCol)
	}

	out.Range = &models.Range{
		StartRow: r.StartRow,
		EndRow:   r.EndRow,
		StartCol: r.StartCol,
		EndCol:   r.EndCol + len(markup.Rates),
	}
	if sheet.ColWidths != nil {
		widths := append([]float64(nil), sheet.ColWidths...)
		for range markup.Rates {
			widths = append(widths, markupColWidth)
		}
		out.ColWidths = widths
	}
	return out, nil
}

func injectRow(out, src *models.Sheet, row, costColumnIndex, lastCol int) {
	cell, ok := src.Cell(row, costColumnIndex)
	if !ok || cell.IsEmpty() {
		writeMarkers(out, row, lastCol)
		return
	}

	cost, ok := cell.Float()
	if !ok {
		writeMarkers(out, row, lastCol)
		return
	}

	for i, rate := range markup.Rates {
		value, ok := markup.Calculate(cost, rate.Percentage)
		if !ok {
			// Any calculator rejection (e.g. negative cost) collapses the
			// whole row to markers.
			writeMarkers(out, row, lastCol)
			return
		}
		out.SetCell(row, lastCol+1+i, models.Cell{
			Type:   models.TypeNumber,
			Number: value,
			Format: markupNumberFormat,
		})
	}
}

func writeMarkers(out *models.Sheet, row, lastCol int) {
	for i := range markup.Rates {
		out.SetCell(row, lastCol+1+i, models.Cell{
			Type: models.TypeString,
			Text: noDataMarker,
		})
	}
}
