package analyze

import (
	"errors"

	"github.com/jtboss/supplierpricelistmerger/pkg/merger/models"
)

// ErrEmptySheet indicates the sheet has no used range, or the range is
// inverted.
var ErrEmptySheet = errors.New("worksheet is empty or has an invalid range")

// maxSampleRows bounds how many data rows column-type inference reads
// per column.
const maxSampleRows = 100

// typeThreshold is the fraction of sampled cells that must agree before
// a column is classified as number or string.
const typeThreshold = 0.7

// Analyze derives structural metadata for one sheet: header presence,
// per-column inferred types, data extents, and the detected cost column.
func Analyze(sheet *models.Sheet) (*models.WorksheetAnalysis, error) {
	if sheet == nil || sheet.Range == nil || !sheet.Range.Valid() {
		return nil, ErrEmptySheet
	}
	r := *sheet.Range

	hasHeaders := detectHeaderRow(sheet, r)

	dataStart := r.StartRow
	if hasHeaders {
		dataStart++
	}

	columnTypes := make([]models.ColumnType, 0, r.Cols())
	for col := r.StartCol; col <= r.EndCol; col++ {
		columnTypes = append(columnTypes, inferColumnType(sheet, r, col, dataStart))
	}

	return &models.WorksheetAnalysis{
		HasHeaders: hasHeaders,
		HeaderRow:  r.StartRow,
		DataRange: models.Range{
			StartRow: dataStart,
			EndRow:   r.EndRow,
			StartCol: r.StartCol,
			EndCol:   r.EndCol,
		},
		ColumnTypes:     columnTypes,
		CostColumnIndex: DetectCostColumn(sheet),
		TotalRows:       r.Rows(),
		TotalCols:       r.Cols(),
	}, nil
}

// detectHeaderRow reports whether the first row of the range is a header
// row: a strict majority of its populated cells must be string-typed. A
// row with no populated cells never counts as headers.
func detectHeaderRow(sheet *models.Sheet, r models.Range) bool {
	populated := 0
	stringTyped := 0
	for col := r.StartCol; col <= r.EndCol; col++ {
		cell, ok := sheet.Cell(r.StartRow, col)
		if !ok || cell.IsEmpty() {
			continue
		}
		populated++
		if cell.Type == models.TypeString {
			stringTyped++
		}
	}
	return populated > 0 && stringTyped*2 > populated
}

// inferColumnType samples up to maxSampleRows data rows of one column
// and classifies its content.
func inferColumnType(sheet *models.Sheet, r models.Range, col, dataStart int) models.ColumnType {
	end := dataStart + maxSampleRows - 1
	if end > r.EndRow {
		end = r.EndRow
	}

	numeric := 0
	text := 0
	total := 0
	for row := dataStart; row <= end; row++ {
		cell, ok := sheet.Cell(row, col)
		if !ok || cell.IsEmpty() {
			continue
		}
		total++
		if _, ok := cell.Float(); ok {
			numeric++
		} else {
			text++
		}
	}

	switch {
	case total == 0:
		return models.ColumnEmpty
	case float64(numeric) >= typeThreshold*float64(total):
		return models.ColumnNumber
	case float64(text) >= typeThreshold*float64(total):
		return models.ColumnString
	}
	return models.ColumnMixed
}
