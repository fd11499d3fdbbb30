// Package codec converts between raw spreadsheet bytes and the in-memory
// workbook model, backed by excelize.
package codec

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jtboss/supplierpricelistmerger/pkg/merger/models"
)

// DecodeError reports that every decode strategy failed. Err holds the
// last strategy's failure.
type DecodeError struct {
	Strategy string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not decode workbook (last strategy %q): %v", e.Strategy, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// decodeStrategy is one attempt at opening raw bytes as a workbook.
// Strategies are tried in order; the first success wins.
type decodeStrategy struct {
	name string
	open func(data []byte) (*excelize.File, error)
}

var decodeStrategies = []decodeStrategy{
	{
		name: "default",
		open: func(data []byte) (*excelize.File, error) {
			return excelize.OpenReader(bytes.NewReader(data))
		},
	},
	{
		name: "relaxed-limits",
		open: func(data []byte) (*excelize.File, error) {
			return excelize.OpenReader(bytes.NewReader(data), excelize.Options{
				UnzipSizeLimit:    4 << 30,
				UnzipXMLSizeLimit: 2 << 30,
			})
		},
	},
}

// Decode turns raw xlsx bytes into a workbook model. Each registered
// strategy is attempted in order; if all fail, the last failure is
// surfaced as a DecodeError.
func Decode(data []byte) (*models.Workbook, error) {
	var last *DecodeError
	for _, s := range decodeStrategies {
		f, err := s.open(data)
		if err != nil {
			last = &DecodeError{Strategy: s.name, Err: err}
			continue
		}
		wb, err := decodeWorkbook(f)
		f.Close()
		if err != nil {
			last = &DecodeError{Strategy: s.name, Err: err}
			continue
		}
		return wb, nil
	}
	return nil, last
}

func decodeWorkbook(f *excelize.File) (*models.Workbook, error) {
	wb := models.NewWorkbook()
	for _, sheetName := range f.GetSheetList() {
		sheet, err := decodeSheet(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
		}
		if err := wb.AppendSheet(sheetName, sheet); err != nil {
			return nil, err
		}
	}
	return wb, nil
}

// decodeSheet reads all populated cells of one sheet into the model and
// computes the bounding used range.
func decodeSheet(f *excelize.File, sheetName string) (*models.Sheet, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	sheet := models.NewSheet()
	minRow, maxRow, minCol, maxCol := -1, -1, -1, -1

	for rowIdx, row := range rows {
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cell, err := decodeCell(f, sheetName, rowIdx, colIdx, raw)
			if err != nil {
				return nil, err
			}
			sheet.SetCell(rowIdx, colIdx, cell)

			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	if minRow < 0 {
		// No populated cells: the sheet has no used range.
		return sheet, nil
	}

	sheet.Range = &models.Range{
		StartRow: minRow,
		EndRow:   maxRow,
		StartCol: minCol,
		EndCol:   maxCol,
	}
	sheet.ColWidths = readColWidths(f, sheetName, minCol, maxCol)
	return sheet, nil
}

func decodeCell(f *excelize.File, sheetName string, rowIdx, colIdx int, raw string) (models.Cell, error) {
	ref, err := CellRef(rowIdx, colIdx)
	if err != nil {
		return models.Cell{}, err
	}
	cellType, err := f.GetCellType(sheetName, ref)
	if err != nil {
		return models.Cell{}, err
	}

	switch cellType {
	case excelize.CellTypeNumber, excelize.CellTypeDate:
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return models.Cell{Type: models.TypeNumber, Number: v}, nil
		}
		return models.Cell{Type: models.TypeString, Text: raw}, nil
	case excelize.CellTypeBool:
		b := raw == "1" || strings.EqualFold(raw, "true")
		return models.Cell{Type: models.TypeBool, Bool: b}, nil
	case excelize.CellTypeError:
		return models.Cell{Type: models.TypeError, Text: raw}, nil
	case excelize.CellTypeInlineString, excelize.CellTypeSharedString:
		return models.Cell{Type: models.TypeString, Text: raw}, nil
	default:
		// Unset or formula cells: fall back to value shape.
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return models.Cell{Type: models.TypeNumber, Number: v}, nil
		}
		return models.Cell{Type: models.TypeString, Text: raw}, nil
	}
}

// excelizeDefaultColWidth is the width excelize reports for columns with
// no declared width.
const excelizeDefaultColWidth = 9.140625

// readColWidths collects declared column widths for the used range.
// Returns nil when every column carries the default width.
func readColWidths(f *excelize.File, sheetName string, minCol, maxCol int) []float64 {
	widths := make([]float64, 0, maxCol-minCol+1)
	declared := false
	for col := minCol; col <= maxCol; col++ {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil
		}
		w, err := f.GetColWidth(sheetName, name)
		if err != nil {
			return nil
		}
		if math.Abs(w-excelizeDefaultColWidth) > 1e-9 {
			declared = true
		}
		widths = append(widths, w)
	}
	if !declared {
		return nil
	}
	return widths
}
