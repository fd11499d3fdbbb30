package codec

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jtboss/supplierpricelistmerger/pkg/merger/models"
)

// numFmt2Decimals is the built-in xlsx number format "0.00".
const numFmt2Decimals = 2

// Encode serializes a workbook model to xlsx bytes.
func Encode(wb *models.Workbook) ([]byte, error) {
	if wb == nil || wb.SheetCount() == 0 {
		return nil, fmt.Errorf("cannot encode empty workbook")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := setDocProps(f, wb.Props); err != nil {
		return nil, err
	}

	twoDecimalStyle, err := f.NewStyle(&excelize.Style{NumFmt: numFmt2Decimals})
	if err != nil {
		return nil, err
	}

	for i, name := range wb.SheetNames() {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return nil, err
			}
		}
		sheet, ok := wb.Sheet(name)
		if !ok || sheet == nil {
			continue
		}
		if err := encodeSheet(f, name, sheet, twoDecimalStyle); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setDocProps(f *excelize.File, props models.DocProps) error {
	if props.Title == "" && props.Subject == "" && props.Author == "" {
		return nil
	}
	created := props.Created
	if created.IsZero() {
		created = time.Now()
	}
	return f.SetDocProps(&excelize.DocProperties{
		Title:   props.Title,
		Subject: props.Subject,
		Creator: props.Author,
		Created: created.UTC().Format(time.RFC3339),
	})
}

func encodeSheet(f *excelize.File, name string, sheet *models.Sheet, twoDecimalStyle int) error {
	if sheet.Range == nil || !sheet.Range.Valid() {
		return nil
	}
	r := *sheet.Range

	for row := r.StartRow; row <= r.EndRow; row++ {
		for col := r.StartCol; col <= r.EndCol; col++ {
			cell, ok := sheet.Cell(row, col)
			if !ok || cell.Type == models.TypeBlank {
				continue
			}
			ref, err := CellRef(row, col)
			if err != nil {
				return err
			}
			if err := writeCell(f, name, ref, cell); err != nil {
				return err
			}
			if cell.Format == "0.00" {
				if err := f.SetCellStyle(name, ref, ref, twoDecimalStyle); err != nil {
					return err
				}
			}
		}
	}

	return writeColWidths(f, name, r, sheet.ColWidths)
}

func writeCell(f *excelize.File, sheetName, ref string, cell models.Cell) error {
	switch cell.Type {
	case models.TypeNumber:
		return f.SetCellValue(sheetName, ref, cell.Number)
	case models.TypeBool:
		return f.SetCellBool(sheetName, ref, cell.Bool)
	case models.TypeError:
		// Error markers survive as their textual representation.
		return f.SetCellStr(sheetName, ref, cell.Text)
	default:
		return f.SetCellStr(sheetName, ref, cell.Text)
	}
}

func writeColWidths(f *excelize.File, sheetName string, r models.Range, widths []float64) error {
	for i, w := range widths {
		col := r.StartCol + i
		if col > r.EndCol {
			break
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, name, name, w); err != nil {
			return err
		}
	}
	return nil
}
