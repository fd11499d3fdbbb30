package master

import (
	"errors"
	"testing"

	"github.com/jtboss/supplierpricelistmerger/pkg/merger/models"
)

// completedFile wraps a sheet in a completed single-sheet FileObject.
func completedFile(name string, sheet *models.Sheet, costCol int) *models.FileObject {
	wb := models.NewWorkbook()
	if sheet != nil {
		if err := wb.AppendSheet("Sheet1", sheet); err != nil {
			panic(err)
		}
	}
	f := models.NewFileObject(name, nil)
	f.Workbook = wb
	f.CostColumnIndex = costCol
	f.Status = models.StatusCompleted
	return f
}

func priceSheet() *models.Sheet {
	return buildSheet([][]interface{}{
		{"Code", "Price", "Description"},
		{"A1", 100.0, "Widget"},
	})
}

func TestAssembleTwoFiles(t *testing.T) {
	fileA := completedFile("Acme Suppliers.xlsx", priceSheet(), 1)
	fileB := completedFile("Bolt Co.xlsx", buildSheet([][]interface{}{
		{"Item", "Description", "Unit Price"},
		{"B1", "Bolt", 2.5},
	}), 2)

	wb, err := NewAssembler(nil).Assemble([]*models.FileObject{fileA, fileB})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	names := wb.SheetNames()
	if len(names) != 2 {
		t.Fatalf("expected 2 sheets, got %d", len(names))
	}
	if names[0] != "Acme Suppliers" || names[1] != "Bolt Co" {
		t.Errorf("unexpected sheet names %v", names)
	}

	// Both sheets grew by exactly five columns after their own last column.
	sheetA, _ := wb.Sheet("Acme Suppliers")
	if sheetA.Range.Cols() != 8 {
		t.Errorf("sheet A: expected 8 columns, got %d", sheetA.Range.Cols())
	}
	sheetB, _ := wb.Sheet("Bolt Co")
	if sheetB.Range.Cols() != 8 {
		t.Errorf("sheet B: expected 8 columns, got %d", sheetB.Range.Cols())
	}

	// Original values survive untouched.
	if cell, ok := sheetA.Cell(1, 1); !ok || cell.Number != 100.0 {
		t.Errorf("sheet A original cost cell altered: %+v", cell)
	}
	if cell, ok := sheetB.Cell(1, 2); !ok || cell.Number != 2.5 {
		t.Errorf("sheet B original cost cell altered: %+v", cell)
	}
}

func TestAssembleNameCollision(t *testing.T) {
	fileA := completedFile("Acme.xlsx", priceSheet(), 1)
	fileB := completedFile("Acme.xlsx", priceSheet(), 1)

	wb, err := NewAssembler(nil).Assemble([]*models.FileObject{fileA, fileB})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	names := wb.SheetNames()
	if names[0] != "Acme" || names[1] != "Acme_2" {
		t.Errorf("expected collision-resolved names, got %v", names)
	}
}

func TestAssemblePassThroughWithoutCostColumn(t *testing.T) {
	sheet := buildSheet([][]interface{}{
		{"Name", "Quantity"},
		{"Widget", 4.0},
	})
	file := completedFile("plain.xlsx", sheet, -1)

	wb, err := NewAssembler(nil).Assemble([]*models.FileObject{file})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	out, _ := wb.Sheet("plain")
	if out.Range.Cols() != 2 {
		t.Errorf("pass-through sheet must keep its 2 columns, got %d", out.Range.Cols())
	}
	if len(out.Cells) != len(sheet.Cells) {
		t.Errorf("pass-through sheet cell count changed: %d vs %d", len(out.Cells), len(sheet.Cells))
	}
}

func TestAssembleSkipsUnusableFiles(t *testing.T) {
	good := completedFile("good.xlsx", priceSheet(), 1)

	failed := models.NewFileObject("bad.xlsx", nil)
	failed.Fail("decode failed")

	noWorkbook := models.NewFileObject("missing.xlsx", nil)
	noWorkbook.Status = models.StatusCompleted

	emptySheet := completedFile("empty.xlsx", models.NewSheet(), -1)

	noSheets := completedFile("hollow.xlsx", nil, -1)

	wb, err := NewAssembler(nil).Assemble([]*models.FileObject{
		failed, good, noWorkbook, emptySheet, noSheets,
	})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if wb.SheetCount() != 1 {
		t.Errorf("expected 1 sheet from the single good file, got %d", wb.SheetCount())
	}
}

func TestAssembleNoValidWorksheets(t *testing.T) {
	failed := models.NewFileObject("bad.xlsx", nil)
	failed.Fail("decode failed")

	_, err := NewAssembler(nil).Assemble([]*models.FileObject{failed})
	if !errors.Is(err, ErrNoValidWorksheets) {
		t.Errorf("expected ErrNoValidWorksheets, got %v", err)
	}

	_, err = NewAssembler(nil).Assemble(nil)
	if !errors.Is(err, ErrNoValidWorksheets) {
		t.Errorf("expected ErrNoValidWorksheets for empty batch, got %v", err)
	}
}

func TestAssembleSetsDocProps(t *testing.T) {
	wb, err := NewAssembler(nil).Assemble([]*models.FileObject{
		completedFile("a.xlsx", priceSheet(), 1),
	})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if wb.Props.Title != "Supplier Price List Master" {
		t.Errorf("unexpected workbook title %q", wb.Props.Title)
	}
	if wb.Props.Created.IsZero() {
		t.Error("expected created timestamp to be set")
	}
}
