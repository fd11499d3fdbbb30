package master

import (
	"io"
	"log"
	"strings"
	"time"

	"github.com/jtboss/supplierpricelistmerger/pkg/merger/models"
)

// Assembler consolidates ingested supplier files into one master
// workbook. It exclusively owns the workbook it builds; input workbooks
// are only read.
type Assembler struct {
	log *log.Logger
}

// NewAssembler returns an assembler logging per-file warnings to logger.
// A nil logger discards them.
func NewAssembler(logger *log.Logger) *Assembler {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Assembler{log: logger}
}

// Assemble builds the master workbook from files in input order. Files
// that cannot contribute a sheet are logged and skipped; the batch fails
// with ErrNoValidWorksheets only when zero sheets could be produced.
func (a *Assembler) Assemble(files []*models.FileObject) (*models.Workbook, error) {
	masterWB := models.NewWorkbook()
	masterWB.Props = models.DocProps{
		Title:   "Supplier Price List Master",
		Subject: "Combined supplier price lists with markup calculations",
		Author:  "Supplier Price List Merger",
		Created: time.Now(),
	}

	var usedNames []string
	added := 0

	for _, file := range files {
		if file == nil {
			continue
		}
		if file.Status != models.StatusCompleted || file.Workbook == nil {
			a.log.Printf("skipping file %q: status=%s, workbook=%t", file.Name, file.Status, file.Workbook != nil)
			continue
		}

		sourceSheet := a.primarySheet(file)
		if sourceSheet == nil {
			continue
		}
		if sourceSheet.Range == nil || !sourceSheet.Range.Valid() {
			a.log.Printf("skipping file %q: primary worksheet is empty", file.Name)
			continue
		}

		sheetName := ResolveSheetName(file.Name, usedNames)
		usedNames = append(usedNames, sheetName)

		var out *models.Sheet
		if file.CostColumnIndex != -1 {
			injected, err := AddMarkupColumns(sourceSheet, file.CostColumnIndex)
			if err != nil {
				a.log.Printf("markup injection failed for %q: %v; copying sheet unmodified", file.Name, err)
				out = sourceSheet.Clone()
			} else {
				out = injected
			}
		} else {
			a.log.Printf("no cost column detected for %q; copying sheet unmodified", file.Name)
			out = sourceSheet.Clone()
		}

		if err := masterWB.AppendSheet(sheetName, out); err != nil {
			a.log.Printf("could not append sheet %q from file %q: %v", sheetName, file.Name, err)
			continue
		}
		added++
	}

	if added == 0 {
		return nil, ErrNoValidWorksheets
	}
	return masterWB, nil
}

// primarySheet locates the first-listed sheet of the file's workbook.
// When direct lookup fails it tries a case-insensitive match, then the
// first sheet that resolves under any name.
func (a *Assembler) primarySheet(file *models.FileObject) *models.Sheet {
	names := file.Workbook.SheetNames()
	if len(names) == 0 {
		a.log.Printf("skipping file %q: workbook has no worksheets", file.Name)
		return nil
	}

	primary := names[0]
	if s, ok := file.Workbook.Sheet(primary); ok && s != nil {
		return s
	}

	for _, name := range names {
		if !strings.EqualFold(name, primary) {
			continue
		}
		if s, ok := file.Workbook.Sheet(name); ok && s != nil {
			a.log.Printf("file %q: resolved primary worksheet via case-insensitive match %q", file.Name, name)
			return s
		}
	}

	for _, name := range names {
		if s, ok := file.Workbook.Sheet(name); ok && s != nil {
			a.log.Printf("file %q: falling back to first available worksheet %q", file.Name, name)
			return s
		}
	}

	a.log.Printf("skipping file %q: no accessible worksheet", file.Name)
	return nil
}
