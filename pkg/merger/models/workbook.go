package models

import (
	"fmt"
	"time"
)

// DocProps carries workbook-level document properties.
type DocProps struct {
	Title   string
	Subject string
	Author  string
	Created time.Time
}

// Workbook is an ordered sequence of uniquely named sheets.
type Workbook struct {
	Props DocProps

	names  []string
	sheets map[string]*Sheet
}

// NewWorkbook returns an empty workbook.
func NewWorkbook() *Workbook {
	return &Workbook{sheets: make(map[string]*Sheet)}
}

// AppendSheet adds a sheet under the given name, preserving insertion
// order. Sheet names are unique case-sensitively within a workbook.
func (w *Workbook) AppendSheet(name string, s *Sheet) error {
	if name == "" {
		return fmt.Errorf("sheet name must not be empty")
	}
	if _, exists := w.sheets[name]; exists {
		return fmt.Errorf("duplicate sheet name %q", name)
	}
	if w.sheets == nil {
		w.sheets = make(map[string]*Sheet)
	}
	w.names = append(w.names, name)
	w.sheets[name] = s
	return nil
}

// SheetNames returns the sheet names in insertion order.
func (w *Workbook) SheetNames() []string {
	return append([]string(nil), w.names...)
}

// Sheet returns the sheet stored under name.
func (w *Workbook) Sheet(name string) (*Sheet, bool) {
	s, ok := w.sheets[name]
	return s, ok
}

// SheetCount returns the number of sheets.
func (w *Workbook) SheetCount() int {
	return len(w.names)
}
