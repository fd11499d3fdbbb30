package models

// Coord addresses one cell within a sheet (0-based).
type Coord struct {
	Row int
	Col int
}

// Range is the inclusive rectangular used range of a sheet (0-based).
type Range struct {
	StartRow int `json:"start_row"`
	EndRow   int `json:"end_row"`
	StartCol int `json:"start_col"`
	EndCol   int `json:"end_col"`
}

// Valid reports whether the range is non-inverted.
func (r Range) Valid() bool {
	return r.EndRow >= r.StartRow && r.EndCol >= r.StartCol
}

// Rows returns the number of rows covered by the range.
func (r Range) Rows() int {
	return r.EndRow - r.StartRow + 1
}

// Cols returns the number of columns covered by the range.
func (r Range) Cols() int {
	return r.EndCol - r.StartCol + 1
}

// Sheet is an unordered mapping from coordinate to Cell, bounded by a
// declared used range. A sheet without a used range is treated as empty.
type Sheet struct {
	Cells map[Coord]Cell
	// Range bounds iteration. Invariant: it must enclose every populated cell.
	Range *Range
	// ColWidths optionally declares column widths, one entry per column
	// starting at the range's first column. Nil when the source sheet
	// declared none.
	ColWidths []float64
}

// NewSheet returns an empty sheet with no used range.
func NewSheet() *Sheet {
	return &Sheet{Cells: make(map[Coord]Cell)}
}

// Cell returns the cell at (row, col) and whether it is populated.
func (s *Sheet) Cell(row, col int) (Cell, bool) {
	c, ok := s.Cells[Coord{Row: row, Col: col}]
	return c, ok
}

// SetCell stores a cell at (row, col). It does not adjust the used range;
// callers maintain the range invariant themselves.
func (s *Sheet) SetCell(row, col int, c Cell) {
	if s.Cells == nil {
		s.Cells = make(map[Coord]Cell)
	}
	s.Cells[Coord{Row: row, Col: col}] = c
}

// Clone returns an independent copy of the sheet.
func (s *Sheet) Clone() *Sheet {
	out := NewSheet()
	for coord, cell := range s.Cells {
		out.Cells[coord] = cell
	}
	if s.Range != nil {
		r := *s.Range
		out.Range = &r
	}
	if s.ColWidths != nil {
		out.ColWidths = append([]float64(nil), s.ColWidths...)
	}
	return out
}
