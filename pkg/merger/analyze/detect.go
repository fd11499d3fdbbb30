// Package analyze derives structural metadata from worksheets and
// locates the cost column across heterogeneous supplier layouts.
package analyze

import (
	"regexp"
	"strings"

	"github.com/jtboss/supplierpricelistmerger/pkg/merger/models"
)

// costPattern is one recognized header shape. Patterns are tested in
// order; a column is scored by its first match only.
type costPattern struct {
	name string
	re   *regexp.Regexp
}

var costPatterns = []costPattern{
	{"cost", regexp.MustCompile(`^cost$`)},
	{"price", regexp.MustCompile(`^price$`)},
	{"cost price", regexp.MustCompile(`^cost[\s_]?price$`)},
	{"unit price", regexp.MustCompile(`^unit[\s_]?price$`)},
	{"selling price", regexp.MustCompile(`^selling[\s_]?price$`)},
	{"wholesale price", regexp.MustCompile(`^wholesale[\s_]?price$`)},
	{"supplier price", regexp.MustCompile(`^supplier[\s_]?price$`)},
	{"base price", regexp.MustCompile(`^base[\s_]?price$`)},
}

// confidenceFor scores a matched header. Exact "cost" and "price"
// headers outrank every looser combination.
func confidenceFor(lower string) float64 {
	switch {
	case lower == "cost":
		return 0.95
	case lower == "price":
		return 0.90
	case strings.Contains(lower, "cost price"):
		return 0.90
	case strings.Contains(lower, "unit price"):
		return 0.85
	}
	return 0.70
}

// DetectCostColumn scans the header row of the sheet's used range and
// returns the column index most likely to hold unit cost, or -1 when no
// header matches a recognized pattern. Ties in confidence keep the
// first-encountered (lowest) column index.
func DetectCostColumn(sheet *models.Sheet) int {
	best := -1
	bestConfidence := 0.0
	for _, c := range detectCandidates(sheet) {
		if c.Confidence > bestConfidence {
			bestConfidence = c.Confidence
			best = c.ColumnIndex
		}
	}
	return best
}

// detectCandidates returns one scored candidate per header cell that
// matches a recognized pattern, in column order.
func detectCandidates(sheet *models.Sheet) []models.ColumnDetection {
	if sheet == nil || sheet.Range == nil || !sheet.Range.Valid() {
		return nil
	}
	r := *sheet.Range

	var results []models.ColumnDetection
	for col := r.StartCol; col <= r.EndCol; col++ {
		cell, ok := sheet.Cell(r.StartRow, col)
		if !ok || cell.Type != models.TypeString {
			continue
		}
		header := strings.TrimSpace(cell.Text)
		if header == "" {
			continue
		}
		lower := strings.ToLower(header)
		for _, p := range costPatterns {
			if !p.re.MatchString(lower) {
				continue
			}
			results = append(results, models.ColumnDetection{
				ColumnIndex: col,
				Confidence:  confidenceFor(lower),
				Header:      header,
				Pattern:     p.name,
			})
			break
		}
	}
	return results
}
