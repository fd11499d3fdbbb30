package models

// ColumnType is the inferred content type of one column.
type ColumnType string

const (
	// ColumnEmpty means no populated cells were sampled.
	ColumnEmpty ColumnType = "empty"
	// ColumnNumber means at least 70% of sampled cells were numeric.
	ColumnNumber ColumnType = "number"
	// ColumnString means at least 70% of sampled cells were non-numeric text.
	ColumnString ColumnType = "string"
	// ColumnMixed means neither type reached the 70% threshold.
	ColumnMixed ColumnType = "mixed"
)

// WorksheetAnalysis is derived, read-only metadata about one sheet.
type WorksheetAnalysis struct {
	HasHeaders bool `json:"has_headers"`
	// HeaderRow is the row index of the header row within the sheet.
	HeaderRow int `json:"header_row"`
	// DataRange bounds the data rows, excluding the header row when present.
	DataRange Range `json:"data_range"`
	// ColumnTypes holds one inferred type per column of the used range.
	ColumnTypes []ColumnType `json:"column_types"`
	// CostColumnIndex is the detected cost column, or -1 when none matched.
	CostColumnIndex int `json:"cost_column_index"`
	TotalRows       int `json:"total_rows"`
	TotalCols       int `json:"total_cols"`
}

// ColumnDetection is one scored cost-column candidate. It is used only
// to rank candidates within a single detection pass.
type ColumnDetection struct {
	ColumnIndex int     `json:"column_index"`
	Confidence  float64 `json:"confidence"`
	// Header is the matched header text, trimmed.
	Header string `json:"header"`
	// Pattern identifies the pattern that matched.
	Pattern string `json:"pattern"`
}
