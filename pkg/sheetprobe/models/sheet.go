package models

// SheetReport is the analysis of a single sheet.
type SheetReport struct {
	// TotalRows is the sheet's row extent (upper bound, rows may be empty).
	TotalRows int `json:"total_rows"`
	// TotalColumns is the sheet's column extent.
	TotalColumns int `json:"total_columns"`
	// PresentRows is the number of rows physically present in the
	// file, from a streaming scan; unlike TotalRows it ignores
	// formatted-but-empty trailing rows. Capped for very large sheets.
	PresentRows int `json:"present_rows,omitempty"`
	// HeaderRow is the 1-based row index the headers were taken from.
	HeaderRow int `json:"header_row,omitempty"`
	// DataStartRow is the 1-based row index data sampling started at.
	DataStartRow int `json:"data_start_row,omitempty"`
	// Headers contains one name per column, with Column_N placeholders
	// filling empty header cells.
	Headers []string `json:"headers,omitempty"`
	// SampleRows contains the first sampled data rows as typed values,
	// nil for empty cells.
	SampleRows [][]any `json:"sample_rows,omitempty"`
	// Columns contains per-column inference results.
	Columns []ColumnReport `json:"columns,omitempty"`
	// Bounds describes the occupied cell range (detailed mode).
	Bounds *Bounds `json:"bounds,omitempty"`
	// RowBreakdown profiles the leading rows (detailed mode).
	RowBreakdown []RowProfile `json:"row_breakdown,omitempty"`
	// Fields buckets column names by keyword (comprehensive mode).
	Fields *FieldBuckets `json:"identified_fields,omitempty"`
	// DataRowCount is the number of non-empty rows at or after
	// DataStartRow (comprehensive mode).
	DataRowCount int `json:"data_row_count,omitempty"`
	// Error holds the failure message when analysis of this sheet did
	// not complete; all other fields are zero in that case.
	Error string `json:"error,omitempty"`
}

// RowProfile summarizes the structure of one leading row.
type RowProfile struct {
	// Row is the 1-based row index.
	Row int `json:"row"`
	// NonEmptyCols is the count of non-empty cells in the inspected span.
	NonEmptyCols int `json:"non_empty_cols"`
	// DataSample holds truncated cell values, nil for empty cells.
	DataSample []*string `json:"data_sample"`
}

// Bounds is the bounding box of non-empty cells in a sheet.
type Bounds struct {
	// MinRow is the first occupied row (1-based).
	MinRow int `json:"min_row"`
	// MinCol is the first occupied column (1-based).
	MinCol int `json:"min_col"`
	// MaxRow is the last occupied row (1-based, inclusive).
	MaxRow int `json:"max_row"`
	// MaxCol is the last occupied column (1-based, inclusive).
	MaxCol int `json:"max_col"`
	// Range is the box in A1 notation, e.g. "A1:F42".
	Range string `json:"range"`
	// Density is the non-empty cell ratio within the box.
	Density float64 `json:"density"`
	// DataColumns is the number of columns with at least one non-empty
	// cell in the data region.
	DataColumns int `json:"data_columns"`
}
