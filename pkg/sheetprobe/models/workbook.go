package models

// Report is the workbook-level analysis result.
type Report struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// FilePath is the path the workbook was opened from.
	FilePath string `json:"file_path"`
	// SheetNames lists all sheet names in file order.
	SheetNames []string `json:"sheet_names"`
	// Sheets maps sheet name to its analysis. A sheet that failed to
	// analyze still has an entry, carrying only an error string.
	Sheets map[string]SheetReport `json:"sheets"`
}
