package sheetprobe

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrSheetNotFound indicates a requested sheet is absent from the
// workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// AnalysisError is a failure in one analysis stage of one sheet.
type AnalysisError struct {
	SheetName string
	Stage     string // "load", "header", "sample", "types", "patterns"
	Err       error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError creates an AnalysisError.
func NewAnalysisError(sheetName, stage string, err error) *AnalysisError {
	return &AnalysisError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
