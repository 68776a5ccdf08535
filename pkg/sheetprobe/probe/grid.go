// Package probe provides pure probing functions over a sheet grid:
// header location, sampling, type inference, name classification and
// structural profiling. Functions take explicit parameters and hold
// no state, so callers compose them per sheet.
package probe

import (
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"sheetprobe/pkg/sheetprobe/models"
)

// Grid is a sheet loaded as a 1-indexed 2-D grid of typed cells.
// MaxRow and MaxCol are extents, not guarantees of density.
type Grid struct {
	SheetName string
	MaxRow    int
	MaxCol    int

	cells [][]models.Cell
}

// LoadGrid reads an entire sheet into a Grid. Cell kinds come from
// the native cell type where the file records one, with a string
// parse fallback for untyped values.
func LoadGrid(f *excelize.File, sheetName string) (*Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	maxCol := 0
	for _, row := range rows {
		if len(row) > maxCol {
			maxCol = len(row)
		}
	}

	g := &Grid{
		SheetName: sheetName,
		MaxRow:    len(rows),
		MaxCol:    maxCol,
		cells:     make([][]models.Cell, len(rows)),
	}

	for rowIdx, row := range rows {
		cells := make([]models.Cell, len(row))
		for colIdx, value := range row {
			if value == "" {
				cells[colIdx] = models.Cell{Kind: models.KindEmpty}
				continue
			}
			cells[colIdx] = models.Cell{
				Value: value,
				Kind:  detectKind(f, sheetName, rowIdx+1, colIdx+1, value),
			}
		}
		g.cells[rowIdx] = cells
	}

	return g, nil
}

// Cell returns the cell at (row, col), 1-indexed. Out-of-range
// coordinates yield the empty cell.
func (g *Grid) Cell(row, col int) models.Cell {
	if row < 1 || row > len(g.cells) {
		return models.Cell{Kind: models.KindEmpty}
	}
	r := g.cells[row-1]
	if col < 1 || col > len(r) {
		return models.Cell{Kind: models.KindEmpty}
	}
	return r[col-1]
}

// RowHasData reports whether the row contains at least one non-empty
// cell across the grid's full column span.
func (g *Grid) RowHasData(row int) bool {
	for col := 1; col <= g.MaxCol; col++ {
		if !g.Cell(row, col).IsEmpty() {
			return true
		}
	}
	return false
}

// detectKind resolves a cell's kind, preferring the file's native
// cell type over string parsing.
func detectKind(f *excelize.File, sheetName string, row, col int, value string) models.Kind {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err == nil {
		cellType, err := f.GetCellType(sheetName, cellName)
		if err == nil {
			switch cellType {
			case excelize.CellTypeBool:
				return models.KindBool
			case excelize.CellTypeDate:
				return models.KindDateTime
			case excelize.CellTypeNumber:
				return numberKind(value)
			case excelize.CellTypeInlineString, excelize.CellTypeSharedString:
				return models.KindString
			}
		}
	}
	return parseKind(value)
}

// parseKind infers a kind from the formatted string value alone.
func parseKind(value string) models.Kind {
	if _, err := strconv.ParseInt(value, 10, 64); err == nil {
		return models.KindInteger
	}
	if _, err := strconv.ParseFloat(value, 64); err == nil {
		return models.KindFloat
	}
	if _, err := strconv.ParseBool(value); err == nil {
		return models.KindBool
	}
	if isDateTime(value) {
		return models.KindDateTime
	}
	return models.KindString
}

// numberKind splits a numeric cell into integer vs float.
func numberKind(value string) models.Kind {
	if _, err := strconv.ParseInt(value, 10, 64); err == nil {
		return models.KindInteger
	}
	return models.KindFloat
}

// dateTimeLayouts are the formatted-value layouts excelize commonly
// produces for date- and time-styled cells.
var dateTimeLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01-02-06",
	"1/2/2006",
	"1/2/06 15:04",
	"15:04:05",
	time.RFC3339,
}

func isDateTime(value string) bool {
	for _, layout := range dateTimeLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

// TypedValue converts a cell to its Go-native value for JSON output:
// int64, float64, bool or string, and nil for empty cells.
func TypedValue(c models.Cell) any {
	switch c.Kind {
	case models.KindEmpty:
		return nil
	case models.KindInteger:
		if i, err := strconv.ParseInt(c.Value, 10, 64); err == nil {
			return i
		}
	case models.KindFloat:
		if f, err := strconv.ParseFloat(c.Value, 64); err == nil {
			return f
		}
	case models.KindBool:
		if b, err := strconv.ParseBool(c.Value); err == nil {
			return b
		}
	}
	return c.Value
}
