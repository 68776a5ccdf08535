package probe

import "fmt"

// DefaultMaxScanDepth bounds the header search window.
const DefaultMaxScanDepth = 10

// Layout fixes where a sheet's header and data live. Zero values mean
// "detect" (HeaderRow), "header + 1" (DataStartRow) and the default
// window (MaxScanDepth). Supplying a non-zero HeaderRow overrides
// detection entirely, which is the escape hatch for sheets whose
// first non-empty row is a title rather than a header.
type Layout struct {
	// HeaderRow is the 1-based header row index; 0 requests detection.
	HeaderRow int
	// DataStartRow is the 1-based first data row; 0 means HeaderRow+1.
	DataStartRow int
	// MaxScanDepth bounds header detection; 0 means DefaultMaxScanDepth.
	MaxScanDepth int
}

// Resolve fills a layout's zero fields against a grid, running header
// detection when no explicit header row was given. Detection picks
// the first row with any non-empty cell; when the whole window is
// empty it falls back to row 1.
func (l Layout) Resolve(g *Grid) Layout {
	resolved := l
	if resolved.MaxScanDepth == 0 {
		resolved.MaxScanDepth = DefaultMaxScanDepth
	}
	if resolved.HeaderRow == 0 {
		row, ok := LocateHeaderRow(g, resolved.MaxScanDepth)
		if !ok {
			row = 1
		}
		resolved.HeaderRow = row
	}
	if resolved.DataStartRow == 0 {
		resolved.DataStartRow = resolved.HeaderRow + 1
	}
	return resolved
}

// LocateHeaderRow scans the first maxDepth rows and returns the index
// of the first row containing at least one non-empty cell across the
// sheet's full column span. A row holding only whitespace or zero
// values still counts as non-empty. Returns false when every row in
// the window is empty.
func LocateHeaderRow(g *Grid, maxDepth int) (int, bool) {
	limit := maxDepth
	if g.MaxRow < limit {
		limit = g.MaxRow
	}
	for row := 1; row <= limit; row++ {
		if g.RowHasData(row) {
			return row, true
		}
	}
	return 0, false
}

// HeaderNames returns one name per column in the grid's full span,
// taking values verbatim from the header row and synthesizing a
// Column_N placeholder for each empty header cell.
func HeaderNames(g *Grid, headerRow int) []string {
	names := make([]string, g.MaxCol)
	for col := 1; col <= g.MaxCol; col++ {
		cell := g.Cell(headerRow, col)
		if cell.IsEmpty() {
			names[col-1] = fmt.Sprintf("Column_%d", col)
			continue
		}
		names[col-1] = cell.Value
	}
	return names
}
