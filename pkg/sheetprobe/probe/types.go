package probe

import "sheetprobe/pkg/sheetprobe/models"

// DefaultTypeScanRows bounds the per-column type inference window.
const DefaultTypeScanRows = 20

// InferColumnKinds returns the distinct value kinds observed among
// non-empty cells of one column, scanning up to scanRows rows from
// the layout's data start. Kinds appear in first-observation order so
// repeated runs against the same file report identically. A window
// with no non-empty cell yields the single no_data sentinel.
//
// This is a bounded sample, not a full column scan: kinds appearing
// only past the window go unreported.
func InferColumnKinds(g *Grid, layout Layout, col, scanRows int) []string {
	if scanRows <= 0 {
		scanRows = DefaultTypeScanRows
	}

	var kinds []string
	seen := make(map[models.Kind]bool)

	end := layout.DataStartRow + scanRows - 1
	if end > g.MaxRow {
		end = g.MaxRow
	}
	for row := layout.DataStartRow; row <= end; row++ {
		cell := g.Cell(row, col)
		if cell.IsEmpty() {
			continue
		}
		if !seen[cell.Kind] {
			seen[cell.Kind] = true
			kinds = append(kinds, string(cell.Kind))
		}
	}

	if len(kinds) == 0 {
		return []string{models.NoDataLabel}
	}
	return kinds
}
