package probe

// DefaultSampleRows is the number of data rows sampled per sheet.
const DefaultSampleRows = 5

// SampleRows collects up to maxRows data rows starting at the
// layout's data start, skipping rows with no non-empty cell. Each
// sample spans the grid's full column width, with nil for empty
// cells and Go-native values otherwise.
func SampleRows(g *Grid, layout Layout, maxRows int) [][]any {
	var samples [][]any
	for row := layout.DataStartRow; row <= g.MaxRow && len(samples) < maxRows; row++ {
		if !g.RowHasData(row) {
			continue
		}
		values := make([]any, g.MaxCol)
		for col := 1; col <= g.MaxCol; col++ {
			values[col-1] = TypedValue(g.Cell(row, col))
		}
		samples = append(samples, values)
	}
	return samples
}

// CountDataRows counts rows at or after the layout's data start with
// at least one non-empty cell.
func CountDataRows(g *Grid, layout Layout) int {
	count := 0
	for row := layout.DataStartRow; row <= g.MaxRow; row++ {
		if g.RowHasData(row) {
			count++
		}
	}
	return count
}
