package probe

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"sheetprobe/pkg/sheetprobe/models"
)

// DataBounds computes the bounding box of non-empty cells, the cell
// density within it, and the number of columns carrying data at or
// after the layout's data start. Returns nil for an entirely empty
// sheet.
func DataBounds(g *Grid, layout Layout) *models.Bounds {
	minRow, maxRow, minCol, maxCol := -1, -1, -1, -1
	nonEmpty := 0

	for row := 1; row <= g.MaxRow; row++ {
		for col := 1; col <= g.MaxCol; col++ {
			if g.Cell(row, col).IsEmpty() {
				continue
			}
			nonEmpty++
			if minRow < 0 || row < minRow {
				minRow = row
			}
			if row > maxRow {
				maxRow = row
			}
			if minCol < 0 || col < minCol {
				minCol = col
			}
			if col > maxCol {
				maxCol = col
			}
		}
	}

	if minRow < 0 {
		return nil
	}

	boxCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)

	startCell, _ := excelize.CoordinatesToCellName(minCol, minRow)
	endCell, _ := excelize.CoordinatesToCellName(maxCol, maxRow)

	return &models.Bounds{
		MinRow:      minRow,
		MinCol:      minCol,
		MaxRow:      maxRow,
		MaxCol:      maxCol,
		Range:       fmt.Sprintf("%s:%s", startCell, endCell),
		Density:     float64(nonEmpty) / float64(boxCells),
		DataColumns: countDataColumns(g, layout),
	}
}

// countDataColumns counts columns with at least one non-empty cell in
// the data region.
func countDataColumns(g *Grid, layout Layout) int {
	count := 0
	for col := 1; col <= g.MaxCol; col++ {
		for row := layout.DataStartRow; row <= g.MaxRow; row++ {
			if !g.Cell(row, col).IsEmpty() {
				count++
				break
			}
		}
	}
	return count
}
