package probe

import "sheetprobe/pkg/sheetprobe/models"

const (
	// BreakdownRows is how many leading rows the structure scan covers.
	BreakdownRows = 20
	// BreakdownCols is how many leading columns the scan samples.
	BreakdownCols = 10
	// breakdownValueLen truncates sampled values for readability.
	breakdownValueLen = 40
)

// RowBreakdown profiles the first BreakdownRows rows of a sheet: per
// row, the count of non-empty cells within the first BreakdownCols
// columns and a truncated value sample. Useful for eyeballing where
// titles end and headers begin before committing to a Layout.
func RowBreakdown(g *Grid) []models.RowProfile {
	limit := BreakdownRows
	if g.MaxRow < limit {
		limit = g.MaxRow
	}

	span := BreakdownCols
	if g.MaxCol < span {
		span = g.MaxCol
	}

	profiles := make([]models.RowProfile, 0, limit)
	for row := 1; row <= limit; row++ {
		sample := make([]*string, span)
		nonEmpty := 0
		for col := 1; col <= span; col++ {
			cell := g.Cell(row, col)
			if cell.IsEmpty() {
				continue
			}
			nonEmpty++
			v := cell.Value
			if r := []rune(v); len(r) > breakdownValueLen {
				v = string(r[:breakdownValueLen])
			}
			sample[col-1] = &v
		}
		profiles = append(profiles, models.RowProfile{
			Row:          row,
			NonEmptyCols: nonEmpty,
			DataSample:   sample,
		})
	}
	return profiles
}
