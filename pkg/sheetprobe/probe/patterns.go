package probe

import (
	"strconv"

	"github.com/montanaflynn/stats"

	"sheetprobe/pkg/sheetprobe/models"
)

// MaxPatternSamples caps the distinct values listed for a
// categorical column.
const MaxPatternSamples = 10

// Pattern type labels.
const (
	PatternNumeric     = "numeric"
	PatternCategorical = "categorical"
)

// BuildPattern profiles one column over the full data region. A
// column whose non-empty cells are all integers or floats is numeric
// and gets min/max/mean plus the non-null count; anything else is
// categorical and gets the distinct-value count and up to
// MaxPatternSamples distinct values in first-observation order.
func BuildPattern(g *Grid, layout Layout, col int) *models.ColumnPattern {
	var numbers []float64
	var samples []string
	seen := make(map[string]bool)
	numericOnly := true
	nonNull := 0

	for row := layout.DataStartRow; row <= g.MaxRow; row++ {
		cell := g.Cell(row, col)
		if cell.IsEmpty() {
			continue
		}
		nonNull++

		switch cell.Kind {
		case models.KindInteger, models.KindFloat:
			if v, err := strconv.ParseFloat(cell.Value, 64); err == nil {
				numbers = append(numbers, v)
			}
		default:
			numericOnly = false
		}

		if !seen[cell.Value] {
			seen[cell.Value] = true
			if len(samples) < MaxPatternSamples {
				samples = append(samples, cell.Value)
			}
		}
	}

	if numericOnly && nonNull > 0 {
		pattern := &models.ColumnPattern{
			Type:         PatternNumeric,
			NonNullCount: nonNull,
		}
		if min, err := stats.Min(numbers); err == nil {
			pattern.Min = &min
		}
		if max, err := stats.Max(numbers); err == nil {
			pattern.Max = &max
		}
		if mean, err := stats.Mean(numbers); err == nil {
			pattern.Mean = &mean
		}
		return pattern
	}

	return &models.ColumnPattern{
		Type:         PatternCategorical,
		UniqueCount:  len(seen),
		SampleValues: samples,
		NonNullCount: nonNull,
	}
}
