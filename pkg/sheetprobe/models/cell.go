// Package models defines the report structures produced by workbook analysis.
package models

// Kind labels the observed runtime kind of a cell value.
type Kind string

const (
	// KindEmpty marks an absent cell or one holding no value.
	KindEmpty Kind = "empty"
	// KindString marks a textual value.
	KindString Kind = "string"
	// KindInteger marks a whole-number value.
	KindInteger Kind = "integer"
	// KindFloat marks a decimal value.
	KindFloat Kind = "float"
	// KindBool marks a boolean value.
	KindBool Kind = "bool"
	// KindDateTime marks a date or timestamp value.
	KindDateTime Kind = "datetime"
)

// NoDataLabel is the sentinel reported for a column whose sampled
// window contains no non-empty cell. It never appears alongside a
// concrete kind label.
const NoDataLabel = "no_data"

// Cell is a single grid cell: the raw formatted value plus its kind.
type Cell struct {
	// Value is the cell's formatted string value; empty for KindEmpty.
	Value string `json:"value"`
	// Kind is the detected value kind.
	Kind Kind `json:"kind"`
}

// IsEmpty reports whether the cell holds no value. Whitespace-only
// values are not empty; only an absent value counts.
func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty
}
