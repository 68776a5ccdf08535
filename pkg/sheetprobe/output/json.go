// Package output serializes analysis reports.
package output

import (
	"encoding/json"

	"sheetprobe/pkg/sheetprobe/models"
)

// ToJSON serializes a report to JSON. Map keys serialize sorted, so
// repeated runs against an unchanged workbook are byte-identical.
func ToJSON(report *models.Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

// SheetToJSON serializes a single sheet report to JSON.
func SheetToJSON(sheet *models.SheetReport, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(sheet, "", "  ")
	}
	return json.Marshal(sheet)
}
