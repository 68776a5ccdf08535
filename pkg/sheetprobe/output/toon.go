package output

import (
	toon "github.com/mateuszkardas/toon-go"

	"sheetprobe/pkg/sheetprobe/models"
)

// ToTOON serializes a report to the TOON compact text format, a
// denser alternative to JSON for feeding reports to language models.
func ToTOON(report *models.Report) (string, error) {
	return toon.Marshal(report, nil)
}

// SheetToTOON serializes a single sheet report to TOON.
func SheetToTOON(sheet *models.SheetReport) (string, error) {
	return toon.Marshal(sheet, nil)
}
