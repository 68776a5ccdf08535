package probe

import "github.com/thedatashed/xlsxreader"

// CountCapRows caps streaming row counts so a huge sheet does not
// stall the summary.
const CountCapRows = 100000

// CountRows streams a sheet and returns the number of rows carrying
// cells, without loading the sheet into memory. Counting stops at
// CountCapRows.
func CountRows(path, sheetName string) (int, error) {
	xl, err := xlsxreader.OpenFile(path)
	if err != nil {
		return 0, err
	}
	defer xl.Close()

	count := 0
	for range xl.ReadRows(sheetName) {
		count++
		if count >= CountCapRows {
			break
		}
	}
	return count, nil
}

// CountColumns streams a sheet and returns the cell count of its
// first row, a cheap column-extent estimate.
func CountColumns(path, sheetName string) (int, error) {
	xl, err := xlsxreader.OpenFile(path)
	if err != nil {
		return 0, err
	}
	defer xl.Close()

	for row := range xl.ReadRows(sheetName) {
		return len(row.Cells), nil
	}
	return 0, nil
}
