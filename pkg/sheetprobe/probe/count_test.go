package probe

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestCountRows(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "Name")
	f.SetCellValue("Sheet1", "B1", "Qty")
	f.SetCellValue("Sheet1", "A2", "Apple")
	f.SetCellValue("Sheet1", "A3", "Pear")

	path := filepath.Join(t.TempDir(), "count.xlsx")
	require.NoError(t, f.SaveAs(path))

	n, err := CountRows(path, "Sheet1")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestCountColumns(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "Name")
	f.SetCellValue("Sheet1", "B1", "Qty")

	path := filepath.Join(t.TempDir(), "count.xlsx")
	require.NoError(t, f.SaveAs(path))

	n, err := CountColumns(path, "Sheet1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCountRowsMissingFile(t *testing.T) {
	_, err := CountRows(filepath.Join(t.TempDir(), "nope.xlsx"), "Sheet1")
	assert.Error(t, err)
}
