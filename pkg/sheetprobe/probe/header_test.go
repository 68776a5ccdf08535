package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestLocateHeaderRow(t *testing.T) {
	g := newTestGrid(t, "Sheet1", func(f *excelize.File) {
		f.SetCellValue("Sheet1", "B3", "first data")
		f.SetCellValue("Sheet1", "A5", "later")
	})

	row, ok := LocateHeaderRow(g, DefaultMaxScanDepth)
	assert.True(t, ok)
	assert.Equal(t, 3, row)
}

func TestLocateHeaderRowEmptyWindow(t *testing.T) {
	g := newTestGrid(t, "Sheet1", func(f *excelize.File) {
		f.SetCellValue("Sheet1", "A15", "beyond the window")
	})

	_, ok := LocateHeaderRow(g, DefaultMaxScanDepth)
	assert.False(t, ok)
}

func TestLocateHeaderRowPicksTitleRow(t *testing.T) {
	// Known limitation: a title row above the real header wins. The
	// Layout override exists for exactly this case.
	g := newTestGrid(t, "Sheet1", func(f *excelize.File) {
		f.SetCellValue("Sheet1", "A1", "ANNUAL STOCK REPORT")
		f.SetCellValue("Sheet1", "A2", "District")
		f.SetCellValue("Sheet1", "B2", "Quantity")
	})

	row, ok := LocateHeaderRow(g, DefaultMaxScanDepth)
	assert.True(t, ok)
	assert.Equal(t, 1, row)
}

func TestLayoutResolve(t *testing.T) {
	g := newTestGrid(t, "Sheet1", func(f *excelize.File) {
		f.SetCellValue("Sheet1", "A2", "Header")
	})

	t.Run("detects header and derives data start", func(t *testing.T) {
		l := Layout{}.Resolve(g)
		assert.Equal(t, 2, l.HeaderRow)
		assert.Equal(t, 3, l.DataStartRow)
		assert.Equal(t, DefaultMaxScanDepth, l.MaxScanDepth)
	})

	t.Run("manual override bypasses detection", func(t *testing.T) {
		l := Layout{HeaderRow: 5}.Resolve(g)
		assert.Equal(t, 5, l.HeaderRow)
		assert.Equal(t, 6, l.DataStartRow)
	})

	t.Run("explicit data start kept", func(t *testing.T) {
		l := Layout{HeaderRow: 2, DataStartRow: 7}.Resolve(g)
		assert.Equal(t, 7, l.DataStartRow)
	})
}

func TestLayoutResolveEmptySheetFallsBackToRowOne(t *testing.T) {
	g := newTestGrid(t, "Sheet1", func(f *excelize.File) {})

	l := Layout{}.Resolve(g)
	assert.Equal(t, 1, l.HeaderRow)
	assert.Equal(t, 2, l.DataStartRow)
}

func TestHeaderNames(t *testing.T) {
	g := newTestGrid(t, "Sheet1", func(f *excelize.File) {
		f.SetCellValue("Sheet1", "A1", "Name")
		// B1 left empty on purpose.
		f.SetCellValue("Sheet1", "C1", "Stock")
		f.SetCellValue("Sheet1", "D2", "widens the sheet")
	})

	names := HeaderNames(g, 1)
	assert.Equal(t, []string{"Name", "Column_2", "Stock", "Column_4"}, names)
	assert.Len(t, names, g.MaxCol)
}
