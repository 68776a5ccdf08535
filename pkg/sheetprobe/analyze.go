package sheetprobe

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"sheetprobe/pkg/sheetprobe/models"
	"sheetprobe/pkg/sheetprobe/probe"
)

// Analyze opens the workbook at path and builds a report for every
// sheet (or the subset named in opts.Sheets). A sheet that fails to
// analyze gets an error-only entry and the remaining sheets still
// run; only opening the workbook itself is fatal.
func Analyze(path string, opts Options) (*models.Report, error) {
	log := opts.logger()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	log.Info("workbook opened",
		zap.String("path", path),
		zap.Int("sheets", len(sheetList)))

	report := &models.Report{
		BookName:   filepath.Base(path),
		FilePath:   path,
		SheetNames: sheetList,
		Sheets:     make(map[string]models.SheetReport, len(sheetList)),
	}

	present := make(map[string]bool, len(sheetList))
	for _, name := range sheetList {
		present[name] = true
	}

	targets := sheetList
	if len(opts.Sheets) > 0 {
		targets = opts.Sheets
	}

	for _, sheetName := range targets {
		if !present[sheetName] {
			err := NewAnalysisError(sheetName, "load", ErrSheetNotFound)
			log.Warn("sheet skipped", zap.String("sheet", sheetName), zap.Error(err))
			report.Sheets[sheetName] = models.SheetReport{Error: err.Error()}
			continue
		}

		sheet, err := analyzeSheet(f, path, sheetName, opts, log)
		if err != nil {
			log.Warn("sheet analysis failed", zap.String("sheet", sheetName), zap.Error(err))
			report.Sheets[sheetName] = models.SheetReport{Error: err.Error()}
			continue
		}
		report.Sheets[sheetName] = *sheet
	}

	return report, nil
}

// analyzeSheet runs the probe pipeline for one sheet: load the grid,
// resolve the layout, then headers, samples, column inference and the
// mode-gated extras.
func analyzeSheet(f *excelize.File, path, sheetName string, opts Options, log *zap.Logger) (*models.SheetReport, error) {
	g, err := probe.LoadGrid(f, sheetName)
	if err != nil {
		return nil, NewAnalysisError(sheetName, "load", err)
	}

	layout := opts.layoutFor(sheetName).Resolve(g)
	log.Debug("layout resolved",
		zap.String("sheet", sheetName),
		zap.Int("header_row", layout.HeaderRow),
		zap.Int("data_start_row", layout.DataStartRow))

	sheet := &models.SheetReport{
		TotalRows:    g.MaxRow,
		TotalColumns: g.MaxCol,
		HeaderRow:    layout.HeaderRow,
		DataStartRow: layout.DataStartRow,
		Headers:      probe.HeaderNames(g, layout.HeaderRow),
	}

	if n, err := probe.CountRows(path, sheetName); err == nil {
		sheet.PresentRows = n
	} else {
		log.Warn("streaming row count failed", zap.String("sheet", sheetName), zap.Error(err))
	}

	sampleRows := opts.SampleRows
	if sampleRows == 0 {
		sampleRows = probe.DefaultSampleRows
	}
	sheet.SampleRows = probe.SampleRows(g, layout, sampleRows)

	comprehensive := opts.Mode == ModeComprehensive

	columns := make([]models.ColumnReport, 0, g.MaxCol)
	for col := 1; col <= g.MaxCol; col++ {
		column := models.ColumnReport{
			Name:  sheet.Headers[col-1],
			Index: col,
			Types: probe.InferColumnKinds(g, layout, col, opts.TypeScanRows),
		}
		if comprehensive {
			column.Buckets = probe.ClassifyField(column.Name)
		}
		if opts.ShouldIncludePatterns() {
			column.Pattern = probe.BuildPattern(g, layout, col)
		}
		columns = append(columns, column)
	}
	sheet.Columns = columns

	if opts.ShouldIncludeBreakdown() {
		sheet.RowBreakdown = probe.RowBreakdown(g)
		sheet.Bounds = probe.DataBounds(g, layout)
	}

	if comprehensive {
		sheet.DataRowCount = probe.CountDataRows(g, layout)
		sheet.Fields = buildFieldBuckets(sheet.Headers)
	}

	return sheet, nil
}

// buildFieldBuckets classifies every header name into its keyword
// buckets.
func buildFieldBuckets(headers []string) *models.FieldBuckets {
	fields := &models.FieldBuckets{
		Location: []string{},
		Crop:     []string{},
		Stock:    []string{},
		Outlet:   []string{},
	}
	for _, name := range headers {
		for _, bucket := range probe.ClassifyField(name) {
			switch bucket {
			case probe.BucketLocation:
				fields.Location = append(fields.Location, name)
			case probe.BucketCrop:
				fields.Crop = append(fields.Crop, name)
			case probe.BucketStock:
				fields.Stock = append(fields.Stock, name)
			case probe.BucketOutlet:
				fields.Outlet = append(fields.Outlet, name)
			}
		}
	}
	return fields
}
