// Package sheetprobe analyzes xlsx workbooks: sheet inventory, header
// location, row sampling, per-column type inference and semantic
// field classification, assembled into a JSON-serializable report.
package sheetprobe

import (
	"go.uber.org/zap"

	"sheetprobe/pkg/sheetprobe/probe"
)

// Mode selects how much analysis each sheet receives.
type Mode string

const (
	// ModeSummary reports extents, headers, sample rows and column
	// kind sets.
	ModeSummary Mode = "summary"
	// ModeDetailed adds the leading-row breakdown and occupied bounds.
	ModeDetailed Mode = "detailed"
	// ModeComprehensive adds field buckets, column patterns and the
	// data-row count.
	ModeComprehensive Mode = "comprehensive"
)

// Options configures an analysis run.
type Options struct {
	// Mode selects the analysis depth (summary, detailed, comprehensive).
	Mode Mode
	// Sheets restricts analysis to the named sheets. Empty means all.
	// A requested sheet missing from the workbook is recorded as that
	// sheet's error; the rest still run.
	Sheets []string
	// Layout applies to every sheet without an entry in Layouts.
	Layout probe.Layout
	// Layouts overrides the layout per sheet name.
	Layouts map[string]probe.Layout
	// SampleRows is the number of data rows to sample per sheet.
	// 0 means probe.DefaultSampleRows.
	SampleRows int
	// TypeScanRows bounds the type-inference window per column.
	// 0 means probe.DefaultTypeScanRows.
	TypeScanRows int
	// IncludeBreakdown overrides the mode's row-breakdown default.
	IncludeBreakdown *bool
	// IncludePatterns overrides the mode's column-pattern default.
	IncludePatterns *bool
	// Logger receives progress and warning logs; nil means no logging.
	Logger *zap.Logger
}

// DefaultOptions returns options for a summary run.
func DefaultOptions() Options {
	return Options{Mode: ModeSummary}
}

// ShouldIncludeBreakdown reports whether the row breakdown is built.
func (o Options) ShouldIncludeBreakdown() bool {
	if o.IncludeBreakdown != nil {
		return *o.IncludeBreakdown
	}
	return o.Mode != ModeSummary
}

// ShouldIncludePatterns reports whether column patterns are built.
func (o Options) ShouldIncludePatterns() bool {
	if o.IncludePatterns != nil {
		return *o.IncludePatterns
	}
	return o.Mode == ModeComprehensive
}

// layoutFor resolves the layout for one sheet.
func (o Options) layoutFor(sheetName string) probe.Layout {
	if l, ok := o.Layouts[sheetName]; ok {
		return l
	}
	return o.Layout
}

// logger returns the configured logger or a nop one.
func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
