package sheetprobe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sheetprobe/pkg/sheetprobe/probe"
)

func TestOptionsModeDefaults(t *testing.T) {
	assert.False(t, Options{Mode: ModeSummary}.ShouldIncludeBreakdown())
	assert.True(t, Options{Mode: ModeDetailed}.ShouldIncludeBreakdown())
	assert.True(t, Options{Mode: ModeComprehensive}.ShouldIncludeBreakdown())

	assert.False(t, Options{Mode: ModeSummary}.ShouldIncludePatterns())
	assert.False(t, Options{Mode: ModeDetailed}.ShouldIncludePatterns())
	assert.True(t, Options{Mode: ModeComprehensive}.ShouldIncludePatterns())
}

func TestOptionsOverrides(t *testing.T) {
	yes, no := true, false

	opts := Options{Mode: ModeSummary, IncludeBreakdown: &yes, IncludePatterns: &yes}
	assert.True(t, opts.ShouldIncludeBreakdown())
	assert.True(t, opts.ShouldIncludePatterns())

	opts = Options{Mode: ModeComprehensive, IncludeBreakdown: &no, IncludePatterns: &no}
	assert.False(t, opts.ShouldIncludeBreakdown())
	assert.False(t, opts.ShouldIncludePatterns())
}

func TestOptionsLayoutFor(t *testing.T) {
	opts := Options{
		Layout:  probe.Layout{HeaderRow: 1},
		Layouts: map[string]probe.Layout{"msme": {HeaderRow: 2, DataStartRow: 3}},
	}

	assert.Equal(t, 2, opts.layoutFor("msme").HeaderRow)
	assert.Equal(t, 1, opts.layoutFor("charter").HeaderRow)
}
