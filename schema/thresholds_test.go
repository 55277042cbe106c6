package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThresholdConfigResolve(t *testing.T) {
	cfg := ThresholdConfig{
		Global:   Limits{MaxSize: 100, MaxTotalSize: 1000, MaxMinifiedSize: 50},
		Wildcard: Limits{MaxSize: 3, MaxGzippedSize: 20},
		Files: map[string]Limits{
			"a.js": {MaxSize: 10},
			"b.js": {MaxGzippedSize: 0},
		},
	}

	tests := []struct {
		name      string
		key       ThresholdKey
		label     string
		expected  int64
		expectHit bool
	}{
		{name: "per-file override wins", key: MaxSize, label: "a.js", expected: 10, expectHit: true},
		{name: "wildcard when file has no entry for the key", key: MaxGzippedSize, label: "a.js", expected: 20, expectHit: true},
		{name: "wildcard when file is unknown", key: MaxSize, label: "c.js", expected: 3, expectHit: true},
		{name: "global when neither override has the key", key: MaxMinifiedSize, label: "a.js", expected: 50, expectHit: true},
		{name: "zero override is a real ceiling", key: MaxGzippedSize, label: "b.js", expected: 0, expectHit: true},
		{name: "total skips per-file lookup", key: MaxTotalSize, label: "", expected: 1000, expectHit: true},
		{name: "absent key resolves to nothing", key: MaxMinifiedGzippedSize, label: "a.js", expectHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cfg.Resolve(tt.key, tt.label)
			assert.Equal(t, tt.expectHit, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestThresholdConfigResolveEmptyLabelIgnoresFiles(t *testing.T) {
	// A file literally named like an override must not leak into the total row.
	cfg := ThresholdConfig{Files: map[string]Limits{"": {MaxTotalSize: 1}}}
	_, ok := cfg.Resolve(MaxTotalSize, "")
	assert.False(t, ok)
}

func TestThresholdConfigZeroValue(t *testing.T) {
	var cfg ThresholdConfig
	_, ok := cfg.Resolve(MaxSize, "a.js")
	assert.False(t, ok)
	assert.True(t, cfg.IsEmpty())
}

func TestExceeded(t *testing.T) {
	tests := []struct {
		name     string
		size     int64
		limit    int64
		hasLimit bool
		expected bool
	}{
		{"above ceiling", 5, 4, true, true},
		{"equal to ceiling", 4, 4, true, false},
		{"below ceiling", 2, 4, true, false},
		{"zero ceiling with content", 1, 0, true, true},
		{"zero ceiling with empty file", 0, 0, true, false},
		{"no ceiling", 1 << 30, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Exceeded(tt.size, tt.limit, tt.hasLimit))
		})
	}
}

func TestThresholdConfigSetAndMerge(t *testing.T) {
	var base ThresholdConfig
	base.Set("", MaxSize, 100)
	base.Set(WildcardSelector, MaxSize, 50)
	base.Set("a.js", MaxSize, 10)

	var overlay ThresholdConfig
	overlay.Set("", MaxSize, 200)
	overlay.Set("a.js", MaxGzippedSize, 5)

	base.Merge(overlay)

	assert.Equal(t, Limits{MaxSize: 200}, base.Global)
	assert.Equal(t, Limits{MaxSize: 50}, base.Wildcard)
	assert.Equal(t, Limits{MaxSize: 10, MaxGzippedSize: 5}, base.Files["a.js"])
}

func TestThresholdConfigClone(t *testing.T) {
	var cfg ThresholdConfig
	cfg.Set("a.js", MaxSize, 10)
	clone := cfg.Clone()
	clone.Set("a.js", MaxSize, 99)

	assert.Equal(t, int64(10), cfg.Files["a.js"][MaxSize])
	assert.Equal(t, int64(99), clone.Files["a.js"][MaxSize])
}
