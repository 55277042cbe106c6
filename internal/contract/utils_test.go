package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/buildsize/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetColorSize(t *testing.T) {
	SetColorEnabled(true)
	defer SetColorEnabled(false)

	tests := []struct {
		name     string
		metric   schema.MetricKey
		exceeded bool
		total    bool
		expected string
	}{
		{"raw", schema.RawMetric, false, false, RawColor.Sprint("5 B")},
		{"compressed", schema.CompressedMetric, false, false, CompressedColor.Sprint("5 B")},
		{"minified stays plain", schema.MinifiedMetric, false, false, "5 B"},
		{"exceeded wins over metric color", schema.RawMetric, true, false, ExceededColor.Sprint("5 B")},
		{"total", schema.RawMetric, false, true, TotalColor.Sprint("5 B")},
		{"exceeded total", schema.RawMetric, true, true, TotalColor.Sprint(ExceededColor.Sprint("5 B"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetColorSize("5 B", tt.metric, tt.exceeded, tt.total))
		})
	}
}

func TestGetColorSizeWithoutColors(t *testing.T) {
	SetColorEnabled(false)
	assert.Equal(t, "5 B", GetColorSize("5 B", schema.RawMetric, true, true))
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path returns stdout", func(t *testing.T) {
		file, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, file)
	})

	t.Run("valid path creates file", func(t *testing.T) {
		tempFile := filepath.Join(t.TempDir(), "report.txt")

		file, err := SelectOutputFile(tempFile)
		require.NoError(t, err)
		assert.NotNil(t, file)
		_ = file.Close()

		_, err = os.Stat(tempFile)
		assert.NoError(t, err)
	})
}

func TestShouldIgnore(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		excludes   []string
		wantIgnore bool
	}{
		{
			name:       "empty excludes",
			path:       "js/app.js",
			excludes:   []string{},
			wantIgnore: false,
		},
		{
			name:       "prefix match",
			path:       "assets/fonts/inter.woff2",
			excludes:   []string{"assets/"},
			wantIgnore: true,
		},
		{
			name:       "suffix match",
			path:       "js/app.js.map",
			excludes:   []string{".map"},
			wantIgnore: true,
		},
		{
			name:       "glob match basename",
			path:       "js/vendor.LICENSE.txt",
			excludes:   []string{"*.LICENSE.txt"},
			wantIgnore: true,
		},
		{
			name:       "substring match",
			path:       "img/generated/sprite.png",
			excludes:   []string{"generated"},
			wantIgnore: true,
		},
		{
			name:       "no match",
			path:       "css/site.css",
			excludes:   []string{"assets/", ".map"},
			wantIgnore: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantIgnore, ShouldIgnore(tt.path, tt.excludes))
		})
	}
}

func TestTruncatePath(t *testing.T) {
	assert.Equal(t, "short.js", TruncatePath("short.js", 20))
	assert.Equal(t, "...ong/name.js", TruncatePath("some/very/long/name.js", 14))
	assert.Equal(t, "abcdef", TruncatePath("abcdef", 3))
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, v)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, v)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}
