package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/buildsize/internal/contract"
	"github.com/huangsam/buildsize/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsFromConfig(t *testing.T) {
	t.Run("raw only", func(t *testing.T) {
		opts, err := OptionsFromConfig(&contract.Config{Total: true})
		require.NoError(t, err)
		assert.Nil(t, opts.Compressor)
		assert.Nil(t, opts.Minifier)
		assert.True(t, opts.Total)
	})

	t.Run("brotli and minifier", func(t *testing.T) {
		opts, err := OptionsFromConfig(&contract.Config{Gzip: true, Minify: true, Compression: schema.BrotliCompression})
		require.NoError(t, err)
		require.NotNil(t, opts.Compressor)
		assert.Equal(t, schema.BrotliCompression, opts.Compressor.Algorithm())
		assert.NotNil(t, opts.Minifier)
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := OptionsFromConfig(&contract.Config{Gzip: true, Compression: "zstd"})
		require.Error(t, err)
		assert.True(t, contract.IsConfigurationError(err))
	})
}

func TestGetSizeReport(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.js":     "xxxxx",
		"b.js":     "xx",
		"a.js.map": "{}",
	})
	cfg := &contract.Config{
		Path:        dir,
		Total:       true,
		Excludes:    []string{".map"},
		Compression: schema.GzipCompression,
	}
	cfg.Thresholds.Set("", schema.MaxSize, 4)

	report, duration, err := GetSizeReport(WithSuppressHeader(context.Background()), cfg)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, duration.Nanoseconds(), int64(0))
	assert.Equal(t, []string{"a.js", "b.js"}, []string{report.Rows[0].Label, report.Rows[1].Label})
	assert.Equal(t, 1, report.ExceededCount())
	assert.Equal(t, int64(7), report.Total.Cells[0].Size)
}

func TestGetSizeReportWithCodecs(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"style.css": "body {\n  color: #ff0000;\n}\n",
	})
	cfg := &contract.Config{Path: dir, Gzip: true, Minify: true, Total: true, Compression: schema.GzipCompression}

	report, _, err := GetSizeReport(WithSuppressHeader(context.Background()), cfg)
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)

	cells := report.Rows[0].Cells
	require.Len(t, cells, 4)
	assert.Less(t, cells[2].Size, cells[0].Size, "minified css is smaller")
	assert.Positive(t, cells[1].Size)
	assert.Positive(t, cells[3].Size)
}

func TestExecuteSizeReport(t *testing.T) {
	dir := writeTree(t, map[string]string{"index.html": "<p>hello</p>"})
	out := filepath.Join(t.TempDir(), "report.json")
	cfg := &contract.Config{Path: dir, Total: true, Output: schema.JSONOut, OutputFile: out}

	require.NoError(t, ExecuteSizeReport(WithSuppressHeader(context.Background()), cfg))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"index.html"`)
}

func TestExecuteSizeReportEmptyDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.csv")
	cfg := &contract.Config{Path: t.TempDir(), Total: true, Output: schema.CSVOut, OutputFile: out}

	require.NoError(t, ExecuteSizeReport(WithSuppressHeader(context.Background()), cfg))

	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err), "nothing is written for an empty build")
}
