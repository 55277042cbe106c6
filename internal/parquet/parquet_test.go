package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/buildsize/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *schema.Report {
	metrics := schema.ActiveMetrics(true, false)
	return &schema.Report{
		Columns: schema.NewColumns(metrics, schema.GzipCompression),
		Rows: []schema.Row{
			{Label: "a.js", Cells: []schema.Cell{
				{Metric: schema.RawMetric, Size: 5, Limit: 4, HasLimit: true, Exceeded: true},
				{Metric: schema.CompressedMetric, Size: 3},
			}},
			{Label: "b.js", Cells: []schema.Cell{
				{Metric: schema.RawMetric, Size: 2, Limit: 4, HasLimit: true},
				{Metric: schema.CompressedMetric, Size: 2},
			}},
		},
		Total: &schema.Row{Total: true, Cells: []schema.Cell{
			{Metric: schema.RawMetric, Size: 7},
			{Metric: schema.CompressedMetric, Size: 5, Limit: 0, HasLimit: true, Exceeded: true},
		}},
		FileCount: 2,
	}
}

func TestSizeRecordStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	recordSchema := parquet.SchemaOf(new(SizeRecord))
	require.NotNil(t, recordSchema)

	expectedColumns := []string{
		"label",
		"total",
		"measured_at",
		"compression",
		"raw_size",
		"raw_limit",
		"raw_exceeded",
		"compressed_size",
		"compressed_limit",
		"compressed_exceeded",
		"minified_size",
		"minified_limit",
		"minified_exceeded",
		"minified_compressed_size",
		"minified_compressed_limit",
		"minified_compressed_exceeded",
	}

	for _, colName := range expectedColumns {
		col, ok := recordSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestConvertReport(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	records := ConvertReport(sampleReport(), schema.GzipCompression, now)
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, "a.js", first.Label)
	assert.Equal(t, int64(5), first.RawSize)
	require.NotNil(t, first.RawLimit)
	assert.Equal(t, int64(4), *first.RawLimit)
	assert.True(t, first.RawExceeded)
	require.NotNil(t, first.CompressedSize)
	assert.Equal(t, int64(3), *first.CompressedSize)
	assert.Nil(t, first.CompressedLimit)
	require.NotNil(t, first.Compression)
	assert.Equal(t, "gzip", *first.Compression)
	assert.Nil(t, first.MinifiedSize, "inactive metrics stay null")
	assert.Equal(t, now, first.MeasuredAt)

	total := records[2]
	assert.True(t, total.Total)
	assert.Empty(t, total.Label)
	require.NotNil(t, total.CompressedLimit)
	assert.Zero(t, *total.CompressedLimit)
	require.NotNil(t, total.CompressedExceeded)
	assert.True(t, *total.CompressedExceeded)
}

func TestWriteSizeRecordsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "sizes.parquet")
	data := ConvertReport(sampleReport(), schema.GzipCompression, time.Now().UTC())

	err := WriteSizeRecordsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[SizeRecord](file)
	defer reader.Close()

	readData := make([]SizeRecord, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	for i := range data {
		assert.Equal(t, data[i].Label, readData[i].Label, "Label should match")
		assert.Equal(t, data[i].Total, readData[i].Total, "Total should match")
		assert.Equal(t, data[i].RawSize, readData[i].RawSize, "RawSize should match")
		assert.Equal(t, data[i].RawExceeded, readData[i].RawExceeded, "RawExceeded should match")

		if data[i].RawLimit == nil {
			assert.Nil(t, readData[i].RawLimit, "RawLimit should be nil")
		} else {
			require.NotNil(t, readData[i].RawLimit, "RawLimit should not be nil")
			assert.Equal(t, *data[i].RawLimit, *readData[i].RawLimit, "RawLimit should match")
		}
		require.NotNil(t, readData[i].CompressedSize, "CompressedSize should not be nil")
		assert.Equal(t, *data[i].CompressedSize, *readData[i].CompressedSize, "CompressedSize should match")
		assert.Nil(t, readData[i].MinifiedSize, "MinifiedSize should be nil")
	}
}

func TestWriteSizeRecordsParquet_InvalidPath(t *testing.T) {
	err := WriteSizeRecordsParquet(nil, filepath.Join(t.TempDir(), "missing", "sizes.parquet"))
	assert.Error(t, err)
}
