// Package parquet provides data structures and functions for exporting build
// size reports to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/buildsize/schema"
	"github.com/parquet-go/parquet-go"
)

// SizeRecord represents one report row, either a file or the total.
// Metrics that were not measured in the run are stored as nulls.
type SizeRecord struct {
	// Label is the file label; empty for the total row
	Label string `parquet:"label,snappy"`

	// Total marks the aggregate row
	Total bool `parquet:"total"`

	// MeasuredAt is when the report was produced (stored as TIMESTAMP with nanosecond precision)
	MeasuredAt time.Time `parquet:"measured_at,snappy"`

	// Compression is the algorithm behind the compressed columns (nullable)
	Compression *string `parquet:"compression,optional,snappy"`

	RawSize     int64  `parquet:"raw_size,snappy"`
	RawLimit    *int64 `parquet:"raw_limit,optional,snappy"`
	RawExceeded bool   `parquet:"raw_exceeded"`

	CompressedSize     *int64 `parquet:"compressed_size,optional,snappy"`
	CompressedLimit    *int64 `parquet:"compressed_limit,optional,snappy"`
	CompressedExceeded *bool  `parquet:"compressed_exceeded,optional"`

	MinifiedSize     *int64 `parquet:"minified_size,optional,snappy"`
	MinifiedLimit    *int64 `parquet:"minified_limit,optional,snappy"`
	MinifiedExceeded *bool  `parquet:"minified_exceeded,optional"`

	MinifiedCompressedSize     *int64 `parquet:"minified_compressed_size,optional,snappy"`
	MinifiedCompressedLimit    *int64 `parquet:"minified_compressed_limit,optional,snappy"`
	MinifiedCompressedExceeded *bool  `parquet:"minified_compressed_exceeded,optional"`
}

// WriteSizeRecordsParquet writes a slice of SizeRecord structs to a Parquet file.
func WriteSizeRecordsParquet(data []SizeRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the SizeRecord struct tags
	writer := parquet.NewGenericWriter[SizeRecord](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// ConvertReport flattens a report into records, file rows first and the total last.
func ConvertReport(report *schema.Report, compression schema.Compression, measuredAt time.Time) []SizeRecord {
	rows := report.AllRows()
	result := make([]SizeRecord, len(rows))
	for i, row := range rows {
		record := SizeRecord{
			Label:      row.Label,
			Total:      row.Total,
			MeasuredAt: measuredAt,
		}
		for _, cell := range row.Cells {
			size, limit, exceeded := cell.Size, limitOf(cell), cell.Exceeded
			switch cell.Metric {
			case schema.RawMetric:
				record.RawSize, record.RawLimit, record.RawExceeded = size, limit, exceeded
			case schema.CompressedMetric:
				record.CompressedSize, record.CompressedLimit, record.CompressedExceeded = &size, limit, &exceeded
			case schema.MinifiedMetric:
				record.MinifiedSize, record.MinifiedLimit, record.MinifiedExceeded = &size, limit, &exceeded
			case schema.MinifiedCompressedMetric:
				record.MinifiedCompressedSize, record.MinifiedCompressedLimit, record.MinifiedCompressedExceeded = &size, limit, &exceeded
			}
			if cell.Metric == schema.CompressedMetric || cell.Metric == schema.MinifiedCompressedMetric {
				algorithm := string(compression)
				record.Compression = &algorithm
			}
		}
		result[i] = record
	}
	return result
}

// limitOf returns the resolved ceiling of a cell, or nil when none applied.
func limitOf(cell schema.Cell) *int64 {
	if !cell.HasLimit {
		return nil
	}
	limit := cell.Limit
	return &limit
}
