package codec

import (
	"fmt"

	"github.com/huangsam/buildsize/internal/contract"
	"github.com/huangsam/buildsize/schema"
	"github.com/klauspost/compress/gzip"
)

// DefaultGzipLevel matches what gzip-size style tools report.
const DefaultGzipLevel = gzip.BestCompression

// GzipCompressor measures gzip output size.
type GzipCompressor struct {
	level int
}

var _ contract.Compressor = &GzipCompressor{} // Compile-time check

// NewGzipCompressor creates a gzip compressor. A level of 0 selects DefaultGzipLevel.
func NewGzipCompressor(level int) *GzipCompressor {
	if level == 0 {
		level = DefaultGzipLevel
	}
	return &GzipCompressor{level: level}
}

// Algorithm implements the Compressor interface.
func (c *GzipCompressor) Algorithm() schema.Compression {
	return schema.GzipCompression
}

// CompressedSize implements the Compressor interface.
func (c *GzipCompressor) CompressedSize(content []byte) (int64, error) {
	var out countingWriter
	w, err := gzip.NewWriterLevel(&out, c.level)
	if err != nil {
		return 0, fmt.Errorf("invalid gzip level %d: %w", c.level, err)
	}
	if _, err := w.Write(content); err != nil {
		return 0, fmt.Errorf("gzip write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return 0, fmt.Errorf("gzip close failed: %w", err)
	}
	return out.n, nil
}
