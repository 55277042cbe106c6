package codec

import (
	"fmt"

	"github.com/andybalholm/brotli"
	"github.com/huangsam/buildsize/internal/contract"
	"github.com/huangsam/buildsize/schema"
)

// BrotliCompressor measures brotli output size.
type BrotliCompressor struct {
	quality int
}

var _ contract.Compressor = &BrotliCompressor{} // Compile-time check

// NewBrotliCompressor creates a brotli compressor. A quality of 0 selects brotli.BestCompression.
func NewBrotliCompressor(quality int) *BrotliCompressor {
	if quality == 0 {
		quality = brotli.BestCompression
	}
	return &BrotliCompressor{quality: quality}
}

// Algorithm implements the Compressor interface.
func (c *BrotliCompressor) Algorithm() schema.Compression {
	return schema.BrotliCompression
}

// CompressedSize implements the Compressor interface.
func (c *BrotliCompressor) CompressedSize(content []byte) (int64, error) {
	var out countingWriter
	w := brotli.NewWriterLevel(&out, c.quality)
	if _, err := w.Write(content); err != nil {
		return 0, fmt.Errorf("brotli write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return 0, fmt.Errorf("brotli close failed: %w", err)
	}
	return out.n, nil
}
