// Package codec provides the compressors and minifiers used to measure build output.
package codec

import (
	"fmt"

	"github.com/huangsam/buildsize/internal/contract"
	"github.com/huangsam/buildsize/schema"
)

// countingWriter discards bytes and records how many were written.
type countingWriter struct {
	n int64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.n += int64(len(p))
	return len(p), nil
}

// NewCompressor returns the compressor for an algorithm.
// A level of 0 selects the algorithm's default.
func NewCompressor(algorithm schema.Compression, level int) (contract.Compressor, error) {
	switch algorithm {
	case schema.GzipCompression, "":
		return NewGzipCompressor(level), nil
	case schema.BrotliCompression:
		return NewBrotliCompressor(level), nil
	default:
		return nil, fmt.Errorf("unsupported compression: %s. Must be gzip or brotli", algorithm)
	}
}
