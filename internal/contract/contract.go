// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import "github.com/huangsam/buildsize/schema"

// Compressor computes the compressed size of file content.
// Implementations must be deterministic and use the same parameters for a whole run.
type Compressor interface {
	// Algorithm names the compression, which drives the column header.
	Algorithm() schema.Compression

	// CompressedSize returns the byte length of the compressed content.
	CompressedSize(content []byte) (int64, error)
}

// Minifier shrinks file content. The label lets implementations differ by extension.
// It must be pure and synchronous for a run to be reproducible.
type Minifier interface {
	Minify(content string, label string) (string, error)
}

// MinifierFunc adapts a plain function to the Minifier interface.
type MinifierFunc func(content string, label string) (string, error)

// Minify implements the Minifier interface.
func (f MinifierFunc) Minify(content string, label string) (string, error) {
	return f(content, label)
}

// ReportSink receives a finished report for rendering.
type ReportSink interface {
	WriteReport(report *schema.Report) error
}
