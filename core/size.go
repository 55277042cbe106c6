package core

import (
	"github.com/huangsam/buildsize/internal/contract"
	"github.com/huangsam/buildsize/schema"
)

// SizeComputer measures file content using the injected collaborators.
// It has no side effects; failures of a collaborator are returned, never skipped.
type SizeComputer struct {
	compressor contract.Compressor
	minifier   contract.Minifier
}

// NewSizeComputer creates a SizeComputer. Either collaborator may be nil
// when the matching metrics are not active.
func NewSizeComputer(compressor contract.Compressor, minifier contract.Minifier) *SizeComputer {
	return &SizeComputer{compressor: compressor, minifier: minifier}
}

// RawSize returns the byte length of content.
func (s *SizeComputer) RawSize(content []byte) int64 {
	return int64(len(content))
}

// CompressedSize returns the compressed byte length of content.
func (s *SizeComputer) CompressedSize(label string, content []byte) (int64, error) {
	if s.compressor == nil {
		return 0, &CollaboratorError{Op: CompressOp, Label: label, Err: errNoCompressor}
	}
	size, err := s.compressor.CompressedSize(content)
	if err != nil {
		return 0, &CollaboratorError{Op: CompressOp, Label: label, Err: err}
	}
	return size, nil
}

// Minify returns the minified content, read as text and handed over with its label.
func (s *SizeComputer) Minify(label string, content []byte) ([]byte, error) {
	if s.minifier == nil {
		return nil, &CollaboratorError{Op: MinifyOp, Label: label, Err: errNoMinifier}
	}
	minified, err := s.minifier.Minify(string(content), label)
	if err != nil {
		return nil, &CollaboratorError{Op: MinifyOp, Label: label, Err: err}
	}
	return []byte(minified), nil
}

// Measure computes every active metric of one file.
// The minified+compressed metric compresses the minified output.
func (s *SizeComputer) Measure(entry schema.FileEntry, metrics []schema.MetricKey) (schema.Measurements, error) {
	out := make(schema.Measurements, len(metrics))
	var (
		minified     []byte
		haveMinified bool
	)

	for _, m := range metrics {
		switch m {
		case schema.RawMetric:
			out[m] = s.RawSize(entry.Content)
		case schema.CompressedMetric:
			size, err := s.CompressedSize(entry.Label, entry.Content)
			if err != nil {
				return nil, err
			}
			out[m] = size
		case schema.MinifiedMetric, schema.MinifiedCompressedMetric:
			if !haveMinified {
				var err error
				if minified, err = s.Minify(entry.Label, entry.Content); err != nil {
					return nil, err
				}
				haveMinified = true
			}
			if m == schema.MinifiedMetric {
				out[m] = s.RawSize(minified)
				continue
			}
			size, err := s.CompressedSize(entry.Label, minified)
			if err != nil {
				return nil, err
			}
			out[m] = size
		}
	}
	return out, nil
}
