package core

import (
	"errors"
	"fmt"
)

// Collaborator operations that can fail during a run.
const (
	CompressOp = "compress"
	MinifyOp   = "minify"
)

// errNoCompressor is returned when a compressed metric is requested without a compressor.
var errNoCompressor = errors.New("no compressor configured")

// errNoMinifier is returned when a minified metric is requested without a minifier.
var errNoMinifier = errors.New("no minifier configured")

// CollaboratorError wraps a failure of the injected compressor or minifier.
// The original error stays reachable through errors.Is and errors.As.
type CollaboratorError struct {
	Op    string // CompressOp or MinifyOp
	Label string // File being measured
	Err   error
}

// Error implements the error interface.
func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Label, e.Err)
}

// Unwrap returns the collaborator's error.
func (e *CollaboratorError) Unwrap() error {
	return e.Err
}
