package contract

import (
	"errors"
	"fmt"
)

// ConfigurationError reports malformed options or thresholds.
// It is raised before any file is processed.
type ConfigurationError struct {
	Field string
	Err   error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration for %s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// newConfigError builds a ConfigurationError with a formatted cause.
func newConfigError(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Err: fmt.Errorf(format, args...)}
}

// IsConfigurationError reports whether err carries a ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}
