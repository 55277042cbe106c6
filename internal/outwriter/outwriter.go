// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/buildsize/internal/contract"
	"github.com/huangsam/buildsize/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints a size report using the configured output format.
// An empty report prints nothing.
func (ow *OutWriter) WriteReport(report *schema.Report, cfg *contract.Config, duration time.Duration) error {
	return WriteReportResults(report, cfg, duration)
}

// Sink binds the writer to a configuration so it can terminate a report pipeline.
func (ow *OutWriter) Sink(cfg *contract.Config) contract.ReportSink {
	return &reportSink{cfg: cfg, start: time.Now()}
}

// reportSink adapts WriteReportResults to contract.ReportSink.
type reportSink struct {
	cfg   *contract.Config
	start time.Time
}

var _ contract.ReportSink = &reportSink{} // Compile-time check

// WriteReport implements the ReportSink interface.
func (s *reportSink) WriteReport(report *schema.Report) error {
	return WriteReportResults(report, s.cfg, time.Since(s.start))
}
