package core

import (
	"context"
	"fmt"

	"github.com/huangsam/buildsize/internal/contract"
	"github.com/huangsam/buildsize/schema"
)

// Options configures a SizeReporter. The active metrics are derived from the
// collaborators once, when the reporter is created.
type Options struct {
	Compressor contract.Compressor // nil disables the compressed metrics
	Minifier   contract.Minifier   // nil disables the minified metrics
	Total      bool                // emit the total row
	Thresholds schema.ThresholdConfig
}

// SizeReporter turns a set of build output files into a size report.
type SizeReporter struct {
	sizer      *SizeComputer
	metrics    []schema.MetricKey
	columns    []schema.Column
	thresholds schema.ThresholdConfig
	total      bool
}

// NewSizeReporter creates a reporter with a fixed column model.
func NewSizeReporter(opts Options) *SizeReporter {
	compression := schema.GzipCompression
	if opts.Compressor != nil {
		compression = opts.Compressor.Algorithm()
	}
	metrics := schema.ActiveMetrics(opts.Compressor != nil, opts.Minifier != nil)
	return &SizeReporter{
		sizer:      NewSizeComputer(opts.Compressor, opts.Minifier),
		metrics:    metrics,
		columns:    schema.NewColumns(metrics, compression),
		thresholds: opts.Thresholds.Clone(),
		total:      opts.Total,
	}
}

// Metrics returns the active metrics in column order.
func (r *SizeReporter) Metrics() []schema.MetricKey {
	return r.metrics
}

// Run measures every file in order and returns the report.
// The first collaborator failure aborts the run and no partial report is returned.
// An empty file set yields a report with no rows and no total row.
func (r *SizeReporter) Run(ctx context.Context, files schema.FileSet) (*schema.Report, error) {
	acc := NewAccumulator(r.metrics)
	rows := make([]schema.Row, 0, len(files))

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("size report interrupted: %w", err)
		}
		measurements, err := r.sizer.Measure(f, r.metrics)
		if err != nil {
			return nil, err
		}
		rows = append(rows, BuildFileRow(f.Label, measurements, r.metrics, r.thresholds))
		acc.Add(measurements)
	}

	return &schema.Report{
		Columns:   r.columns,
		Rows:      rows,
		Total:     acc.Finalize(r.thresholds, r.total),
		FileCount: acc.Files(),
	}, nil
}

// Process is the pipeline step form of Run. It hands a non-empty report to the
// sink and invokes done exactly once, with nil on success or the failure otherwise.
func (r *SizeReporter) Process(ctx context.Context, files schema.FileSet, sink contract.ReportSink, done func(error)) {
	report, err := r.Run(ctx, files)
	if err != nil {
		done(err)
		return
	}
	if !report.IsEmpty() {
		if err := sink.WriteReport(report); err != nil {
			done(fmt.Errorf("failed to write size report: %w", err))
			return
		}
	}
	done(nil)
}
