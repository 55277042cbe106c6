package core

import "github.com/huangsam/buildsize/schema"

// Accumulator keeps running totals for one run. It is an explicit value owned
// by the run, so independent runs never share state.
type Accumulator struct {
	metrics []schema.MetricKey
	sums    schema.Measurements
	files   int
}

// NewAccumulator creates an accumulator for the active metrics.
func NewAccumulator(metrics []schema.MetricKey) *Accumulator {
	sums := make(schema.Measurements, len(metrics))
	for _, m := range metrics {
		sums[m] = 0
	}
	return &Accumulator{metrics: metrics, sums: sums}
}

// Add folds the measurements of one file into the totals.
func (a *Accumulator) Add(measurements schema.Measurements) {
	for _, m := range a.metrics {
		a.sums[m] += measurements[m]
	}
	a.files++
}

// Files returns how many files were added.
func (a *Accumulator) Files() int {
	return a.files
}

// Sum returns the running total of a metric.
func (a *Accumulator) Sum(m schema.MetricKey) int64 {
	return a.sums[m]
}

// Finalize builds the total row against the total namespace.
// It returns nil when no file was added or when the total row is disabled.
func (a *Accumulator) Finalize(thresholds schema.ThresholdConfig, emitTotal bool) *schema.Row {
	if a.files == 0 || !emitTotal {
		return nil
	}
	row := BuildRow("", a.sums, a.metrics, thresholds, schema.TotalThresholdKey)
	row.Total = true
	return &row
}
