package core

import "github.com/huangsam/buildsize/schema"

// ThresholdKeyFunc maps a metric to the threshold namespace of a row kind.
type ThresholdKeyFunc func(schema.MetricKey) schema.ThresholdKey

// BuildRow assembles one report row. Cells follow the order of metrics, which is
// fixed for the whole run; each cell records its resolved ceiling and whether it was exceeded.
func BuildRow(label string, measurements schema.Measurements, metrics []schema.MetricKey, thresholds schema.ThresholdConfig, keyFn ThresholdKeyFunc) schema.Row {
	cells := make([]schema.Cell, len(metrics))
	for i, m := range metrics {
		size := measurements[m]
		limit, ok := thresholds.Resolve(keyFn(m), label)
		cells[i] = schema.Cell{
			Metric:   m,
			Size:     size,
			Limit:    limit,
			HasLimit: ok,
			Exceeded: schema.Exceeded(size, limit, ok),
		}
	}
	return schema.Row{Label: label, Cells: cells}
}

// BuildFileRow builds a row for a single file using the per-file namespace.
func BuildFileRow(label string, measurements schema.Measurements, metrics []schema.MetricKey, thresholds schema.ThresholdConfig) schema.Row {
	return BuildRow(label, measurements, metrics, thresholds, schema.FileThresholdKey)
}
