package schema

// Custom string types for type safety.
type (
	// MetricKey represents one measurable size dimension of a file.
	MetricKey string

	// ThresholdKey represents a configuration key holding a byte ceiling.
	ThresholdKey string

	// OutputMode represents the format of the output.
	OutputMode string

	// Compression represents the algorithm used for the compressed metrics.
	Compression string
)

// Metric keys in canonical column order.
const (
	RawMetric                MetricKey = "raw"
	CompressedMetric         MetricKey = "compressed"
	MinifiedMetric           MetricKey = "minified"
	MinifiedCompressedMetric MetricKey = "minified_compressed"
)

// Per-file threshold keys.
const (
	MaxSize                ThresholdKey = "maxSize"
	MaxGzippedSize         ThresholdKey = "maxGzippedSize"
	MaxMinifiedSize        ThresholdKey = "maxMinifiedSize"
	MaxMinifiedGzippedSize ThresholdKey = "maxMinifiedGzippedSize"
)

// Total row threshold keys.
const (
	MaxTotalSize                ThresholdKey = "maxTotalSize"
	MaxTotalGzippedSize         ThresholdKey = "maxTotalGzippedSize"
	MaxTotalMinifiedSize        ThresholdKey = "maxTotalMinifiedSize"
	MaxTotalMinifiedGzippedSize ThresholdKey = "maxTotalMinifiedGzippedSize"
)

// WildcardSelector selects every file lacking a more specific override.
const WildcardSelector = "*"

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All compression algorithms supported.
const (
	GzipCompression   Compression = "gzip" // default
	BrotliCompression Compression = "brotli"
)

// AllMetricKeys lists every metric in canonical order.
var AllMetricKeys = []MetricKey{RawMetric, CompressedMetric, MinifiedMetric, MinifiedCompressedMetric}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidCompressions lists all valid compression algorithms.
var ValidCompressions = map[Compression]struct{}{
	GzipCompression:   {},
	BrotliCompression: {},
}

var fileThresholdKeys = map[MetricKey]ThresholdKey{
	RawMetric:                MaxSize,
	CompressedMetric:         MaxGzippedSize,
	MinifiedMetric:           MaxMinifiedSize,
	MinifiedCompressedMetric: MaxMinifiedGzippedSize,
}

var totalThresholdKeys = map[MetricKey]ThresholdKey{
	RawMetric:                MaxTotalSize,
	CompressedMetric:         MaxTotalGzippedSize,
	MinifiedMetric:           MaxTotalMinifiedSize,
	MinifiedCompressedMetric: MaxTotalMinifiedGzippedSize,
}

// FileThresholdKey returns the per-file threshold key for a metric.
func FileThresholdKey(m MetricKey) ThresholdKey {
	return fileThresholdKeys[m]
}

// TotalThresholdKey returns the total row threshold key for a metric.
func TotalThresholdKey(m MetricKey) ThresholdKey {
	return totalThresholdKeys[m]
}

// IsTotalThresholdKey reports whether k belongs to the total row namespace.
func IsTotalThresholdKey(k ThresholdKey) bool {
	for _, v := range totalThresholdKeys {
		if v == k {
			return true
		}
	}
	return false
}

// ActiveMetrics computes the active metric set for a run, in canonical order.
// The minified+compressed metric is only active when both flags are set.
func ActiveMetrics(compressed, minified bool) []MetricKey {
	metrics := []MetricKey{RawMetric}
	if compressed {
		metrics = append(metrics, CompressedMetric)
	}
	if minified {
		metrics = append(metrics, MinifiedMetric)
	}
	if compressed && minified {
		metrics = append(metrics, MinifiedCompressedMetric)
	}
	return metrics
}
