package schema

// Column describes one metric column of the report.
type Column struct {
	Metric MetricKey `json:"metric"`
	Header string    `json:"header"`
}

// Cell is one measured value of a row together with its threshold state.
type Cell struct {
	Metric   MetricKey `json:"metric"`
	Size     int64     `json:"size"`
	Limit    int64     `json:"limit,omitempty"`
	HasLimit bool      `json:"has_limit"`
	Exceeded bool      `json:"exceeded"`
}

// Row is a built report line. The total row has an empty label.
type Row struct {
	Label string `json:"label"`
	Cells []Cell `json:"cells"`
	Total bool   `json:"total,omitempty"`
}

// Report is the column model and the rows of one run.
// Rows keep the iteration order of the input files; Total is rendered last.
type Report struct {
	Columns   []Column `json:"columns"`
	Rows      []Row    `json:"rows"`
	Total     *Row     `json:"total,omitempty"`
	FileCount int      `json:"file_count"`
}

// LabelHeader is the header of the always present first column.
const LabelHeader = "File"

// ColumnHeader returns the display header of a metric column.
// Both compressed columns share the same header, which must not be deduplicated.
func ColumnHeader(m MetricKey, c Compression) string {
	switch m {
	case RawMetric:
		return "Original"
	case MinifiedMetric:
		return "Minified"
	default:
		if c == BrotliCompression {
			return "Brotli"
		}
		return "Gzipped"
	}
}

// NewColumns builds the column model for the active metrics.
func NewColumns(metrics []MetricKey, c Compression) []Column {
	columns := make([]Column, len(metrics))
	for i, m := range metrics {
		columns[i] = Column{Metric: m, Header: ColumnHeader(m, c)}
	}
	return columns
}

// Headers returns the label header followed by each metric header.
func (r *Report) Headers() []string {
	headers := make([]string, 0, len(r.Columns)+1)
	headers = append(headers, LabelHeader)
	for _, c := range r.Columns {
		headers = append(headers, c.Header)
	}
	return headers
}

// IsEmpty reports whether the run saw no files; nothing should be rendered then.
func (r *Report) IsEmpty() bool {
	return r == nil || r.FileCount == 0
}

// AllRows returns the file rows followed by the total row, if any.
func (r *Report) AllRows() []Row {
	rows := make([]Row, 0, len(r.Rows)+1)
	rows = append(rows, r.Rows...)
	if r.Total != nil {
		rows = append(rows, *r.Total)
	}
	return rows
}

// ExceededCount returns how many cells across all rows are above their ceiling.
func (r *Report) ExceededCount() int {
	count := 0
	for _, row := range r.AllRows() {
		for _, c := range row.Cells {
			if c.Exceeded {
				count++
			}
		}
	}
	return count
}
