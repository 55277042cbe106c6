// Package schema has configs, models and constants for all parts of buildsize.
package schema

import "sort"

// FileEntry is one output file handed over by the build pipeline.
// Content is owned by the pipeline and is never modified.
type FileEntry struct {
	Label   string // Unique name or relative path of the file within one run
	Content []byte // Raw bytes produced by the build
}

// FileSet is an ordered collection of files. Rows are reported in this order.
type FileSet []FileEntry

// FilesFromMap converts an unordered label -> content mapping into a FileSet
// sorted by label, so that repeated runs over the same map render identically.
func FilesFromMap(files map[string][]byte) FileSet {
	labels := make([]string, 0, len(files))
	for label := range files {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	set := make(FileSet, 0, len(labels))
	for _, label := range labels {
		set = append(set, FileEntry{Label: label, Content: files[label]})
	}
	return set
}

// Labels returns the file labels in iteration order.
func (s FileSet) Labels() []string {
	labels := make([]string, len(s))
	for i, f := range s {
		labels[i] = f.Label
	}
	return labels
}

// Measurements holds the measured byte count for each active metric of one file.
type Measurements map[MetricKey]int64
