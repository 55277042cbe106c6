package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/buildsize/internal/contract"
	"github.com/huangsam/buildsize/internal/parquet"
	"github.com/huangsam/buildsize/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteReportResults outputs the size report, dispatching based on the output format configured.
func WriteReportResults(report *schema.Report, cfg *contract.Config, duration time.Duration) error {
	if report.IsEmpty() {
		return nil
	}

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONReport(w, report)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVReport(w, report)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeParquetReport(report, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTable(w, report, cfg, duration)
		}, "Wrote table")
	}
	return nil
}

// writeReportTable generates and writes the human-readable table.
func writeReportTable(w io.Writer, report *schema.Report, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	// Labels on the left, sizes on the right
	alignments := make([]tw.Align, len(report.Columns)+1)
	alignments[0] = tw.AlignLeft
	for i := 1; i < len(alignments); i++ {
		alignments[i] = tw.AlignRight
	}
	table.Configure(func(cfg *tablewriter.Config) {
		// Headers are uppercased before coloring, not by the table
		cfg.Header.Formatting.AutoFormat = tw.Off
		cfg.Row.Alignment.Global = tw.AlignRight
		cfg.Row.Alignment.PerColumn = alignments
	})

	headers := report.Headers()
	for i, h := range headers {
		headers[i] = contract.HeaderColor.Sprint(strings.ToUpper(h))
	}
	table.Header(headers)

	maxWidth := GetMaxTablePathWidth(cfg, len(report.Columns))
	var data [][]string
	for _, r := range report.AllRows() {
		row := []string{contract.TruncatePath(r.Label, maxWidth)}
		for _, c := range r.Cells {
			row = append(row, contract.GetColorSize(formatSize(c.Size), c.Metric, c.Exceeded, r.Total))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if n := report.ExceededCount(); n > 0 {
		if _, err := fmt.Fprintf(w, "%d values above their threshold\n", n); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Measured %d files in %v\n", report.FileCount, duration); err != nil {
		return err
	}
	return nil
}

// jsonReport adds summary fields to the report model.
type jsonReport struct {
	*schema.Report
	Headers       []string `json:"headers"`
	ExceededCount int      `json:"exceeded_count"`
}

// writeJSONReport writes the report in JSON format with raw byte counts.
func writeJSONReport(w io.Writer, report *schema.Report) error {
	return writeJSON(w, jsonReport{
		Report:        report,
		Headers:       report.Headers(),
		ExceededCount: report.ExceededCount(),
	})
}

// writeCSVReport writes one record per row with size, limit and exceeded columns for each metric.
// The limit is left empty when no threshold applies.
func writeCSVReport(w io.Writer, report *schema.Report) error {
	header := []string{"file", "total"}
	for _, c := range report.Columns {
		m := string(c.Metric)
		header = append(header, m+"_size", m+"_limit", m+"_exceeded")
	}

	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range report.AllRows() {
			rec := []string{r.Label, strconv.FormatBool(r.Total)}
			for _, c := range r.Cells {
				limit := ""
				if c.HasLimit {
					limit = strconv.FormatInt(c.Limit, 10)
				}
				rec = append(rec, strconv.FormatInt(c.Size, 10), limit, strconv.FormatBool(c.Exceeded))
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeParquetReport writes the report rows to the configured Parquet file.
func writeParquetReport(report *schema.Report, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires an output file")
	}
	records := parquet.ConvertReport(report, cfg.Compression, time.Now().UTC())
	if err := parquet.WriteSizeRecordsParquet(records, cfg.OutputFile); err != nil {
		return err
	}
	contract.LogInfo("💾 Wrote Parquet to %s", cfg.OutputFile)
	return nil
}
