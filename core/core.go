// Package core has core logic for measuring, evaluating and reporting build output sizes.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/buildsize/internal/codec"
	"github.com/huangsam/buildsize/internal/contract"
	"github.com/huangsam/buildsize/internal/outwriter"
	"github.com/huangsam/buildsize/schema"
)

// ExecuteSizeReport measures the configured build output and writes the report.
// It serves as the main entry point for the 'report' command.
// Threshold violations are highlighted only; they never make this return an error.
func ExecuteSizeReport(ctx context.Context, cfg *contract.Config) error {
	report, duration, err := GetSizeReport(ctx, cfg)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteReport(report, cfg, duration)
}

// GetSizeReport collects and measures files without writing anything.
func GetSizeReport(ctx context.Context, cfg *contract.Config) (*schema.Report, time.Duration, error) {
	start := time.Now()

	opts, err := OptionsFromConfig(cfg)
	if err != nil {
		return nil, 0, err
	}

	files, err := CollectFiles(ctx, cfg.Path, cfg.Excludes)
	if err != nil {
		return nil, 0, err
	}
	if !shouldSuppressHeader(ctx) {
		logReportHeader(cfg, len(files))
	}

	report, err := NewSizeReporter(opts).Run(ctx, files)
	if err != nil {
		return nil, 0, fmt.Errorf("size report failed: %w", err)
	}
	return report, time.Since(start), nil
}

// OptionsFromConfig wires the codecs selected by the configuration.
func OptionsFromConfig(cfg *contract.Config) (Options, error) {
	opts := Options{
		Total:      cfg.Total,
		Thresholds: cfg.Thresholds,
	}
	if cfg.Gzip {
		compressor, err := codec.NewCompressor(cfg.Compression, cfg.Level)
		if err != nil {
			return Options{}, &contract.ConfigurationError{Field: "compression", Err: err}
		}
		opts.Compressor = compressor
	}
	if cfg.Minify {
		opts.Minifier = codec.NewExtensionMinifier()
	}
	return opts, nil
}

// logReportHeader prints what is about to be measured.
func logReportHeader(cfg *contract.Config, fileCount int) {
	contract.LogInfo("📦 buildsize: Measuring %d files in %s", fileCount, cfg.Path)
	if !cfg.Thresholds.IsEmpty() {
		contract.LogInfo("📏 Thresholds configured; values above their ceiling are highlighted")
	}
}
