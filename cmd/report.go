package cmd

import (
	"github.com/huangsam/buildsize/core"
	"github.com/huangsam/buildsize/internal/contract"
	"github.com/spf13/cobra"
)

// reportCmd measures a build output directory.
var reportCmd = &cobra.Command{
	Use:   "report [dir]",
	Short: "Show the size of every build output file.",
	Long: `Measure every file of a build output directory and print a size table.

Each file gets its original size and, when enabled, its compressed, minified
and minified+compressed sizes. Values above a configured threshold are
highlighted; they never make the command fail.

Thresholds resolve per file first, then through the '*' wildcard, then
globally. Total ceilings (maxTotal*) only apply to the total row.

Examples:
  # Original sizes of everything under dist
  buildsize report dist

  # Add gzip and minified columns, flag files above 4 KiB
  buildsize report dist --gzip --minify --threshold maxSize=4096

  # Per-file and wildcard ceilings
  buildsize report dist --gzip --threshold '*:maxGzippedSize=1024' --threshold 'app.js:maxGzippedSize=2048'

  # Brotli sizes exported to CSV
  buildsize report dist --gzip --compression brotli --output csv --output-file sizes.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSizeReport(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run size report", err)
		}
	},
}
