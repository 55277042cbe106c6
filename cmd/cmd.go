// Package cmd defines the command-line interface for buildsize.
package cmd

import (
	"github.com/huangsam/buildsize/internal/contract"
	"github.com/huangsam/buildsize/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Bool("gzip", false, "Also report compressed sizes")
	rootCmd.PersistentFlags().String("compression", string(schema.GzipCompression), "Compression algorithm for compressed sizes: gzip or brotli")
	rootCmd.PersistentFlags().Int("level", contract.DefaultCompressionLevel, "Compression level (0 = best compression)")
	rootCmd.PersistentFlags().Bool("minify", false, "Also report minified sizes for css, html, js, json, svg and xml files")
	rootCmd.PersistentFlags().Bool("total", true, "Append a row with the totals of every column")
	rootCmd.PersistentFlags().StringSlice("threshold", nil, "Size ceiling as [selector:]key=value; selector is a file label or '*' (repeatable)")
	rootCmd.PersistentFlags().String("exclude", "", "Comma-separated list of path prefixes or patterns to ignore")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored sizes in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
