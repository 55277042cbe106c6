package contract

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/huangsam/buildsize/schema"
	"github.com/spf13/viper"
)

// Default values for configuration.
const (
	DefaultCompressionLevel = 0  // Let the codec pick its own default
	MaxCompressionLevel     = 11 // brotli quality ceiling
	MaxGzipLevel            = 9
)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// LimitsRaw holds optional byte ceilings as they appear in the YAML config file.
// Pointers keep an explicit zero apart from an absent value.
type LimitsRaw struct {
	MaxSize                     *int64 `mapstructure:"maxSize"`
	MaxGzippedSize              *int64 `mapstructure:"maxGzippedSize"`
	MaxMinifiedSize             *int64 `mapstructure:"maxMinifiedSize"`
	MaxMinifiedGzippedSize      *int64 `mapstructure:"maxMinifiedGzippedSize"`
	MaxTotalSize                *int64 `mapstructure:"maxTotalSize"`
	MaxTotalGzippedSize         *int64 `mapstructure:"maxTotalGzippedSize"`
	MaxTotalMinifiedSize        *int64 `mapstructure:"maxTotalMinifiedSize"`
	MaxTotalMinifiedGzippedSize *int64 `mapstructure:"maxTotalMinifiedGzippedSize"`
}

// OverrideRaw is one selector entry of the overrides list.
// File is a file label or "*" for the wildcard.
type OverrideRaw struct {
	File      string `mapstructure:"file"`
	LimitsRaw `mapstructure:",squash"`
}

// ThresholdsRawInput holds threshold definitions from the YAML config file.
type ThresholdsRawInput struct {
	LimitsRaw `mapstructure:",squash"`
	Overrides []OverrideRaw `mapstructure:"overrides"`
}

// Config holds the runtime configuration for a size report.
// This struct is the "final, validated" config.
type Config struct {
	Path        string // Build output directory or single file
	Gzip        bool
	Compression schema.Compression
	Level       int
	Minify      bool
	Total       bool
	Thresholds  schema.ThresholdConfig
	Excludes    []string
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)
	UseColors   bool
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	PathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`

	// --- Fields from reportCmd.Flags() ---
	Gzip        bool     `mapstructure:"gzip"`
	Compression string   `mapstructure:"compression"`
	Level       int      `mapstructure:"level"`
	Minify      bool     `mapstructure:"minify"`
	Total       bool     `mapstructure:"total"`
	Exclude     string   `mapstructure:"exclude"`
	Threshold   []string `mapstructure:"threshold"`

	// --- Thresholds from config file, decoded by UnmarshalThresholds ---
	Thresholds ThresholdsRawInput `mapstructure:"-"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Excludes != nil {
		clone.Excludes = make([]string, len(c.Excludes))
		copy(clone.Excludes, c.Excludes)
	}
	clone.Thresholds = c.Thresholds.Clone()
	return &clone
}

// ActiveMetrics returns the metric set this configuration enables.
func (c *Config) ActiveMetrics() []schema.MetricKey {
	return schema.ActiveMetrics(c.Gzip, c.Minify)
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processThresholds(cfg, input); err != nil {
		return err
	}
	return resolvePath(cfg, input)
}

// validateSimpleInputs processes and validates all non-threshold fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.Gzip = input.Gzip
	cfg.Minify = input.Minify
	cfg.Total = input.Total
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return newConfigError("color", "%w", err)
	}
	cfg.UseColors = colors

	// --- 1. Compression Validation ---
	compression := strings.ToLower(strings.TrimSpace(input.Compression))
	if compression == "" {
		compression = string(schema.GzipCompression)
	}
	cfg.Compression = schema.Compression(compression)
	if _, ok := schema.ValidCompressions[cfg.Compression]; !ok {
		return newConfigError("compression", "unknown algorithm '%s'. must be gzip or brotli", input.Compression)
	}
	maxLevel := MaxCompressionLevel
	if cfg.Compression == schema.GzipCompression {
		maxLevel = MaxGzipLevel
	}
	if input.Level < 0 || input.Level > maxLevel {
		return newConfigError("level", "must be between 0 and %d for %s (received %d)", maxLevel, cfg.Compression, input.Level)
	}
	cfg.Level = input.Level

	// --- 2. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return newConfigError("output", "invalid format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return newConfigError("output-file", "parquet output requires --output-file")
	}

	// --- 3. Excludes Processing ---
	cfg.Excludes = nil
	if input.Exclude != "" {
		for p := range strings.SplitSeq(input.Exclude, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				cfg.Excludes = append(cfg.Excludes, trimmed)
			}
		}
	}

	return nil
}

// processThresholds converts the config file thresholds into a ThresholdConfig
// and merges the --threshold flag values over them.
func processThresholds(cfg *Config, input *ConfigRawInput) error {
	thresholds, err := ProcessThresholdsRawInput(input.Thresholds)
	if err != nil {
		return err
	}

	for _, entry := range input.Threshold {
		parsed, err := ParseThresholdsString(entry)
		if err != nil {
			return err
		}
		thresholds.Merge(parsed)
	}

	cfg.Thresholds = thresholds
	return nil
}

// UnmarshalThresholds decodes the "thresholds" section of the config file.
// Unknown keys and ceilings that are not whole numbers are rejected instead of
// being dropped or truncated.
func UnmarshalThresholds(v *viper.Viper, raw *ThresholdsRawInput) error {
	*raw = ThresholdsRawInput{}
	err := v.UnmarshalKey("thresholds", raw, func(c *mapstructure.DecoderConfig) {
		c.ErrorUnused = true
		c.WeaklyTypedInput = false
		c.DecodeHook = mapstructure.DecodeHookFuncType(wholeCeilingHook)
	})
	if err != nil {
		return &ConfigurationError{Field: "thresholds", Err: err}
	}
	return nil
}

// wholeCeilingHook converts YAML floats and env strings into int64 ceilings.
func wholeCeilingHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int64 {
		return data, nil
	}
	switch v := data.(type) {
	case float64:
		if v != math.Trunc(v) {
			return nil, fmt.Errorf("ceiling must be a whole number of bytes (received %v)", v)
		}
		return int64(v), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("non-numeric ceiling '%s': %w", v, err)
		}
		return n, nil
	}
	return data, nil
}

// ProcessThresholdsRawInput validates raw file thresholds and builds the typed config.
func ProcessThresholdsRawInput(raw ThresholdsRawInput) (schema.ThresholdConfig, error) {
	var thresholds schema.ThresholdConfig

	if err := applyLimitsRaw(&thresholds, "", raw.LimitsRaw); err != nil {
		return schema.ThresholdConfig{}, err
	}

	for i, o := range raw.Overrides {
		selector := strings.TrimSpace(o.File)
		if selector == "" {
			return schema.ThresholdConfig{}, newConfigError("thresholds.overrides", "entry %d is missing 'file'", i)
		}
		if err := applyLimitsRaw(&thresholds, selector, o.LimitsRaw); err != nil {
			return schema.ThresholdConfig{}, err
		}
	}

	return thresholds, nil
}

// applyLimitsRaw copies every present ceiling of raw under the given selector.
func applyLimitsRaw(thresholds *schema.ThresholdConfig, selector string, raw LimitsRaw) error {
	entries := []struct {
		key   schema.ThresholdKey
		value *int64
	}{
		{schema.MaxSize, raw.MaxSize},
		{schema.MaxGzippedSize, raw.MaxGzippedSize},
		{schema.MaxMinifiedSize, raw.MaxMinifiedSize},
		{schema.MaxMinifiedGzippedSize, raw.MaxMinifiedGzippedSize},
		{schema.MaxTotalSize, raw.MaxTotalSize},
		{schema.MaxTotalGzippedSize, raw.MaxTotalGzippedSize},
		{schema.MaxTotalMinifiedSize, raw.MaxTotalMinifiedSize},
		{schema.MaxTotalMinifiedGzippedSize, raw.MaxTotalMinifiedGzippedSize},
	}

	for _, e := range entries {
		if e.value == nil {
			continue
		}
		if err := validateThreshold(selector, e.key, *e.value); err != nil {
			return err
		}
		thresholds.Set(selector, e.key, *e.value)
	}
	return nil
}

// validateThreshold rejects negative ceilings and total keys under a per-file selector.
func validateThreshold(selector string, key schema.ThresholdKey, value int64) error {
	field := thresholdField(selector, key)
	if value < 0 {
		return newConfigError(field, "ceiling must not be negative (received %d)", value)
	}
	if selector != "" && selector != schema.WildcardSelector && schema.IsTotalThresholdKey(key) {
		return newConfigError(field, "total ceilings cannot be set for a single file")
	}
	return nil
}

// thresholdField renders a human readable location for error messages.
func thresholdField(selector string, key schema.ThresholdKey) string {
	if selector == "" {
		return fmt.Sprintf("thresholds.%s", key)
	}
	return fmt.Sprintf("thresholds[%s].%s", selector, key)
}

// ParseThresholdsString parses a string like "maxSize=4096,*:maxGzippedSize=1024,app.js:maxSize=0"
// into a ThresholdConfig. An entry without a selector sets the global value.
func ParseThresholdsString(s string) (schema.ThresholdConfig, error) {
	var thresholds schema.ThresholdConfig

	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		// Labels may contain '=', the value never does
		eq := strings.LastIndex(part, "=")
		if eq < 0 {
			return schema.ThresholdConfig{}, newConfigError("threshold", "invalid format '%s', expected '[selector:]key=value'", part)
		}
		left, valueStr := part[:eq], part[eq+1:]

		selector := ""
		keyStr := strings.TrimSpace(left)
		if i := strings.LastIndex(keyStr, ":"); i >= 0 {
			selector = strings.TrimSpace(keyStr[:i])
			keyStr = strings.TrimSpace(keyStr[i+1:])
			if selector == "" {
				return schema.ThresholdConfig{}, newConfigError("threshold", "empty selector in '%s'", part)
			}
		}

		key, ok := lookupThresholdKey(keyStr)
		if !ok {
			return schema.ThresholdConfig{}, newConfigError("threshold", "unknown key '%s' in '%s'", keyStr, part)
		}

		value, err := strconv.ParseInt(strings.TrimSpace(valueStr), 10, 64)
		if err != nil {
			return schema.ThresholdConfig{}, &ConfigurationError{Field: thresholdField(selector, key), Err: fmt.Errorf("non-numeric ceiling '%s': %w", valueStr, err)}
		}
		if err := validateThreshold(selector, key, value); err != nil {
			return schema.ThresholdConfig{}, err
		}

		thresholds.Set(selector, key, value)
	}

	return thresholds, nil
}

// lookupThresholdKey matches a key case-insensitively against both namespaces.
func lookupThresholdKey(s string) (schema.ThresholdKey, bool) {
	for _, m := range schema.AllMetricKeys {
		for _, k := range []schema.ThresholdKey{schema.FileThresholdKey(m), schema.TotalThresholdKey(m)} {
			if strings.EqualFold(string(k), s) {
				return k, true
			}
		}
	}
	return "", false
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// resolvePath makes the positional path absolute and checks it exists.
func resolvePath(cfg *Config, input *ConfigRawInput) error {
	searchPath := input.PathStr
	if searchPath == "" {
		searchPath = "."
	}
	absPath, err := filepath.Abs(searchPath)
	if err != nil {
		return err
	}
	if _, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("cannot read build output at %q: %w", searchPath, err)
	}
	cfg.Path = filepath.Clean(absPath)
	return nil
}

// RevalidateReport applies per-request overrides (MCP tool arguments) to a cloned config.
// The path is required; thresholds use the --threshold syntax and are merged over the existing ones.
func RevalidateReport(cfg *Config, path string, thresholds string) error {
	if strings.TrimSpace(path) == "" {
		return newConfigError("path", "path is required")
	}
	if err := resolvePath(cfg, &ConfigRawInput{PathStr: path}); err != nil {
		return err
	}
	parsed, err := ParseThresholdsString(thresholds)
	if err != nil {
		return err
	}
	cfg.Thresholds.Merge(parsed)
	return nil
}
