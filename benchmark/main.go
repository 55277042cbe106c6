// Package main provides a performance benchmarking tool for the buildsize CLI.
// It measures execution times of the report command across build output
// directories and codec settings, running each scenario multiple times and
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - buildsize binary installed and available in PATH
// - One or more build output directories (e.g. a frontend dist/ folder)
//
// Usage: go run benchmark/main.go [build-dir...]
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// BenchmarkResult holds the averaged timing of one scenario on one directory.
type BenchmarkResult struct {
	Directory string
	Scenario  string
	FirstTime string
	AvgTime   string
}

// Scenario is a named set of report flags.
type Scenario struct {
	Name string
	Args []string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	Dirs      []string
	Timeout   time.Duration
	Runs      int
	Scenarios []Scenario
}

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("Usage: %s [build-dir...]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		Dirs:    os.Args[1:],
		Timeout: 2 * time.Minute,
		Runs:    5,
		Scenarios: []Scenario{
			{Name: "raw", Args: nil},
			{Name: "gzip", Args: []string{"--gzip"}},
			{Name: "gzip+minify", Args: []string{"--gzip", "--minify"}},
			{Name: "brotli+minify", Args: []string{"--gzip", "--compression", "brotli", "--minify"}},
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the buildsize binary and build directories exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("buildsize"); err != nil {
		return fmt.Errorf("buildsize binary not found in PATH")
	}
	for _, dir := range config.Dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return fmt.Errorf("build directory not found at %s", dir)
		}
	}
	return nil
}

// runBenchmarks executes every scenario across configured directories
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d dirs, %d scenarios, %v timeout, %d runs\n",
		len(config.Dirs), len(config.Scenarios), config.Timeout, config.Runs)

	for _, dir := range config.Dirs {
		fmt.Printf("Benchmarking %s\n", dir)
		for _, scenario := range config.Scenarios {
			results = append(results, runScenario(config, dir, scenario))
		}
	}
	return results
}

// runScenario runs one scenario several times and summarizes the timings
func runScenario(config BenchmarkConfig, dir string, scenario Scenario) BenchmarkResult {
	fmt.Printf("  %s (%d runs)\n", scenario.Name, config.Runs)

	times := runBenchmark(config, dir, scenario.Args)
	result := BenchmarkResult{
		Directory: filepath.Base(dir),
		Scenario:  scenario.Name,
		FirstTime: "TIMEOUT",
		AvgTime:   "TIMEOUT",
	}
	if len(times) > 0 {
		var sum float64
		for _, t := range times {
			sum += t
		}
		result.FirstTime = fmt.Sprintf("%.3fs", times[0])
		result.AvgTime = fmt.Sprintf("%.3fs", sum/float64(len(times)))
	}

	fmt.Printf("  First run: %s, Average: %s\n", result.FirstTime, result.AvgTime)
	return result
}

// runBenchmark executes buildsize report multiple times and returns the successful run times
func runBenchmark(config BenchmarkConfig, dir string, extraArgs []string) []float64 {
	args := append([]string{"report", dir, "--output", "csv", "--color", "no"}, extraArgs...)

	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()
		cmd := exec.Command("buildsize", args...)

		done := make(chan error, 1)
		go func() {
			done <- cmd.Run()
		}()

		select {
		case err := <-done:
			if err == nil {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}
	return times
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/buildsize_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"dir", "scenario", "first_time", "avg_time"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Directory, result.Scenario, result.FirstTime, result.AvgTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, result := range results {
		fmt.Printf("  %-16s %-14s: First: %s, Average: %s\n", result.Directory, result.Scenario, result.FirstTime, result.AvgTime)
	}
}
