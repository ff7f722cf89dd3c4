// Package main provides a performance benchmarking tool for the shsat CLI.
// It measures execution times per command with history disabled and with a SQLite
// history store, treating the first SQLite run as cold and averaging the rest as warm,
// and writes a CSV for performance tracking.
//
// Prerequisites:
// - shsat binary installed and available in PATH
//
// Usage: go run benchmark/main.go [runs]
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-history average, cold run and average of warm runs).
type BenchmarkResult struct {
	Command       string
	NoHistoryTime string
	ColdTime      string
	WarmTime      string
}

// BenchmarkCase is one CLI invocation to time.
type BenchmarkCase struct {
	Name string
	Args []string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	Timeout time.Duration
	Runs    int
	DBPath  string
	Cases   []BenchmarkCase
}

func main() {
	runs := 5
	if len(os.Args) == 2 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n < 2 {
			fmt.Printf("Usage: %s [runs >= 2]\n", os.Args[0])
			os.Exit(1)
		}
		runs = n
	}

	tmpDir, err := os.MkdirTemp("", "shsat-benchmark-*")
	if err != nil {
		fmt.Printf("Failed to create temp dir: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	config := BenchmarkConfig{
		Timeout: 30 * time.Second,
		Runs:    runs,
		DBPath:  filepath.Join(tmpDir, "history.db"),
		Cases: []BenchmarkCase{
			{Name: "estimate-text", Args: []string{"estimate", "40", "45", "--color", "no"}},
			{Name: "estimate-json", Args: []string{"estimate", "40", "45", "--output", "json"}},
			{Name: "estimate-blended", Args: []string{"estimate", "40", "45", "--curve", "blended", "--output", "csv"}},
			{Name: "curve", Args: []string{"curve", "--output", "csv"}},
			{Name: "schools", Args: []string{"schools", "--output", "yaml"}},
		},
	}

	if _, err := exec.LookPath("shsat"); err != nil {
		fmt.Printf("Prerequisites check failed: shsat binary not found in PATH\n")
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// runBenchmarks executes every case without history and with a SQLite history store.
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	fmt.Printf("Starting benchmark: %d cases, %v timeout, %d runs\n", len(config.Cases), config.Timeout, config.Runs)

	results := make([]BenchmarkResult, 0, len(config.Cases))
	for _, c := range config.Cases {
		fmt.Printf("Benchmarking %s\n", c.Name)

		_, noHistory := runBenchmark(config, c.Args, "none", config.Runs)
		cold, warm := runBenchmark(config, c.Args, "sqlite", config.Runs)

		result := BenchmarkResult{
			Command:       c.Name,
			NoHistoryTime: formatAverage(noHistory),
			ColdTime:      "TIMEOUT",
			WarmTime:      formatAverage(warm),
		}
		if cold > 0 {
			result.ColdTime = fmt.Sprintf("%.3fs", cold)
		}
		fmt.Printf("  No-history average: %s, Cold time: %s, Warm average: %s\n", result.NoHistoryTime, result.ColdTime, result.WarmTime)
		results = append(results, result)
	}
	return results
}

// runBenchmark executes a shsat command multiple times and returns cold time and warm times.
func runBenchmark(config BenchmarkConfig, args []string, backend string, numRuns int) (coldTime float64, warmTimes []float64) {
	args = append(append([]string{}, args...), "--history-backend", backend)
	if backend == "sqlite" {
		args = append(args, "--history-db-connect", config.DBPath)
	}

	var times []float64
	for range numRuns {
		start := time.Now()
		cmd := exec.Command("shsat", args...)

		done := make(chan error, 1)
		go func() {
			_, err := cmd.Output()
			done <- err
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

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return coldTime, warmTimes
}

// formatAverage renders the mean of the times or TIMEOUT when none succeeded.
func formatAverage(times []float64) string {
	if len(times) == 0 {
		return "TIMEOUT"
	}
	var sum float64
	for _, t := range times {
		sum += t
	}
	return fmt.Sprintf("%.3fs", sum/float64(len(times)))
}

// saveResults writes benchmark results to a timestamped CSV file.
func saveResults(results []BenchmarkResult) error {
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("shsat_benchmark_%s.csv", time.Now().Format("20060102_150405")))

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

	if err := writer.Write([]string{"cmd", "no_history_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Command, result.NoHistoryTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary.
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, result := range results {
		fmt.Printf("  %-16s: No-history: %s, Cold: %s, Warm: %s\n", result.Command, result.NoHistoryTime, result.ColdTime, result.WarmTime)
	}
}
