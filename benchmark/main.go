// Package main provides a performance benchmarking tool for the Curricula CLI.
// It measures execution times across different catalogue sizes and command types,
// running each test multiple times, treating the first successful run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - curricula binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory to place generated catalogues and the benchmark store
package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-store average, cold run and average of warm runs).
type BenchmarkResult struct {
	Catalogue   string
	Command     string
	NoStoreTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir        string
	Timeout        time.Duration
	NoStoreRuns    int
	StoreRuns      int
	CatalogueSizes map[string]int
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}
	workDir := os.Args[1]

	config := BenchmarkConfig{
		WorkDir:     workDir,
		Timeout:     2 * time.Minute,
		NoStoreRuns: 3,
		StoreRuns:   4,
		CatalogueSizes: map[string]int{
			"small":  50,
			"medium": 500,
			"large":  5000,
		},
	}

	if err := checkPrerequisites(); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	catalogues, err := generateCatalogues(config)
	if err != nil {
		fmt.Printf("Failed to generate catalogues: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config, catalogues)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the curricula binary exists
func checkPrerequisites() error {
	if _, err := exec.LookPath("curricula"); err != nil {
		return fmt.Errorf("curricula binary not found in PATH")
	}
	return nil
}

// generateCatalogues writes synthetic module catalogues of the configured sizes
// and returns name -> path.
func generateCatalogues(config BenchmarkConfig) (map[string]string, error) {
	topics := []string{
		"Green Software Development",
		"Carbon Footprint Measurement",
		"Data Center Sustainability",
		"Digital Circular Economy",
	}
	roles := []string{"DAN", "DSL", "DSM"}

	paths := make(map[string]string, len(config.CatalogueSizes))
	for name, size := range config.CatalogueSizes {
		modules := make([]map[string]any, size)
		for i := range size {
			topic := topics[i%len(topics)]
			relevance := map[string]int{roles[i%len(roles)]: 40 + (i % 60)}
			modules[i] = map[string]any{
				"id":             fmt.Sprintf("M%05d", i+1),
				"title":          fmt.Sprintf("%s Practice %d", topic, i+1),
				"description":    "Sustainable and energy efficient practices with carbon measurement",
				"ects":           2.5 + float64(i%4)*2.5,
				"eqf_level":      4 + (i % 5),
				"topics":         []string{topic},
				"role_relevance": relevance,
			}
		}

		data, err := json.MarshalIndent(modules, "", "  ")
		if err != nil {
			return nil, err
		}
		path := filepath.Join(config.WorkDir, fmt.Sprintf("catalogue_%s.json", name))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, err
		}
		paths[name] = path
	}
	return paths, nil
}

// runBenchmarks executes all benchmark tests across generated catalogues
func runBenchmarks(config BenchmarkConfig, catalogues map[string]string) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d catalogues, %v timeout, no-store: %d runs, store: %d runs\n",
		len(catalogues), config.Timeout, config.NoStoreRuns, config.StoreRuns)

	for _, name := range []string{"small", "medium", "large"} {
		cataloguePath, ok := catalogues[name]
		if !ok {
			continue
		}
		fmt.Printf("Benchmarking %s catalogue\n", name)

		// Scoring pass
		result := runBenchmarkSuite(config, name, "score", "score run",
			[]string{"score", cataloguePath, "--topic", "Carbon Footprint Measurement", "--role", "DAN"})
		results = append(results, result)

		// Selection pass
		result = runBenchmarkSuite(config, name, "select", "select run",
			[]string{"select", cataloguePath, "--topic", "Green Software Development", "--role", "DAN", "--ects", "60"})
		results = append(results, result)
	}

	return results
}

// runBenchmarkSuite runs both no-store and store benchmarks for a command
func runBenchmarkSuite(config BenchmarkConfig, catalogue, command, description string, args []string) BenchmarkResult {
	fmt.Printf("Running %s on %s catalogue\n", description, catalogue)

	dbPath := filepath.Join(config.WorkDir, "benchmark_store.db")

	// Helper to run a benchmark phase
	runPhase := func(backend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, args, backend, dbPath, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avg := sum / float64(len(times))
			avgTime = fmt.Sprintf("%.3fs", avg)
		}
		return cold, avgTime
	}

	// Phase 1: No-store runs
	_, noStoreAvg := runPhase("none", config.NoStoreRuns, "No-store")

	// Phase 2: Store runs
	_ = os.Remove(dbPath)
	coldTime, warmAvg := runPhase("sqlite", config.StoreRuns, "Store")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-store average: %s, Cold time: %s, Warm average: %s\n", noStoreAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Catalogue:   catalogue,
		Command:     command,
		NoStoreTime: noStoreAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark executes a curricula command multiple times with the specified
// store backend and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, baseArgs []string, backend, dbPath string, numRuns int) (coldTime float64, warmTimes []float64) {
	args := append([]string{}, baseArgs...)
	args = append(args, "--store-backend", backend)
	if backend == "sqlite" {
		args = append(args, "--store-db-connect", dbPath)
	}

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("curricula", args...)

		done := make(chan bool)
		var cmdErr error

		go func() {
			_, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/curricula_benchmark_%s.csv", timestamp)

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

	// Write header
	if err := writer.Write([]string{"catalogue", "cmd", "no_store_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Catalogue, result.Command, result.NoStoreTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "score", "Score Runs:")
	printCommandSummary(results, "select", "Select Runs:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-8s: No-store: %s, Cold: %s, Warm: %s\n", result.Catalogue, result.NoStoreTime, result.ColdTime, result.WarmTime)
		}
	}
}
