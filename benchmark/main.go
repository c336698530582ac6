// Package main provides a performance benchmarking tool for the FairLens
// analytics engine. It generates deterministic synthetic record sets of
// increasing size, runs the full snapshot computation multiple times,
// treating the first run as cold and averaging the rest as warm, and
// generates CSV output for performance analysis and documentation.
//
// Usage: go run benchmark/main.go
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/fairlens/fairlens/core"
	"github.com/fairlens/fairlens/schema"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Records  int
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	RecordCounts []int
	Runs         int
	Seed         int64
}

var categories = []schema.Category{
	"Fraud", "Harassment", "Discrimination", "Environmental", "Data Privacy",
	"Health & Safety", "Corruption", "Supply Chain",
}

var priorities = []schema.Priority{
	schema.PriorityLow, schema.PriorityMedium, schema.PriorityHigh, schema.PriorityCritical,
}

var statuses = []schema.RecordStatus{
	schema.StatusNew, schema.StatusUnderInvestigation, schema.StatusAwaitingAction,
	schema.StatusResolved, schema.StatusClosed,
}

func main() {
	config := BenchmarkConfig{
		RecordCounts: []int{1000, 10000, 100000, 500000},
		Runs:         5,
		Seed:         42,
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// generateRecords builds a deterministic synthetic record set spread over the
// two years before the evaluation instant.
func generateRecords(n int, seed int64, now time.Time) []schema.Record {
	rng := rand.New(rand.NewSource(seed))
	records := make([]schema.Record, n)

	for i := range records {
		created := now.AddDate(0, 0, -rng.Intn(730))
		r := schema.Record{
			ID:          fmt.Sprintf("r%06d", i),
			Category:    categories[rng.Intn(len(categories))],
			Priority:    priorities[rng.Intn(len(priorities))],
			Status:      statuses[rng.Intn(len(statuses))],
			IsAnonymous: rng.Intn(3) == 0,
			CreatedAt:   created,
		}
		if r.Status.IsClosed() {
			closed := created.AddDate(0, 0, rng.Intn(120))
			r.ClosedAt = &closed
		}
		records[i] = r
	}
	return records
}

// runBenchmarks executes the snapshot computation across configured record counts.
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	fmt.Printf("Starting benchmark: %d sizes, %d runs each\n", len(config.RecordCounts), config.Runs)

	for _, count := range config.RecordCounts {
		fmt.Printf("Benchmarking %d records\n", count)
		records := generateRecords(count, config.Seed, now)

		input := core.Input{
			Records:         records,
			Start:           now.AddDate(0, -3, 0),
			End:             now,
			Now:             now,
			ActiveEmployees: 10000,
		}

		var times []float64
		for run := 1; run <= config.Runs; run++ {
			start := time.Now()
			if _, err := core.BuildSnapshot(input); err != nil {
				fmt.Printf("Snapshot failed: %v\n", err)
				os.Exit(1)
			}
			times = append(times, time.Since(start).Seconds())
		}

		coldTime := times[0]
		var sum float64
		for _, t := range times[1:] {
			sum += t
		}
		warmAvg := sum / float64(len(times)-1)

		fmt.Printf("  Cold time: %.3fs, Warm average: %.3fs\n", coldTime, warmAvg)
		results = append(results, BenchmarkResult{
			Records:  count,
			ColdTime: fmt.Sprintf("%.3fs", coldTime),
			WarmTime: fmt.Sprintf("%.3fs", warmAvg),
		})
	}

	return results
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/fairlens_benchmark_%s.csv", timestamp)

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
	if err := writer.Write([]string{"records", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		row := []string{fmt.Sprintf("%d", result.Records), result.ColdTime, result.WarmTime}
		if err := writer.Write(row); err != nil {
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
		fmt.Printf("  %-8d records: Cold: %s, Warm: %s\n", result.Records, result.ColdTime, result.WarmTime)
	}
	fmt.Printf("Benchmark script completed successfully\n")
}
