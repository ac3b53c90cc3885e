package bench

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wdcs-pruthvithakor/go-serializers-comparison/cmd/util"
	"github.com/wdcs-pruthvithakor/go-serializers-comparison/lib/logging"
	"github.com/wdcs-pruthvithakor/go-serializers-comparison/lib/memtrack"
	"github.com/wdcs-pruthvithakor/go-serializers-comparison/lib/results"
	"github.com/wdcs-pruthvithakor/go-serializers-comparison/lib/serializer"
	"github.com/wdcs-pruthvithakor/go-serializers-comparison/lib/timing"
)

var (
	BenchCmd = &cobra.Command{
		Use:     "bench",
		Short:   "Benchmark all serialization formats and print a comparison table",
		Long:    "",
		RunE:    run,
		PreRunE: processBenchConfig,
	}
	benchConfig = util.BenchConfig{}
)

func init() {
	// add flags
	key := "skip"
	BenchCmd.Flags().String(key, "", util.WrapString("Formats to skip (comma separated - e.g. gob,json)"))
	key = "formats"
	BenchCmd.Flags().String(key, "", util.WrapString("Formats to benchmark (comma separated, default all)"))
	key = "quick"
	BenchCmd.Flags().Bool(key, false, util.WrapString("Use the fast in-process sampler instead of the full benchmark engine"))
	key = "samples"
	BenchCmd.Flags().Int(key, 10000, util.WrapString("Number of trials per phase in quick mode"))
	key = "csv"
	BenchCmd.Flags().String(key, "", util.WrapString("Optional path to save benchmark results as CSV"))
}

func processBenchConfig(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	formats, err := util.ResolveFormats(splitList(viper.GetString("formats")))
	if err != nil {
		return err
	}
	sort.Strings(formats)

	benchConfig = util.BenchConfig{
		Formats:  formats,
		Skip:     splitList(viper.GetString("skip")),
		Quick:    viper.GetBool("quick"),
		Samples:  viper.GetInt("samples"),
		CSVPath:  viper.GetString("csv"),
		LogLevel: viper.GetString("log-level"),
	}

	return nil
}

func run(_ *cobra.Command, _ []string) error {
	log := logging.GetLogger("bench")
	log.SetLevel(logging.ParseLogLevel(benchConfig.LogLevel))

	fmt.Println("Serialization format benchmark")

	// Print configuration
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println(benchConfig.String())

	fmt.Println("starting benchmarks...")
	fmt.Println()

	// Create results store and memory instrumentation
	store := results.NewStore()
	registry := serializer.Registry()

	// The payload allocator accounts for the retained encoded payloads;
	// the runtime counter sees every allocation the codecs make internally.
	payloadAlloc := memtrack.NewTrackingAllocator(memtrack.NewHeapAllocator())
	payloadAlloc.ExposeGauge("serbench_payload_live_bytes")
	counter := memtrack.NewRuntimeCounter()

	for _, name := range benchConfig.Formats {
		if shouldSkip(name) {
			fmt.Printf("%-12sskipped\n", name)
			continue
		}

		if err := benchFormat(name, registry[name](), store, payloadAlloc, counter, log); err != nil {
			return err
		}
	}

	// Print comparison table
	fmt.Println()
	fmt.Println(store.RenderTable())

	// Emit the registered gauges so the payload accounting is visible
	if logging.ParseLogLevel(benchConfig.LogLevel) >= logging.DEBUG {
		fmt.Println("Metrics:")
		memtrack.DumpMetrics(os.Stdout)
	}

	// Write results to csv if specified
	if benchConfig.CSVPath != "" {
		fmt.Printf("\nExporting results to CSV: %s\n", benchConfig.CSVPath)
		if err := writeResultsToCSV(benchConfig.CSVPath, store); err != nil {
			return fmt.Errorf("failed to export results to CSV: %v", err)
		}
		fmt.Println("Export complete")
	}

	return nil
}

// benchFormat measures both phases of one format and stores the outcome
func benchFormat(name string, s serializer.ISerializer, store *results.Store,
	payloadAlloc *memtrack.TrackingAllocator, counter memtrack.ICounter, log logging.ILogger) error {

	record := serializer.NewTestData()

	var checkpoints memtrack.MemoryCheckpointSet
	checkpoints.CheckpointInitial(counter)

	// Serialize phase
	serializeNs := measurePhase(func() error {
		_, err := s.Serialize(record)
		return err
	}, log, name, "serialize")
	checkpoints.CheckpointSerialize(counter)

	// Retain the encoded payload for the deserialize phase through the
	// accounting allocator
	data, err := s.Serialize(record)
	if err != nil {
		return fmt.Errorf("failed to serialize with %s: %v", name, err)
	}
	payload, err := payloadAlloc.Allocate(len(data))
	if err != nil {
		return fmt.Errorf("failed to allocate payload buffer: %v", err)
	}
	copy(payload, data)
	log.Debugf("(%s) - payload %d bytes, live payload bytes %d", name, len(data), payloadAlloc.Get())

	// Deserialize phase
	counter.Reset()
	deserializeNs := measurePhase(func() error {
		var out serializer.TestData
		return s.Deserialize(payload, &out)
	}, log, name, "deserialize")
	checkpoints.CheckpointDeserialize(counter)

	payloadAlloc.Deallocate(payload)

	store.Put(name, serializeNs, deserializeNs)
	printResult(name, serializeNs, deserializeNs)
	fmt.Print(checkpoints.String())
	fmt.Println()

	return nil
}

// measurePhase runs one phase through the selected timing engine and returns
// the point-estimate duration in nanoseconds
func measurePhase(op func() error, log logging.ILogger, name, phase string) float64 {
	if benchConfig.Quick {
		sampler := timing.NewSampler()
		for i := 0; i < benchConfig.Samples; i++ {
			// failed trials are logged but never recorded
			if _, err := sampler.MeasureErr(op); err != nil {
				log.Errorf("(%s) - %s error: %v", name, phase, err)
			}
		}
		estimate := sampler.Estimate()
		log.Debugf("(%s) - %s p50=%.0fns p95=%.0fns over %d samples",
			name, phase, estimate.P50Ns, estimate.P95Ns, estimate.Count)
		return estimate.MeanNs
	}

	result := testing.Benchmark(func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if err := op(); err != nil {
				b.Fatalf("(%s) - %s error: %v", name, phase, err)
			}
		}
	})
	return float64(result.NsPerOp())
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func shouldSkip(format string) bool {
	// Check if the format is in the skip list
	for _, skip := range benchConfig.Skip {
		if format == skip {
			return true
		}
	}
	return false
}

// splitList splits a comma separated flag value, dropping empty entries
func splitList(value string) []string {
	var parts []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

// printResult prints the result of a format's benchmark in a formatted way
func printResult(format string, serializeNs, deserializeNs float64) {
	printPhase := func(phase string, ns float64) {
		if ns <= 0 {
			fmt.Printf("%-12s%-14sno measurement\n", format, phase)
			return
		}
		opsPerSec := 1.0 / (ns / 1e9)
		fmt.Printf("%-12s%-14s%.0fns/op (%s/op)\t%.0f ops/sec\n",
			format, phase, ns, time.Duration(ns), opsPerSec)
	}

	printPhase("serialize", serializeNs)
	printPhase("deserialize", deserializeNs)
}

// writeResultsToCSV writes benchmark results to a CSV file
func writeResultsToCSV(csvPath string, store *results.Store) error {
	file, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	header := []string{
		"Format", "SerializeNs", "SerializeOpsPerSec", "DeserializeNs", "DeserializeOpsPerSec",
		"Quick", "Samples",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %v", err)
	}

	// Write result rows in table order
	for _, format := range store.Formats() {
		result, ok := store.Get(format)
		if !ok {
			continue
		}

		row := []string{
			format,
			fmt.Sprintf("%.0f", math.Max(result.SerializeTimeNs, 0)),
			strconv.FormatUint(result.SerializeOpsPerSec, 10),
			fmt.Sprintf("%.0f", math.Max(result.DeserializeTimeNs, 0)),
			strconv.FormatUint(result.DeserializeOpsPerSec, 10),
			strconv.FormatBool(benchConfig.Quick),
			strconv.Itoa(benchConfig.Samples),
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for format %s: %v", format, err)
		}
	}

	return nil
}
