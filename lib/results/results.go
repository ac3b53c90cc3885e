package results

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/puzpuzpuz/xsync/v3"
)

// OpsPerSecUndefined is the sentinel stored when a phase duration is zero or
// negative and no meaningful rate can be derived. Zero is unreachable for any
// positive duration, so the sentinel is unambiguous.
const OpsPerSecUndefined uint64 = 0

// BenchmarkResult holds the aggregated outcome of one format's benchmark run
type BenchmarkResult struct {
	SerializeTimeNs      float64
	SerializeOpsPerSec   uint64
	DeserializeTimeNs    float64
	DeserializeOpsPerSec uint64
}

// NewStore creates an empty results store
func NewStore() *Store {
	return &Store{
		results: xsync.NewMapOf[string, BenchmarkResult](),
	}
}

// Store keeps one BenchmarkResult per format name. Concurrent Put calls from
// different benchmark runs are safe; a later Put for the same name replaces
// the prior entry. Values are stored whole, so a render never observes a
// partially written row.
type Store struct {
	results *xsync.MapOf[string, BenchmarkResult]
}

// Put computes the per-phase ops/sec and inserts or overwrites the entry for
// the given format. Non-positive durations yield OpsPerSecUndefined instead
// of an infinite or negative rate.
func (s *Store) Put(format string, serializeNs, deserializeNs float64) {
	s.results.Store(format, BenchmarkResult{
		SerializeTimeNs:      serializeNs,
		SerializeOpsPerSec:   opsPerSec(serializeNs),
		DeserializeTimeNs:    deserializeNs,
		DeserializeOpsPerSec: opsPerSec(deserializeNs),
	})
}

// Get returns the stored result for a format
func (s *Store) Get(format string) (BenchmarkResult, bool) {
	return s.results.Load(format)
}

// Len returns the number of stored formats
func (s *Store) Len() int {
	return s.results.Size()
}

// Formats returns all stored format names in ascending lexicographic order
func (s *Store) Formats() []string {
	names := make([]string, 0, s.results.Size())
	s.results.Range(func(name string, _ BenchmarkResult) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}

// RenderTable produces the fixed-width comparison table. Rows are ordered by
// format name ascending so output is deterministic regardless of insertion
// order.
func (s *Store) RenderTable() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-12s%18s%15s%18s%15s\n",
		"FORMAT", "SERIALIZE (ns)", "SER OPS/SEC", "DESERIALIZE (ns)", "DES OPS/SEC"))
	sb.WriteString(strings.Repeat("-", 78) + "\n")

	for _, name := range s.Formats() {
		result, ok := s.results.Load(name)
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-12s%18.2f%15s%18.2f%15s\n",
			name,
			result.SerializeTimeNs,
			formatOps(result.SerializeOpsPerSec),
			result.DeserializeTimeNs,
			formatOps(result.DeserializeOpsPerSec)))
	}

	return sb.String()
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// opsPerSec derives a rate from a phase duration, guarding degenerate input
func opsPerSec(durationNs float64) uint64 {
	if durationNs <= 0 {
		return OpsPerSecUndefined
	}
	return uint64(math.Round(1e9 / durationNs))
}

// formatOps renders an ops/sec value, mapping the sentinel to "n/a"
func formatOps(ops uint64) string {
	if ops == OpsPerSecUndefined {
		return "n/a"
	}
	return strconv.FormatUint(ops, 10)
}
