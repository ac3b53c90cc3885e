// Package memtrack provides memory accounting for benchmark runs. It counts
// the bytes a measured operation allocates so serialization formats can be
// compared by allocation footprint as well as by speed.
//
// The package offers two complementary measurement mechanisms:
//
//   - TrackingAllocator: wraps an IAllocator delegate and maintains a
//     live-byte counter with one atomic add or subtract per call. The wrapper
//     preserves the delegate's behavior exactly, including its failure
//     semantics: a failed allocation is propagated unchanged and never
//     counted. Benchmarked call sites that manage explicit buffers route
//     through it so their traffic is observable.
//
//   - RuntimeCounter / HeapSampler: read the Go runtime's cumulative
//     allocation statistics. These see every heap allocation in the process,
//     including those made inside third-party encoding libraries, at the cost
//     of reporting gross allocated bytes rather than a live net.
//
// MemoryCheckpointSet ties either counter to the benchmark flow: one
// checkpoint before the run, one after the serialize phase, one after the
// deserialize phase, each snapshot followed immediately by a reset so the figure
// for one phase never includes bytes of another.
//
// Thread Safety:
//
//	TrackingAllocator is safe for concurrent use from any number of
//	goroutines; the atomic counter is the only synchronization required.
//	Reset is atomic but does not fence in-flight allocations - callers
//	needing a clean window must quiesce unrelated allocation activity.
package memtrack
