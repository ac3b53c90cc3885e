package memtrack

import "runtime"

// --------------------------------------------------------------------------
// Runtime-backed counter
// --------------------------------------------------------------------------

// ICounter is the read/reset surface shared by all byte counters
type ICounter interface {
	// Get returns the bytes counted since the last Reset
	Get() uint64
	// Reset establishes a new zero baseline
	Reset()
}

// NewRuntimeCounter creates a counter backed by the Go runtime's cumulative
// allocation statistics. Unlike TrackingAllocator it observes every heap
// allocation in the process, including those made by third-party encoding
// libraries that never touch an IAllocator. The runtime only reports
// cumulative allocated bytes, so the counter measures gross allocation per
// window, not live bytes.
func NewRuntimeCounter() *RuntimeCounter {
	c := &RuntimeCounter{}
	c.Reset()
	return c
}

// RuntimeCounter implements ICounter over runtime.MemStats.TotalAlloc
type RuntimeCounter struct {
	base uint64
}

func (c *RuntimeCounter) Get() uint64 {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	return stats.TotalAlloc - c.base
}

func (c *RuntimeCounter) Reset() {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	c.base = stats.TotalAlloc
}

// --------------------------------------------------------------------------
// Heap sampler
// --------------------------------------------------------------------------

// HeapSampler measures the allocation cost of a single code region. It
// compensates for the allocation cost of reading the runtime statistics
// themselves by taking a throwaway calibration reading first.
type HeapSampler struct {
	before runtime.MemStats
	calib  runtime.MemStats
	after  runtime.MemStats
}

// Start records the baseline. A garbage collection runs first so previously
// unreachable garbage is not attributed to the sampled region.
func (s *HeapSampler) Start() {
	runtime.GC()
	runtime.ReadMemStats(&s.calib)
	runtime.ReadMemStats(&s.calib)
	runtime.ReadMemStats(&s.before)
}

// Stop records the end of the sampled region
func (s *HeapSampler) Stop() {
	runtime.ReadMemStats(&s.after)
}

// AllocatedBytes returns the bytes allocated between Start and Stop,
// net of the measurement overhead
func (s HeapSampler) AllocatedBytes() uint64 {
	measureCost := s.before.TotalAlloc - s.calib.TotalAlloc
	return s.after.TotalAlloc - s.before.TotalAlloc - measureCost
}
