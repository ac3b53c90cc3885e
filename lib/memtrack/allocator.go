package memtrack

import (
	"sync/atomic"
)

// IAllocator is the interface for all buffer allocators. Every benchmarked
// call site that manages raw buffers is required to route through it, so a
// wrapping allocator can observe the full allocation traffic.
type IAllocator interface {
	// Allocate returns a zeroed buffer of the requested size.
	// It returns an error if the underlying allocator cannot satisfy the request.
	Allocate(size int) ([]byte, error)
	// Deallocate releases a buffer previously obtained from Allocate.
	// It must be called with the same buffer (and therefore the same size)
	// that Allocate returned.
	Deallocate(buf []byte)
}

// --------------------------------------------------------------------------
// Heap delegate
// --------------------------------------------------------------------------

// NewHeapAllocator creates the default delegate backed by the Go runtime heap
func NewHeapAllocator() IAllocator {
	return &heapAllocator{}
}

// heapAllocator implements IAllocator on top of the runtime heap
type heapAllocator struct{}

func (heapAllocator) Allocate(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func (heapAllocator) Deallocate(buf []byte) {
	// The garbage collector reclaims the buffer once unreferenced
	_ = buf
}

// --------------------------------------------------------------------------
// Tracking allocator
// --------------------------------------------------------------------------

// NewTrackingAllocator wraps a delegate allocator with a live-byte counter
func NewTrackingAllocator(delegate IAllocator) *TrackingAllocator {
	return &TrackingAllocator{delegate: delegate}
}

// TrackingAllocator counts live bytes across all allocations that pass
// through it. It delegates the actual allocation work unchanged and adds a
// single atomic add or subtract per call. It holds no locks and allocates
// nothing itself, so it is safe to install as the sole allocator of a
// measurement window shared by concurrent goroutines.
type TrackingAllocator struct {
	delegate IAllocator
	live     atomic.Uint64
}

// Allocate delegates to the wrapped allocator. The counter is only
// incremented after the delegate succeeds, so failed requests leave the
// live-byte count untouched.
func (t *TrackingAllocator) Allocate(size int) ([]byte, error) {
	buf, err := t.delegate.Allocate(size)
	if err != nil {
		return nil, err
	}
	t.live.Add(uint64(size))
	return buf, nil
}

// Deallocate delegates to the wrapped allocator and subtracts the buffer
// size from the live-byte counter.
func (t *TrackingAllocator) Deallocate(buf []byte) {
	t.delegate.Deallocate(buf)
	// two's complement negate: atomic subtract of len(buf)
	t.live.Add(^uint64(len(buf)) + 1)
}

// Get atomically reads the current live-byte count
func (t *TrackingAllocator) Get() uint64 {
	return t.live.Load()
}

// Reset atomically sets the live-byte counter to zero. Callers that need a
// clean measurement window must ensure no unrelated allocation activity runs
// concurrently; the reset itself is atomic but establishes no barrier for
// in-flight allocations.
func (t *TrackingAllocator) Reset() {
	t.live.Store(0)
}
