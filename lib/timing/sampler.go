// Package timing provides an in-process repeated-trial duration sampler. It
// plays the role of an external statistics engine for callers that have no
// criterion-style result tree on disk: run an operation many times, keep the
// samples in a histogram, and hand a single point estimate per phase to the
// results aggregation.
package timing

import (
	"time"

	gometrics "github.com/rcrowley/go-metrics"
)

// reservoir parameters for the exponentially decaying sample backing each
// histogram; values follow the library's recommended defaults
const (
	reservoirSize  = 1028
	reservoirAlpha = 0.015
)

// PointEstimate summarizes the repeated trials of one operation
type PointEstimate struct {
	// MeanNs is the point-estimate duration fed into the results store
	MeanNs float64
	// P50Ns and P95Ns describe the sample spread
	P50Ns float64
	P95Ns float64
	// Count is the number of recorded trials
	Count int64
}

// NewSampler creates a sampler with a fresh histogram
func NewSampler() *Sampler {
	return &Sampler{
		histogram: gometrics.NewHistogram(gometrics.NewExpDecaySample(reservoirSize, reservoirAlpha)),
	}
}

// Sampler records operation durations into a histogram and derives a point
// estimate from them. Not safe for concurrent Measure calls; benchmark phases
// run sequentially.
type Sampler struct {
	histogram gometrics.Histogram
}

// Measure runs op once and records its duration
func (s *Sampler) Measure(op func()) time.Duration {
	start := time.Now()
	op()
	elapsed := time.Since(start)
	s.histogram.Update(elapsed.Nanoseconds())
	return elapsed
}

// MeasureErr runs op once and records its duration only when op succeeds,
// so persistent failures cannot skew the point estimate
func (s *Sampler) MeasureErr(op func() error) (time.Duration, error) {
	start := time.Now()
	err := op()
	elapsed := time.Since(start)
	if err != nil {
		return elapsed, err
	}
	s.histogram.Update(elapsed.Nanoseconds())
	return elapsed, nil
}

// Run performs n trials of op and returns the resulting point estimate
func (s *Sampler) Run(n int, op func()) PointEstimate {
	for i := 0; i < n; i++ {
		s.Measure(op)
	}
	return s.Estimate()
}

// Estimate derives the point estimate from all samples recorded so far
func (s *Sampler) Estimate() PointEstimate {
	return PointEstimate{
		MeanNs: s.histogram.Mean(),
		P50Ns:  s.histogram.Percentile(0.5),
		P95Ns:  s.histogram.Percentile(0.95),
		Count:  s.histogram.Count(),
	}
}

// Clear discards all recorded samples
func (s *Sampler) Clear() {
	s.histogram.Clear()
}
