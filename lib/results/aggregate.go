package results

import "fmt"

// Phase names recognized by the aggregation. Sub-benchmarks with any other
// name contribute to neither total.
const (
	PhaseSerialize   = "serialize"
	PhaseDeserialize = "deserialize"
)

// PhaseSample is one sub-benchmark's point-estimate duration, e.g. the
// regression slope an external statistics engine derived from repeated trials
type PhaseSample struct {
	Name            string
	PointEstimateNs float64
}

// Warning records a non-fatal gap encountered while aggregating timing
// sources. Gaps degrade the totals gracefully (zero contribution) but are
// surfaced so a partially available source is distinguishable from a fast
// implementation.
type Warning struct {
	Group  string
	Bench  string
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s/%s: %s", w.Group, w.Bench, w.Reason)
}

// SumPhases partitions the samples into serialize and deserialize phases and
// sums the point estimates per phase. Samples whose name matches neither
// phase are ignored.
func SumPhases(samples []PhaseSample) (serializeNs, deserializeNs float64) {
	for _, sample := range samples {
		switch sample.Name {
		case PhaseSerialize:
			serializeNs += sample.PointEstimateNs
		case PhaseDeserialize:
			deserializeNs += sample.PointEstimateNs
		}
	}
	return serializeNs, deserializeNs
}
