package memtrack

import (
	"io"

	"github.com/VictoriaMetrics/metrics"
)

// ExposeGauge registers a gauge in the default metrics set that reports the
// allocator's current live-byte count. Repeated calls with the same name
// return the already registered gauge.
func (t *TrackingAllocator) ExposeGauge(name string) *metrics.Gauge {
	return metrics.GetOrCreateGauge(name, func() float64 {
		return float64(t.Get())
	})
}

// DumpMetrics writes all registered gauges in Prometheus exposition format
func DumpMetrics(w io.Writer) {
	metrics.WritePrometheus(w, false)
}
