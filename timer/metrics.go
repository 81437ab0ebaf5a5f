package timer

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records operation durations as a prometheus histogram.
type Metrics struct {
	clock    Clock
	duration *prometheus.HistogramVec
	runs     *prometheus.CounterVec
}

// NewMetrics registers the lvt operation metrics with reg.
// Pass prometheus.DefaultRegisterer to expose them process-wide.
func NewMetrics(reg prometheus.Registerer, clock Clock) *Metrics {
	if clock == nil {
		clock = SystemClock{}
	}

	factory := promauto.With(reg)

	return &Metrics{
		clock: clock,
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lvt_operation_duration_seconds",
			Help:    "How long each measured operation took",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 12), //nolint:mnd
		}, []string{"operation"}),
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lvt_operation_runs_total",
			Help: "The total number of measured operations",
		}, []string{"operation"}),
	}
}

// Observe records d for operation.
func (m *Metrics) Observe(operation string, d time.Duration) {
	m.duration.WithLabelValues(operation).Observe(d.Seconds())
	m.runs.WithLabelValues(operation).Inc()
}

// Measure runs fn, records its duration under operation and returns it.
func (m *Metrics) Measure(operation string, fn func()) time.Duration {
	d := Measure(m.clock, fn)
	m.Observe(operation, d)

	return d
}
