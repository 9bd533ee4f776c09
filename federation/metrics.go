package federation

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of one Federation.
type Metrics struct {
	learnTotal     *prometheus.CounterVec
	verifyTotal    *prometheus.CounterVec
	verifyDuration prometheus.Histogram
	units          prometheus.Gauge
}

// newMetrics creates and registers the collectors on reg.
// Returns nil when reg is nil; every method is nil-safe.
func newMetrics(reg prometheus.Registerer, name string) *Metrics {
	if reg == nil {
		return nil
	}
	f := promauto.With(reg)
	labels := prometheus.Labels{"federation": name}

	return &Metrics{
		learnTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "relmatch",
			Subsystem:   "federation",
			Name:        "learn_total",
			Help:        "Learn calls by outcome",
			ConstLabels: labels,
		}, []string{"outcome"}),
		verifyTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "relmatch",
			Subsystem:   "federation",
			Name:        "verify_total",
			Help:        "Verify calls by outcome",
			ConstLabels: labels,
		}, []string{"outcome"}),
		verifyDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace:   "relmatch",
			Subsystem:   "federation",
			Name:        "verify_duration_seconds",
			Help:        "Verify latency in seconds",
			Buckets:     []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			ConstLabels: labels,
		}),
		units: f.NewGauge(prometheus.GaugeOpts{
			Namespace:   "relmatch",
			Subsystem:   "federation",
			Name:        "units",
			Help:        "Number of derived units",
			ConstLabels: labels,
		}),
	}
}

func (m *Metrics) recordLearn(outcome string, units int) {
	if m == nil {
		return
	}
	m.learnTotal.WithLabelValues(outcome).Inc()
	m.units.Set(float64(units))
}

func (m *Metrics) recordVerify(outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.verifyTotal.WithLabelValues(outcome).Inc()
	m.verifyDuration.Observe(time.Since(start).Seconds())
}
