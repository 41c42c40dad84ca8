package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for formula evaluation.
type Metrics struct {
	Evaluations        *prometheus.CounterVec   // labels: formula, outcome
	Diagnostics        *prometheus.CounterVec   // labels: formula, kind
	SweepPoints        prometheus.Counter
	SweepDuration      prometheus.Histogram
	RequestDuration    *prometheus.HistogramVec // labels: route, status
	RegisteredFormulas prometheus.Gauge
}

func newMetrics() *Metrics {
	return &Metrics{
		Evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sonarlab",
			Name:      "evaluations_total",
			Help:      "Formula evaluations by formula and outcome.",
		}, []string{"formula", "outcome"}),
		Diagnostics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sonarlab",
			Name:      "diagnostics_total",
			Help:      "Diagnostics raised by formula and kind.",
		}, []string{"formula", "kind"}),
		SweepPoints: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sonarlab",
			Name:      "sweep_points_total",
			Help:      "Total points evaluated by sweeps.",
		}),
		SweepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sonarlab",
			Name:      "sweep_duration_seconds",
			Help:      "Duration of a complete sweep.",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sonarlab",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "status"}),
		RegisteredFormulas: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sonarlab",
			Name:      "registered_formulas",
			Help:      "Number of formulas in the catalog.",
		}),
	}
}

// NewMetrics creates the metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(
		m.Evaluations,
		m.Diagnostics,
		m.SweepPoints,
		m.SweepDuration,
		m.RequestDuration,
		m.RegisteredFormulas,
	)
	return m
}

// NewMetricsForTesting creates unregistered metrics so tests can build
// several servers without "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
