package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests can create as many as they like.
type Metrics struct {
	registry    *prometheus.Registry
	generations *prometheus.CounterVec
	duration    prometheus.Histogram
	sessions    prometheus.GaugeFunc
}

// New registers the generation metrics. liveSessions may be nil.
func New(liveSessions func() int) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "text2mindmap",
			Name:      "generations_total",
			Help:      "Mindmap generations by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "text2mindmap",
			Name:      "completion_duration_seconds",
			Help:      "Latency of the remote chat completion call.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80},
		}),
	}
	reg.MustRegister(m.generations, m.duration)

	if liveSessions != nil {
		m.sessions = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "text2mindmap",
			Name:      "sessions",
			Help:      "Live browser sessions.",
		}, func() float64 { return float64(liveSessions()) })
		reg.MustRegister(m.sessions)
	}

	return m
}

// ObserveGeneration records one generator outcome. Safe on a nil receiver.
func (m *Metrics) ObserveGeneration(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.generations.WithLabelValues(outcome).Inc()
	if elapsed > 0 {
		m.duration.Observe(elapsed.Seconds())
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
