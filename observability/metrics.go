// Package observability holds the Prometheus metrics of the service and the
// decorators that feed them.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "partyline"

// Metrics lives on its own registry so tests can build as many as they want.
type Metrics struct {
	Registry        *prometheus.Registry
	BackendRequests *prometheus.CounterVec
	BackendLatency  *prometheus.HistogramVec
	Events          *prometheus.CounterVec
	ActiveCalls     prometheus.Gauge
	WorkerRestarts  *prometheus.CounterVec
	PanelChanges    prometheus.Counter
	DroppedEvents   prometheus.Counter
}

func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		BackendRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_requests_total",
			Help:      "Call backend requests issued by the panel, by operation and outcome.",
		}, []string{"op", "outcome"}),
		BackendLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Latency of call backend requests.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}, []string{"op"}),
		Events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "domain_events_total",
			Help:      "Domain events delivered to the metrics sink.",
		}, []string{"event"}),
		ActiveCalls: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_calls",
			Help:      "Calls with at least one persona on the line.",
		}),
		WorkerRestarts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "worker_restarts_total",
			Help:      "Workers restarted by the supervisor after a failure.",
		}, []string{"worker"}),
		PanelChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "panel_changes_total",
			Help:      "Element changes rendered by the panel.",
		}),
		DroppedEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dropped_events_total",
			Help:      "Domain events dropped because the event buffer was full.",
		}),
	}
	m.Registry.MustRegister(
		m.BackendRequests,
		m.BackendLatency,
		m.Events,
		m.ActiveCalls,
		m.WorkerRestarts,
		m.PanelChanges,
		m.DroppedEvents,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// WorkerRestarted is meant to be handed to the supervisor as its restart hook.
func (m *Metrics) WorkerRestarted(worker string) {
	m.WorkerRestarts.WithLabelValues(worker).Inc()
}
