// Package metrics defines the Prometheus collectors exported by the API.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "agtech_summit"

// StoreMetrics tracks state tree mutations and backend persistence.
// A nil *StoreMetrics is valid and records nothing.
type StoreMetrics struct {
	Mutations       *prometheus.CounterVec
	PersistFailures prometheus.Counter
	PersistDuration prometheus.Histogram
	Degraded        prometheus.Gauge
}

// NewStoreMetrics registers the store collectors with reg.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	f := promauto.With(reg)
	return &StoreMetrics{
		Mutations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "mutations_total",
			Help:      "Successful state mutations by operation.",
		}, []string{"op"}),
		PersistFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "persist_failures_total",
			Help:      "Snapshot saves that failed.",
		}),
		PersistDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "persist_duration_seconds",
			Help:      "Time spent saving a snapshot to the backend.",
			Buckets:   prometheus.DefBuckets,
		}),
		Degraded: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "degraded",
			Help:      "1 while the latest snapshot could not be saved.",
		}),
	}
}

func (m *StoreMetrics) ObserveMutation(op string) {
	if m == nil {
		return
	}
	m.Mutations.WithLabelValues(op).Inc()
}

func (m *StoreMetrics) ObservePersist(d time.Duration, err error) {
	if m == nil {
		return
	}
	m.PersistDuration.Observe(d.Seconds())
	if err != nil {
		m.PersistFailures.Inc()
	}
}

func (m *StoreMetrics) SetDegraded(degraded bool) {
	if m == nil {
		return
	}
	if degraded {
		m.Degraded.Set(1)
		return
	}
	m.Degraded.Set(0)
}

// HTTPMetrics tracks API requests.
type HTTPMetrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewHTTPMetrics registers the HTTP collectors with reg.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	f := promauto.With(reg)
	return &HTTPMetrics{
		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status class.",
		}, []string{"method", "route", "code"}),
		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// Observe records one request. route is the matched mux pattern, not the raw path, so
// label cardinality stays bounded.
func (m *HTTPMetrics) Observe(method, route string, code int, d time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(method, route, statusLabel(code)).Inc()
	m.Duration.WithLabelValues(method, route).Observe(d.Seconds())
}

func statusLabel(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
