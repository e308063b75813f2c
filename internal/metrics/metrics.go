// Package metrics exposes Prometheus collectors for the HTTP server and auth flows.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	authEvents      *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "passvault",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status code.",
		}, []string{"method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "passvault",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		authEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "passvault",
			Name:      "auth_events_total",
			Help:      "Signup and login attempts by outcome.",
		}, []string{"event", "outcome"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.requestDuration,
		m.authEvents,
	)
	return m
}

func (m *Metrics) ObserveRequest(method, status string, elapsed time.Duration) {
	m.requests.WithLabelValues(method, status).Inc()
	m.requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// AuthEvent counts a signup or login attempt. outcome is a short label such as
// "success", "duplicate" or "bad_credentials".
func (m *Metrics) AuthEvent(event, outcome string) {
	m.authEvents.WithLabelValues(event, outcome).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
