// Package metrics exposes Prometheus counters and histograms for forum
// calls, sync outcomes, SSO handshakes and inbound HTTP traffic.
//
// All recording methods are safe on a nil *Metrics so packages can be
// constructed without instrumentation in tests.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics of the service.
type Metrics struct {
	registry *prometheus.Registry

	// Forum API
	ForumRequestsTotal   *prometheus.CounterVec
	ForumRequestDuration *prometheus.HistogramVec

	// Sync engine
	SyncOutcomesTotal *prometheus.CounterVec

	// SSO handshake
	SSOHandshakesTotal *prometheus.CounterVec

	// Inbound HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewMetrics creates all metrics and registers them on registry.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,

		ForumRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gemdjsso_forum_requests_total",
				Help: "Total number of forum API requests",
			},
			[]string{"operation", "status"},
		),
		ForumRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gemdjsso_forum_request_duration_seconds",
				Help:    "Forum API request duration in seconds",
				Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"operation"},
		),

		SyncOutcomesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gemdjsso_sync_outcomes_total",
				Help: "Total number of reconciles by outcome",
			},
			[]string{"outcome"},
		),

		SSOHandshakesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gemdjsso_sso_handshakes_total",
				Help: "Total number of SSO handshake steps by result",
			},
			[]string{"stage", "result"},
		),

		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gemdjsso_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gemdjsso_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	registry.MustRegister(
		m.ForumRequestsTotal,
		m.ForumRequestDuration,
		m.SyncOutcomesTotal,
		m.SSOHandshakesTotal,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
	)

	return m
}

// New returns Metrics on a fresh registry that also carries the Go runtime
// and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewMetrics(registry)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveForumRequest records one forum call. status 0 means the request
// never got an HTTP answer.
func (m *Metrics) ObserveForumRequest(operation string, status int, d time.Duration) {
	if m == nil {
		return
	}
	label := "transport_error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.ForumRequestsTotal.WithLabelValues(operation, label).Inc()
	m.ForumRequestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// RecordSyncOutcome counts one reconcile result.
func (m *Metrics) RecordSyncOutcome(outcome string) {
	if m == nil {
		return
	}
	m.SyncOutcomesTotal.WithLabelValues(outcome).Inc()
}

// RecordSSO counts one handshake step ("initiate" or "callback") and its
// result ("ok" or a rejection reason).
func (m *Metrics) RecordSSO(stage, result string) {
	if m == nil {
		return
	}
	m.SSOHandshakesTotal.WithLabelValues(stage, result).Inc()
}

// ObserveHTTPRequest records one inbound request. route is the matched
// route pattern, not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
