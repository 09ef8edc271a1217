// Package metrics defines the Prometheus collectors exposed on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the account API
type Metrics struct {
	gatherer prometheus.Gatherer

	RequestsTotal      *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	EntitiesCreated    *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	IdempotentReplays  prometheus.Counter
}

// New registers the application collectors, plus the Go runtime and process
// collectors, on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(reg)
}

// NewWithRegistry registers the application collectors on reg.
func NewWithRegistry(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		gatherer: reg,
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "account_api_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "account_api_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method and route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route"}),
		EntitiesCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "account_api_entities_created_total",
			Help: "Total number of accounts and residents created",
		}, []string{"entity"}),
		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "account_api_validation_failures_total",
			Help: "Total number of rejected create and update requests",
		}, []string{"entity"}),
		IdempotentReplays: factory.NewCounter(prometheus.CounterOpts{
			Name: "account_api_idempotent_replays_total",
			Help: "Total number of create requests answered from the idempotency store",
		}),
	}
}

// RecordCreated counts a stored account or resident.
func (m *Metrics) RecordCreated(entity string) {
	m.EntitiesCreated.WithLabelValues(entity).Inc()
}

// RecordValidationFailure counts a rejected account or resident payload.
func (m *Metrics) RecordValidationFailure(entity string) {
	m.ValidationFailures.WithLabelValues(entity).Inc()
}

// RecordReplay counts a response served from the idempotency store.
func (m *Metrics) RecordReplay() {
	m.IdempotentReplays.Inc()
}

// ObserveRequest records one finished HTTP request.
// Call with time.Now() taken before the handler ran.
func (m *Metrics) ObserveRequest(method, route string, status int, start time.Time) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
