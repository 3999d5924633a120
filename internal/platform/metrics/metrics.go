package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "retail_ledger"

// Metrics holds the service's collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	SettlementsTotal      *prometheus.CounterVec
	SettlementRetries     *prometheus.CounterVec
	ConsistencyViolations *prometheus.CounterVec
	LedgerPostFailures    *prometheus.CounterVec
	ReportDuration        *prometheus.HistogramVec
}

// New creates the collectors and registers them, plus the Go and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	m.SettlementsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlements_total",
			Help:      "Credit and vendor settlements by outcome",
		},
		[]string{"kind", "outcome"},
	)
	m.SettlementRetries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlement_retries_total",
			Help:      "Settlement attempts retried after a serialization failure",
		},
		[]string{"kind"},
	)
	m.ConsistencyViolations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "consistency_violations_total",
			Help:      "Invariant checks that failed after a store write",
		},
		[]string{"kind"},
	)
	m.LedgerPostFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_post_failures_total",
			Help:      "Ledger entries that could not be posted alongside a source write",
		},
		[]string{"category"},
	)
	m.ReportDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "report_duration_seconds",
			Help:      "Time spent building a report, including store reads",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"report", "status"},
	)

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.SettlementsTotal,
		m.SettlementRetries,
		m.ConsistencyViolations,
		m.LedgerPostFailures,
		m.ReportDuration,
	)
	return m
}

// Handler exposes the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// Registry returns the prometheus registry
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordSettlement counts a settlement attempt by kind ("credit", "vendor") and outcome.
func (m *Metrics) RecordSettlement(kind, outcome string) {
	if m == nil {
		return
	}
	m.SettlementsTotal.WithLabelValues(kind, outcome).Inc()
}

// RecordSettlementRetry counts a retried settlement attempt.
func (m *Metrics) RecordSettlementRetry(kind string) {
	if m == nil {
		return
	}
	m.SettlementRetries.WithLabelValues(kind).Inc()
}

// RecordConsistencyViolation counts a failed post-write invariant check.
func (m *Metrics) RecordConsistencyViolation(kind string) {
	if m == nil {
		return
	}
	m.ConsistencyViolations.WithLabelValues(kind).Inc()
}

// RecordLedgerPostFailure counts a ledger entry that failed to post.
func (m *Metrics) RecordLedgerPostFailure(category string) {
	if m == nil {
		return
	}
	m.LedgerPostFailures.WithLabelValues(category).Inc()
}

// ObserveReport records how long a report took.
func (m *Metrics) ObserveReport(report string, success bool, duration time.Duration) {
	if m == nil {
		return
	}
	status := "success"
	if !success {
		status = "error"
	}
	m.ReportDuration.WithLabelValues(report, status).Observe(duration.Seconds())
}
