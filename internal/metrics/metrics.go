// Package metrics exposes Prometheus counters for duty-status activity and
// HTTP traffic. Collectors register on a caller-supplied registry so tests
// can use a fresh one each time.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pkordes/eld-logbook/internal/domain"
)

// Metrics implements hos.Recorder and the HTTP request counters used by
// middleware.NewMetrics.
type Metrics struct {
	statusChanges   *prometheus.CounterVec
	finalizedLogs   *prometheus.CounterVec
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New registers all collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		statusChanges: f.NewCounterVec(prometheus.CounterOpts{
			Name: "eld_status_changes_total",
			Help: "Duty-status changes recorded, by previous and new status",
		}, []string{"from", "to"}),

		finalizedLogs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "eld_daily_logs_finalized_total",
			Help: "Daily logs finalized, by persistence outcome",
		}, []string{"outcome"}),

		requestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "eld_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"route", "status"}),

		requestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "eld_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// StatusRecorded counts one transition from one duty status to another.
func (m *Metrics) StatusRecorded(from, to domain.DutyStatus) {
	m.statusChanges.WithLabelValues(from.Code(), to.Code()).Inc()
}

// DayFinalized counts one finalized day.
func (m *Metrics) DayFinalized(outcome string) {
	m.finalizedLogs.WithLabelValues(outcome).Inc()
}

// IncRequestsTotal counts one HTTP request.
func (m *Metrics) IncRequestsTotal(route string, status int) {
	m.requestsTotal.WithLabelValues(route, httpStatusBucket(status)).Inc()
}

// ObserveRequestDuration records one HTTP request duration.
func (m *Metrics) ObserveRequestDuration(route string, d time.Duration) {
	m.requestDuration.WithLabelValues(route).Observe(d.Seconds())
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
