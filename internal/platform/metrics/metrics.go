package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the application's Prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	// Upstream rate sources
	UpstreamFetchTotal    *prometheus.CounterVec
	UpstreamFetchDuration *prometheus.HistogramVec

	// Rate tables served, by live/fallback
	RateTablesTotal *prometheus.CounterVec

	// Conversions by outcome (recorded, rejected, failed)
	ConversionsTotal *prometheus.CounterVec

	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New registers every collector with reg. Pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		UpstreamFetchTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fxcalc_upstream_fetch_total",
				Help: "Upstream rate source calls by source and outcome",
			},
			[]string{"source", "outcome"},
		),
		UpstreamFetchDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fxcalc_upstream_fetch_duration_seconds",
				Help:    "Upstream rate source call latency",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"source"},
		),
		RateTablesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fxcalc_rate_tables_total",
				Help: "Rate tables served, by live or fallback",
			},
			[]string{"source"},
		),
		ConversionsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fxcalc_conversions_total",
				Help: "Conversions by outcome",
			},
			[]string{"outcome"},
		),
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fxcalc_http_requests_total",
				Help: "HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fxcalc_http_request_duration_seconds",
				Help:    "HTTP request latency by route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
	}
}

// ObserveFetch records one upstream call.
func (m *Metrics) ObserveFetch(source string, err error, took time.Duration) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.UpstreamFetchTotal.WithLabelValues(source, outcome).Inc()
	m.UpstreamFetchDuration.WithLabelValues(source).Observe(took.Seconds())
}

// RateTableServed records which kind of table a request received.
func (m *Metrics) RateTableServed(source string) {
	if m == nil {
		return
	}
	m.RateTablesTotal.WithLabelValues(source).Inc()
}

// ConversionObserved records a conversion outcome.
func (m *Metrics) ConversionObserved(outcome string) {
	if m == nil {
		return
	}
	m.ConversionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveRequest records one HTTP request.
func (m *Metrics) ObserveRequest(route, method, status string, took time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(route, method, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(route, method).Observe(took.Seconds())
}
