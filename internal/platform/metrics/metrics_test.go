package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/fxcalc/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Record(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.ObserveFetch("coingecko", nil, 10*time.Millisecond)
	m.ObserveFetch("coingecko", errors.New("boom"), time.Second)
	m.RateTableServed("fallback")
	m.ConversionObserved("recorded")
	m.ObserveRequest("/", "POST", "200", time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamFetchTotal.WithLabelValues("coingecko", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamFetchTotal.WithLabelValues("coingecko", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateTablesTotal.WithLabelValues("fallback")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ConversionsTotal.WithLabelValues("recorded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("/", "POST", "200")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveFetch("x", nil, 0)
		m.RateTableServed("live")
		m.ConversionObserved("failed")
		m.ObserveRequest("/", "GET", "200", 0)
	})
}
