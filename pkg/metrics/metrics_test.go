package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry("scheduling", reg)

	m.IncSlotsResolved("holiday")
	m.IncSlotsResolved("holiday")
	m.IncCancellationFee("charged")
	m.IncCache("hit")
	m.ObserveHTTPRequest("GET", "/api/v1/businesses/{businessId}/available-slots", 200, 15*time.Millisecond)
	m.ObserveDBQuery("select", errors.New("boom"), time.Millisecond)
	m.SetDBPoolStats(5, 2, 3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.slotsResolvedTotal.WithLabelValues("scheduling", "holiday")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cancellationFeesTotal.WithLabelValues("scheduling", "charged")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheRequestsTotal.WithLabelValues("scheduling", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues(
		"scheduling", "GET", "/api/v1/businesses/{businessId}/available-slots", "200")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.dbInUse.WithLabelValues("scheduling")))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncSlotsResolved("holiday")
		m.IncCancellationFee("free")
		m.IncCache("miss")
		m.ObserveHTTPRequest("GET", "/", 200, time.Millisecond)
		m.ObserveDBQuery("select", nil, time.Millisecond)
		m.SetDBPoolStats(1, 1, 0)
	})
}
