package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestBookingMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBookingMetrics(reg)

	m.ObserveCommit("created")
	m.ObserveCommit("created")
	m.ObserveCommit("conflict")
	m.ObserveVerification("signature", true)
	m.ObserveOrder("xendit", "created")
	m.ObserveSlotQuery(true)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.bookingCommits.WithLabelValues("created")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.bookingCommits.WithLabelValues("conflict")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.paymentVerifications.WithLabelValues("signature", "true")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ordersCreated.WithLabelValues("xendit", "created")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.slotQueries.WithLabelValues("hit")))
}

func TestBookingMetricsNilSafe(t *testing.T) {
	var m *BookingMetrics
	m.ObserveCommit("created")
	m.ObserveVerification("signature", false)
	m.ObserveOrder("signature", "created")
	m.ObserveSlotQuery(false)
}
