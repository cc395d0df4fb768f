package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters for the booking and payment flows.
type BookingMetrics struct {
	bookingCommits       *prometheus.CounterVec
	paymentVerifications *prometheus.CounterVec
	ordersCreated        *prometheus.CounterVec
	slotQueries          *prometheus.CounterVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		bookingCommits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bookease",
			Subsystem: "bookings",
			Name:      "commits_total",
			Help:      "Total booking commit attempts by result",
		}, []string{"result"}),
		paymentVerifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bookease",
			Subsystem: "payments",
			Name:      "verifications_total",
			Help:      "Total payment verifications by gateway and outcome",
		}, []string{"gateway", "success"}),
		ordersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bookease",
			Subsystem: "payments",
			Name:      "orders_created_total",
			Help:      "Total payment orders created by gateway and status",
		}, []string{"gateway", "status"}),
		slotQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bookease",
			Subsystem: "bookings",
			Name:      "slot_queries_total",
			Help:      "Total slot availability queries by cache outcome",
		}, []string{"cache"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookingCommits, m.paymentVerifications, m.ordersCreated, m.slotQueries)

	return m
}

// ObserveCommit records a booking commit. result is one of created, conflict or error.
func (m *BookingMetrics) ObserveCommit(result string) {
	if m == nil {
		return
	}
	m.bookingCommits.WithLabelValues(result).Inc()
}

func (m *BookingMetrics) ObserveVerification(gateway string, success bool) {
	if m == nil {
		return
	}
	label := "false"
	if success {
		label = "true"
	}
	m.paymentVerifications.WithLabelValues(gateway, label).Inc()
}

func (m *BookingMetrics) ObserveOrder(gateway, status string) {
	if m == nil {
		return
	}
	m.ordersCreated.WithLabelValues(gateway, status).Inc()
}

func (m *BookingMetrics) ObserveSlotQuery(cacheHit bool) {
	if m == nil {
		return
	}
	label := "miss"
	if cacheHit {
		label = "hit"
	}
	m.slotQueries.WithLabelValues(label).Inc()
}
