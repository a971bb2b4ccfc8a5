package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters for the booking ledger.
type BookingMetrics struct {
	bookedTotal *prometheus.CounterVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		bookedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "healthmate",
			Subsystem: "bookings",
			Name:      "booked_total",
			Help:      "Booking attempts by outcome",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookedTotal)
	return m
}

func (m *BookingMetrics) ObserveBooked(status string) {
	if m == nil {
		return
	}
	m.bookedTotal.WithLabelValues(status).Inc()
}

// AdvisorMetrics exposes counters/histograms for generative-AI advisor calls.
type AdvisorMetrics struct {
	requestsTotal *prometheus.CounterVec
	latency       *prometheus.HistogramVec
}

func NewAdvisorMetrics(reg prometheus.Registerer) *AdvisorMetrics {
	m := &AdvisorMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "healthmate",
			Subsystem: "advisor",
			Name:      "requests_total",
			Help:      "Advisor calls by flow and outcome",
		}, []string{"flow", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "healthmate",
			Subsystem: "advisor",
			Name:      "latency_seconds",
			Help:      "Latency of advisor calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"flow"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.latency)
	return m
}

func (m *AdvisorMetrics) ObserveRequest(flow, status string) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(flow, status).Inc()
}

func (m *AdvisorMetrics) ObserveLatency(flow string, seconds float64) {
	if m == nil {
		return
	}
	m.latency.WithLabelValues(flow).Observe(seconds)
}
