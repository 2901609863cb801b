package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics records the storefront's order write-path outcomes.
type OrderMetrics struct {
	placed         *prometheus.CounterVec
	failed         *prometheus.CounterVec
	fallbackWrites prometheus.Counter
	emailFailures  prometheus.Counter
	saveDuration   prometheus.Histogram
}

// NewOrderMetrics registers the order metrics on the provided registerer.
func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	if reg == nil {
		return &OrderMetrics{}
	}
	placed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Orders accepted and persisted.",
	}, []string{"backend"})
	failed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_failed_total",
		Help: "Order submissions rejected or lost.",
	}, []string{"reason"})
	fallbackWrites := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_fallback_writes_total",
		Help: "Orders written to the local fallback slot.",
	})
	emailFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "order_email_failures_total",
		Help: "Order notification sends that failed.",
	})
	saveDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_save_duration_seconds",
		Help:    "Duration of order persistence attempts in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(placed, failed, fallbackWrites, emailFailures, saveDuration)
	return &OrderMetrics{
		placed:         placed,
		failed:         failed,
		fallbackWrites: fallbackWrites,
		emailFailures:  emailFailures,
		saveDuration:   saveDuration,
	}
}

// IncPlaced increments the accepted-order counter for the given backend.
func (m *OrderMetrics) IncPlaced(backend string) {
	if m == nil || m.placed == nil {
		return
	}
	m.placed.WithLabelValues(normalizeLabel(backend)).Inc()
}

// IncFailed increments the failure counter for the given reason.
func (m *OrderMetrics) IncFailed(reason string) {
	if m == nil || m.failed == nil {
		return
	}
	m.failed.WithLabelValues(normalizeLabel(reason)).Inc()
}

// IncFallbackWrite counts an order landing in the local slot.
func (m *OrderMetrics) IncFallbackWrite() {
	if m == nil || m.fallbackWrites == nil {
		return
	}
	m.fallbackWrites.Inc()
}

// IncEmailFailure counts a swallowed notification failure.
func (m *OrderMetrics) IncEmailFailure() {
	if m == nil || m.emailFailures == nil {
		return
	}
	m.emailFailures.Inc()
}

// ObserveSaveDuration records how long a persistence attempt took.
func (m *OrderMetrics) ObserveSaveDuration(d time.Duration) {
	if m == nil || m.saveDuration == nil {
		return
	}
	m.saveDuration.Observe(d.Seconds())
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
