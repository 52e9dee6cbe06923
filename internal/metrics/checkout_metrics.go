package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics содержит метрики корзины и оформления заказов.
type CheckoutMetrics struct {
	// Счётчики оформления
	checkoutStarted   prometheus.Counter
	checkoutCompleted prometheus.Counter
	checkoutFailed    *prometheus.CounterVec
	checkoutRetries   prometheus.Counter

	checkoutDuration prometheus.Histogram

	// Операции с корзиной и статусами
	cartOperations    *prometheus.CounterVec
	statusTransitions *prometheus.CounterVec

	timelineEvents prometheus.Counter
	outboxEvents   prometheus.Counter

	// Кэш листинга корзины
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter

	activeCheckouts prometheus.Gauge
}

// NewCheckoutMetrics создаёт метрики в registry по умолчанию.
func NewCheckoutMetrics() *CheckoutMetrics {
	return NewCheckoutMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewCheckoutMetricsWithRegisterer создаёт метрики в указанном registry.
func NewCheckoutMetricsWithRegisterer(registerer prometheus.Registerer) *CheckoutMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &CheckoutMetrics{
		checkoutStarted: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_checkout_started_total",
			Help: "Total number of checkout attempts started",
		}),
		checkoutCompleted: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_checkout_completed_total",
			Help: "Total number of orders created from carts",
		}),
		checkoutFailed: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "storefront_checkout_failed_total",
			Help: "Total number of failed checkouts by reason",
		}, []string{"reason"}),
		checkoutRetries: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_checkout_retries_total",
			Help: "Total number of checkout transaction retries after a conflict",
		}),
		checkoutDuration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "storefront_checkout_duration_seconds",
			Help:    "Duration of checkout including retries",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}),
		cartOperations: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "storefront_cart_operations_total",
			Help: "Total number of cart mutations by operation",
		}, []string{"operation"}),
		statusTransitions: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "storefront_order_status_transitions_total",
			Help: "Total number of applied order status transitions",
		}, []string{"to"}),
		timelineEvents: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_timeline_events_total",
			Help: "Total number of timeline events recorded",
		}),
		outboxEvents: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_outbox_events_total",
			Help: "Total number of outbox events published",
		}),
		cacheHits: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_cart_cache_hits_total",
			Help: "Cart listing cache hits",
		}),
		cacheMisses: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_cart_cache_misses_total",
			Help: "Cart listing cache misses",
		}),
		activeCheckouts: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "storefront_active_checkouts",
			Help: "Number of checkouts currently in progress",
		}),
	}
}

// RecordCheckoutStarted учитывает начало оформления.
func (m *CheckoutMetrics) RecordCheckoutStarted() {
	if m == nil {
		return
	}
	m.checkoutStarted.Inc()
	m.activeCheckouts.Inc()
}

// RecordCheckoutFinished фиксирует исход оформления; reason пуст при успехе.
func (m *CheckoutMetrics) RecordCheckoutFinished(reason string, duration time.Duration) {
	if m == nil {
		return
	}
	m.activeCheckouts.Dec()
	m.checkoutDuration.Observe(duration.Seconds())
	if reason == "" {
		m.checkoutCompleted.Inc()
		return
	}
	m.checkoutFailed.WithLabelValues(reason).Inc()
}

func (m *CheckoutMetrics) RecordCheckoutRetry() {
	if m == nil {
		return
	}
	m.checkoutRetries.Inc()
}

func (m *CheckoutMetrics) RecordCartOperation(operation string) {
	if m == nil {
		return
	}
	m.cartOperations.WithLabelValues(operation).Inc()
}

func (m *CheckoutMetrics) RecordStatusTransition(to string) {
	if m == nil {
		return
	}
	m.statusTransitions.WithLabelValues(to).Inc()
}

// RecordTimelineEvent увеличивает счётчик событий timeline.
func (m *CheckoutMetrics) RecordTimelineEvent() {
	if m == nil {
		return
	}
	m.timelineEvents.Inc()
}

// RecordOutboxEvent увеличивает счётчик опубликованных событий outbox.
func (m *CheckoutMetrics) RecordOutboxEvent() {
	if m == nil {
		return
	}
	m.outboxEvents.Inc()
}

func (m *CheckoutMetrics) RecordCacheHit() {
	if m == nil {
		return
	}
	m.cacheHits.Inc()
}

func (m *CheckoutMetrics) RecordCacheMiss() {
	if m == nil {
		return
	}
	m.cacheMisses.Inc()
}
