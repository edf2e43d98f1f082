package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	InventoryOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInventoryOperations,
			Help: HelpTextInventoryOperations,
		},
		[]string{LabelOperation, LabelOutcome},
	)

	TransactionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameTransactionDuration,
			Help:    HelpTextTransactionDuration,
			Buckets: TransactionLatencyBuckets,
		},
		[]string{LabelOperation},
	)

	ItemsGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsGranted,
			Help: HelpTextItemsGranted,
		},
		[]string{LabelItem},
	)

	ItemsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsConsumed,
			Help: HelpTextItemsConsumed,
		},
		[]string{LabelItem},
	)

	GachaDraws = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGachaDraws,
			Help: HelpTextGachaDraws,
		},
		[]string{LabelItem},
	)

	CurrencySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCurrencySpent,
			Help: HelpTextCurrencySpent,
		},
	)
)

// RecordOperation counts an inventory operation and observes its latency
func RecordOperation(operation, outcome string, elapsed time.Duration) {
	InventoryOperations.WithLabelValues(operation, outcome).Inc()
	TransactionDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ItemLabel formats an item id for use as a label value
func ItemLabel(itemID int) string {
	return strconv.Itoa(itemID)
}
