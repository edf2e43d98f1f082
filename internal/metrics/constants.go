package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameInventoryOperations = "inventory_operations_total"
	MetricNameTransactionDuration = "inventory_transaction_duration_seconds"
	MetricNameItemsGranted        = "items_granted_total"
	MetricNameItemsConsumed       = "items_consumed_total"
	MetricNameGachaDraws          = "gacha_draws_total"
	MetricNameCurrencySpent       = "currency_spent_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextInventoryOperations = "Total number of inventory operations by outcome"
	HelpTextTransactionDuration = "Inventory transaction latency in seconds"
	HelpTextItemsGranted        = "Total number of items granted"
	HelpTextItemsConsumed       = "Total number of items consumed"
	HelpTextGachaDraws          = "Total number of gacha draws by outcome item"
	HelpTextCurrencySpent       = "Total currency spent on gacha draws"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelOutcome   = "outcome"
	LabelItem      = "item"
)

// Operation label values
const (
	OperationGrant   = "grant"
	OperationConsume = "consume"
	OperationGacha   = "gacha"
)

// Outcome label values
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// GachaMissLabel is the item label recorded for draws that produced nothing
const GachaMissLabel = "miss"

// UnmatchedRouteLabel is the path label for requests no route matched
const UnmatchedRouteLabel = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TransactionLatencyBuckets covers fast commits through lock timeouts
var TransactionLatencyBuckets = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 5}
