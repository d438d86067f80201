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

// Lottery metric names
const (
	MetricNameRoundsAnnounced       = "lottery_rounds_announced_total"
	MetricNameDrawsCompleted        = "lottery_draws_completed_total"
	MetricNameDrawFailures          = "lottery_draw_failures_total"
	MetricNameDrawFallbacks         = "lottery_draw_fallbacks_total"
	MetricNameZapReceiptsFetched    = "lottery_zap_receipts_fetched_total"
	MetricNameContributionsVerified = "lottery_contributions_verified_total"
	MetricNamePoolSats              = "lottery_pool_sats_total"
	MetricNamePrizesPaidSats        = "lottery_prizes_paid_sats_total"
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

// Lottery metric help text
const (
	HelpTextRoundsAnnounced       = "Total number of round announcements published"
	HelpTextDrawsCompleted        = "Total number of draws completed through payout"
	HelpTextDrawFailures          = "Total number of failed draw runs by failure kind"
	HelpTextDrawFallbacks         = "Total number of draws that fell back to the first contribution"
	HelpTextZapReceiptsFetched    = "Total number of zap receipts fetched from relays"
	HelpTextContributionsVerified = "Total number of receipts verified against the payment ledger"
	HelpTextPoolSats              = "Total sats collected across all prize pools"
	HelpTextPrizesPaidSats        = "Total sats dispatched to winners"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelKind   = "kind"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
