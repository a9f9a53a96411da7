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

// Pricing metric names
const (
	MetricNamePricingSearches         = "pricing_searches_total"
	MetricNamePricingSearchIterations = "pricing_search_iterations"
	MetricNamePricingSearchesCapped   = "pricing_searches_capped_total"
)

// Shop metric names
const (
	MetricNameQuotesIssued       = "shop_quotes_issued_total"
	MetricNameUnknownItemLookups = "shop_unknown_item_lookups_total"
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

// Pricing metric help text
const (
	HelpTextPricingSearches         = "Total number of max-affordable searches, by result source"
	HelpTextPricingSearchIterations = "Cost evaluations performed per max-affordable search"
	HelpTextPricingSearchesCapped   = "Total number of searches stopped by the iteration bound"
)

// Shop metric help text
const (
	HelpTextQuotesIssued       = "Total number of quotes issued, by item and kind"
	HelpTextUnknownItemLookups = "Total number of quote requests for items not in the catalog"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelItem   = "item"
	LabelKind   = "kind"
	LabelSource = "source"
)

// Values for LabelSource
const (
	SourceCache    = "cache"
	SourceComputed = "computed"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SearchIterationBuckets covers short searches near the initial bound up to the default iteration cap.
var SearchIterationBuckets = []float64{1, 2, 4, 8, 16, 32, 64, 128, 256}
