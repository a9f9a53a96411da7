package metrics

import (
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

// Pricing Metrics
var (
	PricingSearches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePricingSearches,
			Help: HelpTextPricingSearches,
		},
		[]string{LabelSource},
	)

	PricingSearchIterations = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePricingSearchIterations,
			Help:    HelpTextPricingSearchIterations,
			Buckets: SearchIterationBuckets,
		},
	)

	PricingSearchesCapped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePricingSearchesCapped,
			Help: HelpTextPricingSearchesCapped,
		},
	)
)

// Shop Metrics
var (
	QuotesIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuotesIssued,
			Help: HelpTextQuotesIssued,
		},
		[]string{LabelItem, LabelKind},
	)

	UnknownItemLookups = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUnknownItemLookups,
			Help: HelpTextUnknownItemLookups,
		},
	)
)
