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

// Lottery Metrics
var (
	RoundsAnnounced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRoundsAnnounced,
			Help: HelpTextRoundsAnnounced,
		},
	)

	DrawsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDrawsCompleted,
			Help: HelpTextDrawsCompleted,
		},
	)

	DrawFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDrawFailures,
			Help: HelpTextDrawFailures,
		},
		[]string{LabelKind},
	)

	DrawFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDrawFallbacks,
			Help: HelpTextDrawFallbacks,
		},
	)

	ZapReceiptsFetched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameZapReceiptsFetched,
			Help: HelpTextZapReceiptsFetched,
		},
	)

	ContributionsVerified = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameContributionsVerified,
			Help: HelpTextContributionsVerified,
		},
	)

	PoolSats = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePoolSats,
			Help: HelpTextPoolSats,
		},
	)

	PrizesPaidSats = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePrizesPaidSats,
			Help: HelpTextPrizesPaidSats,
		},
	)
)
