// Package metrics exposes Prometheus collectors for HTTP traffic, the event
// bus, spin activity and background jobs.
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

	RateLimitedRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRateLimitedHits,
			Help: HelpTextRateLimitedHits,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Spin Metrics
var (
	SpinsRequested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSpinsRequested,
			Help: HelpTextSpinsRequested,
		},
	)

	SpinsFulfilled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsFulfilled,
			Help: HelpTextSpinsFulfilled,
		},
		[]string{LabelOutcome},
	)

	SpinsPending = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSpinsPending,
			Help: HelpTextSpinsPending,
		},
	)

	WageredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWageredTotal,
			Help: HelpTextWageredTotal,
		},
	)

	PayoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePayoutsTotal,
			Help: HelpTextPayoutsTotal,
		},
		[]string{LabelStatus},
	)

	PayoutAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePayoutAmount,
			Help:    HelpTextPayoutAmount,
			Buckets: PayoutBuckets,
		},
	)

	PoolBalance = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePoolBalance,
			Help: HelpTextPoolBalance,
		},
	)
)

// Worker Metrics
var (
	JobRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameJobRunsTotal,
			Help: HelpTextJobRunsTotal,
		},
		[]string{LabelJob, LabelStatus},
	)

	JobRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameJobRunDuration,
			Help:    HelpTextJobRunDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelJob},
	)
)
