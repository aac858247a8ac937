package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Spin metric names
const (
	MetricNameSpinsRequested  = "spins_requested_total"
	MetricNameSpinsFulfilled  = "spins_fulfilled_total"
	MetricNameSpinsPending    = "spins_pending"
	MetricNameWageredTotal    = "spin_wagered_base_units_total"
	MetricNamePayoutsTotal    = "spin_payouts_total"
	MetricNamePayoutAmount    = "spin_payout_base_units"
	MetricNamePoolBalance     = "spin_pool_balance_base_units"
	MetricNameJobRunsTotal    = "worker_job_runs_total"
	MetricNameJobRunDuration  = "worker_job_duration_seconds"
	MetricNameRateLimitedHits = "http_rate_limited_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Spin metric help text
const (
	HelpTextSpinsRequested  = "Total number of paid spin requests accepted"
	HelpTextSpinsFulfilled  = "Total number of spins fulfilled, by outcome"
	HelpTextSpinsPending    = "Spin requests waiting for randomness since process start"
	HelpTextWageredTotal    = "Total spin cost pulled into custody, in token base units"
	HelpTextPayoutsTotal    = "Total number of payout transfers, by status"
	HelpTextPayoutAmount    = "Distribution of settled payout amounts in token base units"
	HelpTextPoolBalance     = "Custody pool balance in token base units at the last check"
	HelpTextJobRunsTotal    = "Total number of background job runs, by job and status"
	HelpTextJobRunDuration  = "Background job run time in seconds"
	HelpTextRateLimitedHits = "Total number of requests rejected by the rate limiter"
)

// Label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelOutcome = "outcome"
	LabelJob     = "job"
)

// Label values
const (
	OutcomeWin    = "win"
	OutcomeLoss   = "loss"
	StatusSettled = "settled"
	StatusFailed  = "failed"
	StatusSuccess = "success"
	StatusError   = "error"
	UnmatchedPath = "unmatched"
)

// HTTPLatencyBuckets spans 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// PayoutBuckets are exponential in base units
var PayoutBuckets = []float64{1, 10, 100, 1e3, 1e4, 1e5, 1e6, 1e9, 1e12, 1e15, 1e18}

const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
