package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every collector exported by the payout tool
const Namespace = "crimson"

// Directory client metric names
const (
	MetricNameDirectoryRequestsTotal    = "directory_requests_total"
	MetricNameDirectoryRequestDuration  = "directory_request_duration_seconds"
	MetricNameDirectoryRequestsInFlight = "directory_requests_in_flight"
	MetricNameDirectoryLookupsTotal     = "directory_lookups_total"
)

// Payout metric names
const (
	MetricNameHelpersPaid        = "helpers_paid"
	MetricNameTicketsClosed      = "tickets_closed"
	MetricNameCookiesDistributed = "cookies_distributed"
	MetricNameStageDuration      = "stage_duration_seconds"
	MetricNameRunsTotal          = "runs_total"
	MetricNameLastRunTimestamp   = "last_run_timestamp_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// Directory client metric help text
const (
	HelpTextDirectoryRequestsTotal    = "Total number of requests sent to the user directory"
	HelpTextDirectoryRequestDuration  = "User directory request latency in seconds"
	HelpTextDirectoryRequestsInFlight = "Current number of user directory requests in flight"
	HelpTextDirectoryLookupsTotal     = "Helper identity lookups by outcome"
)

// Payout metric help text
const (
	HelpTextHelpersPaid        = "Number of helpers in the last payout"
	HelpTextTicketsClosed      = "Tickets closed by helpers in the last payout window"
	HelpTextCookiesDistributed = "Cookies distributed by the last payout, unrounded"
	HelpTextStageDuration      = "Duration of each payout pipeline stage in seconds"
	HelpTextRunsTotal          = "Payout runs by policy and result"
	HelpTextLastRunTimestamp   = "Unix time of the last payout run"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelStage   = "stage"
	LabelPolicy  = "policy"
	LabelResult  = "result"
)

// Label values
const (
	OutcomeResolved    = "resolved"
	OutcomeAmbiguous   = "ambiguous"
	OutcomeNoMatch     = "no_match"
	OutcomeUnavailable = "unavailable"

	ResultSuccess = "success"
	ResultError   = "error"

	// StatusTransportError labels requests that never produced a response
	StatusTransportError = "transport_error"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// DirectoryLatencyBuckets range from 10ms to 10s
var DirectoryLatencyBuckets = []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// StageLatencyBuckets cover slow leaderboard queries up to a minute
var StageLatencyBuckets = []float64{.01, .05, .1, .5, 1, 2.5, 5, 10, 30, 60}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgMetricsWritten       = "Metrics written"
	LogMsgFailedToWriteMetrics = "Failed to write metrics file"
)
