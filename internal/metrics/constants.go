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
	MetricNameSpinsTotal         = "spins_total"
	MetricNameFragmentsGenerated = "fragments_generated_total"
	MetricNameFragmentsShattered = "fragments_shattered_total"
	MetricNameFragmentsSold      = "fragments_sold_total"
	MetricNameDeviceUpgrades     = "device_upgrades_total"
	MetricNameMutationsTotal     = "mutations_total"
	MetricNameFluxSpent          = "flux_spent_total"
	MetricNameFluxEarned         = "flux_earned_total"
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
	HelpTextSpinsTotal         = "Total number of spins performed"
	HelpTextFragmentsGenerated = "Total number of fragments generated, by type and rarity"
	HelpTextFragmentsShattered = "Total number of fragments shattered, by rarity"
	HelpTextFragmentsSold      = "Total number of fragments sold, by type and rarity"
	HelpTextDeviceUpgrades     = "Total number of device upgrades purchased, by track"
	HelpTextMutationsTotal     = "Total number of mutations attempted, by outcome"
	HelpTextFluxSpent          = "Total flux spent, by operation"
	HelpTextFluxEarned         = "Total flux earned, by operation"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelRarity    = "rarity"
	LabelTrack     = "track"
	LabelOutcome   = "outcome"
	LabelOperation = "operation"
)

// Operation label values for the flux counters
const (
	OperationSpin     = "spin"
	OperationShatter  = "shatter"
	OperationSell     = "sell"
	OperationUpgrade  = "upgrade"
	OperationMutation = "mutation"
)

// Outcome label values for the mutation counter
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeEvolved = "evolved"
)

// HTTPLatencyBuckets cover fast pure-computation endpoints through slow
// database paths.
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
