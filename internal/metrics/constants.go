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

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Tournament metric names
const (
	MetricNameTournamentsCreated   = "tournaments_created_total"
	MetricNameTournamentsCompleted = "tournaments_completed_total"
	MetricNameRoundsPlayed         = "tournament_rounds_played_total"
	MetricNameBattlesResolved      = "tournament_battles_resolved_total"
	MetricNameByesAwarded          = "tournament_byes_awarded_total"
	MetricNameCustomCardsAdded     = "custom_cards_added_total"
	MetricNamePrizePaid            = "prize_paid_total"
	MetricNamePlatformCut          = "platform_cut_total"
	MetricNameActiveSessions       = "tournament_sessions_active"
	MetricNameStreamClients        = "event_stream_clients"
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

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Tournament metric help text
const (
	HelpTextTournamentsCreated   = "Total number of tournaments created, restarts included"
	HelpTextTournamentsCompleted = "Total number of tournaments settled with a champion"
	HelpTextRoundsPlayed         = "Total number of tournament rounds played"
	HelpTextBattlesResolved      = "Total number of battles resolved"
	HelpTextByesAwarded          = "Total number of byes awarded"
	HelpTextCustomCardsAdded     = "Total number of custom cards added to session catalogs"
	HelpTextPrizePaid            = "Total prize money paid to competitors"
	HelpTextPlatformCut          = "Total platform cut retained"
	HelpTextActiveSessions       = "Current number of tournament sessions held in memory"
	HelpTextStreamClients        = "Current number of connected event stream clients"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelPlace  = "place"
)

// Label values for LabelPlace
const (
	PlaceChampion = "champion"
	PlaceRunnerUp = "runner_up"
)

// CustomCardType labels cards whose type is not one of the base types
const CustomCardType = "custom"

// UnmatchedRoute is the path label for requests no route matched
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
