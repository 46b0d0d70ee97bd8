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
	MetricNameEventsDeadLettered = "events_dead_lettered_total"
)

// Reward metric names
const (
	MetricNameKillsRegistered      = "kills_registered_total"
	MetricNameRewardsGranted       = "rewards_granted_total"
	MetricNameRewardAmount         = "reward_amount_total"
	MetricNameStreakMilestones     = "streak_milestones_total"
	MetricNameAchievementsUnlocked = "achievements_unlocked_total"
)

// Host metric names
const (
	MetricNamePlayersLoaded      = "players_loaded"
	MetricNameCheckpointsWritten = "checkpoints_written_total"
	MetricNamePlayersEvicted     = "players_evicted_total"
	MetricNameJobDuration        = "job_duration_seconds"
	MetricNameJobErrors          = "job_errors_total"
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
	HelpTextEventsDeadLettered = "Total number of notifications evicted to the dead letter log"
)

// Reward metric help text
const (
	HelpTextKillsRegistered      = "Total number of kills registered"
	HelpTextRewardsGranted       = "Total number of reward grants"
	HelpTextRewardAmount         = "Total amount granted, by kind and source"
	HelpTextStreakMilestones     = "Total number of streak milestones reached"
	HelpTextAchievementsUnlocked = "Total number of achievements unlocked"
)

// Host metric help text
const (
	HelpTextPlayersLoaded      = "Number of players with a loaded engine"
	HelpTextCheckpointsWritten = "Total number of player records checkpointed"
	HelpTextPlayersEvicted     = "Total number of idle players unloaded"
	HelpTextJobDuration        = "Background job duration in seconds"
	HelpTextJobErrors          = "Total number of failed background job runs"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod      = "method"
	LabelPath        = "path"
	LabelStatus      = "status"
	LabelType        = "type"
	LabelKind        = "kind"
	LabelSource      = "source"
	LabelMilestone   = "milestone"
	LabelAchievement = "achievement"
	LabelJob         = "job"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadMismatch = "Event payload does not match its type"
	LogMsgMetricsRecorded      = "Metrics recorded for event"
)
