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

	EventsDeadLettered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsDeadLettered,
			Help: HelpTextEventsDeadLettered,
		},
		[]string{LabelType},
	)
)

// Reward Metrics
var (
	KillsRegistered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameKillsRegistered,
			Help: HelpTextKillsRegistered,
		},
		[]string{LabelKind},
	)

	RewardsGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsGranted,
			Help: HelpTextRewardsGranted,
		},
		[]string{LabelKind, LabelSource},
	)

	RewardAmount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardAmount,
			Help: HelpTextRewardAmount,
		},
		[]string{LabelKind, LabelSource},
	)

	StreakMilestones = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStreakMilestones,
			Help: HelpTextStreakMilestones,
		},
		[]string{LabelMilestone},
	)

	AchievementsUnlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAchievementsUnlocked,
			Help: HelpTextAchievementsUnlocked,
		},
		[]string{LabelAchievement},
	)
)

// Host Metrics
var (
	PlayersLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePlayersLoaded,
			Help: HelpTextPlayersLoaded,
		},
	)

	CheckpointsWritten = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCheckpointsWritten,
			Help: HelpTextCheckpointsWritten,
		},
	)

	PlayersEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlayersEvicted,
			Help: HelpTextPlayersEvicted,
		},
	)

	JobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameJobDuration,
			Help:    HelpTextJobDuration,
			Buckets: prometheus.DefBuckets,
		},
		[]string{LabelJob},
	)

	JobErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameJobErrors,
			Help: HelpTextJobErrors,
		},
		[]string{LabelJob},
	)
)
