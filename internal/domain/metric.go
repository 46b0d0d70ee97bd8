package domain

// Metric names a tracked value that achievements can be keyed on
type Metric string

const (
	MetricNone              Metric = ""
	MetricKills             Metric = "kills"
	MetricDeaths            Metric = "deaths"
	MetricCreditsEarned     Metric = "credits_earned"
	MetricXPEarned          Metric = "xp_earned"
	MetricMissionsCompleted Metric = "missions_completed"
	MetricKillStreak        Metric = "kill_streak"
	MetricCombo             Metric = "combo"
)

// KnownMetrics lists the metrics the engine feeds automatically
var KnownMetrics = []Metric{
	MetricKills,
	MetricDeaths,
	MetricCreditsEarned,
	MetricXPEarned,
	MetricMissionsCompleted,
	MetricKillStreak,
	MetricCombo,
}

// Valid reports whether m is empty or one of KnownMetrics
func (m Metric) Valid() bool {
	if m == MetricNone {
		return true
	}
	for _, known := range KnownMetrics {
		if m == known {
			return true
		}
	}
	return false
}
