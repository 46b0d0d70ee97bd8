package domain

import "time"

// LedgerStats holds a player's lifetime statistics
type LedgerStats struct {
	TotalKills             int64         `json:"total_kills"`
	TotalDeaths            int64         `json:"total_deaths"`
	TotalCreditsEarned     int64         `json:"total_credits_earned"`
	TotalXPEarned          int64         `json:"total_xp_earned"`
	TotalMissionsCompleted int64         `json:"total_missions_completed"`
	TotalPlayTime          time.Duration `json:"total_play_time"`
	MaxKillStreak          int           `json:"max_kill_streak"`
	MaxCombo               int           `json:"max_combo"`
}

// Sanitized returns a copy with every negative field clamped to zero
func (s LedgerStats) Sanitized() LedgerStats {
	out := s
	out.TotalKills = max(out.TotalKills, 0)
	out.TotalDeaths = max(out.TotalDeaths, 0)
	out.TotalCreditsEarned = max(out.TotalCreditsEarned, 0)
	out.TotalXPEarned = max(out.TotalXPEarned, 0)
	out.TotalMissionsCompleted = max(out.TotalMissionsCompleted, 0)
	out.TotalPlayTime = max(out.TotalPlayTime, 0)
	out.MaxKillStreak = max(out.MaxKillStreak, 0)
	out.MaxCombo = max(out.MaxCombo, 0)
	return out
}
