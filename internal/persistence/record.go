// Package persistence defines the versioned player record and the storages
// it is checkpointed to.
package persistence

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/osse101/fragrewards/internal/domain"
)

// Record is the durable, field-tagged snapshot of one player's progression.
// Achievement catalog metadata is never part of it.
type Record struct {
	SchemaVersion int                 `json:"schema_version"`
	SavedAt       time.Time           `json:"saved_at"`
	Stats         StatsRecord         `json:"stats"`
	MaxStreak     int                 `json:"max_streak"`
	MaxCombo      int                 `json:"max_combo"`
	DailyBonus    DailyBonusRecord    `json:"daily_bonus"`
	Achievements  []AchievementRecord `json:"achievements"`
}

// StatsRecord mirrors domain.LedgerStats with play time in nanoseconds
type StatsRecord struct {
	TotalKills             int64 `json:"total_kills"`
	TotalDeaths            int64 `json:"total_deaths"`
	TotalCreditsEarned     int64 `json:"total_credits_earned"`
	TotalXPEarned          int64 `json:"total_xp_earned"`
	TotalMissionsCompleted int64 `json:"total_missions_completed"`
	TotalPlayTimeNanos     int64 `json:"total_play_time_ns"`
	MaxKillStreak          int   `json:"max_kill_streak"`
	MaxCombo               int   `json:"max_combo"`
}

// DailyBonusRecord holds the last claim as YYYY-MM-DD, empty when never claimed
type DailyBonusRecord struct {
	LastClaimedDate string `json:"last_claimed_date,omitempty"`
}

// AchievementRecord is the mutable progress of one achievement
type AchievementRecord struct {
	ID           string `json:"id"`
	CurrentValue int64  `json:"current_value"`
	Unlocked     bool   `json:"unlocked"`
}

// NewStatsRecord converts ledger statistics to their record form
func NewStatsRecord(s domain.LedgerStats) StatsRecord {
	return StatsRecord{
		TotalKills:             s.TotalKills,
		TotalDeaths:            s.TotalDeaths,
		TotalCreditsEarned:     s.TotalCreditsEarned,
		TotalXPEarned:          s.TotalXPEarned,
		TotalMissionsCompleted: s.TotalMissionsCompleted,
		TotalPlayTimeNanos:     int64(s.TotalPlayTime),
		MaxKillStreak:          s.MaxKillStreak,
		MaxCombo:               s.MaxCombo,
	}
}

// LedgerStats converts the record form back to ledger statistics
func (s StatsRecord) LedgerStats() domain.LedgerStats {
	return domain.LedgerStats{
		TotalKills:             s.TotalKills,
		TotalDeaths:            s.TotalDeaths,
		TotalCreditsEarned:     s.TotalCreditsEarned,
		TotalXPEarned:          s.TotalXPEarned,
		TotalMissionsCompleted: s.TotalMissionsCompleted,
		TotalPlayTime:          time.Duration(s.TotalPlayTimeNanos),
		MaxKillStreak:          s.MaxKillStreak,
		MaxCombo:               s.MaxCombo,
	}
}

// LastClaimed parses the daily bonus date
func (d DailyBonusRecord) LastClaimed() (domain.Date, error) {
	return domain.ParseDate(d.LastClaimedDate)
}

// Encode serializes a record, stamping the current schema version
func Encode(rec *Record) ([]byte, error) {
	if rec == nil {
		return nil, fmt.Errorf("%s: nil record", ErrMsgEncodeRecord)
	}
	out := *rec
	out.SchemaVersion = SchemaVersion
	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgEncodeRecord, err)
	}
	return append(data, '\n'), nil
}

// Decode parses a record. Unknown fields are ignored and absent fields keep
// their zero values. Malformed input returns domain.ErrCorruptRecord.
func Decode(data []byte) (*Record, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil, fmt.Errorf("%w: not a JSON object", domain.ErrCorruptRecord)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptRecord, err)
	}
	if rec.SchemaVersion < 0 {
		return nil, fmt.Errorf("%w: schema version %d", domain.ErrCorruptRecord, rec.SchemaVersion)
	}
	if _, err := rec.DailyBonus.LastClaimed(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptRecord, err)
	}
	return &rec, nil
}
