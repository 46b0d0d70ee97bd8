// Package ledger accumulates a player's lifetime statistics and forwards
// credit and XP grants to the external account stores.
package ledger

import (
	"math"
	"time"

	"github.com/osse101/fragrewards/internal/domain"
)

// CreditAccount is the external store holding the spendable credit balance
type CreditAccount interface {
	Add(amount int64)
}

// XPAccount is the external store holding experience and level
type XPAccount interface {
	Add(amount int64)
}

// Grant is a forwarded, positive reward
type Grant struct {
	Kind   domain.RewardKind   `json:"kind"`
	Amount int64               `json:"amount"`
	Source domain.RewardSource `json:"source"`
}

type discard struct{}

func (discard) Add(int64) {}

// Ledger holds lifetime counters. It never holds a balance. It is not safe
// for concurrent use.
type Ledger struct {
	stats   domain.LedgerStats
	credits CreditAccount
	xp      XPAccount
}

// New creates an empty ledger. Nil accounts discard grants.
func New(credits CreditAccount, xp XPAccount) *Ledger {
	l := &Ledger{credits: credits, xp: xp}
	if l.credits == nil {
		l.credits = discard{}
	}
	if l.xp == nil {
		l.xp = discard{}
	}
	return l
}

// AddCredits records and forwards a credit grant. Non-positive amounts are
// dropped and report false. The lifetime total saturates at math.MaxInt64.
func (l *Ledger) AddCredits(amount int64, source domain.RewardSource) (Grant, bool) {
	if amount <= 0 {
		return Grant{}, false
	}
	l.stats.TotalCreditsEarned = addSaturating(l.stats.TotalCreditsEarned, amount)
	l.credits.Add(amount)
	return Grant{Kind: domain.RewardCredits, Amount: amount, Source: source}, true
}

// AddXP records and forwards an XP grant. Non-positive amounts are dropped
// and report false. The lifetime total saturates at math.MaxInt64.
func (l *Ledger) AddXP(amount int64, source domain.RewardSource) (Grant, bool) {
	if amount <= 0 {
		return Grant{}, false
	}
	l.stats.TotalXPEarned = addSaturating(l.stats.TotalXPEarned, amount)
	l.xp.Add(amount)
	return Grant{Kind: domain.RewardXP, Amount: amount, Source: source}, true
}

// RecordKill increments and returns the kill total
func (l *Ledger) RecordKill() int64 {
	l.stats.TotalKills++
	return l.stats.TotalKills
}

// RecordDeath increments and returns the death total
func (l *Ledger) RecordDeath() int64 {
	l.stats.TotalDeaths++
	return l.stats.TotalDeaths
}

// RecordMission increments and returns the completed mission total
func (l *Ledger) RecordMission() int64 {
	l.stats.TotalMissionsCompleted++
	return l.stats.TotalMissionsCompleted
}

// AddPlayTime accrues positive durations of play
func (l *Ledger) AddPlayTime(d time.Duration) {
	if d > 0 {
		l.stats.TotalPlayTime += d
	}
}

// ObserveStreak raises the max kill streak to n if higher
func (l *Ledger) ObserveStreak(n int) {
	l.stats.MaxKillStreak = max(l.stats.MaxKillStreak, n)
}

// ObserveCombo raises the max combo to n if higher
func (l *Ledger) ObserveCombo(n int) {
	l.stats.MaxCombo = max(l.stats.MaxCombo, n)
}

// Value returns the lifetime counter an achievement metric is keyed on
func (l *Ledger) Value(m domain.Metric) (int64, bool) {
	switch m {
	case domain.MetricKills:
		return l.stats.TotalKills, true
	case domain.MetricDeaths:
		return l.stats.TotalDeaths, true
	case domain.MetricCreditsEarned:
		return l.stats.TotalCreditsEarned, true
	case domain.MetricXPEarned:
		return l.stats.TotalXPEarned, true
	case domain.MetricMissionsCompleted:
		return l.stats.TotalMissionsCompleted, true
	}
	return 0, false
}

// Stats returns a copy of the lifetime statistics
func (l *Ledger) Stats() domain.LedgerStats {
	return l.stats
}

// Restore replaces the statistics with a persisted snapshot. Grants are not
// replayed to the accounts.
func (l *Ledger) Restore(stats domain.LedgerStats) {
	l.stats = stats.Sanitized()
}

// addSaturating adds a non-negative amount to total without wrapping
func addSaturating(total, amount int64) int64 {
	if total > math.MaxInt64-amount {
		return math.MaxInt64
	}
	return total + amount
}
