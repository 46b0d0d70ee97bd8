// Package dailybonus gates a once-per-calendar-day bonus.
package dailybonus

import "github.com/osse101/fragrewards/internal/domain"

// Default bonus amounts
const (
	DefaultCredits int64 = 1000
	DefaultXP      int64 = 200
)

// State is the persisted daily bonus state
type State struct {
	LastClaimedDate domain.Date `json:"last_claimed_date"`
}

// Scheduler grants Bonus at most once per distinct calendar date. It is not
// safe for concurrent use.
type Scheduler struct {
	state State
	bonus domain.BaseReward
}

// NewScheduler creates a scheduler that has never granted a bonus
func NewScheduler(bonus domain.BaseReward) *Scheduler {
	return &Scheduler{bonus: bonus}
}

// Claim grants the bonus when today is strictly after the last claimed date
// and stamps today. It returns the bonus and true on a grant.
func (s *Scheduler) Claim(today domain.Date) (domain.BaseReward, bool) {
	if !s.Available(today) {
		return domain.BaseReward{}, false
	}
	s.state.LastClaimedDate = today
	return s.bonus, true
}

// Available reports whether a claim on today would be granted
func (s *Scheduler) Available(today domain.Date) bool {
	return s.state.LastClaimedDate.IsZero() || today.After(s.state.LastClaimedDate)
}

// Bonus returns the configured bonus
func (s *Scheduler) Bonus() domain.BaseReward {
	return s.bonus
}

// State returns the persisted state
func (s *Scheduler) State() State {
	return s.state
}

// Restore replaces the state with a persisted snapshot
func (s *Scheduler) Restore(state State) {
	s.state = state
}
