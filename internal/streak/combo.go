package streak

import (
	"time"

	"github.com/osse101/fragrewards/internal/multiplier"
)

// ComboChange describes the combo after an increment or reset
type ComboChange struct {
	Count      int     `json:"count"`
	Multiplier float64 `json:"multiplier"`
}

// ComboState is a snapshot of a combo tracker
type ComboState struct {
	State
	CurrentMultiplier float64 `json:"current_multiplier"`
}

// ComboTracker is a faster-decaying counter whose multiplier grows by step per hit
type ComboTracker struct {
	tracker *Tracker
	step    float64
}

// NewComboTracker creates an idle combo tracker
func NewComboTracker(window time.Duration, step float64) *ComboTracker {
	return &ComboTracker{
		tracker: NewTracker(window, nil),
		step:    step,
	}
}

// RegisterEvent counts a hit at now, resetting an expired combo first
func (c *ComboTracker) RegisterEvent(now time.Time) ComboChange {
	c.tracker.RegisterEvent(now)
	return c.change()
}

// Tick resets an expired combo. The change is reported only when a reset happened.
func (c *ComboTracker) Tick(now time.Time) (ComboChange, bool) {
	if _, ended := c.tracker.Tick(now); !ended {
		return ComboChange{}, false
	}
	return c.change(), true
}

// Reset forces the combo to zero. The change is reported only when the combo was active.
func (c *ComboTracker) Reset() (ComboChange, bool) {
	if c.tracker.Reset() == 0 {
		return ComboChange{}, false
	}
	return c.change(), true
}

// Count returns the current combo count
func (c *ComboTracker) Count() int {
	return c.tracker.Count()
}

// CountAt returns the combo count as observed at now without mutating the tracker
func (c *ComboTracker) CountAt(now time.Time) int {
	return c.tracker.CountAt(now)
}

// MaxCount returns the highest combo ever reached
func (c *ComboTracker) MaxCount() int {
	return c.tracker.MaxCount()
}

// RestoreMax seeds the high-water mark from a persisted value
func (c *ComboTracker) RestoreMax(n int) {
	c.tracker.RestoreMax(n)
}

// Multiplier returns 1 + count*step for the current count
func (c *ComboTracker) Multiplier() float64 {
	return multiplier.Linear(c.tracker.Count(), c.step, 0)
}

// State returns a snapshot of the combo tracker
func (c *ComboTracker) State() ComboState {
	return ComboState{
		State:             c.tracker.State(),
		CurrentMultiplier: c.Multiplier(),
	}
}

func (c *ComboTracker) change() ComboChange {
	return ComboChange{Count: c.tracker.Count(), Multiplier: c.Multiplier()}
}
