// Package streak tracks time-windowed kill streaks and combos.
//
// Both trackers decay lazily: a counter is only reset when a Tick or the next
// event observes that the window has elapsed, never predictively.
package streak

import (
	"slices"
	"time"
)

// State is a snapshot of a tracker
type State struct {
	Count         int           `json:"count"`
	MaxCount      int           `json:"max_count"`
	LastEventTime time.Time     `json:"last_event_time"`
	Window        time.Duration `json:"window"`
}

// Tracker counts consecutive events with no gap longer than its window.
// It is not safe for concurrent use.
type Tracker struct {
	count         int
	maxCount      int
	lastEventTime time.Time
	window        time.Duration
	milestones    []int
}

// NewTracker creates an idle tracker. Milestones are copied, sorted and
// deduplicated; non-positive entries are ignored.
func NewTracker(window time.Duration, milestones []int) *Tracker {
	ms := make([]int, 0, len(milestones))
	for _, m := range milestones {
		if m > 0 {
			ms = append(ms, m)
		}
	}
	slices.Sort(ms)
	return &Tracker{
		window:     window,
		milestones: slices.Compact(ms),
	}
}

// RegisterEvent counts an event at now and returns the milestones equal to
// the new count. An expired streak is reset before the event is counted.
func (t *Tracker) RegisterEvent(now time.Time) []int {
	t.Tick(now)

	t.count++
	if t.count > t.maxCount {
		t.maxCount = t.count
	}
	t.lastEventTime = now

	var reached []int
	if _, found := slices.BinarySearch(t.milestones, t.count); found {
		reached = append(reached, t.count)
	}
	return reached
}

// Tick resets an active streak whose window has elapsed at now. It reports
// the count that was lost and whether a reset happened.
func (t *Tracker) Tick(now time.Time) (lost int, ended bool) {
	if t.count == 0 || !t.expired(now) {
		return 0, false
	}
	lost = t.count
	t.count = 0
	return lost, true
}

// Reset forces the streak to zero regardless of timing and returns the lost count
func (t *Tracker) Reset() int {
	lost := t.count
	t.count = 0
	return lost
}

// Count returns the count as of the last event, tick or reset
func (t *Tracker) Count() int {
	return t.count
}

// CountAt returns the count as it would be observed at now, without mutating the tracker
func (t *Tracker) CountAt(now time.Time) int {
	if t.count > 0 && t.expired(now) {
		return 0
	}
	return t.count
}

// MaxCount returns the highest count ever reached
func (t *Tracker) MaxCount() int {
	return t.maxCount
}

// RestoreMax seeds the high-water mark from a persisted value
func (t *Tracker) RestoreMax(n int) {
	t.maxCount = max(n, 0)
}

// Active reports whether the tracker holds a non-zero count
func (t *Tracker) Active() bool {
	return t.count > 0
}

// Window returns the tracker's decay window
func (t *Tracker) Window() time.Duration {
	return t.window
}

// Milestones returns a copy of the configured milestones
func (t *Tracker) Milestones() []int {
	return slices.Clone(t.milestones)
}

// State returns a snapshot of the tracker
func (t *Tracker) State() State {
	return State{
		Count:         t.count,
		MaxCount:      t.maxCount,
		LastEventTime: t.lastEventTime,
		Window:        t.window,
	}
}

func (t *Tracker) expired(now time.Time) bool {
	return now.Sub(t.lastEventTime) > t.window
}
