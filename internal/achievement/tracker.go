// Package achievement tracks threshold achievements with one-way unlocks.
package achievement

import "github.com/osse101/fragrewards/internal/domain"

// Achievement is a catalog entry plus its mutable progress
type Achievement struct {
	Definition
	CurrentValue int64 `json:"current_value"`
	Unlocked     bool  `json:"unlocked"`
}

// Progress is the persisted part of an achievement
type Progress struct {
	ID           string `json:"id"`
	CurrentValue int64  `json:"current_value"`
	Unlocked     bool   `json:"unlocked"`
}

// Tracker holds the achievement table in catalog order. It is not safe for
// concurrent use.
type Tracker struct {
	items    []Achievement
	byID     map[string]int
	byMetric map[domain.Metric][]int
}

// NewTracker seeds a tracker from catalog definitions. Later duplicates of an
// id are dropped; loaders reject them before this point.
func NewTracker(defs []Definition) *Tracker {
	t := &Tracker{
		items:    make([]Achievement, 0, len(defs)),
		byID:     make(map[string]int, len(defs)),
		byMetric: make(map[domain.Metric][]int),
	}
	for _, def := range defs {
		if _, dup := t.byID[def.ID]; dup {
			continue
		}
		idx := len(t.items)
		t.items = append(t.items, Achievement{Definition: def})
		t.byID[def.ID] = idx
		if def.Metric != domain.MetricNone {
			t.byMetric[def.Metric] = append(t.byMetric[def.Metric], idx)
		}
	}
	return t
}

// UpdateProgress overwrites the current value of a locked achievement and
// unlocks it when the target is met. The unlocked achievement is returned
// with true exactly once; unknown ids and unlocked achievements are no-ops.
//
// The overwrite is absolute: a lower value than before regresses the
// displayed progress of a locked achievement.
func (t *Tracker) UpdateProgress(id string, value int64) (Achievement, bool) {
	idx, ok := t.byID[id]
	if !ok {
		return Achievement{}, false
	}
	return t.update(idx, value)
}

// Evaluate feeds value into every locked achievement keyed on metric and
// returns the ones that unlocked, in catalog order
func (t *Tracker) Evaluate(metric domain.Metric, value int64) []Achievement {
	var unlocked []Achievement
	for _, idx := range t.byMetric[metric] {
		if a, ok := t.update(idx, value); ok {
			unlocked = append(unlocked, a)
		}
	}
	return unlocked
}

func (t *Tracker) update(idx int, value int64) (Achievement, bool) {
	a := &t.items[idx]
	if a.Unlocked {
		return Achievement{}, false
	}
	a.CurrentValue = max(value, 0)
	if a.CurrentValue < a.Target {
		return Achievement{}, false
	}
	a.Unlocked = true
	return *a, true
}

// GetProgress returns current/target clamped to 1, or 0 for unknown ids
func (t *Tracker) GetProgress(id string) float64 {
	idx, ok := t.byID[id]
	if !ok {
		return 0
	}
	a := t.items[idx]
	if a.Unlocked {
		return 1
	}
	if a.Target <= 0 {
		return 0
	}
	return min(float64(a.CurrentValue)/float64(a.Target), 1)
}

// Get returns the achievement with id
func (t *Tracker) Get(id string) (Achievement, bool) {
	idx, ok := t.byID[id]
	if !ok {
		return Achievement{}, false
	}
	return t.items[idx], true
}

// All returns a copy of every achievement in catalog order
func (t *Tracker) All() []Achievement {
	out := make([]Achievement, len(t.items))
	copy(out, t.items)
	return out
}

// UnlockedCount returns how many achievements are unlocked
func (t *Tracker) UnlockedCount() int {
	n := 0
	for _, a := range t.items {
		if a.Unlocked {
			n++
		}
	}
	return n
}

// Snapshot returns the mutable progress of every achievement
func (t *Tracker) Snapshot() []Progress {
	out := make([]Progress, len(t.items))
	for i, a := range t.items {
		out[i] = Progress{ID: a.ID, CurrentValue: a.CurrentValue, Unlocked: a.Unlocked}
	}
	return out
}

// Restore applies persisted progress. Ids missing from the catalog are
// ignored and catalog entries missing from progress keep their defaults.
// Restoring never grants rewards.
func (t *Tracker) Restore(progress []Progress) {
	for _, p := range progress {
		idx, ok := t.byID[p.ID]
		if !ok {
			continue
		}
		t.items[idx].CurrentValue = max(p.CurrentValue, 0)
		t.items[idx].Unlocked = p.Unlocked
	}
}

// Definitions returns the catalog the tracker was built from
func (t *Tracker) Definitions() []Definition {
	out := make([]Definition, len(t.items))
	for i, a := range t.items {
		out[i] = a.Definition
	}
	return out
}
