package streak

import "time"

// Default tracker tuning
const (
	// DefaultStreakWindow is the longest gap between kills that keeps a streak alive
	DefaultStreakWindow = 10 * time.Second

	// DefaultComboWindow is the longest gap between kills that keeps a combo alive
	DefaultComboWindow = 3 * time.Second

	// DefaultComboStep is the multiplier added per combo hit
	DefaultComboStep = 0.1

	// DefaultStreakStep is the multiplier added per streak kill
	DefaultStreakStep = 0.05

	// DefaultStreakCap is the highest multiplier a streak can reach
	DefaultStreakCap = 3.0
)

// DefaultMilestones returns the streak counts that trigger a one-time bonus
func DefaultMilestones() []int {
	return []int{5, 10, 20, 50, 100}
}
