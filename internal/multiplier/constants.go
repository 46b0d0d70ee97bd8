package multiplier

// Policy multiplier floors
const (
	// MinDifficulty is the lowest difficulty factor a policy may apply
	MinDifficulty = 0.5

	// MinEvent is the lowest event factor; events can only boost rewards
	MinEvent = 1.0

	// MinVIP is the lowest VIP factor; VIP can only boost rewards
	MinVIP = 1.0

	// Neutral is the identity factor
	Neutral = 1.0

	// MaxFactor caps any single factor, including mission bonuses. Larger
	// and infinite inputs are clamped to it.
	MaxFactor = 1000.0
)
