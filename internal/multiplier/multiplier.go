// Package multiplier composes reward multipliers and scales base rewards.
//
// All arithmetic is carried out in decimal so that a reward landing exactly
// on .5 rounds half-to-even instead of drifting with binary float error.
package multiplier

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	one      = decimal.NewFromInt(1)
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
)

// Set holds the independent factors applied to a single grant
type Set struct {
	Streak     float64 `json:"streak"`
	Combo      float64 `json:"combo"`
	Difficulty float64 `json:"difficulty"`
	Event      float64 `json:"event"`
	VIP        float64 `json:"vip"`
}

// Policy holds the factors that do not depend on the player's streak or combo
type Policy struct {
	Difficulty float64 `json:"difficulty"`
	Event      float64 `json:"event"`
	VIP        float64 `json:"vip"`
}

// DefaultPolicy returns the neutral policy
func DefaultPolicy() Policy {
	return Policy{Difficulty: Neutral, Event: Neutral, VIP: Neutral}
}

// Normalized returns the policy with floors and MaxFactor applied
func (p Policy) Normalized() Policy {
	return Policy{
		Difficulty: Clamp(p.Difficulty, MinDifficulty),
		Event:      Clamp(p.Event, MinEvent),
		VIP:        Clamp(p.VIP, MinVIP),
	}
}

// With combines the policy with streak and combo factors into a Set
func (p Policy) With(streak, combo float64) Set {
	return Set{
		Streak:     streak,
		Combo:      combo,
		Difficulty: p.Difficulty,
		Event:      p.Event,
		VIP:        p.VIP,
	}
}

// Normalized returns the set with floors and MaxFactor applied
func (s Set) Normalized() Set {
	return Set{
		Streak:     Clamp(s.Streak, Neutral),
		Combo:      Clamp(s.Combo, Neutral),
		Difficulty: Clamp(s.Difficulty, MinDifficulty),
		Event:      Clamp(s.Event, MinEvent),
		VIP:        Clamp(s.VIP, MinVIP),
	}
}

// Total returns the product of all factors after floors are applied
func (s Set) Total() float64 {
	f, _ := s.total().Float64()
	return f
}

func (s Set) total() decimal.Decimal {
	n := s.Normalized()
	return decimal.NewFromFloat(n.Streak).
		Mul(decimal.NewFromFloat(n.Combo)).
		Mul(decimal.NewFromFloat(n.Difficulty)).
		Mul(decimal.NewFromFloat(n.Event)).
		Mul(decimal.NewFromFloat(n.VIP))
}

// Apply scales base by the set's total, rounding half-to-even and clamping at zero
func (s Set) Apply(base int64) int64 {
	return scale(base, s.total())
}

// Scale multiplies base by factor, rounding half-to-even. The result is
// clamped to [0, math.MaxInt64]. NaN and negative factors scale to zero and
// factors above MaxFactor are capped.
func Scale(base int64, factor float64) int64 {
	if math.IsNaN(factor) || factor <= 0 {
		return 0
	}
	return scale(base, decimal.NewFromFloat(min(factor, MaxFactor)))
}

func scale(base int64, factor decimal.Decimal) int64 {
	v := decimal.NewFromInt(base).Mul(factor).RoundBank(0)
	if v.Sign() <= 0 {
		return 0
	}
	if v.GreaterThan(maxInt64) {
		return math.MaxInt64
	}
	return v.IntPart()
}

// Linear returns 1 + count*step, capped at ceiling when ceiling > 1.
// Negative counts and steps are treated as zero so the result is never below 1.
func Linear(count int, step, ceiling float64) float64 {
	if count <= 0 || !finite(step) || step <= 0 {
		return Neutral
	}
	v := one.Add(decimal.NewFromInt(int64(count)).Mul(decimal.NewFromFloat(step)))
	if finite(ceiling) && ceiling > Neutral {
		if c := decimal.NewFromFloat(ceiling); v.GreaterThan(c) {
			v = c
		}
	}
	f, _ := v.Float64()
	return f
}

// Percent expresses a factor as a whole percentage, e.g. 1.3 -> 130
func Percent(factor float64) int {
	factor = Clamp(factor, 0)
	return int(decimal.NewFromFloat(factor).Mul(decimal.NewFromInt(100)).RoundBank(0).IntPart())
}

// Clamp bounds a factor to [lo, MaxFactor]. NaN becomes lo.
func Clamp(v, lo float64) float64 {
	switch {
	case math.IsNaN(v) || v < lo:
		return lo
	case v > MaxFactor:
		return MaxFactor
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
