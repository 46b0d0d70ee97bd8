package domain

import (
	"fmt"
	"strings"
)

// KillKind classifies a kill for reward purposes
type KillKind int

const (
	KillStandard KillKind = iota
	KillElite
	KillBoss
	KillHeadshot
	KillMultikill
)

// AllKillKinds lists every kill kind in declaration order
var AllKillKinds = []KillKind{KillStandard, KillElite, KillBoss, KillHeadshot, KillMultikill}

var killKindNames = map[KillKind]string{
	KillStandard:  "standard",
	KillElite:     "elite",
	KillBoss:      "boss",
	KillHeadshot:  "headshot",
	KillMultikill: "multikill",
}

// String returns the stable lowercase name of the kill kind
func (k KillKind) String() string {
	if name, ok := killKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kill_kind(%d)", int(k))
}

// Valid reports whether k is one of the declared kill kinds
func (k KillKind) Valid() bool {
	_, ok := killKindNames[k]
	return ok
}

// ParseKillKind resolves a kill kind from its name (case-insensitive)
func ParseKillKind(s string) (KillKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for kind, n := range killKindNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKillKind, s)
}

// BaseReward is the unscaled credit and XP value of an event
type BaseReward struct {
	Credits int64 `json:"credits"`
	XP      int64 `json:"xp"`
}

// Times returns the reward multiplied by an integer factor
func (r BaseReward) Times(n int64) BaseReward {
	return BaseReward{Credits: r.Credits * n, XP: r.XP * n}
}
