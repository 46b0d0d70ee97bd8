package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLedgerStats_Sanitized(t *testing.T) {
	in := LedgerStats{
		TotalKills:             -1,
		TotalDeaths:            3,
		TotalCreditsEarned:     -50,
		TotalXPEarned:          25,
		TotalMissionsCompleted: -2,
		TotalPlayTime:          -time.Second,
		MaxKillStreak:          -4,
		MaxCombo:               7,
	}

	assert.Equal(t, LedgerStats{
		TotalDeaths:   3,
		TotalXPEarned: 25,
		MaxCombo:      7,
	}, in.Sanitized())

	valid := LedgerStats{TotalKills: 1, TotalPlayTime: time.Minute}
	assert.Equal(t, valid, valid.Sanitized())
}
