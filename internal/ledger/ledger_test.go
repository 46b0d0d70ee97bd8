package ledger

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/fragrewards/internal/domain"
	"github.com/osse101/fragrewards/mocks"
)

func TestLedger_AddCredits(t *testing.T) {
	credits := mocks.NewMockCreditAccount(t)
	credits.On("Add", int64(50)).Once()
	credits.On("Add", int64(7)).Once()
	l := New(credits, nil)

	g, ok := l.AddCredits(50, domain.SourceKill)
	require.True(t, ok)
	assert.Equal(t, Grant{Kind: domain.RewardCredits, Amount: 50, Source: domain.SourceKill}, g)

	for _, amount := range []int64{0, -10} {
		_, ok := l.AddCredits(amount, domain.SourceManual)
		assert.False(t, ok)
	}

	_, ok = l.AddCredits(7, domain.SourceManual)
	require.True(t, ok)
	assert.Equal(t, int64(57), l.Stats().TotalCreditsEarned)
	credits.AssertNotCalled(t, "Add", mock.MatchedBy(func(n int64) bool { return n <= 0 }))
}

func TestLedger_AddXP(t *testing.T) {
	xp := mocks.NewMockXPAccount(t)
	xp.On("Add", int64(25)).Once()
	l := New(nil, xp)

	_, ok := l.AddXP(25, domain.SourceKill)
	require.True(t, ok)
	_, ok = l.AddXP(0, domain.SourceKill)
	assert.False(t, ok)

	assert.Equal(t, int64(25), l.Stats().TotalXPEarned)
	assert.Zero(t, l.Stats().TotalCreditsEarned)
}

func TestLedger_TotalsSaturate(t *testing.T) {
	tests := []struct {
		name   string
		grants []int64
		want   int64
	}{
		{"single max grant", []int64{math.MaxInt64}, math.MaxInt64},
		{"two max grants", []int64{math.MaxInt64, math.MaxInt64}, math.MaxInt64},
		{"crosses the limit", []int64{math.MaxInt64 - 10, 11}, math.MaxInt64},
		{"just below the limit", []int64{math.MaxInt64 - 10, 10}, math.MaxInt64},
		{"ordinary sum", []int64{40, 2}, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(nil, nil)
			for _, g := range tt.grants {
				_, ok := l.AddCredits(g, domain.SourceManual)
				require.True(t, ok)
				_, ok = l.AddXP(g, domain.SourceManual)
				require.True(t, ok)
			}
			assert.Equal(t, tt.want, l.Stats().TotalCreditsEarned)
			assert.Equal(t, tt.want, l.Stats().TotalXPEarned)
		})
	}
}

func TestLedger_Counters(t *testing.T) {
	l := New(nil, nil)

	assert.Equal(t, int64(1), l.RecordKill())
	assert.Equal(t, int64(2), l.RecordKill())
	assert.Equal(t, int64(1), l.RecordDeath())
	assert.Equal(t, int64(1), l.RecordMission())

	l.AddPlayTime(time.Minute)
	l.AddPlayTime(-time.Hour)
	l.ObserveStreak(4)
	l.ObserveStreak(2)
	l.ObserveCombo(3)

	assert.Equal(t, domain.LedgerStats{
		TotalKills:             2,
		TotalDeaths:            1,
		TotalMissionsCompleted: 1,
		TotalPlayTime:          time.Minute,
		MaxKillStreak:          4,
		MaxCombo:               3,
	}, l.Stats())
}

func TestLedger_Value(t *testing.T) {
	l := New(nil, nil)
	l.RecordKill()
	l.AddCredits(10, domain.SourceManual)

	tests := []struct {
		metric domain.Metric
		want   int64
		ok     bool
	}{
		{domain.MetricKills, 1, true},
		{domain.MetricCreditsEarned, 10, true},
		{domain.MetricXPEarned, 0, true},
		{domain.MetricKillStreak, 0, false},
		{domain.MetricNone, 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.metric), func(t *testing.T) {
			got, ok := l.Value(tt.metric)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLedger_Restore(t *testing.T) {
	credits := mocks.NewMockCreditAccount(t)
	l := New(credits, nil)

	l.Restore(domain.LedgerStats{TotalKills: 9, TotalCreditsEarned: 400, TotalDeaths: -1})

	assert.Equal(t, domain.LedgerStats{TotalKills: 9, TotalCreditsEarned: 400}, l.Stats())
	credits.AssertNotCalled(t, "Add", mock.Anything)
}
