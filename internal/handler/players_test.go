package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/fragrewards/internal/clock"
	"github.com/osse101/fragrewards/internal/domain"
	"github.com/osse101/fragrewards/internal/engine"
	"github.com/osse101/fragrewards/internal/persistence"
	"github.com/osse101/fragrewards/internal/player"
	"github.com/osse101/fragrewards/mocks"
)

var start = time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)

type testAPI struct {
	router  chi.Router
	clock   *clock.SimulatedClock
	storage persistence.Storage
}

func newTestAPI(t *testing.T, storage persistence.Storage) *testAPI {
	t.Helper()
	api := &testAPI{clock: clock.NewSimulatedClock(start), storage: storage}
	factory := func(id string) *engine.Engine {
		return engine.New(engine.DefaultConfig(), engine.Dependencies{PlayerID: id, Clock: api.clock})
	}
	h := NewPlayerHandler(player.NewRegistry(persistence.NewStore(storage), factory))

	r := chi.NewRouter()
	r.Route("/players/{playerID}", func(r chi.Router) {
		r.Post("/kills", h.HandleRegisterKill)
		r.Post("/deaths", h.HandleRegisterDeath)
		r.Post("/missions", h.HandleCompleteMission)
		r.Post("/credits", h.HandleAddCredits)
		r.Post("/xp", h.HandleAddXP)
		r.Post("/daily-bonus", h.HandleClaimDailyBonus)
		r.Put("/multipliers", h.HandleSetMultipliers)
		r.Post("/session/start", h.HandleStartSession)
		r.Post("/session/end", h.HandleEndSession)
		r.Put("/achievements/{achievementID}", h.HandleUpdateAchievement)
		r.Get("/stats", h.HandleGetStats)
		r.Get("/achievements", h.HandleGetAchievements)
		r.Post("/checkpoint", h.HandleCheckpoint)
	})
	api.router = r
	return api
}

func (a *testAPI) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHandleRegisterKill(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantCredits int64
		wantXP      int64
	}{
		{"standard", `{"kind":"standard"}`, http.StatusOK, 50, 25},
		{"case insensitive", `{"kind":"BOSS"}`, http.StatusOK, 500, 250},
		{"headshot", `{"kind":"headshot"}`, http.StatusOK, 100, 50},
		{"unknown kind", `{"kind":"dragon"}`, http.StatusBadRequest, 0, 0},
		{"missing kind", `{}`, http.StatusBadRequest, 0, 0},
		{"malformed json", `{"kind":`, http.StatusBadRequest, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t, persistence.NewMemoryStorage())

			rec := api.do(t, http.MethodPost, "/players/p1/kills", tt.body)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus != http.StatusOK {
				return
			}
			res := decode[engine.KillResult](t, rec)
			assert.Equal(t, tt.wantCredits, res.Credits)
			assert.Equal(t, tt.wantXP, res.XP)
			assert.Equal(t, 1, res.StreakCount)
		})
	}
}

func TestHandleRegisterKill_ValidationFields(t *testing.T) {
	api := newTestAPI(t, persistence.NewMemoryStorage())

	rec := api.do(t, http.MethodPost, "/players/p1/kills", `{"kind":"dragon"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	res := decode[ValidationErrorResponse](t, rec)
	assert.Equal(t, ErrMsgInvalidRequestSummary, res.Error)
	assert.Contains(t, res.Fields["kind"], "standard")
}

func TestHandleRegisterKill_InvalidPlayerID(t *testing.T) {
	api := newTestAPI(t, persistence.NewMemoryStorage())

	rec := api.do(t, http.MethodPost, "/players/bad.id/kills", `{"kind":"standard"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ErrMsgInvalidRequestSummary, decode[ErrorResponse](t, rec).Error)
}

func TestHandleRegisterKill_StorageFailure(t *testing.T) {
	storage := mocks.NewMockStorage(t)
	storage.On("Read", mock.Anything, "p1.json").Return(nil, fmt.Errorf("%w: connection refused", domain.ErrStorageFailure))
	api := newTestAPI(t, storage)

	rec := api.do(t, http.MethodPost, "/players/p1/kills", `{"kind":"standard"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, ErrMsgPlayerUnavailable, decode[ErrorResponse](t, rec).Error)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestHandleRegisterDeath(t *testing.T) {
	api := newTestAPI(t, persistence.NewMemoryStorage())
	for range 3 {
		require.Equal(t, http.StatusOK, api.do(t, http.MethodPost, "/players/p1/kills", `{"kind":"standard"}`).Code)
	}

	rec := api.do(t, http.MethodPost, "/players/p1/deaths", "")

	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[engine.DeathResult](t, rec)
	assert.Equal(t, 3, res.LostStreak)
	assert.Equal(t, 3, res.LostCombo)
}

func TestHandleCompleteMission(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantCredits int64
	}{
		{"empty body", "", http.StatusOK, 500},
		{"bonus", `{"bonus":1.5}`, http.StatusOK, 750},
		{"bonus below one", `{"bonus":0.5}`, http.StatusOK, 500},
		{"negative bonus", `{"bonus":-1}`, http.StatusBadRequest, 0},
		{"largest bonus", `{"bonus":1000}`, http.StatusOK, 500_000},
		{"bonus above limit", `{"bonus":1000.5}`, http.StatusBadRequest, 0},
		{"overflow-sized bonus", `{"bonus":1e300}`, http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t, persistence.NewMemoryStorage())

			rec := api.do(t, http.MethodPost, "/players/p1/missions", tt.body)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantCredits, decode[engine.MissionResult](t, rec).Credits)
			}
		})
	}
}

func TestHandleDirectGrants(t *testing.T) {
	api := newTestAPI(t, persistence.NewMemoryStorage())

	rec := api.do(t, http.MethodPost, "/players/p1/credits", `{"amount":120}`)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[GrantResponse](t, rec)
	assert.True(t, res.Granted)
	assert.Equal(t, int64(120), res.Stats.TotalCreditsEarned)

	rec = api.do(t, http.MethodPost, "/players/p1/xp", `{"amount":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	res = decode[GrantResponse](t, rec)
	assert.False(t, res.Granted, "non-positive amounts are ignored")
	assert.Zero(t, res.Stats.TotalXPEarned)

	rec = api.do(t, http.MethodPost, "/players/p1/xp", `{"amount":-5}`)
	assert.False(t, decode[GrantResponse](t, rec).Granted)
}

func TestHandleDirectGrants_AmountBounds(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantField  string
	}{
		{"largest credit grant", "/players/p1/credits", `{"amount":1000000000}`, http.StatusOK, ""},
		{"credits above limit", "/players/p1/credits", `{"amount":1000000001}`, http.StatusBadRequest, "amount"},
		{"max int64 credits", "/players/p1/credits", `{"amount":9223372036854775807}`, http.StatusBadRequest, "amount"},
		{"xp above limit", "/players/p1/xp", `{"amount":5000000000}`, http.StatusBadRequest, "amount"},
		{"amount beyond int64", "/players/p1/xp", `{"amount":99999999999999999999}`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t, persistence.NewMemoryStorage())

			rec := api.do(t, http.MethodPost, tt.path, tt.body)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantField != "" {
				res := decode[ValidationErrorResponse](t, rec)
				assert.Contains(t, res.Fields[tt.wantField], "at most")
			}
		})
	}

	t.Run("totals stay exact below the limit", func(t *testing.T) {
		api := newTestAPI(t, persistence.NewMemoryStorage())
		for range 3 {
			require.Equal(t, http.StatusOK, api.do(t, http.MethodPost, "/players/p1/credits", `{"amount":1000000000}`).Code)
		}
		stats := decode[engine.Snapshot](t, api.do(t, http.MethodGet, "/players/p1/stats", ""))
		assert.GreaterOrEqual(t, stats.Stats.TotalCreditsEarned, int64(3_000_000_000))
	})
}

func TestHandleClaimDailyBonus(t *testing.T) {
	api := newTestAPI(t, persistence.NewMemoryStorage())

	first := decode[DailyBonusResponse](t, api.do(t, http.MethodPost, "/players/p1/daily-bonus", ""))
	second := decode[DailyBonusResponse](t, api.do(t, http.MethodPost, "/players/p1/daily-bonus", ""))
	api.clock.AdvanceDays(1)
	third := decode[DailyBonusResponse](t, api.do(t, http.MethodPost, "/players/p1/daily-bonus", ""))

	assert.True(t, first.Granted)
	assert.Equal(t, domain.BaseReward{Credits: 1000, XP: 200}, first.Reward)
	assert.False(t, second.Granted)
	assert.True(t, third.Granted)
}

func TestHandleUpdateAchievement(t *testing.T) {
	api := newTestAPI(t, persistence.NewMemoryStorage())

	rec := api.do(t, http.MethodPut, "/players/p1/achievements/sharpshooter", `{"value":25}`)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[ProgressResponse](t, rec)
	assert.False(t, res.Unlocked)
	assert.InDelta(t, 0.5, res.Progress, 1e-9)

	res = decode[ProgressResponse](t, api.do(t, http.MethodPut, "/players/p1/achievements/sharpshooter", `{"value":50}`))
	assert.True(t, res.Unlocked)
	assert.InDelta(t, 1.0, res.Progress, 1e-9)

	res = decode[ProgressResponse](t, api.do(t, http.MethodPut, "/players/p1/achievements/no_such_thing", `{"value":50}`))
	assert.False(t, res.Unlocked)
	assert.Zero(t, res.Progress)

	rec = api.do(t, http.MethodPut, "/players/p1/achievements/sharpshooter", `{"value":-1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetAchievements(t *testing.T) {
	api := newTestAPI(t, persistence.NewMemoryStorage())
	require.Equal(t, http.StatusOK, api.do(t, http.MethodPost, "/players/p1/kills", `{"kind":"standard"}`).Code)

	rec := api.do(t, http.MethodGet, "/players/p1/achievements", "")

	require.Equal(t, http.StatusOK, rec.Code)
	views := decode[[]AchievementView](t, rec)
	require.NotEmpty(t, views)
	byID := make(map[string]AchievementView, len(views))
	for _, v := range views {
		assert.NotEmpty(t, v.DisplayName)
		byID[v.ID] = v
	}
	spree, ok := byID["killing_spree"]
	require.True(t, ok)
	assert.False(t, spree.Unlocked)
	assert.InDelta(t, 0.2, spree.Progress, 1e-9)
}

func TestHandleSetMultipliers(t *testing.T) {
	api := newTestAPI(t, persistence.NewMemoryStorage())

	rec := api.do(t, http.MethodPut, "/players/p1/multipliers", `{"difficulty":1.5,"event":0.2,"vip":1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	kill := decode[engine.KillResult](t, api.do(t, http.MethodPost, "/players/p1/kills", `{"kind":"standard"}`))
	assert.Equal(t, int64(75), kill.Credits, "event factor is floored at 1")

	for _, body := range []string{
		`{"difficulty":1000.1,"event":1,"vip":1}`,
		`{"difficulty":1,"event":1e308,"vip":1}`,
		`{"difficulty":1,"event":1,"vip":5000}`,
	} {
		rec := api.do(t, http.MethodPut, "/players/p1/multipliers", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestHandleSession(t *testing.T) {
	api := newTestAPI(t, persistence.NewMemoryStorage())

	rec := api.do(t, http.MethodPost, "/players/p1/session/start", "")
	require.Equal(t, http.StatusOK, rec.Code)
	started := decode[engine.SessionStart](t, rec)
	assert.NotEmpty(t, started.Session.ID)
	assert.True(t, started.BonusGiven)

	api.clock.Advance(90 * time.Second)
	ended := decode[SessionEndResponse](t, api.do(t, http.MethodPost, "/players/p1/session/end", ""))
	assert.True(t, ended.Ended)
	assert.Equal(t, started.Session.ID, ended.Session.ID)
	assert.InDelta(t, 90.0, ended.DurationSeconds, 1e-9)

	again := decode[SessionEndResponse](t, api.do(t, http.MethodPost, "/players/p1/session/end", ""))
	assert.False(t, again.Ended)
	assert.Nil(t, again.Session)

	snap := decode[engine.Snapshot](t, api.do(t, http.MethodGet, "/players/p1/stats", ""))
	assert.Equal(t, 90*time.Second, snap.Stats.TotalPlayTime)
}

func TestHandleGetStats(t *testing.T) {
	api := newTestAPI(t, persistence.NewMemoryStorage())
	for range 2 {
		api.do(t, http.MethodPost, "/players/p1/kills", `{"kind":"standard"}`)
	}

	rec := api.do(t, http.MethodGet, "/players/p1/stats", "")

	require.Equal(t, http.StatusOK, rec.Code)
	snap := decode[engine.Snapshot](t, rec)
	assert.Equal(t, "p1", snap.PlayerID)
	assert.Equal(t, int64(2), snap.Stats.TotalKills)
	assert.Equal(t, 2, snap.CurrentStreak)
	assert.True(t, snap.DailyBonusAvailable)
}

func TestHandleCheckpoint(t *testing.T) {
	storage := persistence.NewMemoryStorage()
	api := newTestAPI(t, storage)
	require.Equal(t, http.StatusOK, api.do(t, http.MethodPost, "/players/p1/kills", `{"kind":"elite"}`).Code)

	rec := api.do(t, http.MethodPost, "/players/p1/checkpoint", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, MsgCheckpointSaved, decode[SuccessResponse](t, rec).Message)

	rec2, err := persistence.NewStore(storage).Restore(context.Background(), "p1")
	require.NoError(t, err)
	require.NotNil(t, rec2)
	assert.Equal(t, int64(150), rec2.Stats.TotalCreditsEarned)
}
