package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/fragrewards/internal/achievement"
	"github.com/osse101/fragrewards/internal/domain"
	"github.com/osse101/fragrewards/internal/engine"
	"github.com/osse101/fragrewards/internal/metrics"
	"github.com/osse101/fragrewards/internal/multiplier"
)

// Players is the per-player engine host the handlers run against
type Players interface {
	With(ctx context.Context, playerID string, fn func(*engine.Engine) error) error
	View(ctx context.Context, playerID string, fn func(*engine.Engine) error) error
	Checkpoint(ctx context.Context, playerID string) error
}

// KillRequest is the body of POST /kills
type KillRequest struct {
	Kind string `json:"kind" validate:"required,killkind"`
}

// MissionRequest is the body of POST /missions. A missing bonus counts as 1.
type MissionRequest struct {
	Bonus float64 `json:"bonus" validate:"gte=0,lte=1000"`
}

// AmountRequest is the body of POST /credits and POST /xp. Non-positive
// amounts are accepted and reported as not granted.
type AmountRequest struct {
	Amount int64 `json:"amount" validate:"lte=1000000000"`
}

// ProgressRequest is the body of PUT /achievements/{achievementID}
type ProgressRequest struct {
	Value int64 `json:"value" validate:"gte=0"`
}

// MultipliersRequest is the body of PUT /multipliers
type MultipliersRequest struct {
	Difficulty float64 `json:"difficulty" validate:"gte=0,lte=1000"`
	Event      float64 `json:"event" validate:"gte=0,lte=1000"`
	VIP        float64 `json:"vip" validate:"gte=0,lte=1000"`
}

// GrantResponse reports whether a direct grant was applied
type GrantResponse struct {
	Granted bool               `json:"granted"`
	Stats   domain.LedgerStats `json:"stats"`
}

// DailyBonusResponse is returned by POST /daily-bonus
type DailyBonusResponse struct {
	Granted bool              `json:"granted"`
	Reward  domain.BaseReward `json:"reward"`
}

// ProgressResponse is returned by PUT /achievements/{achievementID}
type ProgressResponse struct {
	Unlocked bool    `json:"unlocked"`
	Progress float64 `json:"progress"`
}

// SessionEndResponse is returned by POST /session/end
type SessionEndResponse struct {
	Ended           bool            `json:"ended"`
	Session         *engine.Session `json:"session,omitempty"`
	DurationSeconds float64         `json:"duration_seconds"`
}

// AchievementView is one entry of GET /achievements
type AchievementView struct {
	achievement.Achievement
	DisplayName string  `json:"display_name"`
	Progress    float64 `json:"progress"`
}

// PlayerHandler serves the per-player reward endpoints
type PlayerHandler struct {
	players Players
}

// NewPlayerHandler creates a PlayerHandler
func NewPlayerHandler(players Players) *PlayerHandler {
	return &PlayerHandler{players: players}
}

// HandleRegisterKill handles POST /players/{playerID}/kills
// @Summary Register kill
// @Description Award credits and XP for a kill with the current streak, combo and policy multipliers
// @Tags players
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body KillRequest true "Request body"
// @Success 200 {object} engine.KillResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/kills [post]
// @Security ApiKeyAuth
func (h *PlayerHandler) HandleRegisterKill(w http.ResponseWriter, r *http.Request) {
	playerID, r := playerContext(r)
	var req KillRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register kill"); err != nil {
		return
	}
	kind, err := domain.ParseKillKind(req.Kind)
	if err != nil {
		respondServiceError(w, r, "register kill", err)
		return
	}

	var res engine.KillResult
	err = h.players.With(r.Context(), playerID, func(e *engine.Engine) error {
		var kerr error
		res, kerr = e.RegisterKill(kind)
		return kerr
	})
	if err != nil {
		respondServiceError(w, r, "register kill", err)
		return
	}
	metrics.KillsRegistered.WithLabelValues(kind.String()).Inc()
	respondJSON(w, http.StatusOK, res)
}

// HandleRegisterDeath handles POST /players/{playerID}/deaths
// @Summary Register death
// @Description Reset the kill streak and combo
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} engine.DeathResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/deaths [post]
// @Security ApiKeyAuth
func (h *PlayerHandler) HandleRegisterDeath(w http.ResponseWriter, r *http.Request) {
	playerID, r := playerContext(r)
	var res engine.DeathResult
	err := h.players.With(r.Context(), playerID, func(e *engine.Engine) error {
		res = e.RegisterDeath()
		return nil
	})
	if err != nil {
		respondServiceError(w, r, "register death", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleCompleteMission handles POST /players/{playerID}/missions
// @Summary Complete mission
// @Description Award the mission reward scaled by an optional bonus
// @Tags players
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body MissionRequest true "Request body"
// @Success 200 {object} engine.MissionResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/missions [post]
// @Security ApiKeyAuth
func (h *PlayerHandler) HandleCompleteMission(w http.ResponseWriter, r *http.Request) {
	playerID, r := playerContext(r)
	var req MissionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Complete mission"); err != nil {
		return
	}
	var res engine.MissionResult
	err := h.players.With(r.Context(), playerID, func(e *engine.Engine) error {
		res = e.CompleteMission(req.Bonus)
		return nil
	})
	if err != nil {
		respondServiceError(w, r, "complete mission", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleAddCredits handles POST /players/{playerID}/credits
// @Summary Add credits
// @Description Grant credits directly without multipliers
// @Tags players
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body AmountRequest true "Request body"
// @Success 200 {object} GrantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/credits [post]
// @Security ApiKeyAuth
func (h *PlayerHandler) HandleAddCredits(w http.ResponseWriter, r *http.Request) {
	h.handleGrant(w, r, "add credits", (*engine.Engine).AddCredits)
}

// HandleAddXP handles POST /players/{playerID}/xp
// @Summary Add XP
// @Description Grant XP directly without multipliers
// @Tags players
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body AmountRequest true "Request body"
// @Success 200 {object} GrantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/xp [post]
// @Security ApiKeyAuth
func (h *PlayerHandler) HandleAddXP(w http.ResponseWriter, r *http.Request) {
	h.handleGrant(w, r, "add xp", (*engine.Engine).AddXP)
}

// handleGrant applies a direct grant. Non-positive amounts are not an error;
// the response reports granted=false.
func (h *PlayerHandler) handleGrant(w http.ResponseWriter, r *http.Request, opName string, grant func(*engine.Engine, int64) bool) {
	playerID, r := playerContext(r)
	var req AmountRequest
	if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
		return
	}
	var res GrantResponse
	err := h.players.With(r.Context(), playerID, func(e *engine.Engine) error {
		res.Granted = grant(e, req.Amount)
		res.Stats = e.Stats()
		return nil
	})
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleClaimDailyBonus handles POST /players/{playerID}/daily-bonus
// @Summary Claim daily bonus
// @Description Grant the daily bonus once per calendar day
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} DailyBonusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/daily-bonus [post]
// @Security ApiKeyAuth
func (h *PlayerHandler) HandleClaimDailyBonus(w http.ResponseWriter, r *http.Request) {
	playerID, r := playerContext(r)
	var res DailyBonusResponse
	err := h.players.With(r.Context(), playerID, func(e *engine.Engine) error {
		res.Reward, res.Granted = e.ClaimDailyBonus()
		return nil
	})
	if err != nil {
		respondServiceError(w, r, "claim daily bonus", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleUpdateAchievement handles PUT /players/{playerID}/achievements/{achievementID}
// @Summary Update achievement progress
// @Description Raise progress toward an achievement and unlock it at its target
// @Tags players
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param achievementID path string true "Achievement ID"
// @Param request body ProgressRequest true "Request body"
// @Success 200 {object} ProgressResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/achievements/{achievementID} [put]
// @Security ApiKeyAuth
func (h *PlayerHandler) HandleUpdateAchievement(w http.ResponseWriter, r *http.Request) {
	playerID, r := playerContext(r)
	achievementID := chi.URLParam(r, ParamAchievementID)
	var req ProgressRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update achievement"); err != nil {
		return
	}
	var res ProgressResponse
	err := h.players.With(r.Context(), playerID, func(e *engine.Engine) error {
		res.Unlocked = e.UpdateAchievementProgress(achievementID, req.Value)
		res.Progress = e.AchievementProgress(achievementID)
		return nil
	})
	if err != nil {
		respondServiceError(w, r, "update achievement", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleSetMultipliers handles PUT /players/{playerID}/multipliers
// @Summary Set multipliers
// @Description Replace the difficulty, event and VIP multipliers
// @Tags players
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body MultipliersRequest true "Request body"
// @Success 200 {object} multiplier.Policy
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/multipliers [put]
// @Security ApiKeyAuth
func (h *PlayerHandler) HandleSetMultipliers(w http.ResponseWriter, r *http.Request) {
	playerID, r := playerContext(r)
	var req MultipliersRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set multipliers"); err != nil {
		return
	}
	var res multiplier.Policy
	err := h.players.With(r.Context(), playerID, func(e *engine.Engine) error {
		res = e.SetMultipliers(req.Difficulty, req.Event, req.VIP)
		return nil
	})
	if err != nil {
		respondServiceError(w, r, "set multipliers", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleStartSession handles POST /players/{playerID}/session/start
// @Summary Start session
// @Description Open a play session, ending any session already open
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} engine.SessionStart
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/session/start [post]
// @Security ApiKeyAuth
func (h *PlayerHandler) HandleStartSession(w http.ResponseWriter, r *http.Request) {
	playerID, r := playerContext(r)
	var res engine.SessionStart
	err := h.players.With(r.Context(), playerID, func(e *engine.Engine) error {
		res = e.StartSession()
		return nil
	})
	if err != nil {
		respondServiceError(w, r, "start session", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleEndSession handles POST /players/{playerID}/session/end
// @Summary End session
// @Description Close the open play session and accrue its play time
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} SessionEndResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/session/end [post]
// @Security ApiKeyAuth
func (h *PlayerHandler) HandleEndSession(w http.ResponseWriter, r *http.Request) {
	playerID, r := playerContext(r)
	var res SessionEndResponse
	err := h.players.With(r.Context(), playerID, func(e *engine.Engine) error {
		s, played, ok := e.EndSession()
		if ok {
			res = SessionEndResponse{Ended: true, Session: &s, DurationSeconds: played.Round(time.Millisecond).Seconds()}
		}
		return nil
	})
	if err != nil {
		respondServiceError(w, r, "end session", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleGetStats handles GET /players/{playerID}/stats
// @Summary Get stats
// @Description Return balances, lifetime totals and reward state
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} engine.Snapshot
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/stats [get]
// @Security ApiKeyAuth
func (h *PlayerHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	playerID, r := playerContext(r)
	var res engine.Snapshot
	err := h.players.View(r.Context(), playerID, func(e *engine.Engine) error {
		res = e.Snapshot()
		return nil
	})
	if err != nil {
		respondServiceError(w, r, "get stats", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleGetAchievements handles GET /players/{playerID}/achievements
// @Summary List achievements
// @Description Return every achievement with its progress
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {array} AchievementView
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/achievements [get]
// @Security ApiKeyAuth
func (h *PlayerHandler) HandleGetAchievements(w http.ResponseWriter, r *http.Request) {
	playerID, r := playerContext(r)
	var res []AchievementView
	err := h.players.View(r.Context(), playerID, func(e *engine.Engine) error {
		all := e.Achievements()
		res = make([]AchievementView, 0, len(all))
		for _, a := range all {
			res = append(res, AchievementView{
				Achievement: a,
				DisplayName: a.DisplayName(),
				Progress:    e.AchievementProgress(a.ID),
			})
		}
		return nil
	})
	if err != nil {
		respondServiceError(w, r, "get achievements", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleCheckpoint handles POST /players/{playerID}/checkpoint
// @Summary Checkpoint player
// @Description Write the player record to storage now
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/checkpoint [post]
// @Security ApiKeyAuth
func (h *PlayerHandler) HandleCheckpoint(w http.ResponseWriter, r *http.Request) {
	playerID, r := playerContext(r)
	if err := h.players.Checkpoint(r.Context(), playerID); err != nil {
		respondServiceError(w, r, "checkpoint", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCheckpointSaved})
}
