package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/osse101/fragrewards/internal/domain"
)

// Session is an open play session whose elapsed time accrues into play time
type Session struct {
	ID          string    `json:"id"`
	StartedAt   time.Time `json:"started_at"`
	lastAccrual time.Time
}

// SessionStart describes the result of StartSession
type SessionStart struct {
	Session    Session           `json:"session"`
	Resumed    bool              `json:"resumed"`
	DailyBonus domain.BaseReward `json:"daily_bonus"`
	BonusGiven bool              `json:"bonus_given"`
}

// StartSession opens a play session and runs the daily bonus check. Calling
// it with a session already open keeps that session.
func (e *Engine) StartSession() SessionStart {
	now := e.clock.Now()
	res := SessionStart{Resumed: e.session != nil}
	if e.session == nil {
		e.session = &Session{ID: uuid.NewString(), StartedAt: now, lastAccrual: now}
		e.log.Info(LogMsgSessionStarted, "session_id", e.session.ID)
	}
	res.Session = *e.session
	res.DailyBonus, res.BonusGiven = e.ClaimDailyBonus()
	return res
}

// EndSession accrues the open session's remaining time and closes it
func (e *Engine) EndSession() (Session, time.Duration, bool) {
	if e.session == nil {
		return Session{}, 0, false
	}
	now := e.clock.Now()
	e.accrue(now)
	s := *e.session
	e.session = nil
	played := now.Sub(s.StartedAt)
	e.log.Info(LogMsgSessionEnded, "session_id", s.ID, "duration", played)
	return s, played, true
}

// CurrentSession returns the open session, if any
func (e *Engine) CurrentSession() (Session, bool) {
	if e.session == nil {
		return Session{}, false
	}
	return *e.session, true
}

// accrue adds time elapsed since the last accrual to play time
func (e *Engine) accrue(now time.Time) {
	if e.session == nil {
		return
	}
	if d := now.Sub(e.session.lastAccrual); d > 0 {
		e.ledger.AddPlayTime(d)
		e.session.lastAccrual = now
	}
}
