// Package player hosts one reward engine per player behind a per-player
// mutex. Engines are restored from the record store on first use and
// checkpointed back on demand, periodically and on shutdown.
package player

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/osse101/fragrewards/internal/clock"
	"github.com/osse101/fragrewards/internal/concurrency"
	"github.com/osse101/fragrewards/internal/domain"
	"github.com/osse101/fragrewards/internal/engine"
	"github.com/osse101/fragrewards/internal/logger"
	"github.com/osse101/fragrewards/internal/persistence"
)

// EngineFactory builds a fresh engine for a player
type EngineFactory func(playerID string) *engine.Engine

type entry struct {
	engine     *engine.Engine
	dirty      bool
	lastActive time.Time
}

// Option configures a Registry
type Option func(*Registry)

// WithClock sets the clock used to stamp player activity for eviction
func WithClock(clk clock.Clock) Option {
	return func(r *Registry) {
		r.clock = clk
	}
}

// Registry owns the loaded engines. Every engine call happens under that
// player's lock, so a kill's read-compute-mutate-advance sequence is atomic
// per player while different players proceed in parallel.
type Registry struct {
	locks   *concurrency.LockManager
	store   *persistence.Store
	factory EngineFactory
	clock   clock.Clock

	mu      sync.RWMutex
	players map[string]*entry
}

// NewRegistry creates a registry. A nil store keeps players in memory only.
func NewRegistry(store *persistence.Store, factory EngineFactory, opts ...Option) *Registry {
	r := &Registry{
		locks:   concurrency.NewLockManager(),
		store:   store,
		factory: factory,
		clock:   clock.NewRealClock(),
		players: make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// With runs fn against the player's engine, loading it first if needed,
// and marks the player for the next checkpoint
func (r *Registry) With(ctx context.Context, playerID string, fn func(*engine.Engine) error) error {
	return r.do(ctx, playerID, true, fn)
}

// View runs fn against the player's engine without marking it changed
func (r *Registry) View(ctx context.Context, playerID string, fn func(*engine.Engine) error) error {
	return r.do(ctx, playerID, false, fn)
}

func (r *Registry) do(ctx context.Context, playerID string, mutate bool, fn func(*engine.Engine) error) error {
	if err := validateID(playerID); err != nil {
		return err
	}
	unlock := r.locks.Lock(playerID)
	defer unlock()

	ent, err := r.load(ctx, playerID)
	if err != nil {
		return err
	}
	ent.lastActive = r.clock.Now()
	if mutate {
		ent.dirty = true
	}
	return fn(ent.engine)
}

// load returns the loaded entry or restores it. Callers hold the player lock.
func (r *Registry) load(ctx context.Context, playerID string) (*entry, error) {
	if ent := r.get(playerID); ent != nil {
		return ent, nil
	}
	log := logger.FromContext(ctx)

	var rec *persistence.Record
	if r.store != nil {
		var err error
		rec, err = r.store.Restore(ctx, playerID)
		switch {
		case errors.Is(err, domain.ErrCorruptRecord):
			// The corrupt bytes are moved aside before the first checkpoint
			// can replace them
			moved, qerr := r.store.Quarantine(ctx, playerID, r.clock.Now())
			if qerr != nil {
				return nil, fmt.Errorf("%s %s: %w", ErrMsgRestorePlayer, playerID, qerr)
			}
			log.Warn(LogMsgCorruptRecordReset, logger.AttrKeyPlayerID, playerID, "moved_to", moved)
		case err != nil:
			return nil, fmt.Errorf("%s %s: %w", ErrMsgRestorePlayer, playerID, err)
		}
	}

	e := r.factory(playerID)
	e.Load(rec)
	ent := &entry{engine: e}

	r.mu.Lock()
	r.players[playerID] = ent
	r.mu.Unlock()

	log.Info(LogMsgPlayerLoaded, logger.AttrKeyPlayerID, playerID, "restored", rec != nil)
	return ent, nil
}

func (r *Registry) get(playerID string) *entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.players[playerID]
}

// IDs returns the loaded player ids in sorted order
func (r *Registry) IDs() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.players))
	for id := range r.players {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	slices.Sort(ids)
	return ids
}

// Len returns the number of loaded players
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}

// TickAll ticks every loaded engine at now. Publish failures are logged and
// returned joined; the affected notifications stay queued for the next tick.
func (r *Registry) TickAll(ctx context.Context, now time.Time) (int, error) {
	var errs []error
	ticked := 0
	for _, id := range r.IDs() {
		r.locked(id, func(ent *entry) {
			before := ent.engine.Stats()
			err := ent.engine.Tick(ctx, now)
			if ent.engine.Stats() != before {
				ent.dirty = true
			}
			ticked++
			if err != nil {
				logger.FromContext(ctx).Warn(LogMsgTickFailed, logger.AttrKeyPlayerID, id, "error", err)
				errs = append(errs, fmt.Errorf("%s: %w", id, err))
			}
		})
	}
	return ticked, errors.Join(errs...)
}

// Checkpoint writes the player's record if the player is loaded
func (r *Registry) Checkpoint(ctx context.Context, playerID string) error {
	if err := validateID(playerID); err != nil {
		return err
	}
	var err error
	r.locked(playerID, func(ent *entry) {
		err = r.checkpoint(ctx, playerID, ent)
	})
	return err
}

// CheckpointAll writes the record of every player changed since its last
// checkpoint and returns how many were written
func (r *Registry) CheckpointAll(ctx context.Context) (int, error) {
	var errs []error
	written := 0
	for _, id := range r.IDs() {
		r.locked(id, func(ent *entry) {
			if !ent.dirty {
				return
			}
			if err := r.checkpoint(ctx, id, ent); err != nil {
				errs = append(errs, err)
				return
			}
			written++
		})
	}
	return written, errors.Join(errs...)
}

// Unload flushes and checkpoints the player, then drops its engine. The
// engine stays loaded if the flush or the checkpoint fails.
func (r *Registry) Unload(ctx context.Context, playerID string) error {
	if err := validateID(playerID); err != nil {
		return err
	}
	var err error
	r.locked(playerID, func(ent *entry) {
		err = r.unload(ctx, playerID, ent)
	})
	return err
}

// EvictIdle unloads every player with no open session whose last call was
// at least idleFor ago, and returns how many were unloaded. Players that
// fail to flush or checkpoint stay loaded and are retried on the next pass.
func (r *Registry) EvictIdle(ctx context.Context, idleFor time.Duration) (int, error) {
	var errs []error
	evicted := 0
	for _, id := range r.IDs() {
		r.locked(id, func(ent *entry) {
			if _, open := ent.engine.CurrentSession(); open {
				return
			}
			if r.clock.Since(ent.lastActive) < idleFor {
				return
			}
			if err := r.unload(ctx, id, ent); err != nil {
				errs = append(errs, err)
				return
			}
			evicted++
		})
	}
	if evicted > 0 {
		logger.FromContext(ctx).Info(LogMsgPlayersEvicted, "count", evicted, "remaining", r.Len())
	}
	return evicted, errors.Join(errs...)
}

// Close ends every open session, flushes notifications and checkpoints all
// players. Engines stay loaded.
func (r *Registry) Close(ctx context.Context) error {
	var errs []error
	for _, id := range r.IDs() {
		r.locked(id, func(ent *entry) {
			if _, _, ended := ent.engine.EndSession(); ended {
				ent.dirty = true
			}
			if _, err := ent.engine.Flush(ctx); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", id, err))
			}
			if ent.dirty {
				if err := r.checkpoint(ctx, id, ent); err != nil {
					errs = append(errs, err)
				}
			}
		})
	}
	logger.FromContext(ctx).Info(LogMsgRegistryClosed, "players", r.Len())
	return errors.Join(errs...)
}

// locked runs fn under the player's lock and reports whether the player
// was loaded
func (r *Registry) locked(playerID string, fn func(*entry)) bool {
	unlock := r.locks.Lock(playerID)
	defer unlock()

	ent := r.get(playerID)
	if ent == nil {
		return false
	}
	fn(ent)
	return true
}

// checkpoint writes ent's record. Callers hold the player lock.
func (r *Registry) checkpoint(ctx context.Context, playerID string, ent *entry) error {
	if r.store == nil {
		ent.dirty = false
		return nil
	}
	if err := r.store.Checkpoint(ctx, playerID, ent.engine.Save()); err != nil {
		logger.FromContext(ctx).Error(LogMsgCheckpointFailed, logger.AttrKeyPlayerID, playerID, "error", err)
		return fmt.Errorf("%s %s: %w", ErrMsgCheckpointPlayer, playerID, err)
	}
	ent.dirty = false
	return nil
}

// unload drops ent after flushing and checkpointing it. Callers hold the
// player lock.
func (r *Registry) unload(ctx context.Context, playerID string, ent *entry) error {
	if _, err := ent.engine.Flush(ctx); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgUnloadPlayer, playerID, err)
	}
	if ent.dirty {
		if err := r.checkpoint(ctx, playerID, ent); err != nil {
			return err
		}
	}
	r.mu.Lock()
	delete(r.players, playerID)
	r.mu.Unlock()
	logger.FromContext(ctx).Info(LogMsgPlayerUnloaded, logger.AttrKeyPlayerID, playerID)
	return nil
}

func validateID(playerID string) error {
	if playerID == "" {
		return domain.ErrPlayerIDRequired
	}
	if !persistence.ValidKey(playerID) {
		return fmt.Errorf("%w: player id %q", domain.ErrInvalidInput, playerID)
	}
	return nil
}
