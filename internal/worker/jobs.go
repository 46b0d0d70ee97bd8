package worker

import (
	"context"
	"time"

	"github.com/osse101/fragrewards/internal/clock"
	"github.com/osse101/fragrewards/internal/logger"
	"github.com/osse101/fragrewards/internal/metrics"
)

// Ticker advances every loaded player to a point in time
type Ticker interface {
	TickAll(ctx context.Context, now time.Time) (int, error)
	Len() int
}

// Checkpointer persists every changed player
type Checkpointer interface {
	CheckpointAll(ctx context.Context) (int, error)
}

// Evicter unloads players that have been idle for a while
type Evicter interface {
	EvictIdle(ctx context.Context, idleFor time.Duration) (int, error)
	Len() int
}

// TickJob applies timeouts, accrues play time and drains notifications
type TickJob struct {
	players Ticker
	clock   clock.Clock
}

// NewTickJob creates a TickJob
func NewTickJob(players Ticker, clk clock.Clock) *TickJob {
	return &TickJob{players: players, clock: clk}
}

// Name implements Job
func (j *TickJob) Name() string { return JobNameTick }

// Process implements Job
func (j *TickJob) Process(ctx context.Context) error {
	started := time.Now()
	n, err := j.players.TickAll(ctx, j.clock.Now())
	metrics.PlayersLoaded.Set(float64(j.players.Len()))
	metrics.JobDuration.WithLabelValues(JobNameTick).Observe(time.Since(started).Seconds())
	if err != nil {
		metrics.JobErrors.WithLabelValues(JobNameTick).Inc()
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgTickCompleted, "players", n)
	return nil
}

// CheckpointJob writes changed players to the record store
type CheckpointJob struct {
	players Checkpointer
}

// NewCheckpointJob creates a CheckpointJob
func NewCheckpointJob(players Checkpointer) *CheckpointJob {
	return &CheckpointJob{players: players}
}

// Name implements Job
func (j *CheckpointJob) Name() string { return JobNameCheckpoint }

// Process implements Job
func (j *CheckpointJob) Process(ctx context.Context) error {
	started := time.Now()
	n, err := j.players.CheckpointAll(ctx)
	metrics.CheckpointsWritten.Add(float64(n))
	metrics.JobDuration.WithLabelValues(JobNameCheckpoint).Observe(time.Since(started).Seconds())
	if err != nil {
		metrics.JobErrors.WithLabelValues(JobNameCheckpoint).Inc()
		return err
	}
	if n > 0 {
		logger.FromContext(ctx).Debug(LogMsgCheckpointCompleted, "players", n)
	}
	return nil
}

// EvictJob unloads players idle for longer than a TTL so the registry does
// not grow with every player ever seen
type EvictJob struct {
	players Evicter
	idleFor time.Duration
}

// NewEvictJob creates an EvictJob
func NewEvictJob(players Evicter, idleFor time.Duration) *EvictJob {
	return &EvictJob{players: players, idleFor: idleFor}
}

// Name implements Job
func (j *EvictJob) Name() string { return JobNameEvict }

// Process implements Job
func (j *EvictJob) Process(ctx context.Context) error {
	started := time.Now()
	n, err := j.players.EvictIdle(ctx, j.idleFor)
	metrics.PlayersEvicted.Add(float64(n))
	metrics.PlayersLoaded.Set(float64(j.players.Len()))
	metrics.JobDuration.WithLabelValues(JobNameEvict).Observe(time.Since(started).Seconds())
	if err != nil {
		metrics.JobErrors.WithLabelValues(JobNameEvict).Inc()
		return err
	}
	if n > 0 {
		logger.FromContext(ctx).Debug(LogMsgEvictCompleted, "players", n)
	}
	return nil
}
