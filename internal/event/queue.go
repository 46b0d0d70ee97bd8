package event

import (
	"context"

	"github.com/osse101/fragrewards/internal/logger"
)

// OverflowFunc receives an event evicted from a full queue
type OverflowFunc func(event Event, attempts int, lastErr error)

type queued struct {
	event    Event
	attempts int
	lastErr  error
}

// Queue buffers notifications between drains. Events are delivered in order
// and removed only after a successful publish, so a subscriber sees each event
// at least once. When full, the oldest event is evicted to the overflow func.
// Queue is not safe for concurrent use.
type Queue struct {
	items    []queued
	capacity int
	overflow OverflowFunc
}

// NewQueue creates a queue. A non-positive capacity uses DefaultQueueCapacity.
func NewQueue(capacity int, overflow OverflowFunc) *Queue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &Queue{capacity: capacity, overflow: overflow}
}

// Push appends an event
func (q *Queue) Push(e Event) {
	if len(q.items) >= q.capacity {
		oldest := q.items[0]
		q.items = q.items[1:]
		logger.Warn(LogMsgQueueOverflow, "event_type", oldest.event.Type, "attempts", oldest.attempts)
		if q.overflow != nil {
			q.overflow(oldest.event, oldest.attempts, oldest.lastErr)
		}
	}
	q.items = append(q.items, queued{event: e})
}

// Len returns the number of undelivered events
func (q *Queue) Len() int {
	return len(q.items)
}

// Pending returns a copy of the undelivered events in order
func (q *Queue) Pending() []Event {
	out := make([]Event, len(q.items))
	for i, item := range q.items {
		out[i] = item.event
	}
	return out
}

// Drain publishes queued events in order and returns how many were
// delivered. It stops at the first failure, leaving that event and the rest
// queued for the next drain. A nil publisher discards everything.
func (q *Queue) Drain(ctx context.Context, pub Publisher) (int, error) {
	if pub == nil {
		n := len(q.items)
		q.items = nil
		return n, nil
	}

	delivered := 0
	for len(q.items) > 0 {
		if err := ctx.Err(); err != nil {
			return delivered, err
		}
		head := &q.items[0]
		if err := pub.Publish(ctx, head.event); err != nil {
			head.attempts++
			head.lastErr = err
			logger.FromContext(ctx).Warn(LogMsgDrainFailed,
				"event_type", head.event.Type,
				"attempts", head.attempts,
				"error", err)
			return delivered, err
		}
		q.items = q.items[1:]
		delivered++
	}
	q.items = nil
	return delivered, nil
}
