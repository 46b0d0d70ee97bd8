package clock

import (
	"sync"
	"time"

	"github.com/osse101/fragrewards/internal/domain"
)

// Clock provides an abstraction for time operations
type Clock interface {
	// Now returns the current time
	Now() time.Time
	// Since returns the duration since the given time
	Since(t time.Time) time.Duration
	// Today returns the current calendar date in the clock's location
	Today() domain.Date
}

// RealClock uses the actual system time in the local time zone
type RealClock struct {
	loc *time.Location
}

// NewRealClock creates a RealClock using the process-local time zone
func NewRealClock() *RealClock {
	return &RealClock{loc: time.Local}
}

// NewRealClockIn creates a RealClock whose calendar dates are taken in loc
func NewRealClockIn(loc *time.Location) *RealClock {
	if loc == nil {
		loc = time.Local
	}
	return &RealClock{loc: loc}
}

// Now returns the current system time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Since returns the duration since the given time
func (c *RealClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// Today returns the calendar date of the current system time
func (c *RealClock) Today() domain.Date {
	return domain.DateOf(time.Now().In(c.loc))
}

// SimulatedClock allows time manipulation for testing.
// It is safe for concurrent use.
type SimulatedClock struct {
	mu      sync.Mutex
	current time.Time
}

// NewSimulatedClock creates a new SimulatedClock starting at the given time
func NewSimulatedClock(start time.Time) *SimulatedClock {
	return &SimulatedClock{current: start}
}

// Now returns the simulated current time
func (c *SimulatedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Since returns the duration since the given time
func (c *SimulatedClock) Since(t time.Time) time.Duration {
	return c.Now().Sub(t)
}

// Today returns the calendar date of the simulated time in its own location
func (c *SimulatedClock) Today() domain.Date {
	return domain.DateOf(c.Now())
}

// Advance moves the simulated time forward by the given duration
func (c *SimulatedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// AdvanceDays moves the simulated time forward by whole calendar days
func (c *SimulatedClock) AdvanceDays(days int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.AddDate(0, 0, days)
}

// Set sets the simulated time to a specific value
func (c *SimulatedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t
}
