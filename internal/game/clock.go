package game

import "time"

// Clock measures wall-clock time between frames.
type Clock struct {
	last time.Time
	now  func() time.Time
}

func newClock(now func() time.Time) *Clock {
	return &Clock{last: now(), now: now}
}

// NewClock returns a clock started now.
func NewClock() *Clock {
	return newClock(time.Now)
}

// Tick returns the seconds elapsed since the previous Tick (or since the clock
// was created) and restarts the measurement.
func (c *Clock) Tick() float64 {
	now := c.now()
	elapsed := now.Sub(c.last).Seconds()
	c.last = now
	return max(elapsed, 0)
}
