package system

import "time"

// Clock gates simulation ticks to a fixed rate.
// Elapsed time is coalesced: a slow host gets at most one tick per Advance call.
type Clock struct {
	interval time.Duration
	slack    time.Duration // host timer jitter tolerated per tick
	last     time.Time
	started  bool
}

// NewClock creates a clock ticking tickRate times per second
func NewClock(tickRate int) *Clock {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return &Clock{interval: interval, slack: interval / 8}
}

// Advance reports whether a tick is due at now.
// The first call always ticks.
func (c *Clock) Advance(now time.Time) bool {
	if !c.started {
		c.started = true
		c.last = now
		return true
	}
	if now.Sub(c.last) < c.interval-c.slack {
		return false
	}
	c.last = now
	return true
}

// Reset forgets the last tick so the next Advance ticks immediately
func (c *Clock) Reset() {
	c.started = false
	c.last = time.Time{}
}

// Interval returns the minimum duration between ticks
func (c *Clock) Interval() time.Duration {
	return c.interval
}
