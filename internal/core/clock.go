package core

import "time"

// DefaultMaxDt caps the per-frame delta passed into the integrators. A tab
// or window that was suspended resumes with one huge delta; integrating it
// in a single step blows the spring update past its stability region.
const DefaultMaxDt = 0.1

// Clock measures wall-clock frame deltas for the animation loop, clamping
// each tick to a safe maximum.
type Clock struct {
	last  time.Time
	maxDt float64
	now   func() time.Time
}

// NewClock constructs a Clock using the default dt clamp.
func NewClock() *Clock {
	return &Clock{maxDt: DefaultMaxDt, now: time.Now}
}

// SetMaxDt changes the per-tick clamp. Non-positive values restore the
// default.
func (c *Clock) SetMaxDt(maxDt float64) {
	if maxDt <= 0 {
		maxDt = DefaultMaxDt
	}
	c.maxDt = maxDt
}

// Tick returns the elapsed seconds since the previous Tick, clamped to the
// configured maximum. The first tick reports a nominal 60fps frame.
func (c *Clock) Tick() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 1.0 / 60.0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		dt = 0
	}
	if dt > c.maxDt {
		dt = c.maxDt
	}
	return dt
}
