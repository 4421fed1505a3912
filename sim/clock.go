package sim

import (
	"math"
	"time"
)

// DefaultStep is the simulation step in seconds.
const DefaultStep = 0.0166666

// Clock turns variable frame deltas into a whole number of fixed steps. Time
// that does not fill a step is banked for the next frame.
type Clock struct {
	step        float64
	accumulator float64
	last        time.Time
}

func NewClock(step float64) *Clock {
	if step <= 0 {
		step = DefaultStep
	}
	return &Clock{step: step}
}

func (c *Clock) Step() float64        { return c.step }
func (c *Clock) Accumulator() float64 { return c.accumulator }

// Advance banks delta seconds and returns how many steps are now due.
// Negative deltas are ignored.
func (c *Clock) Advance(delta float64) int {
	if delta > 0 {
		c.accumulator += delta
	}
	if c.accumulator < c.step {
		return 0
	}
	n := math.Floor(c.accumulator / c.step)
	c.accumulator -= n * c.step
	if c.accumulator < 0 {
		c.accumulator = 0
	}
	return int(n)
}

// Tick advances by the wall-clock time since the previous Tick. The first call
// only records now.
func (c *Clock) Tick(now time.Time) int {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	delta := now.Sub(c.last).Seconds()
	c.last = now
	return c.Advance(delta)
}

// Reset drops the banked time and forgets the previous tick.
func (c *Clock) Reset() {
	c.accumulator = 0
	c.last = time.Time{}
}
