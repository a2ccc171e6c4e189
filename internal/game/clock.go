package game

import "time"

// maxCatchUp caps the steps a single Advance may yield. After a long stall
// (window drag, breakpoint) the owed steps are spread over later frames.
const maxCatchUp = 10

// clockEpsilon absorbs float drift so that exact multiples of the step
// are not lost to rounding.
const clockEpsilon = 1e-9

// Clock turns wall-clock deltas into whole fixed simulation steps,
// carrying the remainder so the simulated time base stays phase-locked.
type Clock struct {
	step float64
	acc  float64
}

// NewClock returns a clock stepping at fps Hz.
func NewClock(fps int) *Clock {
	if fps <= 0 {
		fps = 60
	}
	return &Clock{step: 1 / float64(fps)}
}

// Step returns the fixed step length in seconds.
func (c *Clock) Step() float64 { return c.step }

// Duration returns the step as a time.Duration, for tickers.
func (c *Clock) Duration() time.Duration {
	return time.Duration(c.step * float64(time.Second))
}

// Remainder returns the time carried into the next Advance.
func (c *Clock) Remainder() float64 { return c.acc }

// Advance adds elapsed seconds and returns how many steps are due.
func (c *Clock) Advance(elapsed float64) int {
	if elapsed > 0 {
		c.acc += elapsed
	}
	n := 0
	for n < maxCatchUp && c.acc+clockEpsilon >= c.step {
		c.acc -= c.step
		n++
	}
	if c.acc < 0 {
		c.acc = 0
	}
	return n
}
