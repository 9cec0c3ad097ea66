package matprop

import (
	"time"
)

// FrameClock tracks wall time between host frames. Dt is the gap between the
// two most recent ticks.
type FrameClock struct {
	Time time.Time
	Dt   time.Duration
}

func NewFrameClock(now time.Time) *FrameClock {
	return &FrameClock{
		Time: now,
		Dt:   0,
	}
}

func (c *FrameClock) Tick(now time.Time) {
	c.Dt = now.Sub(c.Time)
	c.Time = now
}

// DeltaSeconds is Dt in seconds, never negative.
func (c *FrameClock) DeltaSeconds() float32 {
	if c.Dt <= 0 {
		return 0
	}
	return float32(c.Dt.Seconds())
}
