package game

import "time"

// Clock scales real frame time into simulation time. A scale of 0 freezes
// the simulation.
type Clock struct {
	scale   float64
	elapsed time.Duration
}

// NewClock returns a running clock.
func NewClock() *Clock {
	return &Clock{scale: 1}
}

// SetTimeScale changes how fast simulation time advances.
func (c *Clock) SetTimeScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	c.scale = scale
}

// TimeScale returns the current scale.
func (c *Clock) TimeScale() float64 {
	return c.scale
}

// Frozen reports whether simulation time is stopped.
func (c *Clock) Frozen() bool {
	return c.scale == 0
}

// Advance converts a real delta into a simulation delta and accumulates it.
func (c *Clock) Advance(real time.Duration) time.Duration {
	sim := time.Duration(float64(real) * c.scale)
	c.elapsed += sim
	return sim
}

// Elapsed returns total simulation time.
func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}
