package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockScalesDelta(t *testing.T) {
	t.Parallel()

	c := NewClock()
	assert.Equal(t, 100*time.Millisecond, c.Advance(100*time.Millisecond))

	c.SetTimeScale(0)
	assert.True(t, c.Frozen())
	assert.Equal(t, time.Duration(0), c.Advance(time.Second))

	c.SetTimeScale(-3)
	assert.Equal(t, 0.0, c.TimeScale())

	c.SetTimeScale(1)
	c.Advance(400 * time.Millisecond)
	assert.Equal(t, 500*time.Millisecond, c.Elapsed())
}
