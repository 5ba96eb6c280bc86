package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tomz197/arena/internal/physics"
)

func TestParseHeldKeysExpire(t *testing.T) {
	t.Parallel()

	s := &Stream{}
	now := time.Unix(100, 0)

	in := s.parse([]byte("wd "), now)
	assert.True(t, in.Up)
	assert.True(t, in.Right)
	assert.True(t, in.Fire)
	assert.Equal(t, physics.Vec2{X: 1, Y: -1}, in.MoveDir())

	in = s.parse(nil, now.Add(10*time.Millisecond))
	assert.True(t, in.Up, "still held within the hold window")

	in = s.parse(nil, now.Add(keyHoldDuration))
	assert.False(t, in.Up)
	assert.False(t, in.Fire)
	assert.True(t, in.MoveDir().IsZero())
}

func TestParseArrowKeys(t *testing.T) {
	t.Parallel()

	s := &Stream{}
	in := s.parse([]byte("\x1b[A\x1b[D"), time.Unix(100, 0))
	assert.True(t, in.Up)
	assert.True(t, in.Left)
	assert.False(t, in.PausePressed, "arrow escape is not a lone escape")
}

func TestParseEdgesLastOneFrame(t *testing.T) {
	t.Parallel()

	s := &Stream{}
	now := time.Unix(100, 0)

	in := s.parse([]byte("perzq"), now)
	assert.True(t, in.PausePressed)
	assert.True(t, in.BurstPressed)
	assert.True(t, in.RestartPressed)
	assert.True(t, in.UndoPressed)
	assert.True(t, in.Quit)

	in = s.parse(nil, now)
	assert.False(t, in.PausePressed)
	assert.False(t, in.BurstPressed)
	assert.False(t, in.Quit)
}

func TestAimDirection(t *testing.T) {
	t.Parallel()

	s := &Stream{}
	in := s.parse([]byte("jk"), time.Unix(100, 0))
	assert.Equal(t, physics.Vec2{X: -1, Y: 1}, in.AimDir())
	assert.True(t, in.MoveDir().IsZero())
}

func TestLoneEscapePauses(t *testing.T) {
	t.Parallel()

	s := &Stream{}
	in := s.parse([]byte{'\x1b'}, time.Unix(100, 0))
	assert.True(t, in.PausePressed)
}
