package ai

import (
	"errors"
	"testing"

	bt "github.com/joeycumines/go-behaviortree"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/arena/internal/physics"
)

type fakeAgent struct {
	alive   bool
	target  physics.Vec2
	err     error
	chased  []physics.Vec2
	idleCnt int
	reasons []error
}

func (a *fakeAgent) Alive() bool                   { return a.alive }
func (a *fakeAgent) Target() (physics.Vec2, error) { return a.target, a.err }
func (a *fakeAgent) Chase(dest physics.Vec2)       { a.chased = append(a.chased, dest) }
func (a *fakeAgent) Idle(reason error) {
	a.idleCnt++
	a.reasons = append(a.reasons, reason)
}

func TestChaserFollowsTarget(t *testing.T) {
	t.Parallel()

	agent := &fakeAgent{alive: true, target: physics.Vec2{X: 4, Y: 2}}
	tree := NewChaser(agent)

	status, err := tree.Tick()
	require.NoError(t, err)
	require.Equal(t, bt.Success, status)
	require.Equal(t, []physics.Vec2{{X: 4, Y: 2}}, agent.chased)
	require.Zero(t, agent.idleCnt)
}

func TestChaserIdlesWithoutTarget(t *testing.T) {
	t.Parallel()

	agent := &fakeAgent{alive: true, err: ErrMissingTarget}
	tree := NewChaser(agent)

	status, err := tree.Tick()
	require.NoError(t, err)
	require.Equal(t, bt.Success, status)
	require.Empty(t, agent.chased)
	require.Equal(t, 1, agent.idleCnt)
	require.ErrorIs(t, agent.reasons[0], ErrMissingTarget)

	// The target shows up on a later tick.
	agent.err = nil
	agent.target = physics.Vec2{X: 1, Y: 1}
	_, err = tree.Tick()
	require.NoError(t, err)
	require.Len(t, agent.chased, 1)
}

func TestChaserIdlesWhenDead(t *testing.T) {
	t.Parallel()

	agent := &fakeAgent{alive: false, target: physics.Vec2{X: 4, Y: 2}}
	_, err := NewChaser(agent).Tick()
	require.NoError(t, err)
	require.Empty(t, agent.chased)
	require.Equal(t, 1, agent.idleCnt)
	require.NoError(t, agent.reasons[0], "a dead agent is not missing a target")
}

func TestChaserPropagatesUnexpectedErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	agent := &fakeAgent{alive: true, err: boom}
	_, err := NewChaser(agent).Tick()
	require.ErrorIs(t, err, boom)
}
