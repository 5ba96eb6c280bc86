package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tomz197/arena/internal/physics"
)

type call struct {
	name string
	dir  physics.Vec2
	dt   float64
}

type fakeActor struct {
	calls []call
}

func (a *fakeActor) Fire() bool      { a.calls = append(a.calls, call{name: "fire"}); return true }
func (a *fakeActor) BurstFire() bool { a.calls = append(a.calls, call{name: "burst"}); return true }
func (a *fakeActor) Look(target physics.Vec2) {
	a.calls = append(a.calls, call{name: "look", dir: target})
}

func (a *fakeActor) Move(dir physics.Vec2, dt float64) physics.Vec3 {
	a.calls = append(a.calls, call{name: "move", dir: dir, dt: dt})
	return physics.Vec3{}
}

type gate bool

func (g *gate) IsSimulationActive() bool { return bool(*g) }

func TestDispatchExecutesWhileActive(t *testing.T) {
	t.Parallel()

	open := gate(true)
	actor := &fakeActor{}
	d := NewDispatcher(&open, 0)

	assert.True(t, d.Dispatch(Fire{Actor: actor}))
	assert.True(t, d.Dispatch(Burst{Actor: actor}))
	assert.True(t, d.Dispatch(Look{Actor: actor, Target: physics.Vec2{X: 1}}))
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, []string{"fire", "burst", "look"}, names(actor.calls))
}

func TestDispatchRefusedWhileInactive(t *testing.T) {
	t.Parallel()

	closed := gate(false)
	actor := &fakeActor{}
	d := NewDispatcher(&closed, 0)

	assert.False(t, d.Dispatch(Fire{Actor: actor}))
	assert.Empty(t, actor.calls)
	assert.Zero(t, d.Len())
}

func TestMoveUndoAppliesZeroMove(t *testing.T) {
	t.Parallel()

	open := gate(true)
	actor := &fakeActor{}
	d := NewDispatcher(&open, 0)

	d.Dispatch(Move{Actor: actor, Dir: physics.Vec2{X: 1}, Delta: 0.5})
	assert.True(t, d.Undo())
	assert.False(t, d.Undo(), "history is empty")

	assert.Equal(t, []call{
		{name: "move", dir: physics.Vec2{X: 1}, dt: 0.5},
		{name: "move", dir: physics.Vec2{}, dt: 0.5},
	}, actor.calls)
}

func TestHistoryIsBounded(t *testing.T) {
	t.Parallel()

	open := gate(true)
	actor := &fakeActor{}
	d := NewDispatcher(&open, 2)

	d.Dispatch(Look{Actor: actor, Target: physics.Vec2{X: 1}})
	d.Dispatch(Look{Actor: actor, Target: physics.Vec2{X: 2}})
	d.Dispatch(Move{Actor: actor, Dir: physics.Vec2{Y: 1}, Delta: 0.25})
	assert.Equal(t, 2, d.Len())

	d.Undo()
	d.Undo()
	assert.False(t, d.Undo())
	d.Clear()
	assert.Zero(t, d.Len())
}

func names(calls []call) []string {
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.name
	}
	return out
}
