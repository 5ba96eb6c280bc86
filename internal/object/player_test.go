package object

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/arena/internal/event"
	"github.com/tomz197/arena/internal/physics"
)

func TestPlayerDiesOnceWhenDamagePassesZero(t *testing.T) {
	t.Parallel()

	p, _, rec := newTestPlayer()
	p.ApplyHealthDelta(-60)

	assert.Equal(t, 0, p.Health())
	assert.False(t, p.Alive())
	assert.Equal(t, 1, rec.count(event.PlayerDied))

	p.ApplyHealthDelta(-10)
	p.ApplyHealthDelta(+30)
	assert.Equal(t, 1, rec.count(event.PlayerDied))
	assert.Equal(t, 1, rec.count(event.PlayerHealthChanged))
	assert.Equal(t, 0, p.Health())
}

func TestPlayerHealthChangedCarriesNewValue(t *testing.T) {
	t.Parallel()

	p, _, rec := newTestPlayer()
	p.ApplyHealthDelta(-20)
	p.ApplyHealthDelta(+5)
	p.ApplyHealthDelta(+100)

	require.Len(t, rec.events, 3)
	assert.Equal(t, 30, rec.events[0].Value)
	assert.Equal(t, 35, rec.events[1].Value)
	assert.Equal(t, 50, rec.events[2].Value, "healing stops at max health")
	assert.Zero(t, rec.count(event.PlayerDied))
}

func TestPlayerFireCooldown(t *testing.T) {
	t.Parallel()

	p, shots, _ := newTestPlayer()
	require.True(t, p.Fire())
	assert.False(t, p.Fire(), "still cooling down")

	p.Update(step(0.25))
	assert.False(t, p.Fire())

	p.Update(step(0.25))
	assert.True(t, p.Fire())
	assert.Len(t, shots.projectiles(), 2)
}

func TestPlayerBurstFiresSpacedShots(t *testing.T) {
	t.Parallel()

	p, shots, _ := newTestPlayer()
	require.True(t, p.BurstFire())
	assert.Len(t, shots.projectiles(), 1, "first shot is immediate")
	assert.True(t, p.BurstActive())
	assert.False(t, p.BurstFire(), "busy while in progress")

	p.Update(step(0.25))
	assert.Len(t, shots.projectiles(), 2)
	p.Update(step(0.25))
	assert.Len(t, shots.projectiles(), 3)
	assert.False(t, p.BurstActive())

	assert.False(t, p.BurstFire(), "burst cooldown running")
	p.Update(step(0.5))
	p.Update(step(0.5))
	assert.True(t, p.BurstFire())
}

func TestPlayerBurstAbandonedWhenDisabled(t *testing.T) {
	t.Parallel()

	p, shots, _ := newTestPlayer()
	require.True(t, p.BurstFire())
	p.SetEnabled(false)
	assert.False(t, p.BurstActive())

	p.Update(step(0.25))
	p.Update(step(0.25))
	assert.Len(t, shots.projectiles(), 1, "no shots after cancellation")

	p.SetEnabled(true)
	assert.False(t, p.BurstFire(), "cancelled burst still starts the cooldown")
}

func TestPlayerBurstAbandonedOnDeath(t *testing.T) {
	t.Parallel()

	p, shots, _ := newTestPlayer()
	require.True(t, p.BurstFire())
	p.ApplyHealthDelta(-100)
	p.Update(step(0.5))
	assert.Len(t, shots.projectiles(), 1)
	assert.False(t, p.Fire())
}

func TestPlayerMoveNormalizesAndAppliesGravity(t *testing.T) {
	t.Parallel()

	p, _, _ := newTestPlayer()
	delta := p.Move(physics.Vec2{X: 3, Y: 4}, 0.5)

	assert.InDelta(t, 3, delta.X, 1e-9)
	assert.InDelta(t, 4, delta.Y, 1e-9)
	assert.InDelta(t, -9.81*0.5, delta.Z, 1e-9)
	assert.InDelta(t, 53, p.Position().X, 1e-9)
	assert.InDelta(t, 54, p.Position().Y, 1e-9)
	assert.Zero(t, p.Elevation(), "elevation clamps at ground")
}

func TestPlayerMoveStaysInArena(t *testing.T) {
	t.Parallel()

	p, _, _ := newTestPlayer()
	for range 100 {
		p.Move(physics.Vec2{X: -1}, 1)
	}
	assert.InDelta(t, p.Radius(), p.Position().X, 1e-9)
}

func TestPlayerLookAndShootAlongFacing(t *testing.T) {
	t.Parallel()

	p, shots, _ := newTestPlayer()
	p.Look(physics.Vec2{X: 60, Y: 50})
	assert.InDelta(t, 0, p.Facing(), 1e-9)

	p.Look(p.Position())
	assert.InDelta(t, 0, p.Facing(), 1e-9, "looking at self keeps facing")

	p.Look(physics.Vec2{X: 50, Y: 60})
	assert.InDelta(t, math.Pi/2, p.Facing(), 1e-9)

	require.True(t, p.Fire())
	shot := shots.projectiles()[0]
	assert.Greater(t, shot.Position().Y, p.Position().Y)
}
