package object

import (
	"math"

	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/event"
	"github.com/tomz197/arena/internal/physics"
)

// hurtFlash is how long the player blinks after losing health.
const hurtFlash = 0.6

// burst is a pending burst-fire sequence. The zero value means no burst.
type burst struct {
	remaining int     // Shots still to fire
	untilNext float64 // Seconds to the next shot
}

func (b burst) active() bool { return b.remaining > 0 }

// Player is the player controller: movement, aim, cooldown-gated firing and
// health.
type Player struct {
	cfg   config.PlayerConfig
	arena Arena
	bus   *event.Bus
	shots Spawner

	pos       physics.Vec2
	elevation float64
	facing    float64 // Radians, 0 = +X

	health  int
	dead    bool
	enabled bool

	fireCooldown  float64
	burstCooldown float64
	burst         burst
	hurt          float64
}

// NewPlayer creates a player at pos. Projectiles are handed to shots.
func NewPlayer(cfg config.PlayerConfig, arena Arena, pos physics.Vec2, bus *event.Bus, shots Spawner) *Player {
	return &Player{
		cfg:     cfg,
		arena:   arena,
		bus:     bus,
		shots:   shots,
		pos:     pos,
		facing:  -math.Pi / 2, // Start pointing up
		health:  cfg.Health,
		enabled: true,
	}
}

// Position implements physics.Body.
func (p *Player) Position() physics.Vec2 { return p.pos }

// Radius implements physics.Body.
func (p *Player) Radius() float64 { return p.cfg.Radius }

// Tag implements physics.Body.
func (p *Player) Tag() physics.Tag { return physics.TagPlayer }

// Alive reports whether the player can still be chased and hurt.
func (p *Player) Alive() bool { return !p.dead }

// Health returns the current health, never below zero.
func (p *Player) Health() int { return p.health }

// MaxHealth returns the starting health.
func (p *Player) MaxHealth() int { return p.cfg.Health }

// Elevation returns the height above ground.
func (p *Player) Elevation() float64 { return p.elevation }

// Facing returns the aim angle in radians.
func (p *Player) Facing() float64 { return p.facing }

// Enabled reports whether the controller accepts actions.
func (p *Player) Enabled() bool { return p.enabled }

// BurstActive reports whether a burst is in progress.
func (p *Player) BurstActive() bool { return p.burst.active() }

// SetEnabled switches the controller on or off. Disabling abandons any
// burst in progress.
func (p *Player) SetEnabled(enabled bool) {
	p.enabled = enabled
	if !enabled {
		p.CancelBurst()
	}
}

func (p *Player) canAct() bool {
	return p.enabled && !p.dead
}

// Fire shoots once if the fire cooldown has elapsed.
func (p *Player) Fire() bool {
	if !p.canAct() || p.fireCooldown > 0 {
		return false
	}
	p.shoot()
	p.fireCooldown = p.cfg.FireCooldown
	return true
}

// BurstFire starts a burst of BurstCount shots spaced BurstDelay apart. The
// first shot leaves immediately. It cannot be retriggered until the burst
// has finished and the burst cooldown has elapsed.
func (p *Player) BurstFire() bool {
	if !p.canAct() || p.burst.active() || p.burstCooldown > 0 {
		return false
	}
	p.burst = burst{remaining: p.cfg.BurstCount}
	p.advanceBurst(0)
	return true
}

// CancelBurst abandons the current burst. The shots already fired count, so
// the burst cooldown still starts.
func (p *Player) CancelBurst() {
	if !p.burst.active() {
		return
	}
	p.burst = burst{}
	p.burstCooldown = p.cfg.BurstCooldown
}

func (p *Player) advanceBurst(dt float64) {
	if !p.burst.active() {
		return
	}
	p.burst.untilNext -= dt
	for p.burst.active() && p.burst.untilNext <= 0 {
		p.shoot()
		p.burst.remaining--
		p.burst.untilNext += p.cfg.BurstDelay
	}
	if !p.burst.active() {
		p.burst = burst{}
		p.burstCooldown = p.cfg.BurstCooldown
	}
}

func (p *Player) shoot() {
	if p.shots == nil {
		return
	}
	muzzle := p.pos.Add(physics.FromAngle(p.facing).Scale(p.cfg.Radius + ProjectileRadius))
	p.shots.Spawn(NewProjectile(muzzle, p.facing, p.cfg.ProjectileSpeed, p.cfg.ProjectileLife, p.cfg.ProjectileDamage))
}

// Move displaces the player along dir, normalized and scaled by speed and
// dt, plus a vertical component of gravity*dt. The returned delta is the
// displacement requested before clamping to the arena and the ground.
func (p *Player) Move(dir physics.Vec2, dt float64) physics.Vec3 {
	if !p.canAct() {
		return physics.Vec3{}
	}
	planar := dir.Normalize().Scale(p.cfg.Speed * dt)
	delta := physics.Vec3{X: planar.X, Y: planar.Y, Z: p.cfg.Gravity * dt}

	p.pos = p.arena.Clamp(p.pos.Add(planar), p.cfg.Radius)
	p.elevation = max(0, p.elevation+delta.Z)
	return delta
}

// Look turns the player to face target. Looking at its own position keeps
// the current facing.
func (p *Player) Look(target physics.Vec2) {
	if !p.canAct() {
		return
	}
	d := target.Sub(p.pos)
	if d.IsZero() {
		return
	}
	p.facing = d.Angle()
}

// ApplyHealthDelta adds amount to health and announces the new value. Health
// clamps to [0, max]. The first time it reaches zero PlayerDied is published;
// after that every delta is ignored.
func (p *Player) ApplyHealthDelta(amount int) {
	if p.dead || amount == 0 {
		return
	}
	p.health = min(max(p.health+amount, 0), p.cfg.Health)
	if amount < 0 {
		p.hurt = hurtFlash
	}
	p.bus.Publish(event.PlayerHealthChanged, p.health)

	if p.health == 0 {
		p.dead = true
		p.CancelBurst()
		p.bus.Publish(event.PlayerDied, 0)
	}
}

// Update advances cooldowns and any burst in progress.
func (p *Player) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()
	p.fireCooldown = max(0, p.fireCooldown-dt)
	p.hurt = max(0, p.hurt-dt)

	if !p.canAct() {
		p.CancelBurst()
		return false, nil
	}
	if p.burst.active() {
		p.advanceBurst(dt)
	} else {
		p.burstCooldown = max(0, p.burstCooldown-dt)
	}
	return false, nil
}

// Draw renders the player as a triangle pointing along its facing.
func (p *Player) Draw(ctx DrawContext) error {
	if !ShouldRenderBlink(p.hurt, 10) {
		return nil
	}
	size := p.cfg.Radius * 1.5
	triangle := ctx.Canvas.BorrowPoints(3)
	nose := p.pos.Add(physics.FromAngle(p.facing).Scale(size))
	left := p.pos.Add(physics.FromAngle(p.facing + 2.5).Scale(size * 0.8))
	right := p.pos.Add(physics.FromAngle(p.facing - 2.5).Scale(size * 0.8))
	triangle[0] = point(nose)
	triangle[1] = point(left)
	triangle[2] = point(right)
	ctx.Canvas.DrawPolygon(triangle, !p.dead)
	return nil
}
