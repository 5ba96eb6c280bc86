package object

import (
	"github.com/tomz197/arena/internal/physics"
)

// ProjectileRadius is the collision radius of a bullet.
const ProjectileRadius = 0.5

// Projectile is a bullet fired by the player.
type Projectile struct {
	pos      physics.Vec2
	vel      physics.Vec2
	lifetime float64 // Seconds remaining before removal
	damage   int
	hit      bool
}

// NewProjectile creates a projectile at pos traveling along angle.
func NewProjectile(pos physics.Vec2, angle, speed, lifetime float64, damage int) *Projectile {
	return &Projectile{
		pos:      pos,
		vel:      physics.FromAngle(angle).Scale(speed),
		lifetime: lifetime,
		damage:   damage,
	}
}

// Position implements physics.Body.
func (p *Projectile) Position() physics.Vec2 { return p.pos }

// Radius implements physics.Body.
func (p *Projectile) Radius() float64 { return ProjectileRadius }

// Tag implements physics.Body.
func (p *Projectile) Tag() physics.Tag { return physics.TagBullet }

// Damage is the health a hit removes from an enemy.
func (p *Projectile) Damage() int { return p.damage }

// Spent reports whether the projectile already hit something or expired.
func (p *Projectile) Spent() bool {
	return p.hit || p.lifetime <= 0
}

// Hit consumes the projectile. It returns false if it was already spent, so
// one bullet never damages two enemies.
func (p *Projectile) Hit() bool {
	if p.Spent() {
		return false
	}
	p.hit = true
	return true
}

// Update moves the projectile and checks lifetime and arena bounds.
func (p *Projectile) Update(ctx UpdateContext) (bool, error) {
	if p.hit {
		return true, nil
	}
	dt := ctx.Delta.Seconds()

	p.lifetime -= dt
	if p.lifetime <= 0 {
		return true, nil
	}

	p.pos = p.pos.Add(p.vel.Scale(dt))
	return !ctx.Arena.Contains(p.pos), nil
}

// Draw renders the projectile as a single pixel.
func (p *Projectile) Draw(ctx DrawContext) error {
	ctx.Canvas.SetFloat(p.pos.X, p.pos.Y)
	return nil
}
