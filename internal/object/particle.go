package object

import (
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/arena/internal/physics"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived visual effect.
type Particle struct {
	pos         physics.Vec2
	vel         physics.Vec2
	lifetime    float64 // Seconds remaining
	maxLifetime float64 // Initial lifetime (for fade calculation)
	drag        float64 // Velocity decay (1.0 = no drag)
}

// NewParticle creates a single particle from the pool.
func NewParticle(pos, vel physics.Vec2, lifetime float64) *Particle {
	p := particlePool.Get().(*Particle)
	p.pos = pos
	p.vel = vel
	p.lifetime = lifetime
	p.maxLifetime = lifetime
	p.drag = 0.95
	return p
}

// Release returns the particle to the pool for reuse.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnExplosion scatters count particles from pos in random directions.
func SpawnExplosion(rng *rand.Rand, pos physics.Vec2, count int, speed, lifetime float64, spawner Spawner) {
	if spawner == nil {
		return
	}
	for range count {
		angle := rng.Float64() * 2 * math.Pi
		spd := speed * (0.5 + rng.Float64())         // 50% to 150%
		life := lifetime * (0.5 + rng.Float64()*0.5) // 50% to 100%
		spawner.Spawn(NewParticle(pos, physics.FromAngle(angle).Scale(spd), life))
	}
}

// Update moves the particle and checks lifetime.
func (p *Particle) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()

	p.lifetime -= dt
	if p.lifetime <= 0 {
		return true, nil
	}

	p.vel = p.vel.Scale(math.Pow(p.drag, dt*60)) // Normalize drag to ~60fps
	p.pos = p.pos.Add(p.vel.Scale(dt))
	return !ctx.Arena.Contains(p.pos), nil
}

// Draw renders the particle as a pixel, skipping it in its last quarter.
func (p *Particle) Draw(ctx DrawContext) error {
	if p.maxLifetime > 0 && p.lifetime/p.maxLifetime < 0.25 {
		return nil
	}
	ctx.Canvas.SetFloat(p.pos.X, p.pos.Y)
	return nil
}
