package spawn

import (
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/event"
	"github.com/tomz197/arena/internal/object"
	"github.com/tomz197/arena/internal/physics"
)

// Deps are the collaborators a spawner is wired to. Bus and Rand are
// required; a nil Target only makes enemies idle.
type Deps struct {
	Bus    *event.Bus
	Rand   *rand.Rand
	Target object.Target
	Scorer object.Scorer
	Logger *log.Logger
}

// Spawner fills the pool on a fixed cadence and raises the pool's soft cap
// on a slower one. It is the owner every spawned enemy reports its death to.
type Spawner struct {
	cfg     config.SpawnerConfig
	pool    *Pool
	deps    Deps
	log     *log.Logger
	points  []physics.Vec2
	handles map[*object.Enemy]Handle

	spawnTimer float64
	rampTimer  float64
	enabled    bool
}

// NewSpawner wires a spawner to pool.
func NewSpawner(cfg config.SpawnerConfig, pool *Pool, deps Deps) (*Spawner, error) {
	switch {
	case pool == nil:
		return nil, &config.ConfigurationError{Field: "spawner.pool", Reason: "missing"}
	case deps.Bus == nil:
		return nil, &config.ConfigurationError{Field: "spawner.bus", Reason: "missing"}
	case deps.Rand == nil:
		return nil, &config.ConfigurationError{Field: "spawner.rand", Reason: "missing"}
	case len(cfg.SpawnPoints) == 0:
		return nil, &config.ConfigurationError{Field: "spawner.spawn_points", Reason: "at least one spawn point is required"}
	}

	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}
	points := make([]physics.Vec2, len(cfg.SpawnPoints))
	for i, p := range cfg.SpawnPoints {
		points[i] = physics.Vec2{X: p[0], Y: p[1]}
	}

	return &Spawner{
		cfg:     cfg,
		pool:    pool,
		deps:    deps,
		log:     logger,
		points:  points,
		handles: make(map[*object.Enemy]Handle),
		enabled: true,
	}, nil
}

// Pool returns the pool the spawner fills.
func (s *Spawner) Pool() *Pool { return s.pool }

// Enabled reports whether Tick does anything.
func (s *Spawner) Enabled() bool { return s.enabled }

// SetEnabled switches the spawn cadence on or off.
func (s *Spawner) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Tick advances both timers by dt seconds. Once the spawn timer has reached
// the spawn interval, the next tick with room under the soft cap spawns one
// enemy and resets the timer; while the pool is full the timer keeps
// running. At each increase interval boundary the soft cap rises by the
// configured step.
func (s *Spawner) Tick(dt float64) {
	if !s.enabled || dt <= 0 {
		return
	}
	s.spawnTimer += dt
	s.rampTimer += dt

	if s.spawnTimer >= s.cfg.SpawnInterval && s.pool.Live() < s.pool.Max() {
		s.Spawn()
		s.spawnTimer = 0
	}

	if s.rampTimer >= s.cfg.IncreaseInterval {
		before := s.pool.Max()
		after := s.pool.Raise(s.cfg.IncreaseAmount)
		if after != before {
			s.log.Debug("raised enemy cap", "max", after, "absolute", s.pool.AbsoluteMax())
		}
		s.rampTimer = 0
	}
}

// Spawn activates one enemy at a uniformly chosen spawn point. It reports
// false when the pool is at its soft cap.
func (s *Spawner) Spawn() (Handle, bool) {
	h, e, ok := s.pool.Acquire()
	if !ok {
		return Handle{}, false
	}
	pos := s.points[s.deps.Rand.Intn(len(s.points))]
	e.Activate(pos, s, s.deps.Scorer, s.deps.Target)
	s.handles[e] = h

	s.log.Debug("spawned enemy", "x", pos.X, "y", pos.Y, "live", s.pool.Live())
	s.deps.Bus.Publish(event.EnemySpawned, s.pool.Live())
	return h, true
}

// EnemyDied implements object.Owner. It returns the enemy to the pool. A
// second report for the same death is ignored.
func (s *Spawner) EnemyDied(e *object.Enemy) {
	h, ok := s.handles[e]
	if !ok {
		return
	}
	delete(s.handles, e)
	if !s.pool.Release(h) {
		return
	}

	s.log.Debug("enemy died", "reward", e.Reward(), "live", s.pool.Live())
	s.deps.Bus.Publish(event.EnemyDied, e.Reward())
	s.deps.Bus.Publish(event.EnemyDespawned, s.pool.Live())
}

// DespawnAll takes every live enemy out of play without rewards.
func (s *Spawner) DespawnAll() {
	s.pool.Each(func(h Handle, e *object.Enemy) {
		e.Deactivate()
		delete(s.handles, e)
		s.pool.Release(h)
		s.deps.Bus.Publish(event.EnemyDespawned, s.pool.Live())
	})
}

// Enemies returns the enemy group as a subsystem. Disabling it despawns
// every live enemy.
func (s *Spawner) Enemies() *Group {
	return &Group{spawner: s}
}

// Group is the set of live enemies, switchable as one subsystem.
type Group struct {
	spawner *Spawner
}

// SetEnabled despawns all enemies when disabled. Enabling is a no-op: new
// enemies only come from the spawner.
func (g *Group) SetEnabled(enabled bool) {
	if !enabled {
		g.spawner.DespawnAll()
	}
}
