package object

import (
	"github.com/charmbracelet/log"
	bt "github.com/joeycumines/go-behaviortree"
	"github.com/tomz197/arena/internal/ai"
	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/physics"
)

// Owner is the pool an enemy reports its death to.
type Owner interface {
	EnemyDied(e *Enemy)
}

// Scorer receives the reward for a kill.
type Scorer interface {
	Add(amount int)
}

// Target is what enemies chase.
type Target interface {
	Position() physics.Vec2
	Alive() bool
}

// Navigator moves an enemy along a path to a destination. When an enemy has
// one, it delegates movement instead of stepping in a straight line.
type Navigator interface {
	SetDestination(dest physics.Vec2)
}

// Enemy is a pooled chaser with health. It is reused across deaths: the pool
// calls Activate on reuse and the enemy reports its death to the owner.
type Enemy struct {
	cfg config.EnemyConfig
	log *log.Logger

	pos       physics.Vec2
	health    int
	maxHealth int
	alive     bool

	owner  Owner
	scorer Scorer
	target Target
	nav    Navigator
	brain  bt.Node

	step        float64 // Simulation delta of the current tick, for the brain
	contactLeft float64 // Seconds until contact damage is allowed again
	flash       float64
	spin        float64
}

// NewEnemy allocates an inactive enemy.
func NewEnemy(cfg config.EnemyConfig, logger *log.Logger) *Enemy {
	if logger == nil {
		logger = log.Default()
	}
	e := &Enemy{
		cfg:       cfg,
		log:       logger,
		maxHealth: cfg.Health,
	}
	e.brain = ai.NewChaser(e)
	return e
}

// Activate places the enemy at pos and wires its collaborators. It resets
// health through OnReactivate.
func (e *Enemy) Activate(pos physics.Vec2, owner Owner, scorer Scorer, target Target) {
	e.pos = pos
	e.owner = owner
	e.scorer = scorer
	e.target = target
	e.OnReactivate()
}

// OnReactivate resets the enemy to full health and alive.
func (e *Enemy) OnReactivate() {
	e.health = e.maxHealth
	e.alive = true
	e.contactLeft = 0
	e.flash = 0
}

// Deactivate takes the enemy out of play without a death: no owner
// notification and no reward.
func (e *Enemy) Deactivate() {
	e.alive = false
}

// SetNavigator installs a pathfinding delegate. Nil restores straight-line
// movement.
func (e *Enemy) SetNavigator(nav Navigator) {
	e.nav = nav
}

// Position implements physics.Body.
func (e *Enemy) Position() physics.Vec2 { return e.pos }

// Radius implements physics.Body.
func (e *Enemy) Radius() float64 { return e.cfg.Radius }

// Tag implements physics.Body.
func (e *Enemy) Tag() physics.Tag { return physics.TagEnemy }

// Alive reports whether the enemy is in play.
func (e *Enemy) Alive() bool { return e.alive }

// Health returns the remaining health.
func (e *Enemy) Health() int { return e.health }

// Reward returns the score granted for a kill.
func (e *Enemy) Reward() int { return e.cfg.Reward }

// ApplyDamage removes amount health. When health reaches zero the enemy
// dies: it leaves play, notifies its owner and grants its reward to the
// scorer. This happens once per activation; hits on a dead enemy are
// ignored. It returns true on the hit that killed.
func (e *Enemy) ApplyDamage(amount int) bool {
	if !e.alive || amount <= 0 {
		return false
	}
	e.health -= amount
	e.flash = 0.15
	if e.health > 0 {
		return false
	}

	e.alive = false
	if e.owner != nil {
		e.owner.EnemyDied(e)
	}
	if e.scorer != nil {
		e.scorer.Add(e.cfg.Reward)
	}
	return true
}

// Contact returns the damage to deal to the player on overlap, or false
// while the contact cooldown is running.
func (e *Enemy) Contact() (int, bool) {
	if !e.alive || e.contactLeft > 0 || e.cfg.ContactDamage <= 0 {
		return 0, false
	}
	e.contactLeft = e.cfg.ContactCooldown
	return e.cfg.ContactDamage, true
}

// Target implements ai.Agent.
func (e *Enemy) Target() (physics.Vec2, error) {
	if e.target == nil || !e.target.Alive() {
		return physics.Vec2{}, ai.ErrMissingTarget
	}
	return e.target.Position(), nil
}

// Chase implements ai.Agent.
func (e *Enemy) Chase(dest physics.Vec2) {
	if e.nav != nil {
		e.nav.SetDestination(dest)
		return
	}
	e.pos = physics.MoveToward(e.pos, dest, e.cfg.Speed*e.step)
}

// Idle implements ai.Agent.
func (e *Enemy) Idle(reason error) {
	if reason != nil {
		e.log.Debug("enemy has no target, idling", "err", reason)
	}
}

// Update runs the chase brain for one tick.
func (e *Enemy) Update(ctx UpdateContext) (bool, error) {
	if !e.alive {
		return true, nil
	}
	e.step = ctx.Delta.Seconds()
	e.contactLeft = max(0, e.contactLeft-e.step)
	e.flash = max(0, e.flash-e.step)
	e.spin += e.step * 3

	if _, err := e.brain.Tick(); err != nil {
		return false, err
	}
	return false, nil
}

// Draw renders the enemy as a spinning diamond, hollow once damaged.
func (e *Enemy) Draw(ctx DrawContext) error {
	if e.flash > 0 {
		return nil
	}
	pts := regularPolygon(ctx.Canvas.BorrowPoints(4), e.pos, e.cfg.Radius, e.spin)
	ctx.Canvas.DrawPolygon(pts, e.health == e.maxHealth)
	return nil
}
