// Package loop hosts a game session: the explicit context that owns every
// gameplay component, wires them together and advances them one tick at a
// time.
package loop

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/tomz197/arena/internal/command"
	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/event"
	"github.com/tomz197/arena/internal/game"
	"github.com/tomz197/arena/internal/hud"
	"github.com/tomz197/arena/internal/input"
	"github.com/tomz197/arena/internal/object"
	"github.com/tomz197/arena/internal/physics"
	"github.com/tomz197/arena/internal/spawn"
)

// Death effect tuning.
const (
	explosionParticles = 12
	explosionSpeed     = 15.0
	explosionLifetime  = 0.6
	rewardTextLifetime = 1.0
)

// Options are the collaborators a session needs from its host.
type Options struct {
	Logger    *log.Logger
	Rand      *rand.Rand
	Presenter hud.Presenter
}

// Session is one run of the game, from the first tick to GameOver or
// Victory. Restart rebuilds it in place.
type Session struct {
	id   string
	cfg  config.Config
	opts Options
	log  *log.Logger

	arena    object.Arena
	bus      *event.Bus
	clock    *game.Clock
	machine  *game.Machine
	score    *game.Score
	world    *World
	player   *object.Player
	pool     *spawn.Pool
	spawner  *spawn.Spawner
	commands *command.Dispatcher
	hud      *hud.Controller
	detector *physics.Detector
}

// NewSession validates cfg, builds every component and enters Playing.
// A missing collaborator is a *config.ConfigurationError.
func NewSession(cfg config.Config, opts Options) (*Session, error) {
	switch {
	case opts.Logger == nil:
		return nil, &config.ConfigurationError{Field: "session.logger", Reason: "missing"}
	case opts.Rand == nil:
		return nil, &config.ConfigurationError{Field: "session.rand", Reason: "missing"}
	case opts.Presenter == nil:
		return nil, &config.ConfigurationError{Field: "session.presenter", Reason: "missing"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{cfg: cfg, opts: opts}
	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) build() error {
	cfg := s.cfg
	s.id = uuid.NewString()
	s.log = s.opts.Logger.With("session", s.id[:8])
	s.arena = object.Arena{Width: cfg.Arena.Width, Height: cfg.Arena.Height}

	s.bus = event.NewBus()
	s.clock = game.NewClock()
	s.score = game.NewScore(cfg.Game.TargetScore, s.bus)
	s.world = NewWorld(s.arena)
	s.player = object.NewPlayer(cfg.Player, s.arena, s.arena.Center(), s.bus, s.world)

	enemyLog := s.log.With("component", "enemy")
	s.pool = spawn.NewPool(cfg.Spawner.MaxEnemies, cfg.Spawner.AbsoluteMaxEnemies, func() *object.Enemy {
		return object.NewEnemy(cfg.Enemy, enemyLog)
	})
	spawner, err := spawn.NewSpawner(cfg.Spawner, s.pool, spawn.Deps{
		Bus:    s.bus,
		Rand:   s.opts.Rand,
		Target: s.player,
		Scorer: s.score,
		Logger: s.log.With("component", "spawner"),
	})
	if err != nil {
		return err
	}
	s.spawner = spawner

	for _, p := range cfg.Pickups {
		s.world.AddObject(object.NewPickup(physics.Vec2{X: p.X, Y: p.Y}, p.HP))
	}

	cell := 2*max(cfg.Player.Radius, cfg.Enemy.Radius, object.PickupRadius) + 1
	s.detector = physics.NewDetector(s.arena.Width, s.arena.Height, cell)

	// Subscribers run in registration order: the HUD sees every signal
	// before the session reacts to it.
	s.hud = hud.NewController(s.bus, s.opts.Presenter, cfg.Player.Health)
	s.machine = game.NewMachine(s.clock, s.bus, s.log, s.player, s.spawner, s.spawner.Enemies())
	s.commands = command.NewDispatcher(s.machine, command.DefaultHistory)

	s.bus.MustSubscribe(event.PlayerDied, func(event.Event) {
		s.machine.Fire(game.TriggerLose)
	})
	s.bus.MustSubscribe(event.ScoreTargetReached, func(e event.Event) {
		s.log.Info("target score reached", "score", e.Value)
		s.machine.Fire(game.TriggerWin)
	})
	s.bus.MustSubscribe(event.Paused, func(event.Event) {
		s.player.CancelBurst()
	})

	s.machine.Start()
	s.log.Info("session started", "arena", fmt.Sprintf("%gx%g", s.arena.Width, s.arena.Height))
	return nil
}

// Restart discards all session state and rebuilds every component under a
// new ID.
func (s *Session) Restart() error {
	old := s.id
	s.teardown()
	if err := s.build(); err != nil {
		return err
	}
	s.log.Info("session restarted", "previous", old[:8])
	return nil
}

// Close releases the session's resources.
func (s *Session) Close() {
	s.teardown()
	s.log.Info("session closed", "score", s.score.Value())
}

func (s *Session) teardown() {
	s.hud.Close()
	s.bus.Reset()
	s.world.Clear()
	s.commands.Clear()
}

// HandleInput turns one frame of input into commands and state requests.
// delta is the real frame time.
func (s *Session) HandleInput(in input.Input, delta time.Duration) error {
	if in.RestartPressed {
		return s.Restart()
	}
	if in.PausePressed {
		s.machine.TogglePause()
	}
	if in.UndoPressed {
		s.commands.Undo()
	}

	dt := delta.Seconds() * s.clock.TimeScale()
	if dir := in.MoveDir(); !dir.IsZero() {
		s.commands.Dispatch(command.Move{Actor: s.player, Dir: dir, Delta: dt})
	}
	if aim := in.AimDir(); !aim.IsZero() {
		s.commands.Dispatch(command.Look{Actor: s.player, Target: s.player.Position().Add(aim)})
	}
	if in.Fire {
		s.commands.Dispatch(command.Fire{Actor: s.player})
	}
	if in.BurstPressed {
		s.commands.Dispatch(command.Burst{Actor: s.player})
	}
	return nil
}

// Tick advances the session by a real frame delta. Simulation time is the
// delta scaled by the clock, so nothing moves while paused or after the
// game has ended.
func (s *Session) Tick(delta time.Duration) error {
	sim := s.clock.Advance(delta)
	dt := sim.Seconds()
	s.hud.Tick(dt)
	if !s.machine.IsSimulationActive() || dt <= 0 {
		return nil
	}

	ctx := object.UpdateContext{Delta: sim, Arena: s.arena, Spawner: s.world}

	if _, err := s.player.Update(ctx); err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	s.spawner.Tick(dt)

	var enemyErr error
	s.pool.Each(func(_ spawn.Handle, e *object.Enemy) {
		if enemyErr != nil {
			return
		}
		if _, err := e.Update(ctx); err != nil {
			enemyErr = fmt.Errorf("update enemy: %w", err)
		}
	})
	if enemyErr != nil {
		return enemyErr
	}

	if err := s.world.Update(ctx); err != nil {
		return fmt.Errorf("update world: %w", err)
	}
	s.resolveContacts()
	s.world.FlushSpawned()
	return nil
}

// ID returns the session ID. It changes on Restart.
func (s *Session) ID() string { return s.id }

// State returns the game state.
func (s *Session) State() game.State { return s.machine.State() }

// Machine returns the state machine.
func (s *Session) Machine() *game.Machine { return s.machine }

// Bus returns the session's event bus.
func (s *Session) Bus() *event.Bus { return s.bus }

// Player returns the player controller.
func (s *Session) Player() *object.Player { return s.player }

// Pool returns the enemy pool.
func (s *Session) Pool() *spawn.Pool { return s.pool }

// Spawner returns the enemy spawner.
func (s *Session) Spawner() *spawn.Spawner { return s.spawner }

// Score returns the score keeper.
func (s *Session) Score() *game.Score { return s.score }

// World returns the free-roaming objects.
func (s *Session) World() *World { return s.world }

// Commands returns the command dispatcher.
func (s *Session) Commands() *command.Dispatcher { return s.commands }

// Elapsed returns the session timer in seconds.
func (s *Session) Elapsed() float64 { return s.hud.Elapsed() }
