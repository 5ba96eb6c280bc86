package game

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/tomz197/arena/internal/event"
)

var (
	// ErrTerminalState is returned for any transition request out of
	// GameOver or Victory.
	ErrTerminalState = errors.New("game: state is terminal")
	// ErrInvalidTransition is returned when no table row connects the states.
	ErrInvalidTransition = errors.New("game: invalid transition")
)

// TimeScaler is the simulation clock as seen by the machine.
type TimeScaler interface {
	SetTimeScale(scale float64)
}

// Subsystem is a component the machine switches off when the game ends.
type Subsystem interface {
	SetEnabled(enabled bool)
}

// Machine is the four-state session FSM. It is driven by triggers or explicit
// target states and runs the table's effects on each change.
type Machine struct {
	current    State
	started    bool
	clock      TimeScaler
	bus        *event.Bus
	subsystems []Subsystem
	log        *log.Logger
}

// NewMachine creates a machine in Playing. Call Start to run the entry
// effects of the initial state.
func NewMachine(clock TimeScaler, bus *event.Bus, logger *log.Logger, subsystems ...Subsystem) *Machine {
	if logger == nil {
		logger = log.Default()
	}
	return &Machine{
		current:    StatePlaying,
		clock:      clock,
		bus:        bus,
		subsystems: subsystems,
		log:        logger,
	}
}

// AddSubsystem registers another component to disable on game end.
func (m *Machine) AddSubsystem(s Subsystem) {
	m.subsystems = append(m.subsystems, s)
}

// Start enters the initial state. Calling it twice does nothing.
func (m *Machine) Start() {
	if m.started {
		return
	}
	m.started = true
	m.log.Info("entering state", "state", m.current)
	m.run(entryEffects[m.current])
}

// State returns the active state.
func (m *Machine) State() State {
	return m.current
}

// IsSimulationActive reports whether the world should advance.
func (m *Machine) IsSimulationActive() bool {
	return m.current == StatePlaying
}

// Fire applies a trigger. It returns false when the trigger has no row for
// the current state; the state is then unchanged.
func (m *Machine) Fire(trigger Trigger) bool {
	t, ok := Lookup(m.current, trigger)
	if !ok {
		m.log.Debug("ignored trigger", "state", m.current, "trigger", trigger)
		return false
	}
	m.apply(t)
	return true
}

// TransitionTo moves to target. Requesting the current state is a no-op.
func (m *Machine) TransitionTo(target State) error {
	if target == m.current {
		return nil
	}
	if m.current.Terminal() {
		return fmt.Errorf("%w: %s -> %s", ErrTerminalState, m.current, target)
	}
	trigger, ok := triggerFor(m.current, target)
	if !ok {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.current, target)
	}
	m.Fire(trigger)
	return nil
}

// TogglePause pauses from Playing and resumes from Paused.
func (m *Machine) TogglePause() bool {
	if m.current == StatePaused {
		return m.Fire(TriggerResume)
	}
	return m.Fire(TriggerPause)
}

func (m *Machine) apply(t Transition) {
	from := m.current
	m.current = t.To
	m.started = true
	m.log.Info("state transition", "from", from, "to", t.To)
	m.run(t.Effects)
}

func (m *Machine) run(effects []Effect) {
	for _, e := range effects {
		switch e {
		case EffectResumeClock:
			m.clock.SetTimeScale(1)
		case EffectFreezeClock:
			m.clock.SetTimeScale(0)
		case EffectEmitResumed:
			m.bus.Publish(event.Resumed, 0)
		case EffectEmitPaused:
			m.bus.Publish(event.Paused, 0)
		case EffectEmitGameOver:
			m.bus.Publish(event.GameOver, 0)
		case EffectEmitVictory:
			m.bus.Publish(event.Victory, 0)
		case EffectDisableSubsystems:
			for _, s := range m.subsystems {
				s.SetEnabled(false)
			}
		}
	}
}
