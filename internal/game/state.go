// Package game holds the session-level rules: the game state machine, the
// simulation clock and scoring.
package game

// State is the phase of a session. Exactly one is active at a time.
type State int

const (
	StatePlaying State = iota
	StatePaused
	StateGameOver
	StateVictory
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no transition leaves s.
func (s State) Terminal() bool {
	return s == StateGameOver || s == StateVictory
}

// Trigger is a request that may move the machine to another state.
type Trigger int

const (
	TriggerPause   Trigger = iota // Player asked to pause
	TriggerResume                 // Player asked to resume
	TriggerLose                   // Player died
	TriggerWin                    // Score reached the target
	TriggerForfeit                // Player gave up
)

func (t Trigger) String() string {
	switch t {
	case TriggerPause:
		return "Pause"
	case TriggerResume:
		return "Resume"
	case TriggerLose:
		return "Lose"
	case TriggerWin:
		return "Win"
	case TriggerForfeit:
		return "Forfeit"
	default:
		return "Unknown"
	}
}

// Effect is a side effect run on a transition.
type Effect int

const (
	EffectResumeClock Effect = iota
	EffectFreezeClock
	EffectEmitResumed
	EffectEmitPaused
	EffectEmitGameOver
	EffectEmitVictory
	EffectDisableSubsystems
)

// entryEffects run after the new state is set.
var entryEffects = map[State][]Effect{
	StatePlaying:  {EffectResumeClock, EffectEmitResumed},
	StatePaused:   {EffectFreezeClock, EffectEmitPaused},
	StateGameOver: {EffectFreezeClock, EffectDisableSubsystems, EffectEmitGameOver},
	StateVictory:  {EffectFreezeClock, EffectDisableSubsystems, EffectEmitVictory},
}

// exitEffects run before the current state is left.
var exitEffects = map[State][]Effect{
	StatePaused: {EffectResumeClock},
}

type edge struct {
	from    State
	trigger Trigger
}

// Transition is one row of the table: where a trigger leads and what runs.
type Transition struct {
	To      State
	Effects []Effect // Exit effects of the source followed by entry effects of the target
}

// transitions is the complete table. Terminal states have no rows.
var transitions = buildTable(map[edge]State{
	{StatePlaying, TriggerPause}:   StatePaused,
	{StatePlaying, TriggerLose}:    StateGameOver,
	{StatePlaying, TriggerWin}:     StateVictory,
	{StatePlaying, TriggerForfeit}: StateGameOver,
	{StatePaused, TriggerResume}:   StatePlaying,
	{StatePaused, TriggerForfeit}:  StateGameOver,
})

func buildTable(targets map[edge]State) map[edge]Transition {
	table := make(map[edge]Transition, len(targets))
	for e, to := range targets {
		var effects []Effect
		effects = append(effects, exitEffects[e.from]...)
		effects = append(effects, entryEffects[to]...)
		table[e] = Transition{To: to, Effects: effects}
	}
	return table
}

// Lookup returns the transition for trigger from state, if any.
func Lookup(from State, trigger Trigger) (Transition, bool) {
	t, ok := transitions[edge{from, trigger}]
	return t, ok
}

// triggerFor finds the trigger that leads from one state to another.
func triggerFor(from, to State) (Trigger, bool) {
	for e, t := range transitions {
		if e.from == from && t.To == to {
			return e.trigger, true
		}
	}
	return 0, false
}
