package command

// DefaultHistory is how many executed commands a dispatcher remembers.
const DefaultHistory = 64

// Gate decides whether commands may run.
type Gate interface {
	IsSimulationActive() bool
}

// Dispatcher executes commands while its gate is open and keeps a bounded
// history for Undo.
type Dispatcher struct {
	gate    Gate
	history []Command
	limit   int
}

// NewDispatcher creates a dispatcher remembering up to limit commands. A
// non-positive limit uses DefaultHistory.
func NewDispatcher(gate Gate, limit int) *Dispatcher {
	if limit <= 0 {
		limit = DefaultHistory
	}
	return &Dispatcher{gate: gate, limit: limit}
}

// Dispatch executes c and records it. It returns false without executing
// when the gate is closed.
func (d *Dispatcher) Dispatch(c Command) bool {
	if c == nil || (d.gate != nil && !d.gate.IsSimulationActive()) {
		return false
	}
	c.Execute()
	if len(d.history) == d.limit {
		copy(d.history, d.history[1:])
		d.history = d.history[:len(d.history)-1]
	}
	d.history = append(d.history, c)
	return true
}

// Undo reverts the most recent command still in history.
func (d *Dispatcher) Undo() bool {
	if len(d.history) == 0 || (d.gate != nil && !d.gate.IsSimulationActive()) {
		return false
	}
	last := d.history[len(d.history)-1]
	d.history = d.history[:len(d.history)-1]
	last.Undo()
	return true
}

// Len returns the number of commands in history.
func (d *Dispatcher) Len() int {
	return len(d.history)
}

// Clear forgets the history.
func (d *Dispatcher) Clear() {
	clear(d.history)
	d.history = d.history[:0]
}
