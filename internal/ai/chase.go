// Package ai holds the enemy brains. A brain is a behaviour tree ticked once
// per simulation step.
package ai

import (
	"errors"

	bt "github.com/joeycumines/go-behaviortree"
	"github.com/tomz197/arena/internal/physics"
)

// ErrMissingTarget is a transient condition: the agent has nothing to chase
// this tick. The brain falls back to idling and tries again next tick.
var ErrMissingTarget = errors.New("ai: no target")

// Agent is the body a chase brain drives.
type Agent interface {
	Alive() bool
	// Target returns where to go, or ErrMissingTarget.
	Target() (physics.Vec2, error)
	// Chase steps the agent toward dest.
	Chase(dest physics.Vec2)
	// Idle is called on ticks where the agent cannot chase. reason is
	// ErrMissingTarget when the agent was alive but had nothing to chase,
	// nil otherwise.
	Idle(reason error)
}

// NewChaser builds the tree
//
//	selector
//	├── sequence: alive? → has target? → chase
//	└── idle
func NewChaser(agent Agent) bt.Node {
	var (
		dest    physics.Vec2
		missing error
	)

	alive := bt.New(func([]bt.Node) (bt.Status, error) {
		missing = nil
		if agent.Alive() {
			return bt.Success, nil
		}
		return bt.Failure, nil
	})

	hasTarget := bt.New(func([]bt.Node) (bt.Status, error) {
		d, err := agent.Target()
		if errors.Is(err, ErrMissingTarget) {
			missing = err
			return bt.Failure, nil
		}
		if err != nil {
			return bt.Failure, err
		}
		dest = d
		return bt.Success, nil
	})

	chase := bt.New(func([]bt.Node) (bt.Status, error) {
		agent.Chase(dest)
		return bt.Success, nil
	})

	idle := bt.New(func([]bt.Node) (bt.Status, error) {
		agent.Idle(missing)
		return bt.Success, nil
	})

	return bt.New(
		bt.Selector,
		bt.New(bt.Sequence, alive, hasTarget, chase),
		idle,
	)
}
