// Package command wraps player intents as executable, undoable objects and
// dispatches them only while the simulation is running.
package command

import (
	"github.com/tomz197/arena/internal/physics"
)

// Command is one player intent.
type Command interface {
	Execute()
	Undo()
}

// Actor is the player controller as seen by commands.
type Actor interface {
	Fire() bool
	BurstFire() bool
	Move(dir physics.Vec2, dt float64) physics.Vec3
	Look(target physics.Vec2)
}

// Fire shoots once.
type Fire struct {
	Actor Actor
}

func (c Fire) Execute() { c.Actor.Fire() }

// Undo does nothing; a shot cannot be taken back.
func (c Fire) Undo() {}

// Burst starts a burst.
type Burst struct {
	Actor Actor
}

func (c Burst) Execute() { c.Actor.BurstFire() }

// Undo does nothing.
func (c Burst) Undo() {}

// Move displaces the actor along Dir for Delta seconds.
type Move struct {
	Actor Actor
	Dir   physics.Vec2
	Delta float64
}

func (c Move) Execute() { c.Actor.Move(c.Dir, c.Delta) }

// Undo applies a zero move over the same delta. Only the vertical
// component takes effect.
func (c Move) Undo() { c.Actor.Move(physics.Vec2{}, c.Delta) }

// Look aims the actor at Target.
type Look struct {
	Actor  Actor
	Target physics.Vec2
}

func (c Look) Execute() { c.Actor.Look(c.Target) }

// Undo does nothing.
func (c Look) Undo() {}
