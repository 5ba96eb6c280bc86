package loop

import (
	"github.com/tomz197/arena/internal/object"
	"github.com/tomz197/arena/internal/physics"
)

// World holds the free-roaming objects of a session: projectiles, pickups
// and effects. Pooled enemies and the player live outside it.
type World struct {
	Arena   object.Arena
	Objects []object.Object
	toSpawn []object.Object // Objects to add after current update cycle
}

// NewWorld creates an empty world over arena.
func NewWorld(arena object.Arena) *World {
	return &World{Arena: arena}
}

// AddObject adds an object to the world immediately.
func (w *World) AddObject(obj object.Object) {
	w.Objects = append(w.Objects, obj)
}

// Spawn queues an object to be added after the current update cycle.
// Implements object.Spawner.
func (w *World) Spawn(obj object.Object) {
	w.toSpawn = append(w.toSpawn, obj)
}

// FlushSpawned adds all queued objects to the world and clears the queue.
func (w *World) FlushSpawned() {
	w.Objects = append(w.Objects, w.toSpawn...)
	clear(w.toSpawn)
	w.toSpawn = w.toSpawn[:0]
}

// Update updates all objects and removes any that request removal.
func (w *World) Update(ctx object.UpdateContext) error {
	kept := w.Objects[:0] // reuse backing array
	for _, obj := range w.Objects {
		remove, err := obj.Update(ctx)
		if err != nil {
			return err
		}
		if remove {
			object.ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	clear(w.Objects[len(kept):])
	w.Objects = kept
	return nil
}

// Clear drops every object, returning pooled ones.
func (w *World) Clear() {
	w.FlushSpawned()
	for _, obj := range w.Objects {
		object.ReleaseObject(obj)
	}
	clear(w.Objects)
	w.Objects = w.Objects[:0]
}

// Bodies returns the objects with the given tag that take part in contacts.
// Spent projectiles and consumed pickups are skipped.
func (w *World) Bodies(tag physics.Tag) []physics.Body {
	var out []physics.Body
	for _, obj := range w.Objects {
		switch o := obj.(type) {
		case *object.Projectile:
			if tag == physics.TagBullet && !o.Spent() {
				out = append(out, o)
			}
		case *object.Pickup:
			if tag == physics.TagPickup && !o.Consumed() {
				out = append(out, o)
			}
		}
	}
	return out
}
