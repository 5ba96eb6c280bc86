// Package object holds the entities that live in the arena: the player, the
// pooled enemies, projectiles, pickups and presentation-only effects.
package object

import (
	"math"
	"time"

	"github.com/tomz197/arena/internal/draw"
	"github.com/tomz197/arena/internal/physics"
)

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// Arena is the bounded play field in logical units.
type Arena struct {
	Width  float64
	Height float64
}

// Contains reports whether p lies inside the arena.
func (a Arena) Contains(p physics.Vec2) bool {
	return p.X >= 0 && p.X <= a.Width && p.Y >= 0 && p.Y <= a.Height
}

// Clamp keeps p at least margin away from every edge.
func (a Arena) Clamp(p physics.Vec2, margin float64) physics.Vec2 {
	p.X = min(max(p.X, margin), a.Width-margin)
	p.Y = min(max(p.Y, margin), a.Height-margin)
	return p
}

// Center returns the middle of the arena.
func (a Arena) Center() physics.Vec2 {
	return physics.Vec2{X: a.Width / 2, Y: a.Height / 2}
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta   time.Duration // Simulation time, already scaled by the session clock
	Arena   Arena
	Spawner Spawner
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas      // Half-block canvas in arena coordinates
	Writer *draw.ChunkWriter // Text overlays, positioned via Canvas.LogicalToTerminal
}

// Object is a drawable and updatable arena entity.
type Object interface {
	// Update advances the object. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw draws the object. Use ctx.Canvas for shapes, ctx.Writer for text.
	Draw(ctx DrawContext) error
}

// Overlay is implemented by objects that write text over the rendered
// canvas.
type Overlay interface {
	DrawOverlay(ctx DrawContext) error
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// ShouldRenderBlink returns true if an object with remaining flash time
// should be rendered this frame. Returns true always if remainingTime <= 0.
func ShouldRenderBlink(remainingTime float64, frequency float64) bool {
	if remainingTime <= 0 {
		return true
	}
	phase := int(remainingTime * frequency)
	return phase%2 != 0
}

// regularPolygon fills pts with the corners of a polygon around c.
func regularPolygon(pts []draw.Point, c physics.Vec2, radius, rotation float64) []draw.Point {
	n := len(pts)
	for i := range pts {
		v := physics.FromAngle(rotation + float64(i)*2*math.Pi/float64(n)).Scale(radius)
		pts[i] = draw.Point{X: c.X + v.X, Y: c.Y + v.Y}
	}
	return pts
}

func point(v physics.Vec2) draw.Point {
	return draw.Point{X: v.X, Y: v.Y}
}
