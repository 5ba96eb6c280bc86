package physics

import "math"

// Vec2 is a point or direction on the arena's ground plane.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v*k.
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Len returns the Euclidean length.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalize returns a unit vector in the direction of v, or the zero vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Angle returns the direction of v in radians.
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// FromAngle returns the unit vector pointing at angle.
func FromAngle(angle float64) Vec2 { return Vec2{math.Cos(angle), math.Sin(angle)} }

// MoveToward steps from `from` toward `to` by at most maxStep, never
// overshooting.
func MoveToward(from, to Vec2, maxStep float64) Vec2 {
	d := to.Sub(from)
	dist := d.Len()
	if dist <= maxStep || dist == 0 {
		return to
	}
	return from.Add(d.Scale(maxStep / dist))
}

// Vec3 is a transform delta: planar movement plus a vertical component.
type Vec3 struct {
	X, Y, Z float64 // Z is elevation
}
