// Package physics provides vector math, overlap tests and contact detection
// for the arena. It stands in for the engine physics the gameplay code
// receives collision notifications from.
package physics

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// DistanceSquared returns the squared distance between a and b, for
// comparisons that do not need the square root.
func DistanceSquared(a, b Vec2) float64 {
	d := b.Sub(a)
	return d.X*d.X + d.Y*d.Y
}

// PointInCircle reports whether p lies within radius of center, edge
// included.
func PointInCircle(p, center Vec2, radius float64) bool {
	return DistanceSquared(p, center) <= radius*radius
}

// CirclesOverlap reports whether two circles intersect. Circles that only
// touch do not overlap.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	reach := ra + rb
	return DistanceSquared(a, b) < reach*reach
}
