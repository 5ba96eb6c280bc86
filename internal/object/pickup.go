package object

import (
	"github.com/tomz197/arena/internal/physics"
)

// PickupRadius is the collision radius of a health pickup.
const PickupRadius = 1.5

// Pickup restores player health once when touched.
type Pickup struct {
	pos      physics.Vec2
	hp       int
	consumed bool
	spin     float64
}

// NewPickup places a pickup worth hp at pos.
func NewPickup(pos physics.Vec2, hp int) *Pickup {
	return &Pickup{pos: pos, hp: hp}
}

// Position implements physics.Body.
func (p *Pickup) Position() physics.Vec2 { return p.pos }

// Radius implements physics.Body.
func (p *Pickup) Radius() float64 { return PickupRadius }

// Tag implements physics.Body.
func (p *Pickup) Tag() physics.Tag { return physics.TagPickup }

// Consume takes the pickup. The second result is false if it was already
// taken.
func (p *Pickup) Consume() (int, bool) {
	if p.consumed {
		return 0, false
	}
	p.consumed = true
	return p.hp, true
}

// Consumed reports whether the pickup was taken.
func (p *Pickup) Consumed() bool { return p.consumed }

// Update removes the pickup once consumed.
func (p *Pickup) Update(ctx UpdateContext) (bool, error) {
	p.spin += ctx.Delta.Seconds() * 2
	return p.consumed, nil
}

// Draw renders the pickup as a small rotating cross.
func (p *Pickup) Draw(ctx DrawContext) error {
	arm := physics.FromAngle(p.spin).Scale(PickupRadius)
	perp := physics.Vec2{X: -arm.Y, Y: arm.X}
	ctx.Canvas.DrawLine(point(p.pos.Sub(arm)), point(p.pos.Add(arm)))
	ctx.Canvas.DrawLine(point(p.pos.Sub(perp)), point(p.pos.Add(perp)))
	return nil
}
