package object

import (
	"github.com/tomz197/arena/internal/physics"
)

// FloatingText is a label that drifts upward and disappears, e.g. the reward
// shown where an enemy died.
type FloatingText struct {
	pos      physics.Vec2
	value    string
	lifetime float64 // Seconds remaining
}

// floatRise is how fast floating text climbs, in arena units per second.
const floatRise = 6.0

// NewFloatingText shows value at pos for lifetime seconds.
func NewFloatingText(pos physics.Vec2, value string, lifetime float64) *FloatingText {
	return &FloatingText{pos: pos, value: value, lifetime: lifetime}
}

// Update drifts the text and expires it.
func (t *FloatingText) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()
	t.lifetime -= dt
	if t.lifetime <= 0 {
		return true, nil
	}
	t.pos.Y -= floatRise * dt
	return false, nil
}

// Draw is a no-op; the text is drawn as an overlay.
func (t *FloatingText) Draw(DrawContext) error { return nil }

// DrawOverlay writes the text centered on its position.
func (t *FloatingText) DrawOverlay(ctx DrawContext) error {
	if t.value == "" || ctx.Writer == nil {
		return nil
	}
	col, row := ctx.Canvas.LogicalToTerminal(t.pos.X, t.pos.Y)
	col = max(1, col-len(t.value)/2)
	row = max(1, row)
	ctx.Writer.WriteAt(col, row, t.value)
	return nil
}
