package draw

// Point represents a 2D coordinate in logical units.
type Point struct {
	X, Y float64
}

// Half-block characters used by Canvas.Render.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)
