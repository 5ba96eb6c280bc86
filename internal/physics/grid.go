package physics

import "math"

// SpatialGrid buckets body indices by position so overlap checks only look
// at the 3x3 block of cells around a point. The cell size must be at least
// the largest sum of radii of two bodies that can touch.
//
// The arena has walls, so the grid does not wrap: positions past an edge
// land in the border cell and neighbours past an edge do not exist.
type SpatialGrid struct {
	inv   float64 // 1 / cell size
	cols  int
	rows  int
	cells [][]int // Reused between frames; Clear only truncates
}

// NewSpatialGrid creates a grid covering a width x height arena.
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	cols := max(1, int(math.Ceil(width/cellSize)))
	rows := max(1, int(math.Ceil(height/cellSize)))
	return &SpatialGrid{
		inv:   1 / cellSize,
		cols:  cols,
		rows:  rows,
		cells: make([][]int, cols*rows),
	}
}

// Clear empties every cell, keeping the allocated memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert records index at p.
func (g *SpatialGrid) Insert(p Vec2, index int) {
	col, row := g.cellOf(p)
	i := row*g.cols + col
	g.cells[i] = append(g.cells[i], index)
}

// QueryAround calls fn for every index in the cells around p. Returning true
// from fn stops the query.
func (g *SpatialGrid) QueryAround(p Vec2, fn func(index int) bool) {
	col, row := g.cellOf(p)
	for r := max(row-1, 0); r <= min(row+1, g.rows-1); r++ {
		for c := max(col-1, 0); c <= min(col+1, g.cols-1); c++ {
			for _, idx := range g.cells[r*g.cols+c] {
				if fn(idx) {
					return
				}
			}
		}
	}
}

func (g *SpatialGrid) cellOf(p Vec2) (col, row int) {
	col = min(max(int(math.Floor(p.X*g.inv)), 0), g.cols-1)
	row = min(max(int(math.Floor(p.Y*g.inv)), 0), g.rows-1)
	return col, row
}
