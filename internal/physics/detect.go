package physics

// Detector finds overlaps between two groups of bodies. The second group is
// bucketed in a spatial grid so each body of the first group only tests its
// neighbours.
type Detector struct {
	grid *SpatialGrid
}

// NewDetector creates a detector for an arena of the given size.
func NewDetector(width, height, cellSize float64) *Detector {
	return &Detector{grid: NewSpatialGrid(width, height, cellSize)}
}

// Overlapping calls fn for each pair (a, b), a from as and b from bs, whose
// circles intersect. Pairs are visited in as order.
func (d *Detector) Overlapping(as, bs []Body, fn func(a, b Body)) {
	if len(as) == 0 || len(bs) == 0 {
		return
	}
	d.grid.Clear()
	for i, b := range bs {
		p := b.Position()
		d.grid.Insert(p, i)
	}
	for _, a := range as {
		p := a.Position()
		d.grid.QueryAround(p, func(j int) bool {
			if Overlaps(a, bs[j]) {
				fn(a, bs[j])
			}
			return false
		})
	}
}
