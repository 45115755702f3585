package terrain

// Regions finds all 8-connected groups of passable cells.
// Each region lists row-major cell indices in discovery order; regions are
// ordered by their first cell in row-major order.
//
// To convert an index back to a Coord, use Coordinate(idx).
//
// Time:   O(W·H·8).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions() [][]int {
	seen := make([]bool, len(g.cells))
	var regions [][]int

	for i0, c0 := range g.cells {
		if c0.Wall || seen[i0] {
			continue
		}
		// BFS to collect the region
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			for _, d := range neighborOffsets {
				vx, vy := u.X+d[0], u.Y+d[1]
				if !g.InBounds(vx, vy) {
					continue
				}
				vi := g.index(vx, vy)
				if g.cells[vi].Wall || seen[vi] {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		regions = append(regions, queue)
	}

	return regions
}

// RegionOf labels every cell with its region number, or -1 for walls.
// Labels follow the order of Regions.
func (g *Grid) RegionOf() []int {
	labels := make([]int, len(g.cells))
	for i := range labels {
		labels[i] = -1
	}
	for r, region := range g.Regions() {
		for _, i := range region {
			labels[i] = r
		}
	}

	return labels
}

// Connected reports whether a and b are in-bounds passable cells of the
// same region, i.e. whether any wall-free 8-directional route joins them.
func (g *Grid) Connected(a, b Coord) bool {
	if !g.Contains(a) || !g.Contains(b) || g.IsWall(a) || g.IsWall(b) {
		return false
	}
	labels := g.RegionOf()

	return labels[g.Index(a)] == labels[g.Index(b)]
}
