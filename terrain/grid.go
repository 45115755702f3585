package terrain

import "fmt"

// neighborOffsets lists the eight moves (N, NE, E, SE, S, SW, W, NW).
var neighborOffsets = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// NewGrid builds a width×height grid of road cells (cost DefaultCost, no walls)
// with Start and End unset.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		Width:  width,
		Height: height,
		Start:  Unset,
		End:    Unset,
		cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[g.index(x, y)] = Cell{X: x, Y: y, Cost: DefaultCost}
		}
	}

	return g, nil
}

// FromCosts builds a grid from a non-empty, rectangular slice of cost rows;
// costs[y][x] is the multiplier of cell (x,y). Values outside
// [MinCost, MaxCost] produce walls, exactly as SetCost does.
// Returns ErrEmptyGrid or ErrNonRectangular for malformed input.
func FromCosts(costs [][]float64) (*Grid, error) {
	if len(costs) == 0 || len(costs[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(costs), len(costs[0])
	for _, row := range costs {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	for y, row := range costs {
		for x, v := range row {
			g.setCost(g.index(x, y), v)
		}
	}

	return g, nil
}

// Clone returns a deep copy of g, including Start and End.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = make([]Cell, len(g.cells))
	copy(c.cells, g.cells)

	return &c
}

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Contains reports whether c lies within the grid boundaries.
func (g *Grid) Contains(c Coord) bool { return g.InBounds(c.X, c.Y) }

// CellAt returns the cell at (x,y). Out-of-bounds access is a programming
// error and panics; callers bounds-check through InBounds or Neighbors.
func (g *Grid) CellAt(x, y int) Cell {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("terrain: CellAt(%d,%d) outside %dx%d grid", x, y, g.Width, g.Height))
	}

	return g.cells[g.index(x, y)]
}

// Cell is CellAt for a Coord.
func (g *Grid) Cell(c Coord) Cell { return g.CellAt(c.X, c.Y) }

// IsWall reports whether the cell at c is impassable.
func (g *Grid) IsWall(c Coord) bool { return g.CellAt(c.X, c.Y).Wall }

// CostMultiplier returns the traversal multiplier of the cell at c.
func (g *Grid) CostMultiplier(c Coord) float64 { return g.CellAt(c.X, c.Y).Cost }

// Index maps c to its row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int { return g.index(c.X, c.Y) }

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.Width, Y: idx / g.Width}
}

// Neighbors appends to buf the in-bounds coordinates of the 3×3 window
// around c, clamped to [max(0,c-1), min(dim-1,c+1)] on each axis, excluding c
// itself. Enumeration is x-major then y. buf is reused when it has capacity.
func (g *Grid) Neighbors(c Coord, buf []Coord) []Coord {
	buf = buf[:0]
	for x := max(0, c.X-1); x <= min(g.Width-1, c.X+1); x++ {
		for y := max(0, c.Y-1); y <= min(g.Height-1, c.Y+1); y++ {
			if x == c.X && y == c.Y {
				continue
			}
			buf = append(buf, Coord{X: x, Y: y})
		}
	}

	return buf
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(Cell)) {
	for _, c := range g.cells {
		fn(c)
	}
}

// index maps (x,y) to a row-major index.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}
