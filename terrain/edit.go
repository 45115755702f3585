package terrain

import (
	"fmt"
	"math"
)

// BelowRange and AboveRange bound the stored cost of a cell that scrolled
// out of range, so a single notch back restores it.
const (
	BelowRange = MinCost - CostStep
	AboveRange = MaxCost + CostStep
)

// SetStart places the start marker. Any coordinate is accepted; the engine
// validates it before searching.
func (g *Grid) SetStart(c Coord) { g.Start = c }

// SetEnd places the end marker.
func (g *Grid) SetEnd(c Coord) { g.End = c }

// SetWall sets or clears the wall flag at c. Clearing a wall clamps the
// remaining cost into [MinCost, MaxCost].
func (g *Grid) SetWall(c Coord, wall bool) error {
	i, err := g.checked(c)
	if err != nil {
		return err
	}
	g.cells[i].Wall = wall
	if !wall {
		g.cells[i].Cost = clamp(g.cells[i].Cost, MinCost, MaxCost)
	}

	return nil
}

// ClearCell turns the cell at c into plain road: cost DefaultCost, no wall.
func (g *Grid) ClearCell(c Coord) error {
	i, err := g.checked(c)
	if err != nil {
		return err
	}
	g.cells[i].Wall = false
	g.cells[i].Cost = DefaultCost

	return nil
}

// SetCost assigns a cost multiplier. A value outside [MinCost, MaxCost],
// NaN included, makes the cell a wall; otherwise the wall flag is cleared.
func (g *Grid) SetCost(c Coord, v float64) error {
	i, err := g.checked(c)
	if err != nil {
		return err
	}
	g.setCost(i, v)

	return nil
}

// ScrollCost adds delta (rounded to tenths) to the cost at c and reports
// whether the cell changed. Scrolling applies to passable cells and to cells
// that left the cost range by scrolling; walls painted with SetWall are left
// untouched. Crossing either end of [MinCost, MaxCost] makes the cell a wall
// whose stored cost stays one step outside the range, so scrolling back
// restores passability with the in-range cost.
func (g *Grid) ScrollCost(c Coord, delta float64) (bool, error) {
	i, err := g.checked(c)
	if err != nil {
		return false, err
	}
	cell := &g.cells[i]
	if cell.Wall && cell.Cost >= MinCost && cell.Cost <= MaxCost {
		return false, nil
	}
	g.setCost(i, roundTenth(cell.Cost+delta))

	return true, nil
}

// Reset restores every cell to road and unsets Start and End.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].Cost = DefaultCost
		g.cells[i].Wall = false
	}
	g.Start, g.End = Unset, Unset
}

// setCost applies the cost/wall normalization to cell i. NaN is a wall
// stored at AboveRange.
func (g *Grid) setCost(i int, v float64) {
	cell := &g.cells[i]
	cell.Wall = !(v >= MinCost && v <= MaxCost)
	if math.IsNaN(v) {
		v = AboveRange
	}
	cell.Cost = clamp(v, BelowRange, AboveRange)
}

// checked bounds-checks c for editing operations.
func (g *Grid) checked(c Coord) (int, error) {
	if !g.Contains(c) {
		return 0, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, c, g.Width, g.Height)
	}

	return g.Index(c), nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
