package main

import (
	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/terrain"
)

// overlay remembers the last notification for every cell so the view keeps
// showing a search after it was cancelled. It implements astar.Observer.
type overlay struct {
	grid   *terrain.Grid
	states []astar.CellState
}

func newOverlay(g *terrain.Grid) *overlay {
	return &overlay{grid: g, states: make([]astar.CellState, g.Len())}
}

func (o *overlay) CellOpened(c terrain.Coord)      { o.set(c, astar.Frontier) }
func (o *overlay) CellExpanded(c terrain.Coord)    { o.set(c, astar.Expanded) }
func (o *overlay) CellOnPath(c terrain.Coord)      { o.set(c, astar.OnPath) }
func (o *overlay) CellUnreachable(c terrain.Coord) { o.set(c, astar.Unreachable) }

func (o *overlay) set(c terrain.Coord, s astar.CellState) {
	o.states[o.grid.Index(c)] = s
}

// at returns the recorded state of c.
func (o *overlay) at(c terrain.Coord) astar.CellState {
	return o.states[o.grid.Index(c)]
}

// clear forgets every notification.
func (o *overlay) clear() {
	for i := range o.states {
		o.states[i] = astar.Unvisited
	}
}

// count returns how many cells are in state s.
func (o *overlay) count(s astar.CellState) int {
	n := 0
	for _, st := range o.states {
		if st == s {
			n++
		}
	}

	return n
}
