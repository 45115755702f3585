package astar_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/terrain"
)

// parseGrid builds a grid from an ASCII picture, one row per line:
// '.' road, '#' wall, 'S' start, 'E' end, digits 1-3 set that multiplier.
func parseGrid(t testing.TB, picture string) *terrain.Grid {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(picture), "\n")
	g, err := terrain.NewGrid(len(strings.TrimSpace(lines[0])), len(lines))
	require.NoError(t, err)
	for y, line := range lines {
		for x, r := range strings.TrimSpace(line) {
			at := terrain.Coord{X: x, Y: y}
			switch r {
			case '#':
				require.NoError(t, g.SetWall(at, true))
			case 'S':
				g.SetStart(at)
			case 'E':
				g.SetEnd(at)
			case '1', '2', '3':
				require.NoError(t, g.SetCost(at, float64(r-'0')))
			}
		}
	}
	return g
}

// randomGrid returns a w×h grid with mixed multipliers, ~wallPct% walls and
// passable start/end cells chosen by rng.
func randomGrid(rng *rand.Rand, w, h, wallPct int) *terrain.Grid {
	costs := []float64{1.0, 1.0, 1.3, 1.5, 2.0, 2.7, 3.0}
	g, _ := terrain.NewGrid(w, h)
	for i := 0; i < g.Len(); i++ {
		at := g.Coordinate(i)
		if rng.Intn(100) < wallPct {
			_ = g.SetWall(at, true)
			continue
		}
		_ = g.SetCost(at, costs[rng.Intn(len(costs))])
	}
	pick := func() terrain.Coord {
		at := terrain.Coord{X: rng.Intn(w), Y: rng.Intn(h)}
		_ = g.SetWall(at, false)
		return at
	}
	g.SetStart(pick())
	for {
		if e := pick(); e != g.Start {
			g.SetEnd(e)
			break
		}
	}
	return g
}

// bruteForceCost relaxes every edge until nothing changes (Bellman-Ford) and
// returns the least cost from start to end, or -1 when unreachable.
func bruteForceCost(g *terrain.Grid) int {
	dist := make([]int, g.Len())
	for i := range dist {
		dist[i] = math.MaxInt
	}
	dist[g.Index(g.Start)] = 0
	var buf []terrain.Coord
	for changed := true; changed; {
		changed = false
		for i := range dist {
			at := g.Coordinate(i)
			if dist[i] == math.MaxInt || g.IsWall(at) {
				continue
			}
			buf = g.Neighbors(at, buf)
			for _, nb := range buf {
				if g.IsWall(nb) {
					continue
				}
				j := g.Index(nb)
				if d := dist[i] + astar.StepCost(g, at, nb); d < dist[j] {
					dist[j] = d
					changed = true
				}
			}
		}
	}
	if d := dist[g.Index(g.End)]; d != math.MaxInt {
		return d
	}
	return -1
}

// requireValidPath asserts start/end endpoints, adjacency and no walls.
func requireValidPath(t *testing.T, g *terrain.Grid, path []terrain.Coord) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, g.Start, path[0])
	require.Equal(t, g.End, path[len(path)-1])
	for i, c := range path {
		require.False(t, g.IsWall(c), "path cell %s is a wall", c)
		if i == 0 {
			continue
		}
		p := path[i-1]
		dx, dy := c.X-p.X, c.Y-p.Y
		require.True(t, max(dx, -dx, dy, -dy) == 1, "cells %s and %s are not adjacent", p, c)
	}
}
