package astar_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/terrain"
)

// ------------------------------------------------------------------------
// 1. Concrete scenarios
// ------------------------------------------------------------------------

func TestFindPath_OpenDiagonal(t *testing.T) {
	g := parseGrid(t, `
S..
...
..E`)
	res, err := astar.FindPath(g)
	require.NoError(t, err)
	require.Equal(t, astar.Found, res.Outcome)
	assert.Equal(t, []terrain.Coord{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}, res.Path)
	assert.Equal(t, 28, res.Cost)
	assert.Equal(t, 3, res.Expanded)
}

func TestFindPath_AroundCenterWall(t *testing.T) {
	g := parseGrid(t, `
S..
.#.
..E`)
	res, err := astar.FindPath(g)
	require.NoError(t, err)
	require.Equal(t, astar.Found, res.Outcome)
	requireValidPath(t, g, res.Path)
	assert.Equal(t, 34, res.Cost)
	assert.Equal(t, 34, astar.PathCost(g, res.Path))
	assert.Len(t, res.Path, 4)
}

func TestFindPath_PrefersCheapTerrain(t *testing.T) {
	// The straight row is water; the detour over road is cheaper.
	g := parseGrid(t, `
.....
S333E
.....`)
	res, err := astar.FindPath(g)
	require.NoError(t, err)
	requireValidPath(t, g, res.Path)
	assert.Equal(t, bruteForceCost(g), res.Cost)
	for _, c := range res.Path[1 : len(res.Path)-1] {
		assert.NotEqual(t, 1, c.Y, "path should leave the water row at %s", c)
	}
}

// ------------------------------------------------------------------------
// 2. No-path handling
// ------------------------------------------------------------------------

func TestFindPath_EnclosedStart(t *testing.T) {
	g := parseGrid(t, `
E....
.###.
.#S#.
.###.
.....`)
	var unreachable []terrain.Coord
	res, err := astar.FindPath(g, astar.WithOnUnreachable(func(c terrain.Coord) {
		unreachable = append(unreachable, c)
	}))
	require.ErrorIs(t, err, astar.ErrNoPath)
	require.Equal(t, astar.Exhausted, res.Outcome)
	assert.Nil(t, res.Path)
	assert.Equal(t, []terrain.Coord{g.Start}, res.Closed)
	assert.Equal(t, res.Closed, unreachable)
}

func TestFindPath_EnclosedEnd(t *testing.T) {
	g := parseGrid(t, `
S....
.###.
.#E#.
.###.
.....`)
	res, err := astar.FindPath(g)
	require.ErrorIs(t, err, astar.ErrNoPath)
	require.Equal(t, astar.Exhausted, res.Outcome)
	// every reachable cell outside the ring is searched
	assert.Equal(t, 16, res.Expanded)
}

// ------------------------------------------------------------------------
// 3. Properties on random grids
// ------------------------------------------------------------------------

func TestFindPath_OptimalOnRandomGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		g := randomGrid(rng, 5+rng.Intn(3), 5+rng.Intn(3), 20)
		want := bruteForceCost(g)

		res, err := astar.FindPath(g)
		if want < 0 {
			require.ErrorIs(t, err, astar.ErrNoPath, "trial %d", trial)
			require.False(t, g.Connected(g.Start, g.End), "trial %d", trial)
			continue
		}
		require.NoError(t, err, "trial %d", trial)
		requireValidPath(t, g, res.Path)
		require.Equal(t, want, res.Cost, "trial %d: not optimal", trial)
		require.Equal(t, res.Cost, astar.PathCost(g, res.Path), "trial %d", trial)
	}
}

func TestFindPath_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 50; trial++ {
		g := randomGrid(rng, 12, 9, 25)
		a, errA := astar.FindPath(g)
		b, errB := astar.FindPath(g)
		require.Equal(t, errA, errB)
		require.Equal(t, a, b, "trial %d", trial)
	}
}

func TestFindPath_SearchAgainAfterEdit(t *testing.T) {
	g := parseGrid(t, `
S#.
##.
..E`)
	_, err := astar.FindPath(g)
	require.ErrorIs(t, err, astar.ErrNoPath)

	require.NoError(t, g.SetWall(terrain.Coord{X: 1, Y: 1}, false))
	res, err := astar.FindPath(g)
	require.NoError(t, err)
	assert.Equal(t, 28, res.Cost)
}

// ------------------------------------------------------------------------
// 4. Notifications, scores and cancellation
// ------------------------------------------------------------------------

type recorder struct {
	opened, expanded, path, unreachable []terrain.Coord
}

func (r *recorder) CellOpened(c terrain.Coord)      { r.opened = append(r.opened, c) }
func (r *recorder) CellExpanded(c terrain.Coord)    { r.expanded = append(r.expanded, c) }
func (r *recorder) CellOnPath(c terrain.Coord)      { r.path = append(r.path, c) }
func (r *recorder) CellUnreachable(c terrain.Coord) { r.unreachable = append(r.unreachable, c) }

func TestFindPath_Observer(t *testing.T) {
	g := parseGrid(t, `
S..
...
..E`)
	rec := &recorder{}
	res, err := astar.FindPath(g, astar.WithObserver(rec))
	require.NoError(t, err)

	// start plus its three neighbors, then five new cells around (1,1)
	assert.Len(t, rec.opened, 9)
	assert.Equal(t, rec.opened[0], g.Start)
	assert.Equal(t, res.Closed, rec.expanded)
	assert.Equal(t, []terrain.Coord{{X: 2, Y: 2}, {X: 1, Y: 1}, {X: 0, Y: 0}}, rec.path)
	assert.Empty(t, rec.unreachable)
}

func TestSearch_ScoresAndState(t *testing.T) {
	g := parseGrid(t, `
S..
...
..E`)
	s, err := astar.NewSearch(g)
	require.NoError(t, err)
	assert.Equal(t, astar.Frontier, s.State(g.Start))
	_, ok := s.Current()
	assert.False(t, ok)

	res, err := s.Run()
	require.NoError(t, err)
	require.Equal(t, astar.Found, res.Outcome)

	sc, ok := s.Scores(terrain.Coord{X: 1, Y: 1})
	require.True(t, ok)
	assert.Equal(t, astar.Scores{G: 14, H: 14, Parent: g.Start}, sc)
	assert.Equal(t, 28, sc.F())

	sc, ok = s.Scores(g.Start)
	require.True(t, ok)
	assert.Equal(t, terrain.Unset, sc.Parent)
	assert.Equal(t, 28, sc.H)

	sc, ok = s.Scores(terrain.Coord{X: 0, Y: 2})
	require.True(t, ok)
	assert.Equal(t, 48, sc.F())

	_, ok = s.Scores(terrain.Coord{X: 5, Y: 5})
	assert.False(t, ok)

	assert.Equal(t, astar.OnPath, s.State(terrain.Coord{X: 1, Y: 1}))
	assert.Equal(t, astar.Frontier, s.State(terrain.Coord{X: 2, Y: 0}))
	assert.Equal(t, 6, s.OpenLen())
	assert.Equal(t, 3, s.ClosedLen())
	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, g.End, cur)
}

func TestSearch_StateAfterExhaustion(t *testing.T) {
	g := parseGrid(t, `
S#.
##E`)
	s, err := astar.NewSearch(g)
	require.NoError(t, err)
	_, err = s.Run()
	require.ErrorIs(t, err, astar.ErrNoPath)
	assert.Equal(t, astar.Unreachable, s.State(g.Start))
	assert.Equal(t, astar.Unvisited, s.State(g.End))

	// terminal steps are idempotent
	outcome, err := s.Step()
	assert.Equal(t, astar.Exhausted, outcome)
	assert.ErrorIs(t, err, astar.ErrNoPath)
}

func TestFindPath_Cancelled(t *testing.T) {
	g := parseGrid(t, `
S....
.....
....E`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := astar.FindPath(g, astar.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, astar.Pending, res.Outcome)
	assert.Zero(t, res.Expanded)
}

func TestOutcomeAndStateStrings(t *testing.T) {
	assert.Equal(t, "found", astar.Found.String())
	assert.Equal(t, "invalid", astar.Invalid.String())
	assert.Equal(t, "unknown", astar.Outcome(42).String())
	assert.True(t, astar.Exhausted.Done())
	assert.False(t, astar.Pending.Done())
	assert.Equal(t, "path", astar.OnPath.String())
	assert.Equal(t, "unknown", astar.CellState(-1).String())
}
