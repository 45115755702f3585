package mapfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/mapfile"
	"github.com/katalvlaran/gridpath/terrain"
)

const detour = `
name: detour
rows:
  - "S...."
  - ".###."
  - "....E"
`

func TestDecode_Detour(t *testing.T) {
	m, err := mapfile.Decode([]byte(detour))
	require.NoError(t, err)

	g := m.Grid
	assert.Equal(t, "detour", m.Name)
	assert.Equal(t, 5, g.Width)
	assert.Equal(t, 3, g.Height)
	assert.Equal(t, terrain.Coord{X: 0, Y: 0}, g.Start)
	assert.Equal(t, terrain.Coord{X: 4, Y: 2}, g.End)
	for x := 1; x <= 3; x++ {
		assert.True(t, g.IsWall(terrain.Coord{X: x, Y: 1}))
	}
	assert.Equal(t, terrain.Road, g.Cell(g.Start).Kind(), "markers sit on road")

	res, err := astar.FindPath(g)
	require.NoError(t, err)
	assert.Equal(t, 54, res.Cost)
}

func TestDecode_SymbolsAndOverrides(t *testing.T) {
	m, err := mapfile.Decode([]byte(`
name: bands
start: [0, 0]
end: [5, 0]
rows: [".gsm~#"]
costs:
  - {x: 1, y: 0, cost: 1.3}
`))
	require.NoError(t, err)

	g := m.Grid
	assert.InDelta(t, 1.3, g.CostMultiplier(terrain.Coord{X: 1, Y: 0}), 1e-9)
	assert.InDelta(t, 2.0, g.CostMultiplier(terrain.Coord{X: 2, Y: 0}), 1e-9)
	assert.InDelta(t, 2.5, g.CostMultiplier(terrain.Coord{X: 3, Y: 0}), 1e-9)
	assert.InDelta(t, 3.0, g.CostMultiplier(terrain.Coord{X: 4, Y: 0}), 1e-9)
	assert.True(t, g.IsWall(terrain.Coord{X: 5, Y: 0}))
	assert.Equal(t, terrain.Coord{X: 5, Y: 0}, g.End)
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"no rows", "name: empty\n", mapfile.ErrNoRows},
		{"empty row", "rows: [\"\"]\n", mapfile.ErrNoRows},
		{"ragged", "rows: [\"...\", \"..\"]\n", mapfile.ErrRaggedRows},
		{"unknown symbol", "rows: [\".x.\"]\n", mapfile.ErrUnknownSymbol},
		{"two starts", "rows: [\"S.S\"]\n", mapfile.ErrDuplicateMarker},
		{"two ends", "rows: [\"E.E\"]\n", mapfile.ErrDuplicateMarker},
		{"marker and field disagree", "start: [1, 0]\nrows: [\"S..\"]\n", mapfile.ErrDuplicateMarker},
		{"bad coordinate", "end: [1]\nrows: [\"...\"]\n", mapfile.ErrBadCoord},
		{"cost too high", "rows: [\"...\"]\ncosts: [{x: 0, y: 0, cost: 3.5}]\n", mapfile.ErrCostOutOfBounds},
		{"cost too low", "rows: [\"...\"]\ncosts: [{x: 0, y: 0, cost: 0.5}]\n", mapfile.ErrCostOutOfBounds},
		{"below range off a wall", "rows: [\"...\"]\ncosts: [{x: 0, y: 0, cost: 0.9}]\n", mapfile.ErrCostOutOfBounds},
		{"cost not a number", "rows: [\"S.E\"]\ncosts: [{x: 1, y: 0, cost: .nan}]\n", mapfile.ErrCostOutOfBounds},
		{"override outside", "rows: [\"...\"]\ncosts: [{x: 9, y: 0, cost: 2}]\n", terrain.ErrOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mapfile.Decode([]byte(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := mapfile.Decode([]byte("rows: {not: a list}"))
	require.Error(t, err)
}

func TestDecode_FieldMatchingMarker(t *testing.T) {
	m, err := mapfile.Decode([]byte("start: [0, 0]\nrows: [\"S.E\"]\n"))
	require.NoError(t, err)
	assert.Equal(t, terrain.Coord{X: 0, Y: 0}, m.Grid.Start)
	assert.Equal(t, terrain.Coord{X: 2, Y: 0}, m.Grid.End)
}

func TestEncode_RoundTrip(t *testing.T) {
	g, err := terrain.FromCosts([][]float64{
		{1.0, 1.3, 2.0, 0},
		{2.5, 3.0, 1.5, 2.2},
	})
	require.NoError(t, err)
	g.SetStart(terrain.Coord{X: 1, Y: 0})
	g.SetEnd(terrain.Coord{X: 3, Y: 1})

	data, err := mapfile.Encode(&mapfile.Map{Name: "mixed", Grid: g})
	require.NoError(t, err)

	// Only the off-canonical cells need overrides; the 0 wall is stored
	// below the range and keeps that cost.
	var raw struct {
		Rows  []string         `yaml:"rows"`
		Costs []map[string]any `yaml:"costs"`
	}
	require.NoError(t, yaml.Unmarshal(data, &raw))
	assert.Equal(t, []string{".gs#", "m~gm"}, raw.Rows)
	assert.Len(t, raw.Costs, 3)

	back, err := mapfile.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "mixed", back.Name)
	assert.Equal(t, g.Start, back.Grid.Start)
	assert.Equal(t, g.End, back.Grid.End)
	g.Each(func(c terrain.Cell) {
		got := back.Grid.Cell(c.Coord())
		assert.Equal(t, c.Wall, got.Wall, "wall at %s", c.Coord())
		assert.InDelta(t, c.Cost, got.Cost, 1e-9, "cost at %s", c.Coord())
	})
}

// TestEncode_ScrolledWalls saves walls scrolled out at either end of the
// range and checks one notch back restores the same terrain after loading.
func TestEncode_ScrolledWalls(t *testing.T) {
	g, err := terrain.NewGrid(3, 1)
	require.NoError(t, err)
	low, high, painted := terrain.Coord{X: 0, Y: 0}, terrain.Coord{X: 1, Y: 0}, terrain.Coord{X: 2, Y: 0}
	_, err = g.ScrollCost(low, -terrain.CostStep)
	require.NoError(t, err)
	require.NoError(t, g.SetCost(high, terrain.MaxCost))
	_, err = g.ScrollCost(high, terrain.CostStep)
	require.NoError(t, err)
	require.NoError(t, g.SetWall(painted, true))
	require.True(t, g.IsWall(low))
	require.True(t, g.IsWall(high))

	data, err := mapfile.Encode(&mapfile.Map{Grid: g})
	require.NoError(t, err)
	back, err := mapfile.Decode(data)
	require.NoError(t, err)

	for _, c := range []terrain.Coord{low, high, painted} {
		assert.True(t, back.Grid.IsWall(c), "wall at %s", c)
	}
	_, err = back.Grid.ScrollCost(low, terrain.CostStep)
	require.NoError(t, err)
	assert.Equal(t, terrain.Road, back.Grid.Cell(low).Kind())
	_, err = back.Grid.ScrollCost(high, -terrain.CostStep)
	require.NoError(t, err)
	assert.Equal(t, terrain.Water, back.Grid.Cell(high).Kind())
}

func TestEncode_Nil(t *testing.T) {
	_, err := mapfile.Encode(nil)
	require.ErrorIs(t, err, mapfile.ErrNoRows)
}

func TestSaveLoad(t *testing.T) {
	m, err := mapfile.Decode([]byte(detour))
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "detour.yaml")
	require.NoError(t, mapfile.Save(file, m))

	back, err := mapfile.Load(file)
	require.NoError(t, err)
	assert.Equal(t, m.Grid.Start, back.Grid.Start)
	assert.Equal(t, m.Grid.End, back.Grid.End)
	assert.Equal(t, m.Grid.Width, back.Grid.Width)

	_, err = mapfile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuiltins(t *testing.T) {
	assert.Equal(t, []string{"detour", "island", "maze", "valley"}, mapfile.Builtins())

	for _, name := range mapfile.Builtins() {
		m, err := mapfile.Builtin(name)
		require.NoError(t, err, name)
		require.NoError(t, astar.Validate(m.Grid), name)
	}

	island, err := mapfile.Builtin("island")
	require.NoError(t, err)
	_, err = astar.FindPath(island.Grid)
	require.ErrorIs(t, err, astar.ErrNoPath)

	maze, err := mapfile.Builtin("maze")
	require.NoError(t, err)
	res, err := astar.FindPath(maze.Grid)
	require.NoError(t, err)
	assert.Equal(t, astar.Found, res.Outcome)

	_, err = mapfile.Builtin("atlantis")
	require.ErrorIs(t, err, mapfile.ErrUnknownMap)
}
