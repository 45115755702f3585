package terrain_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/terrain"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ScrollCost
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_ScrollCost shows a cell scrolled past the top of the cost
// range turning into a wall and coming back one notch later.
func ExampleGrid_ScrollCost() {
	g, _ := terrain.NewGrid(1, 1)
	at := terrain.Coord{X: 0, Y: 0}
	_ = g.SetCost(at, 2.9)

	for _, d := range []float64{terrain.CostStep, terrain.CostStep, -terrain.CostStep} {
		_, _ = g.ScrollCost(at, d)
		c := g.Cell(at)
		fmt.Printf("cost=%.1f kind=%s\n", c.Cost, c.Kind())
	}

	// Output:
	// cost=3.0 kind=water
	// cost=3.1 kind=wall
	// cost=3.0 kind=water
}

////////////////////////////////////////////////////////////////////////////////
// Example: Regions
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Regions splits a map along a wall column.
func ExampleGrid_Regions() {
	g, _ := terrain.FromCosts([][]float64{
		{1, 0, 1},
		{1, 0, 2},
	})
	for i, region := range g.Regions() {
		fmt.Printf("region %d:", i)
		for _, idx := range region {
			fmt.Printf(" %s", g.Coordinate(idx))
		}
		fmt.Println()
	}

	// Output:
	// region 0: (0,0) (0,1)
	// region 1: (2,0) (2,1)
}
