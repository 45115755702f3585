package astar

import (
	"math"

	"github.com/katalvlaran/gridpath/terrain"
)

// Base move costs on the integer scale shared by StepCost and Heuristic.
const (
	Straight = 10
	Diagonal = 14

	// NoMove is returned by StepCost for cells that are not neighbors.
	NoMove = math.MaxInt32
)

// truncEpsilon absorbs binary representation error of decimal multipliers
// (10×2.3 must truncate to 23, not 22).
const truncEpsilon = 1e-9

// StepCost is the cost of moving from one cell to an adjacent one:
// Straight×m for orthogonal moves and Diagonal×m for diagonal moves, where m
// is the destination multiplier, truncated to an integer. Identical cells
// cost 0; cells farther apart than one step return NoMove.
func StepCost(g *terrain.Grid, from, to terrain.Coord) int {
	dx, dy := abs(to.X-from.X), abs(to.Y-from.Y)
	switch {
	case dx > 1 || dy > 1:
		return NoMove
	case dx == 0 && dy == 0:
		return 0
	case dx == 0 || dy == 0:
		return scaled(Straight, g.CostMultiplier(to))
	default:
		return scaled(Diagonal, g.CostMultiplier(to))
	}
}

// Heuristic is the octile distance between a and b:
// Diagonal×min(dx,dy) + Straight×|dx−dy|. It never overestimates StepCost
// sums while multipliers are ≥ 1.
func Heuristic(a, b terrain.Coord) int {
	dx, dy := abs(b.X-a.X), abs(b.Y-a.Y)

	return Diagonal*min(dx, dy) + Straight*abs(dx-dy)
}

// PathCost sums StepCost along consecutive cells of path.
func PathCost(g *terrain.Grid, path []terrain.Coord) int {
	total := 0
	for i := 1; i < len(path); i++ {
		total += StepCost(g, path[i-1], path[i])
	}

	return total
}

func scaled(base int, m float64) int {
	return int(float64(base)*m + truncEpsilon)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
