// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on terrain grids.
//
// Dijkstra computes the minimum-cost route from a single source cell to every
// other reachable cell, using the same move costs as the astar package.
//
// Complexity:
//
//	– Time:  O(N log N)   where N = W×H cells (at most 8 moves per cell)
//	– Space: O(N)
//
// Options:
//
//	– Source:           starting cell (must be inside the grid and passable).
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; cells beyond this are skipped.
//	– InfEdgeThreshold: moves costing >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGrid           if the provided grid pointer is nil.
//	– ErrSourceUnset       if no source was given.
//	– ErrSourceOutOfBounds if the source lies outside the grid.
//	– ErrSourceWall        if the source cell is a wall.
//	– ErrBadMaxDistance    if MaxDistance < 0.
//	– ErrBadInfThreshold   if InfEdgeThreshold <= 0.
//	– ErrUnreachable       from PathTo when the destination was not reached.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridpath/terrain"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil *terrain.Grid was passed to Dijkstra.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrSourceUnset indicates that no Source option was supplied.
	ErrSourceUnset = errors.New("dijkstra: source cell is unset")

	// ErrSourceOutOfBounds indicates that the source lies outside the grid.
	ErrSourceOutOfBounds = errors.New("dijkstra: source cell outside grid")

	// ErrSourceWall indicates that the source cell is impassable.
	ErrSourceWall = errors.New("dijkstra: source cell is a wall")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every move as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrUnreachable indicates PathTo was asked for a cell the search never reached.
	ErrUnreachable = errors.New("dijkstra: destination not reached")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting cell (must be inside the grid and passable).
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – optional cap on distances to explore (cells beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat moves with cost ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles besides walls).
type Options struct {
	Source           terrain.Coord // The source cell
	ReturnPath       bool          // Whether to return the predecessor map
	MaxDistance      int64         // Maximum distance to explore
	InfEdgeThreshold int64         // Move cost at or above which a move is non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting cell. Must be called.
func Source(c terrain.Coord) Option {
	return func(o *Options) {
		o.Source = c
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If false (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not explored.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Invalid configuration is a programming error.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a move cost above which moves are considered
// non-traversable. A threshold of 30, for example, keeps the search off water
// entered orthogonally (10×3.0) and off anything pricier.
// Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults for the
// given source cell.
//
// Defaults:
//   - Source:           <as passed> (validated in Dijkstra).
//   - ReturnPath:       false (predecessor map not returned).
//   - MaxDistance:      math.MaxInt64 (no distance limit).
//   - InfEdgeThreshold: math.MaxInt64 (only walls block).
func DefaultOptions(source terrain.Coord) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
