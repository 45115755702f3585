package terrain

import (
	"errors"
	"fmt"
)

// Sentinel errors for terrain operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("terrain: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("terrain: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("terrain: coordinate out of bounds")
)

// Cost multiplier domain for passable cells.
const (
	MinCost     = 1.0
	MaxCost     = 3.0
	DefaultCost = 1.0
	// CostStep is the increment applied by one scroll notch.
	CostStep = 0.1
)

// Coord is an integer grid position.
type Coord struct {
	X, Y int
}

// Unset marks a Start or End that has not been placed.
var Unset = Coord{X: -1, Y: -1}

// IsSet reports whether c differs from Unset.
func (c Coord) IsSet() bool { return c != Unset }

// String formats c as "(x,y)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Cell is one grid position. X and Y are fixed at construction.
type Cell struct {
	X, Y int     // Coordinates within the grid
	Cost float64 // Traversal cost multiplier, meaningful when !Wall
	Wall bool    // Impassable marker
}

// Coord returns the cell position.
func (c Cell) Coord() Coord { return Coord{X: c.X, Y: c.Y} }

// Passable reports whether the cell may enter a search frontier.
func (c Cell) Passable() bool { return !c.Wall }

// Grid is a W×H rectangle of cells in row-major order (index = y*Width + x).
// Width and Height are fixed once built. Start and End are settable by the
// editing collaborator and read by the search engine.
type Grid struct {
	Width, Height int
	Start, End    Coord
	cells         []Cell
}
