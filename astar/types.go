// Package astar defines the sentinel errors, outcomes, results and
// functional options of the grid A* engine.
package astar

import (
	"context"
	"errors"
	"log/slog"

	"github.com/katalvlaran/gridpath/terrain"
)

// Sentinel errors returned by the engine.
var (
	// ErrPrecondition wraps every precondition violation; the search did not start.
	ErrPrecondition = errors.New("astar: precondition failed")

	// ErrNilGrid indicates a nil *terrain.Grid.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrEmptyGrid indicates a grid without positive dimensions.
	ErrEmptyGrid = errors.New("astar: grid must have positive dimensions")

	// ErrStartOutOfBounds indicates an unset or out-of-bounds start.
	ErrStartOutOfBounds = errors.New("astar: start outside grid")

	// ErrEndOutOfBounds indicates an unset or out-of-bounds end.
	ErrEndOutOfBounds = errors.New("astar: end outside grid")

	// ErrSameEndpoints indicates start == end.
	ErrSameEndpoints = errors.New("astar: start and end are the same cell")

	// ErrStartWall indicates the start cell is a wall.
	ErrStartWall = errors.New("astar: start cell is a wall")

	// ErrEndWall indicates the end cell is a wall.
	ErrEndWall = errors.New("astar: end cell is a wall")

	// ErrNoPath indicates the open set was exhausted without reaching end.
	ErrNoPath = errors.New("astar: no path between start and end")

	// ErrNotInitialized indicates a Stepper advanced before its initializing call.
	ErrNotInitialized = errors.New("astar: stepper not initialized")
)

// Outcome is the state of a search.
type Outcome int

const (
	// Pending means the search can still expand cells.
	Pending Outcome = iota
	// Found means end was expanded and the path is available.
	Found
	// Exhausted means the open set emptied without reaching end.
	Exhausted
	// Invalid means a precondition failed and nothing was expanded.
	Invalid
)

// String returns the lower-case outcome name.
func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Done reports whether o is terminal.
func (o Outcome) Done() bool { return o != Pending }

// Result is the outcome of a finished (or abandoned) search.
//
//   - Path lists the cells from start to end inclusive; nil unless Found.
//   - Cost is the accumulated score of end; zero unless Found.
//   - Expanded counts cells moved to the closed set.
//   - Closed lists expanded cells in expansion order.
type Result struct {
	Outcome  Outcome
	Path     []terrain.Coord
	Cost     int
	Expanded int
	Closed   []terrain.Coord
}

// CellState is the visual state of a cell within one search.
type CellState int

const (
	// Unvisited cells were never discovered.
	Unvisited CellState = iota
	// Frontier cells are in the open set.
	Frontier
	// Expanded cells are in the closed set.
	Expanded
	// OnPath cells belong to the reconstructed path.
	OnPath
	// Unreachable cells were expanded by a search that exhausted.
	Unreachable
)

var cellStateNames = [...]string{"unvisited", "frontier", "expanded", "path", "unreachable"}

// String returns the lower-case state name.
func (s CellState) String() string {
	if s < Unvisited || s > Unreachable {
		return "unknown"
	}

	return cellStateNames[s]
}

// Scores are the per-cell search values: G accumulated from start, H the
// heuristic to end, F = G + H. Parent is terrain.Unset for the start cell.
type Scores struct {
	G, H   int
	Parent terrain.Coord
}

// F returns G + H.
func (s Scores) F() int { return s.G + s.H }

// Observer receives visualization notifications. They are advisory and
// have no effect on the algorithm.
type Observer interface {
	CellOpened(c terrain.Coord)
	CellExpanded(c terrain.Coord)
	CellOnPath(c terrain.Coord)
	CellUnreachable(c terrain.Coord)
}

// Options holds hooks and collaborators for a search.
type Options struct {
	// Ctx allows cancellation of Run between expansions.
	Ctx context.Context

	// OnOpen is called when a cell joins the open set (start included).
	OnOpen func(c terrain.Coord)

	// OnExpand is called when a cell moves from open to closed.
	OnExpand func(c terrain.Coord)

	// OnPath is called for each path cell, walking from end back to start.
	OnPath func(c terrain.Coord)

	// OnUnreachable is called for every closed cell when the search exhausts.
	OnUnreachable func(c terrain.Coord)

	// Logger receives search lifecycle records.
	Logger *slog.Logger
}

// Option configures a search via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a background context, no-op hooks and
// a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		OnOpen:        func(terrain.Coord) {},
		OnExpand:      func(terrain.Coord) {},
		OnPath:        func(terrain.Coord) {},
		OnUnreachable: func(terrain.Coord) {},
		Logger:        slog.New(slog.DiscardHandler),
	}
}

// WithContext sets a context checked once per expansion by Run.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnOpen registers a callback for cells entering the open set.
func WithOnOpen(fn func(c terrain.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnOpen = fn
		}
	}
}

// WithOnExpand registers a callback for cells entering the closed set.
func WithOnExpand(fn func(c terrain.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnPath registers a callback for cells on the final path.
func WithOnPath(fn func(c terrain.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPath = fn
		}
	}
}

// WithOnUnreachable registers a callback for closed cells of an exhausted search.
func WithOnUnreachable(fn func(c terrain.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnUnreachable = fn
		}
	}
}

// WithObserver routes all four notifications to obs.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs == nil {
			return
		}
		o.OnOpen = obs.CellOpened
		o.OnExpand = obs.CellExpanded
		o.OnPath = obs.CellOnPath
		o.OnUnreachable = obs.CellUnreachable
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
