package astar

import (
	"container/heap"
	"log/slog"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/terrain"
)

// node is the engine-owned scratch record of one cell.
type node struct {
	g, h    int
	parent  int // row-major index of the predecessor, -1 for none
	seq     int // insertion order into the open set
	heapIdx int // position in the open heap, -1 when not open
	seen    bool
}

// Search is one A* run over a grid. It owns every per-cell score and the
// open/closed frontier; the grid only answers terrain queries. A Search is
// driven either to completion by Run or one expansion at a time by Step.
// It is not safe for concurrent use, and the grid must not be edited while
// a search is in progress.
type Search struct {
	grid *terrain.Grid
	opts Options

	start, end int
	nodes      []node
	open       openQueue
	closed     mapset.Set[int]
	order      []int // closed cells in expansion order
	onPath     mapset.Set[int]
	path       []terrain.Coord

	current int
	seq     int
	outcome Outcome
	buf     []terrain.Coord
}

// NewSearch validates g and prepares a fresh search whose open set holds
// only the start cell. Nothing is expanded yet. Scores from any earlier
// search are discarded.
//
// A precondition violation returns an error wrapping ErrPrecondition.
func NewSearch(g *terrain.Grid, opts ...Option) (*Search, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := Validate(g); err != nil {
		o.Logger.Debug("astar_precondition_failed", slog.String("error", err.Error()))
		return nil, err
	}

	s := &Search{
		grid:    g,
		opts:    o,
		start:   g.Index(g.Start),
		end:     g.Index(g.End),
		nodes:   make([]node, g.Len()),
		closed:  mapset.New[int](),
		onPath:  mapset.New[int](),
		current: -1,
		buf:     make([]terrain.Coord, 0, 8),
	}
	for i := range s.nodes {
		s.nodes[i].parent = -1
		s.nodes[i].heapIdx = -1
	}
	s.open.nodes = s.nodes
	heap.Init(&s.open)

	s.discover(s.start, 0, -1)
	o.Logger.Debug("astar_search_start",
		slog.String("start", g.Start.String()),
		slog.String("end", g.End.String()),
		slog.Int("width", g.Width),
		slog.Int("height", g.Height),
	)

	return s, nil
}

// Step performs exactly one frontier expansion and reports the outcome.
//
//   - Pending: a cell was expanded, the search continues.
//   - Found: end was expanded and the path has been reconstructed.
//   - Exhausted: the open set was already empty; every closed cell is
//     reported unreachable and ErrNoPath is returned.
//
// Once terminal, Step keeps returning the same outcome without side effects.
func (s *Search) Step() (Outcome, error) {
	if s.outcome.Done() {
		return s.outcome, s.terminalErr()
	}
	if s.open.Len() == 0 {
		s.exhaust()
		return s.outcome, ErrNoPath
	}

	// 1) Take the best open cell and close it.
	i := heap.Pop(&s.open).(int)
	s.closed.Put(i)
	s.order = append(s.order, i)
	s.current = i
	at := s.grid.Coordinate(i)
	s.opts.OnExpand(at)

	// 2) Goal test on expansion.
	if i == s.end {
		s.finish()
		return s.outcome, nil
	}

	// 3) Relax every passable, unclosed neighbor.
	cur := &s.nodes[i]
	s.buf = s.grid.Neighbors(at, s.buf)
	for _, nb := range s.buf {
		j := s.grid.Index(nb)
		if s.grid.IsWall(nb) || s.closed.Has(j) {
			continue
		}
		newG := cur.g + StepCost(s.grid, at, nb)
		n := &s.nodes[j]
		if n.heapIdx >= 0 {
			// h is position-only, so only g and the parent change.
			if newG < n.g {
				n.g = newG
				n.parent = i
				heap.Fix(&s.open, n.heapIdx)
			}
			continue
		}
		s.discover(j, newG, i)
	}

	return s.outcome, nil
}

// Run steps until the search is terminal or the context is cancelled, and
// returns the result. An exhausted search returns ErrNoPath; a cancelled
// one returns the context error and a Pending result.
func (s *Search) Run() (*Result, error) {
	for {
		select {
		case <-s.opts.Ctx.Done():
			return s.Result(), s.opts.Ctx.Err()
		default:
		}
		outcome, err := s.Step()
		if outcome.Done() {
			return s.Result(), err
		}
	}
}

// Result snapshots the search. It may be called at any time.
func (s *Search) Result() *Result {
	r := &Result{
		Outcome:  s.outcome,
		Expanded: len(s.order),
		Closed:   make([]terrain.Coord, len(s.order)),
	}
	for k, i := range s.order {
		r.Closed[k] = s.grid.Coordinate(i)
	}
	if s.outcome == Found {
		r.Path = append([]terrain.Coord(nil), s.path...)
		r.Cost = s.nodes[s.end].g
	}

	return r
}

// Outcome returns the current search state.
func (s *Search) Outcome() Outcome { return s.outcome }

// Grid returns the grid being searched.
func (s *Search) Grid() *terrain.Grid { return s.grid }

// OpenLen returns the number of frontier cells.
func (s *Search) OpenLen() int { return s.open.Len() }

// ClosedLen returns the number of expanded cells.
func (s *Search) ClosedLen() int { return s.closed.Size() }

// Current returns the most recently expanded cell, if any.
func (s *Search) Current() (terrain.Coord, bool) {
	if s.current < 0 {
		return terrain.Unset, false
	}

	return s.grid.Coordinate(s.current), true
}

// Scores returns the search values of c. ok is false for cells outside the
// grid or never discovered.
func (s *Search) Scores(c terrain.Coord) (Scores, bool) {
	if !s.grid.Contains(c) {
		return Scores{}, false
	}
	n := s.nodes[s.grid.Index(c)]
	if !n.seen {
		return Scores{}, false
	}
	sc := Scores{G: n.g, H: n.h, Parent: terrain.Unset}
	if n.parent >= 0 {
		sc.Parent = s.grid.Coordinate(n.parent)
	}

	return sc, true
}

// State classifies c for visualization.
func (s *Search) State(c terrain.Coord) CellState {
	if !s.grid.Contains(c) {
		return Unvisited
	}
	i := s.grid.Index(c)
	switch {
	case s.onPath.Has(i):
		return OnPath
	case s.closed.Has(i) && s.outcome == Exhausted:
		return Unreachable
	case s.closed.Has(i):
		return Expanded
	case s.nodes[i].heapIdx >= 0:
		return Frontier
	default:
		return Unvisited
	}
}

// discover inserts cell i into the open set.
func (s *Search) discover(i, g, parent int) {
	s.seq++
	n := &s.nodes[i]
	n.g = g
	n.h = Heuristic(s.grid.Coordinate(i), s.grid.End)
	n.parent = parent
	n.seq = s.seq
	n.seen = true
	heap.Push(&s.open, i)
	s.opts.OnOpen(s.grid.Coordinate(i))
}

// finish marks the search Found and walks predecessor links from end back
// to the cell without a predecessor (start).
func (s *Search) finish() {
	s.outcome = Found
	var rev []terrain.Coord
	for i := s.end; i >= 0; i = s.nodes[i].parent {
		c := s.grid.Coordinate(i)
		s.onPath.Put(i)
		s.opts.OnPath(c)
		rev = append(rev, c)
	}
	// reverse to get start → end
	for l, r := 0, len(rev)-1; l < r; l, r = l+1, r-1 {
		rev[l], rev[r] = rev[r], rev[l]
	}
	s.path = rev
	s.opts.Logger.Info("astar_path_found",
		slog.Int("cost", s.nodes[s.end].g),
		slog.Int("length", len(rev)),
		slog.Int("expanded", len(s.order)),
	)
}

// exhaust marks the search Exhausted and reports every closed cell.
func (s *Search) exhaust() {
	s.outcome = Exhausted
	for _, i := range s.order {
		s.opts.OnUnreachable(s.grid.Coordinate(i))
	}
	s.opts.Logger.Info("astar_no_path", slog.Int("expanded", len(s.order)))
}

func (s *Search) terminalErr() error {
	if s.outcome == Exhausted {
		return ErrNoPath
	}

	return nil
}
