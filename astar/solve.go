package astar

import (
	"time"

	"github.com/katalvlaran/gridpath/terrain"
)

// FindPath runs a full A* search from g.Start to g.End and blocks until it
// finishes.
//
// Returns:
//
//   - (Result{Outcome: Found}, nil) with the path and its cost.
//   - (Result{Outcome: Exhausted}, ErrNoPath) when end is unreachable; Closed
//     lists every expanded cell, each also reported through OnUnreachable.
//   - (Result{Outcome: Invalid}, err) when a precondition fails; err wraps
//     ErrPrecondition and nothing is expanded.
//   - (Result{Outcome: Pending}, ctx.Err()) if the context is cancelled.
//
// Complexity:
//
//   - Time:  O(N log N) for N = W×H cells; each cell is opened and closed once
//     and every relaxation costs one heap fix.
//   - Space: O(N) for the search context.
func FindPath(g *terrain.Grid, opts ...Option) (*Result, error) {
	_, res, err := solve(g, opts)

	return res, err
}

// solve runs a full search and records it under the full-solve metrics.
// The search is nil when a precondition fails.
func solve(g *terrain.Grid, opts []Option) (*Search, *Result, error) {
	begin := time.Now()
	s, err := NewSearch(g, opts...)
	if err != nil {
		observeSearch(modeFull, Invalid, 0)
		return nil, &Result{Outcome: Invalid}, err
	}
	res, err := s.Run()
	observeSearch(modeFull, res.Outcome, res.Expanded)
	solveDuration.Observe(time.Since(begin).Seconds())

	return s, res, err
}
