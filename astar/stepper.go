package astar

import (
	"github.com/katalvlaran/gridpath/terrain"
)

// Stepper drives a search one expansion per call, for callers that pace
// the search themselves (one key press, one frame tick). Frontier state
// lives in the Stepper between calls, never on the caller's stack.
type Stepper struct {
	grid   *terrain.Grid
	opts   []Option
	search *Search
}

// NewStepper binds a stepper to g. Options apply to every search it starts.
func NewStepper(g *terrain.Grid, opts ...Option) *Stepper {
	return &Stepper{grid: g, opts: opts}
}

// Step advances the search and reports whether it is done.
//
// With initialize set, any previous search is discarded, preconditions are
// checked and a new frontier holding only the start cell is created; no
// cell is expanded and done is false. A precondition failure is terminal:
// done is true and the error wraps ErrPrecondition.
//
// Without initialize, Step performs one expansion. done becomes true when
// end is expanded (nil error) or when the open set is found empty
// (ErrNoPath). Calling before any initialization returns ErrNotInitialized.
func (st *Stepper) Step(initialize bool) (done bool, err error) {
	if initialize {
		st.search = nil
		s, err := NewSearch(st.grid, st.opts...)
		if err != nil {
			observeSearch(modeStep, Invalid, 0)
			return true, err
		}
		st.search = s
		return false, nil
	}
	if st.search == nil {
		return true, ErrNotInitialized
	}

	wasDone := st.search.Outcome().Done()
	outcome, err := st.search.Step()
	if outcome.Done() && !wasDone {
		observeSearch(modeStep, outcome, st.search.ClosedLen())
	}

	return outcome.Done(), err
}

// Solve discards any previous search and runs a new one to completion, as
// FindPath does. The finished search stays available through Search.
func (st *Stepper) Solve() (*Result, error) {
	s, res, err := solve(st.grid, st.opts)
	st.search = s

	return res, err
}

// Cancel abandons the current search. Notifications already delivered stay
// delivered; nothing else changes.
func (st *Stepper) Cancel() { st.search = nil }

// Active reports whether a search is initialized and not yet terminal.
func (st *Stepper) Active() bool {
	return st.search != nil && !st.search.Outcome().Done()
}

// Search returns the current search, or nil when none is initialized.
func (st *Stepper) Search() *Search { return st.search }
