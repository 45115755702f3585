// Package astar computes least-cost routes across a terrain.Grid with the A*
// algorithm and 8-directional movement.
//
// Overview:
//
//   - Moving to an orthogonal neighbor costs Straight×m and to a diagonal
//     neighbor Diagonal×m, where m is the destination cost multiplier,
//     truncated to an integer. Walls are never entered.
//   - The heuristic is the octile distance, admissible and consistent while
//     every multiplier is ≥ 1, so the first expansion of end is optimal.
//   - The open set is a min-heap ordered by F = G + H, ties broken by lower
//     H and then by insertion order, which makes runs deterministic.
//
// Execution modes:
//
//   - FindPath: run to completion and return a Result.
//   - Stepper:  one expansion per Step call, for visualization pacing.
//     Both drive the same Search state machine, so a stepped search ends with
//     the same path and cost as a full one.
//
// Notifications (advisory, no effect on the algorithm):
//
//   - OnOpen        a cell joined the frontier.
//   - OnExpand      a cell was closed.
//   - OnPath        a cell lies on the final path (reported end → start).
//   - OnUnreachable a closed cell of a search that exhausted.
//
// Error handling (sentinel errors):
//
//   - ErrPrecondition wraps ErrNilGrid, ErrEmptyGrid, ErrStartOutOfBounds,
//     ErrEndOutOfBounds, ErrSameEndpoints, ErrStartWall or ErrEndWall. The
//     search is a no-op and the Result outcome is Invalid.
//   - ErrNoPath: valid preconditions, open set exhausted. Outcome Exhausted,
//     Closed lists the cells that were searched.
//   - ErrNotInitialized: a Stepper advanced before its initializing call.
//
// All failures are recoverable: every new search allocates a fresh search
// context, so the caller may edit the grid and search again.
//
// Thread safety:
//
//   - A Search mutates only its own state, but the grid is read without
//     locking. Do not edit a grid while a search over it is in progress.
//
// Metrics:
//
//   - gridpath_astar_searches_total{mode,outcome}
//   - gridpath_astar_expanded_cells{mode}
//   - gridpath_astar_solve_duration_seconds
package astar
