// Package dijkstra provides an exact least-cost field over terrain grids.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost route from a single source cell to every
//     reachable cell in O(N log N) time, where N = W×H cells.
//   - It relies on a min-heap (priority queue) to always expand the next-closest cell.
//   - Move costs are exactly those of the astar package (astar.StepCost), so a
//     distance here equals the cost A* reports for the same endpoints.
//
// When to use:
//
//   - To obtain distances to every cell at once (heat maps, reachability overlays).
//   - As an oracle for A*: with an admissible heuristic both must agree on cost.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: if enabled, returns a “predecessor” map; PathTo rebuilds routes from it.
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any move costing ≥ threshold as impassable, e.g. to keep
//     units out of water without editing the map.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid, ErrSourceUnset, ErrSourceOutOfBounds, ErrSourceWall:
//     returned by Dijkstra for invalid inputs; check with errors.Is.
//   - ErrBadMaxDistance, ErrBadInfThreshold:
//     options panic with these messages when applied with invalid values.
//   - ErrUnreachable:
//     returned by PathTo when the destination was never reached.
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(grid,
//	    dijkstra.Source(terrain.Coord{X: 0, Y: 0}),
//	    dijkstra.WithReturnPath(),
//	)
//	route, err := dijkstra.PathTo(prev, terrain.Coord{X: 0, Y: 0}, grid.End)
package dijkstra
