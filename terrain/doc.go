// Package terrain models a fixed-size rectangular grid of weighted cells
// for least-cost route planning.
//
// What:
//
//   - Grid holds Width×Height cells in row-major order plus two designated
//     coordinates, Start and End, either of which may be Unset.
//   - Each Cell carries a cost multiplier in [MinCost, MaxCost] and a wall flag.
//   - Editing helpers (SetWall, ClearCell, ScrollCost, SetCost, Reset) keep the
//     cost/wall invariant: a cost outside [MinCost, MaxCost] means a wall.
//   - Terrain classes (Road, Grass, Sand, Mountain, Water, Wall) name cost bands.
//   - Regions groups passable cells into 8-connected components.
//
// Why:
//
//   - The grid is the caller-owned collaborator of the astar engine; it exposes
//     immutable terrain queries (IsWall, CostMultiplier) and never stores search
//     scratch data.
//
// Complexity:
//
//   - CellAt, IsWall, CostMultiplier, Index, Coordinate: O(1).
//   - Neighbors: O(1), at most 8 coordinates.
//   - Regions: O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive.
//   - ErrNonRectangular: rows of differing lengths passed to FromCosts.
//   - ErrOutOfBounds: an editing operation targeted a coordinate outside the grid.
package terrain
