// Package dijkstra implements Dijkstra's shortest-path algorithm on terrain grids.
//
// Every passable cell is a vertex; every move to one of the eight neighbors
// is an edge weighted by astar.StepCost. Cells are processed in order of
// increasing distance using a min-heap priority queue.
//
// Notes on implementation choices:
//
//   - We treat any move with cost ≥ InfEdgeThreshold as impassable.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/terrain"
)

// Dijkstra computes least-cost distances from Options.Source to every cell
// of g.
//
// Returns:
//
//   - dist: map from cell to minimum distance (math.MaxInt64 if unreachable or a wall).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest route to v arrives from u.
//     The source and unreachable cells have no entry.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Source must be set (ErrSourceUnset).
//  3. Source must lie inside g (ErrSourceOutOfBounds).
//  4. Source must not be a wall (ErrSourceWall).
//
// Complexity:
//
//   - Time:  O(N log N)
//   - Space: O(N)
func Dijkstra(g *terrain.Grid, opts ...Option) (map[terrain.Coord]int64, map[terrain.Coord]terrain.Coord, error) {
	// 1) Build Options
	cfg := DefaultOptions(terrain.Unset)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, nil, ErrNilGrid
	}
	if !cfg.Source.IsSet() {
		return nil, nil, ErrSourceUnset
	}
	if !g.Contains(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %s", ErrSourceOutOfBounds, cfg.Source)
	}
	if g.IsWall(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %s", ErrSourceWall, cfg.Source)
	}

	// 3) Prepare per-cell state and run.
	n := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	r.process()

	// 4) Export flat state as coordinate maps.
	dist := make(map[terrain.Coord]int64, n)
	for i, d := range r.dist {
		dist[g.Coordinate(i)] = d
	}
	if !cfg.ReturnPath {
		return dist, nil, nil
	}
	prev := make(map[terrain.Coord]terrain.Coord)
	for i, p := range r.prev {
		if p >= 0 {
			prev[g.Coordinate(i)] = g.Coordinate(p)
		}
	}

	return dist, prev, nil
}

// PathTo rebuilds the route from source to dest out of a predecessor map
// returned with WithReturnPath. Returns ErrUnreachable if dest has no
// predecessor chain back to source.
func PathTo(prev map[terrain.Coord]terrain.Coord, source, dest terrain.Coord) ([]terrain.Coord, error) {
	path := []terrain.Coord{dest}
	for cur := dest; cur != source; {
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnreachable, dest)
		}
		path = append(path, p)
		cur = p
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *terrain.Grid // The input grid; read-only within Dijkstra.
	options Options       // Configuration options.
	dist    []int64       // Row-major index → current best distance from Source.
	prev    []int         // Row-major index → predecessor index, -1 for none.
	visited []bool        // Tracks if a cell's distance is finalized.
	pq      nodePQ        // Min-heap of *nodeItem for lazy priority queue.
}

// init sets dist to +∞ everywhere, then pushes Source with distance 0.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = math.MaxInt64
		r.prev[i] = -1
	}
	src := r.g.Index(r.options.Source)
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: src, dist: 0})
}

// process repeatedly extracts the closest unfinalized cell and relaxes its moves.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable cells processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() {
	buf := make([]terrain.Coord, 0, 8)
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		// Skip stale heap entries.
		if r.visited[item.idx] {
			continue
		}
		// Nothing cheaper remains; stop without finalizing this cell.
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.idx] = true
		buf = r.relax(item.idx, buf)
	}
}

// relax tries to improve every passable neighbor of cell u. Moves costing
// at least InfEdgeThreshold are skipped. buf is scratch space for the
// neighbor enumeration and is returned for reuse.
func (r *runner) relax(u int, buf []terrain.Coord) []terrain.Coord {
	from := r.g.Coordinate(u)
	buf = r.g.Neighbors(from, buf)
	for _, to := range buf {
		if r.g.IsWall(to) {
			continue
		}
		w := int64(astar.StepCost(r.g, from, to))
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		v := r.g.Index(to)
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// “<” rather than “≤” avoids pushing duplicates on ties.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{idx: v, dist: newDist})
	}

	return buf
}

// nodeItem represents a cell and its current distance from the source.
type nodeItem struct {
	idx  int   // row-major cell index
	dist int64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending. Outdated
// entries stay in the heap and are ignored when popped (visited check).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
