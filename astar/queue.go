package astar

// openQueue is a min-heap of node indices ordered by F, then H, then
// insertion sequence. Every node tracks its heap position so relaxations
// can restore the heap in place with heap.Fix.
type openQueue struct {
	nodes []node // shared with the owning Search
	items []int
}

// Len returns the number of open nodes.
func (q *openQueue) Len() int { return len(q.items) }

// Less prefers lower F, then lower H (greedier toward end), then earlier insertion.
func (q *openQueue) Less(i, j int) bool {
	a, b := &q.nodes[q.items[i]], &q.nodes[q.items[j]]
	if fa, fb := a.g+a.h, b.g+b.h; fa != fb {
		return fa < fb
	}
	if a.h != b.h {
		return a.h < b.h
	}

	return a.seq < b.seq
}

// Swap swaps two entries and their recorded positions.
func (q *openQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.nodes[q.items[i]].heapIdx = i
	q.nodes[q.items[j]].heapIdx = j
}

// Push appends node index x; called by heap.Push.
func (q *openQueue) Push(x any) {
	i := x.(int)
	q.nodes[i].heapIdx = len(q.items)
	q.items = append(q.items, i)
}

// Pop removes the last entry; called by heap.Pop.
func (q *openQueue) Pop() any {
	n := len(q.items)
	i := q.items[n-1]
	q.items = q.items[:n-1]
	q.nodes[i].heapIdx = -1

	return i
}
