package astar

import (
	"container/heap"
	"fmt"

	"github.com/haiot4105/multi-agent-nav-lib/gridmap"
)

// Frontier maintains the open/closed bookkeeping for one search: an arena
// of search nodes addressed by index, a min-heap of arena indices ordered
// by priority, and a closed map from position to finalized arena index.
//
// Parent links are stored as arena indices rather than references: every
// expansion strictly increases G, so the chain is backward-only and
// acyclic, and nodes are never removed once finalized.
//
// A Frontier is exclusive to a single search invocation and must not be
// shared across concurrent searches.
type Frontier struct {
	arena  []Node
	open   openHeap
	closed map[gridmap.Cell]int
}

// NewFrontier returns an empty Frontier.
func NewFrontier() *Frontier {
	fr := &Frontier{closed: make(map[gridmap.Cell]int)}
	heap.Init(&fr.open)

	return fr
}

// Push appends n to the arena and inserts it into the open heap, returning
// its arena index. No duplicate check is performed: if the same position is
// pushed multiple times with different G, all copies coexist in the heap.
// This is the lazy-deletion design — it avoids a decrease-key operation at
// the cost of stale duplicate entries, which PopBest discards.
// Complexity: O(log N) amortized.
func (fr *Frontier) Push(n Node) int {
	idx := len(fr.arena)
	fr.arena = append(fr.arena, n)
	heap.Push(&fr.open, openEntry{idx: idx, f: n.F, h: n.H})

	return idx
}

// PopBest repeatedly removes the minimum-priority entry from the open
// heap, discarding any entry whose position is already closed (a stale
// duplicate), until it finds one not yet closed or the heap is empty.
// It returns the arena index of the best node and true, or false when the
// open heap is exhausted.
//
// Contract: after PopBest returns a node, the caller must MarkClosed it
// before pushing its successors, else the each-position-expanded-at-most-
// once guarantee breaks.
func (fr *Frontier) PopBest() (int, bool) {
	for fr.open.Len() > 0 {
		entry := heap.Pop(&fr.open).(openEntry)
		if _, stale := fr.closed[fr.arena[entry.idx].Cell]; !stale {
			return entry.idx, true
		}
	}

	return 0, false
}

// MarkClosed finalizes the node at arena index idx, keying the closed set
// by its position. Panics on an index never returned by Push: that is a
// broken invariant upstream, not an expected runtime state.
func (fr *Frontier) MarkClosed(idx int) {
	if idx < 0 || idx >= len(fr.arena) {
		panic(fmt.Sprintf("astar: MarkClosed of unknown arena index %d", idx))
	}
	fr.closed[fr.arena[idx].Cell] = idx
}

// IsClosed reports whether the position c has already been finalized.
func (fr *Frontier) IsClosed(c gridmap.Cell) bool {
	_, ok := fr.closed[c]

	return ok
}

// Node returns the arena node at index idx.
func (fr *Frontier) Node(idx int) Node {
	return fr.arena[idx]
}

// Len returns the sum of open and closed sizes, a measure of the memory
// footprint of the search tree, especially at the final iteration.
func (fr *Frontier) Len() int {
	return fr.open.Len() + len(fr.closed)
}

// expanded builds a read-only snapshot of the closed set keyed by position.
func (fr *Frontier) expanded() map[gridmap.Cell]Node {
	snap := make(map[gridmap.Cell]Node, len(fr.closed))
	for c, idx := range fr.closed {
		snap[c] = fr.arena[idx]
	}

	return snap
}

// openEntry is one heap element: the arena index of a pushed node together
// with the f and h values it was pushed with.
type openEntry struct {
	idx  int
	f, h int
}

// openHeap is a min-heap of openEntry ordered by ascending f, ties broken
// by smaller h, then by arena insertion order. The arena index grows
// monotonically, so the third key makes the relation a deterministic total
// order: repeated runs over the same map expand cells identically.
type openHeap []openEntry

// Len returns the number of entries in the heap.
func (pq openHeap) Len() int { return len(pq) }

// Less defines the priority relation: (f, h, insertion order) ascending.
func (pq openHeap) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].h != pq[j].h {
		return pq[i].h < pq[j].h
	}

	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq openHeap) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *openHeap) Push(x interface{}) { *pq = append(*pq, x.(openEntry)) }

// Pop removes and returns the smallest element. Called by heap.Pop.
func (pq *openHeap) Pop() interface{} {
	old := *pq
	n := len(old)
	entry := old[n-1]
	*pq = old[:n-1]

	return entry
}
