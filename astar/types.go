// Package astar defines node and result types, heuristics, and sentinel
// errors for the grid search engine.
package astar

import (
	"errors"

	"github.com/haiot4105/multi-agent-nav-lib/gridmap"
)

// Sentinel errors for search execution.
var (
	// ErrNilMap is returned if a nil *gridmap.GridMap is passed.
	ErrNilMap = errors.New("astar: map is nil")

	// ErrNilHeuristic is returned if a nil heuristic function is passed.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrStartOutOfBounds is returned when the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("astar: start cell out of bounds")

	// ErrStartBlocked is returned when the start cell is not traversable.
	ErrStartBlocked = errors.New("astar: start cell is blocked")

	// ErrNoPath reports the normal expected-absence outcome: start and goal
	// are both valid but lie in different connected components.
	ErrNoPath = errors.New("astar: no path between start and goal")
)

// NoParent marks a node without a predecessor (the start node).
const NoParent = -1

// Node is a per-cell search record: grid position, cost-so-far G,
// heuristic estimate H, priority F = G + H, and the arena index of the
// predecessor node that produced it (NoParent for the start node).
//
// Nodes are plain values. Closed-set identity is the Cell alone; heap
// ordering is the (F, H, insertion order) relation maintained by Frontier.
// Once a node is finalized it is never mutated (append-only finalize).
type Node struct {
	Cell    gridmap.Cell
	G, H, F int
	Parent  int
}

// Heuristic estimates the remaining cost from cell a to cell b.
// It must be admissible (never overestimate) and consistent for the
// optimality guarantee of point-to-point search to hold.
type Heuristic func(a, b gridmap.Cell) int

// ManhattanDistance returns |a.I-b.I| + |a.J-b.J|, which is admissible and
// consistent on a 4-connected unit-cost grid: the first time the goal
// position is popped, its G is the optimal cost.
func ManhattanDistance(a, b gridmap.Cell) int {
	return abs(a.I-b.I) + abs(a.J-b.J)
}

// Zero is the constant-zero heuristic used by full-expansion mode; with it
// A* degenerates to uniform-cost search and visits every reachable cell.
func Zero(_, _ gridmap.Cell) int {
	return 0
}

// Result carries the outcome of one Search invocation.
type Result struct {
	// Found reports whether the goal position was finalized.
	Found bool

	// Goal is the finalized goal node when Found is true; zero otherwise.
	Goal Node

	// Cost is Goal.G when Found is true; -1 otherwise.
	Cost int

	// Expanded maps every finalized position to its search node. It is a
	// read-only snapshot owned by the caller; later searches never touch it.
	Expanded map[gridmap.Cell]Node

	// TreeSize is the total number of open and closed entries at
	// termination, a measure of the memory footprint of the run.
	TreeSize int

	// arena retains the parent chain for path reconstruction.
	arena []Node
}

// Path reconstructs the start-to-goal path by walking parent references
// back from the goal node and reversing. The start cell itself is
// excluded from the returned path. Returns nil when no path was found.
// Complexity: O(L) for a path of length L.
func (r *Result) Path() []gridmap.Cell {
	if !r.Found {
		return nil
	}
	path := make([]gridmap.Cell, 0, r.Goal.G)
	for n := r.Goal; n.Parent != NoParent; n = r.arena[n.Parent] {
		path = append(path, n.Cell)
	}
	for l, h := 0, len(path)-1; l < h; l, h = l+1, h-1 {
		path[l], path[h] = path[h], path[l]
	}

	return path
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
