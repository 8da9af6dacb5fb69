// Package astar implements single-agent A* search over 4-connected
// occupancy grids, with a lazy-deletion frontier and an arena-backed
// search tree.
//
// What:
//
//   - Search runs the A* expand loop on a gridmap.GridMap with an injected
//     heuristic and the unit cardinal cost model, returning the goal node,
//     the optimal cost, and a snapshot of every expanded cell.
//   - FindPath / FindLength are the point-to-point conveniences built on
//     Search with the Manhattan heuristic.
//   - ExpandFrom runs Search in full-expansion mode (Zero heuristic, a goal
//     outside the grid), enumerating the entire connected component
//     reachable from the start cell.
//   - Frontier is the open/closed bookkeeping structure: a min-heap over
//     search nodes with lazy duplicate suppression, plus a closed set keyed
//     by grid position.
//
// Why:
//
//   - Point-to-point queries: optimal path and cost between two cells.
//   - Reachability precomputation: pathtable builds its connectivity index
//     on repeated full expansions.
//
// Dual identity of the search node:
//
//	Equality for closed-set purposes is keyed on the grid position only;
//	g/h/f are not part of that identity. Ordering for the heap is a
//	separate relation: ascending f, ties broken by smaller h, then by
//	arena insertion order. Unifying the two relations would silently break
//	duplicate suppression whenever costs differ.
//
// Lazy deletion:
//
//	Push performs no duplicate check; duplicate copies of a position
//	coexist in the heap and stale ones are discarded on pop against the
//	closed set. This replaces a decrease-key-capable heap with a simpler
//	one at the cost of extra pushes, a trade-off exercised at scale by the
//	connectivity precomputation.
//
// Complexity (V = traversable cells, E = cardinal adjacencies):
//
//   - Search:   O((V + E) log V) time, O(V + E) memory (heap may hold
//     duplicate entries under lazy deletion).
//   - Path reconstruction: O(L) for a path of length L.
//
// Errors:
//
//   - ErrNilMap, ErrNilHeuristic: invalid inputs.
//   - ErrStartOutOfBounds, ErrStartBlocked: unusable start cell.
//   - ErrNoPath: the normal expected-absence outcome of FindPath and
//     FindLength when start and goal lie in different components.
//
// The goal cell is deliberately not validated: full-expansion mode passes
// a sentinel goal outside the grid, unreachable by construction, to force
// the loop to run to frontier exhaustion.
package astar
