// Package pathtable precomputes connected components of traversable cells
// and answers O(1) reachability queries on a static occupancy grid.
//
// What:
//
//   - PathTable maps every traversable cell to a component id such that two
//     cells share an id iff a path exists between them.
//   - PathExists answers point-pair reachability without running a search.
//
// Why:
//
//   - Random instance generators reject start/goal pairs with no path
//     before emitting a scenario; a per-pair search would be wasteful.
//
// Construction sweeps all cells in fixed row-major order and runs one
// full A* expansion per still-unassigned traversable cell. Every expansion
// only touches cells without an id yet, so total construction work is one
// full-expansion pass over the whole grid — O(V + E) amortized, not
// O(V·(V+E)).
//
// The component assignment is an equivalence relation over traversable
// cells: reflexive, symmetric, transitive. It is computed once at
// construction and never updated; the grid is assumed immutable for the
// table's lifetime. Once built, the table is a read-only lookup safely
// shared by concurrent readers.
//
// Errors:
//
//   - ErrNilMap: nil grid passed to New.
//   - ErrUnknownCell: PathExists or ComponentID queried with a blocked or
//     never-assigned cell — a broken invariant upstream, reported as an
//     error rather than a false "no path".
package pathtable
