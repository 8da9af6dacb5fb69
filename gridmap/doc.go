// Package gridmap provides an immutable view over a rectangular occupancy
// grid, the common environment model for every search and generation
// component of this module.
//
// What:
//
//   - GridMap wraps a rectangular [][]bool occupancy bitmap (true = blocked).
//   - Answers bounds, traversability, and ordered 4-connected neighbor queries.
//   - MoveCost implements the unit-cost cardinal move model.
//
// Why:
//
//   - Single-agent pathfinding: the search core reads grids exclusively
//     through this view.
//   - Instance generation: generators and file readers produce occupancy
//     bitmaps and wrap them here before running any query.
//
// Determinism:
//
//	Neighbors evaluates the four cardinal offsets in the fixed order
//	E(0,+1), S(+1,0), W(0,-1), N(-1,0). Every consumer that cares about
//	reproducible expansion order (tie-breaking, benchmarking) relies on
//	this contract.
//
// Complexity:
//
//   - New:         O(H×W) time and memory (deep copy).
//   - InBounds, Traversable, Size: O(1).
//   - Neighbors:   O(1) (four candidate offsets).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//
// MoveCost panics when asked to price a non-cardinal pair: neighbor
// generation only ever produces cardinal pairs, so such a request signals a
// broken invariant upstream rather than a recoverable search outcome.
package gridmap
