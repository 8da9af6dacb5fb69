// Package gen generates occupancy grids and start/goal instances for
// navigation experiments.
//
// What:
//
//   - Grid generators: EmptyGrid, EmptyGridFromRange, GapScenarioGrid (a
//     walled arena with a central wall and evenly spaced gaps), and
//     ReduceCellSize (subdivide each cell n×n for higher resolution).
//   - Instance generators: CircleInstance (agents on a circle with
//     opposing goals), MeshInstance (square mesh with shuffled goal
//     assignment), RandomEmptyInstance / RandomEmptyCells (random
//     placements on an open grid), and RandomMapInstance / RandomMapCells
//     (random placements on an obstacle grid, rejecting start/goal pairs
//     with no path between them via a pathtable reachability check).
//   - ObstaclePolygons: an experimental tracer that converts grid
//     obstacles into closed boundary polygons in Cartesian coordinates.
//
// Two state formats are produced:
//
//   - Continuous State (x, y, theta, vx, vy): position, yaw, velocity.
//     Randomized generators draw theta uniformly and zero the velocities.
//   - Discrete gridmap.Cell (i, j) coordinates, from the *Cells variants.
//
// Determinism:
//
//	Every randomized generator takes an explicit *rand.Rand; identical
//	seeds reproduce identical instances.
//
// Errors:
//
//   - ErrCellSizeMismatch: a coordinate range does not divide evenly by
//     the cell size.
//   - ErrNilRand: a randomized generator was called without a source.
//   - ErrNotSquare: MeshInstance requires a perfect-square agent count.
//   - ErrPlacementFailed: the placement retry budget was exhausted (grid
//     too crowded for the requested agent count).
package gen
