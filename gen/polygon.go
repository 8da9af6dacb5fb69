package gen

// Obstacle boundary tracing. Experimental: polygon orientation is not
// normalized, and a corner where two obstacle regions touch diagonally is
// resolved by walk order.

import (
	"github.com/haiot4105/multi-agent-nav-lib/gridmap"
	"github.com/haiot4105/multi-agent-nav-lib/transform"
)

// corner is a lattice point on the cell-corner grid: cx in [0,w],
// cy in [0,h], counted in cell units from the bottom-left map corner.
// Integer corners keep segment stitching exact; conversion to Cartesian
// happens only on output.
type corner struct {
	cx, cy int
}

// boundarySegment is one unit-length piece of obstacle boundary between
// two adjacent corners.
type boundarySegment struct {
	a, b corner
}

// ObstaclePolygons traces the boundaries of every obstacle region of the
// grid and returns them as closed polygons in Cartesian coordinates, one
// vertex list per boundary loop with collinear runs merged. A ring-shaped
// region yields two loops (outer and inner). The rectangular map boundary
// is appended as the final polygon.
// Complexity: O(h×w) time and memory.
func ObstaclePolygons(grid [][]bool, cellSize float64) [][]transform.Point {
	h := len(grid)
	w := 0
	if h > 0 {
		w = len(grid[0])
	}

	var result [][]transform.Point
	for _, region := range obstacleRegions(grid) {
		var segments []boundarySegment
		for _, c := range region {
			segments = append(segments, borderlines(c, grid)...)
		}
		for _, loop := range stitchLoops(segments) {
			result = append(result, toCartesian(mergeCollinear(loop), cellSize))
		}
	}

	boundary := []transform.Point{
		{X: 0, Y: 0},
		{X: 0, Y: float64(h) * cellSize},
		{X: float64(w) * cellSize, Y: float64(h) * cellSize},
		{X: float64(w) * cellSize, Y: 0},
	}

	return append(result, boundary)
}

// isObstacle reports whether (i,j) is an in-bounds blocked cell.
func isObstacle(i, j int, grid [][]bool) bool {
	return i >= 0 && i < len(grid) && j >= 0 && j < len(grid[0]) && grid[i][j]
}

// isBorder reports whether (i,j) is a blocked cell with at least one free
// or out-of-map cardinal neighbor.
func isBorder(i, j int, grid [][]bool) bool {
	if !isObstacle(i, j, grid) {
		return false
	}
	for _, d := range [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
		if !isObstacle(i+d[0], j+d[1], grid) {
			return true
		}
	}

	return false
}

// obstacleRegions groups border cells into connected regions. Diagonal
// adjacency connects two border cells only when at least one of the two
// orthogonal intermediate cells is an obstacle; two regions touching at a
// single corner stay separate.
func obstacleRegions(grid [][]bool) [][]gridmap.Cell {
	deltas := [8][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}, {1, 1}, {-1, -1}, {1, -1}, {-1, 1}}
	closed := make(map[gridmap.Cell]struct{})
	var regions [][]gridmap.Cell

	for i := range grid {
		for j := range grid[i] {
			seed := gridmap.Cell{I: i, J: j}
			if _, done := closed[seed]; done || !isBorder(i, j, grid) {
				continue
			}

			var region []gridmap.Cell
			stack := []gridmap.Cell{seed}
			closed[seed] = struct{}{}
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				region = append(region, cur)

				for _, d := range deltas {
					next := gridmap.Cell{I: cur.I + d[0], J: cur.J + d[1]}
					if _, seen := closed[next]; seen || !isBorder(next.I, next.J, grid) {
						continue
					}
					if d[0] != 0 && d[1] != 0 &&
						!isObstacle(cur.I, next.J, grid) && !isObstacle(next.I, cur.J, grid) {
						continue
					}
					closed[next] = struct{}{}
					stack = append(stack, next)
				}
			}
			regions = append(regions, region)
		}
	}

	return regions
}

// borderlines returns the boundary segments of cell c: one unit segment
// per side adjacent to a free or out-of-map cell. Cell (i,j) spans
// [j,j+1]×[h-i-1,h-i] in corner coordinates.
func borderlines(c gridmap.Cell, grid [][]bool) []boundarySegment {
	h := len(grid)
	left, right := c.J, c.J+1
	bottom, top := h-c.I-1, h-c.I

	var segments []boundarySegment
	if !isObstacle(c.I, c.J+1, grid) { // east side
		segments = append(segments, boundarySegment{a: corner{right, bottom}, b: corner{right, top}})
	}
	if !isObstacle(c.I+1, c.J, grid) { // south side (below in grid rows)
		segments = append(segments, boundarySegment{a: corner{left, bottom}, b: corner{right, bottom}})
	}
	if !isObstacle(c.I, c.J-1, grid) { // west side
		segments = append(segments, boundarySegment{a: corner{left, top}, b: corner{left, bottom}})
	}
	if !isObstacle(c.I-1, c.J, grid) { // north side
		segments = append(segments, boundarySegment{a: corner{right, top}, b: corner{left, top}})
	}

	return segments
}

// stitchLoops connects segments sharing endpoints into closed loops and
// returns each loop as an ordered corner sequence (first corner not
// repeated at the end). Every corner on an obstacle boundary has even
// degree, so the walk always closes.
func stitchLoops(segments []boundarySegment) [][]corner {
	adjacency := make(map[corner][]int, len(segments))
	for idx, s := range segments {
		adjacency[s.a] = append(adjacency[s.a], idx)
		adjacency[s.b] = append(adjacency[s.b], idx)
	}

	used := make([]bool, len(segments))
	var loops [][]corner

	for startIdx := range segments {
		if used[startIdx] {
			continue
		}
		used[startIdx] = true
		start := segments[startIdx].a
		loop := []corner{start}
		at := segments[startIdx].b

		for at != start {
			loop = append(loop, at)
			next := -1
			for _, idx := range adjacency[at] {
				if !used[idx] {
					next = idx

					break
				}
			}
			if next == -1 {
				// Open chain: malformed input, abandon this loop.
				break
			}
			used[next] = true
			if segments[next].a == at {
				at = segments[next].b
			} else {
				at = segments[next].a
			}
		}
		loops = append(loops, loop)
	}

	return loops
}

// mergeCollinear drops interior corners of straight runs, including across
// the loop seam.
func mergeCollinear(loop []corner) []corner {
	if len(loop) < 3 {
		return loop
	}
	merged := make([]corner, 0, len(loop))
	n := len(loop)
	for k := 0; k < n; k++ {
		prev, cur, next := loop[(k+n-1)%n], loop[k], loop[(k+1)%n]
		straight := (prev.cx == cur.cx && cur.cx == next.cx) ||
			(prev.cy == cur.cy && cur.cy == next.cy)
		if !straight {
			merged = append(merged, cur)
		}
	}

	return merged
}

// toCartesian scales corner coordinates by the cell size.
func toCartesian(loop []corner, cellSize float64) []transform.Point {
	points := make([]transform.Point, len(loop))
	for k, c := range loop {
		points[k] = transform.Point{X: float64(c.cx) * cellSize, Y: float64(c.cy) * cellSize}
	}

	return points
}
