package gen

import (
	"fmt"
	"math"
)

// EmptyGrid returns an h×w occupancy grid with every cell passable.
// Complexity: O(h×w).
func EmptyGrid(h, w int) [][]bool {
	grid := make([][]bool, h)
	for i := range grid {
		grid[i] = make([]bool, w)
	}

	return grid
}

// EmptyGridFromRange returns an all-passable grid covering the coordinate
// ranges [x0,x1]×[y0,y1] at the given cell size, together with its
// dimensions. Returns ErrCellSizeMismatch when either range is not an
// integer number of cells.
func EmptyGridFromRange(x0, x1, y0, y1, cellSize float64) (h, w int, grid [][]bool, err error) {
	h = int((y1 - y0) / cellSize)
	w = int((x1 - x0) / cellSize)

	const eps = 1e-9
	if math.Abs(float64(h)*cellSize-(y1-y0)) > eps || math.Abs(float64(w)*cellSize-(x1-x0)) > eps {
		return 0, 0, nil, fmt.Errorf("%w: [%g,%g]x[%g,%g] at cell size %g",
			ErrCellSizeMismatch, x0, x1, y0, y1, cellSize)
	}

	return h, w, EmptyGrid(h, w), nil
}

// GapScenarioGrid returns an h×w grid with boundary walls on all edges and
// a solid wall in the middle column, pierced by the requested number of
// gaps for agents to pass through.
//
// Gap placement: a single gap sits at the middle row; multiple gaps are
// spread evenly along the wall, with any division residue absorbed one row
// at a time from the top. When gaps >= h-2 the wall stays solid (there is
// no room to distribute that many gaps).
// Complexity: O(h×w).
func GapScenarioGrid(h, w, gaps int) [][]bool {
	grid := make([][]bool, h)
	for i := range grid {
		grid[i] = make([]bool, w)
	}
	for j := 0; j < w; j++ {
		grid[0][j] = true
		grid[h-1][j] = true
	}
	wallColumn := w / 2
	for i := 0; i < h; i++ {
		grid[i][0] = true
		grid[i][w-1] = true
		grid[i][wallColumn] = true
	}

	if gaps >= h-2 {
		return grid
	}
	if gaps == 1 {
		grid[h/2][wallColumn] = false

		return grid
	}

	div := (h - 2 - gaps) / (gaps + 1)
	residue := (h - 2 - gaps) % (gaps + 1)
	row := 0
	for g := 0; g < gaps; g++ {
		row += div + 1
		if residue > 0 {
			row++
			residue--
		}
		grid[row][wallColumn] = false
	}

	return grid
}

// ReduceCellSize increases grid resolution by subdividing every cell into
// an n×n block, returning the new dimensions, the reduced cell size, and
// the expanded grid.
// Complexity: O(h×w×n²).
func ReduceCellSize(grid [][]bool, cellSize float64, n int) (h, w int, cs float64, out [][]bool) {
	oldH := len(grid)
	oldW := 0
	if oldH > 0 {
		oldW = len(grid[0])
	}

	out = make([][]bool, oldH*n)
	for i := range out {
		out[i] = make([]bool, oldW*n)
		for j := range out[i] {
			out[i][j] = grid[i/n][j/n]
		}
	}

	return oldH * n, oldW * n, cellSize / float64(n), out
}
