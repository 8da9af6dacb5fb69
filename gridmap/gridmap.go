package gridmap

import "fmt"

// neighborOffsets lists the four cardinal offsets in the fixed evaluation
// order E, S, W, N. The order is a determinism contract: it controls
// tie-breaking and reproducibility of search results across re-runs.
var neighborOffsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// New constructs a GridMap from a non-empty, rectangular 2D occupancy
// slice (true = blocked). It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if the grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(H×W) time and memory.
func New(cells [][]bool) (*GridMap, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	flat := make([]bool, 0, h*w)
	for i, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, i, len(row), w)
		}
		flat = append(flat, row...)
	}

	return &GridMap{height: h, width: w, cells: flat}, nil
}

// InBounds reports whether (i,j) lies within the grid boundaries.
// Complexity: O(1).
func (m *GridMap) InBounds(i, j int) bool {
	return i >= 0 && i < m.height && j >= 0 && j < m.width
}

// Traversable reports whether the cell (i,j) is not blocked.
// Precondition: the caller must have checked InBounds(i, j); behavior for
// out-of-bounds input is unchecked by this operation alone.
// Complexity: O(1).
func (m *GridMap) Traversable(i, j int) bool {
	return !m.cells[i*m.width+j]
}

// Neighbors returns the subset of the four cardinal neighbors of c that
// are both in bounds and traversable, in the fixed order E, S, W, N.
// Complexity: O(1).
func (m *GridMap) Neighbors(c Cell) []Cell {
	neighbors := make([]Cell, 0, 4)
	for _, d := range neighborOffsets {
		ni, nj := c.I+d[0], c.J+d[1]
		if m.InBounds(ni, nj) && m.Traversable(ni, nj) {
			neighbors = append(neighbors, Cell{I: ni, J: nj})
		}
	}

	return neighbors
}

// Size returns the grid dimensions as (height, width).
// Complexity: O(1).
func (m *GridMap) Size() (height, width int) {
	return m.height, m.width
}

// MoveCost returns the cost of the move between cells a and b.
// Every traversed edge costs exactly 1 (cardinal move). Pricing any other
// pair is a programming error: neighbors are cardinal by construction, so
// a non-cardinal request means neighbor generation is broken upstream.
// MoveCost panics in that case rather than silently returning a value.
func MoveCost(a, b Cell) int {
	if abs(a.I-b.I)+abs(a.J-b.J) != 1 {
		panic(fmt.Sprintf("gridmap: move %v -> %v is not a cardinal step", a, b))
	}

	return 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
