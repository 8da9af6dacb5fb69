// Package gridmap defines the cell type and sentinel errors for the
// occupancy-grid view.
package gridmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for GridMap construction.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridmap: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridmap: all rows must have the same length")
)

// Cell identifies a grid position by row I and column J.
// It is a comparable value type: two cells are equal iff they share the
// same coordinates, which makes Cell directly usable as a map key for
// closed sets and component tables.
type Cell struct {
	I, J int
}

// String renders the cell as "(i,j)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.I, c.J)
}

// GridMap is an immutable view over a rectangular occupancy grid.
// height and width define dimensions; cells holds the row-major occupancy
// bitmap (true = blocked). The bitmap is deep-copied during construction
// and never mutated afterwards, so a single GridMap may be shared
// read-only by any number of concurrently running searches.
type GridMap struct {
	height, width int
	cells         []bool
}
