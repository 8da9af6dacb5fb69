package transform

import (
	"fmt"
	"math"

	"github.com/haiot4105/multi-agent-nav-lib/gridmap"
)

// Point is a position in Cartesian map coordinates.
type Point struct {
	X, Y float64
}

// String renders the point as "(x,y)" with short float formatting.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// CellToXY returns the Cartesian center of cell c on a grid of gridH rows
// with the given cell size.
func CellToXY(c gridmap.Cell, gridH int, cellSize float64) Point {
	return Point{
		X: (float64(c.J) + 0.5) * cellSize,
		Y: (float64(gridH-c.I) - 0.5) * cellSize,
	}
}

// XYToCell returns the grid cell containing the Cartesian point p on a
// grid of gridH rows with the given cell size. Points on a cell boundary
// belong to the cell with the larger j / smaller i, consistent with floor
// division of the coordinates.
func XYToCell(p Point, gridH int, cellSize float64) gridmap.Cell {
	return gridmap.Cell{
		I: gridH - 1 - int(math.Floor(p.Y/cellSize)),
		J: int(math.Floor(p.X / cellSize)),
	}
}
