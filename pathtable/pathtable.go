package pathtable

import (
	"errors"
	"fmt"

	"github.com/haiot4105/multi-agent-nav-lib/astar"
	"github.com/haiot4105/multi-agent-nav-lib/gridmap"
)

// Sentinel errors for table construction and queries.
var (
	// ErrNilMap is returned if a nil *gridmap.GridMap is passed to New.
	ErrNilMap = errors.New("pathtable: map is nil")

	// ErrUnknownCell is returned when a query names a blocked cell or a cell
	// never assigned during construction. This is a precondition violation,
	// not a normal "no path" answer.
	ErrUnknownCell = errors.New("pathtable: cell is blocked or was never assigned a component")
)

// PathTable is an immutable connectivity index over a static grid.
// It owns its component-id map and is safe for concurrent readers.
type PathTable struct {
	components map[gridmap.Cell]int
	count      int
}

// New builds the table by sweeping the grid in row-major order and running
// a full A* expansion from every traversable cell that has no component id
// yet; each expansion stamps the next fresh id onto its whole component.
// Complexity: O(V + E) amortized across all expansions, O(V) memory.
func New(m *gridmap.GridMap) (*PathTable, error) {
	if m == nil {
		return nil, ErrNilMap
	}

	h, w := m.Size()
	pt := &PathTable{components: make(map[gridmap.Cell]int, h*w)}

	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			if !m.Traversable(i, j) {
				continue
			}
			c := gridmap.Cell{I: i, J: j}
			if _, assigned := pt.components[c]; assigned {
				continue
			}
			expanded, err := astar.ExpandFrom(m, c)
			if err != nil {
				return nil, fmt.Errorf("pathtable: expansion from %v failed: %w", c, err)
			}
			for cell := range expanded {
				pt.components[cell] = pt.count
			}
			pt.count++
		}
	}

	return pt, nil
}

// PathExists reports whether a path exists between cells a and b.
// Precondition: both must be traversable cells assigned during
// construction; an unknown cell yields ErrUnknownCell.
// Complexity: O(1).
func (pt *PathTable) PathExists(a, b gridmap.Cell) (bool, error) {
	ca, err := pt.ComponentID(a)
	if err != nil {
		return false, err
	}
	cb, err := pt.ComponentID(b)
	if err != nil {
		return false, err
	}

	return ca == cb, nil
}

// ComponentID returns the component id assigned to cell c, or
// ErrUnknownCell if c is blocked or was never visited during construction.
// Complexity: O(1).
func (pt *PathTable) ComponentID(c gridmap.Cell) (int, error) {
	id, ok := pt.components[c]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownCell, c)
	}

	return id, nil
}

// Components returns the number of connected components found.
func (pt *PathTable) Components() int {
	return pt.count
}
