// File: astar/example_test.go
package astar_test

import (
	"fmt"

	"github.com/haiot4105/multi-agent-nav-lib/astar"
	"github.com/haiot4105/multi-agent-nav-lib/gridmap"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FindPath
////////////////////////////////////////////////////////////////////////////////

// ExampleFindPath demonstrates a point-to-point query on a 3×4 grid with a
// small wall.
// Scenario:
//
//   - '.' = traversable, '#' = blocked
//   - start (0,0), goal (2,3)
//   - the wall at column 1 forces the path down and around
//
// Complexity: O((V+E) log V), Memory: O(V+E)
func ExampleFindPath() {
	grid := [][]bool{
		{false, true, false, false},
		{false, true, false, false},
		{false, false, false, false},
	}
	m, _ := gridmap.New(grid)

	path, _ := astar.FindPath(m, gridmap.Cell{I: 0, J: 0}, gridmap.Cell{I: 2, J: 3})
	fmt.Println("steps:", len(path))
	for _, c := range path {
		fmt.Print(c, " ")
	}
	fmt.Println()

	// Output:
	// steps: 5
	// (1,0) (2,0) (2,1) (2,2) (2,3)
}

////////////////////////////////////////////////////////////////////////////////
// Example: ExpandFrom
////////////////////////////////////////////////////////////////////////////////

// ExampleExpandFrom demonstrates full-expansion mode: enumerating the
// connected component of the start cell together with shortest distances.
func ExampleExpandFrom() {
	grid := [][]bool{
		{false, false, true, false},
		{false, false, true, false},
	}
	m, _ := gridmap.New(grid)

	expanded, _ := astar.ExpandFrom(m, gridmap.Cell{I: 0, J: 0})
	fmt.Println("reachable cells:", len(expanded))
	fmt.Println("g of (1,1):", expanded[gridmap.Cell{I: 1, J: 1}].G)

	// Output:
	// reachable cells: 4
	// g of (1,1): 2
}
