package gen_test

import (
	"testing"

	"github.com/haiot4105/multi-agent-nav-lib/gen"
	"github.com/haiot4105/multi-agent-nav-lib/transform"
)

func gridFromRows(rows []string) [][]bool {
	grid := make([][]bool, len(rows))
	for i, row := range rows {
		grid[i] = make([]bool, len(row))
		for j, r := range row {
			grid[i][j] = r == '#'
		}
	}

	return grid
}

func vertexSet(loop []transform.Point) map[transform.Point]bool {
	set := make(map[transform.Point]bool, len(loop))
	for _, p := range loop {
		set[p] = true
	}

	return set
}

//----------------------------------------------------------------------//
//                          ObstaclePolygons                            //
//----------------------------------------------------------------------//

func TestObstaclePolygons_EmptyGrid(t *testing.T) {
	polygons := gen.ObstaclePolygons(gen.EmptyGrid(4, 3), 2.0)
	if len(polygons) != 1 {
		t.Fatalf("expected only the map boundary, got %d polygons", len(polygons))
	}
	want := []transform.Point{{X: 0, Y: 0}, {X: 0, Y: 8}, {X: 6, Y: 8}, {X: 6, Y: 0}}
	boundary := polygons[0]
	if len(boundary) != 4 {
		t.Fatalf("boundary has %d vertices, want 4", len(boundary))
	}
	for k, p := range boundary {
		if p != want[k] {
			t.Errorf("boundary[%d] = %v, want %v", k, p, want[k])
		}
	}
}

func TestObstaclePolygons_SingleCell(t *testing.T) {
	grid := gridFromRows([]string{
		"...",
		".#.",
		"...",
	})

	polygons := gen.ObstaclePolygons(grid, 1.0)
	if len(polygons) != 2 {
		t.Fatalf("expected obstacle loop + boundary, got %d polygons", len(polygons))
	}

	want := []transform.Point{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}, {X: 1, Y: 1}}
	loop := polygons[0]
	if len(loop) != 4 {
		t.Fatalf("single-cell loop has %d vertices, want 4", len(loop))
	}
	for k, p := range loop {
		if p != want[k] {
			t.Errorf("loop[%d] = %v, want %v", k, p, want[k])
		}
	}
}

func TestObstaclePolygons_BlockMergesCollinear(t *testing.T) {
	grid := gridFromRows([]string{
		"....",
		".##.",
		".##.",
		"....",
	})

	polygons := gen.ObstaclePolygons(grid, 1.0)
	if len(polygons) != 2 {
		t.Fatalf("expected one loop + boundary, got %d polygons", len(polygons))
	}

	loop := polygons[0]
	if len(loop) != 4 {
		t.Fatalf("2x2 block loop has %d vertices, want 4 after collinear merge", len(loop))
	}
	want := vertexSet([]transform.Point{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 3}, {X: 1, Y: 3}})
	for _, p := range loop {
		if !want[p] {
			t.Errorf("unexpected block corner %v", p)
		}
	}
}

// Two cells touching only at a corner must trace as separate loops.
func TestObstaclePolygons_DiagonalTouchSplits(t *testing.T) {
	grid := gridFromRows([]string{
		"#..",
		".#.",
		"...",
	})

	polygons := gen.ObstaclePolygons(grid, 1.0)
	if len(polygons) != 3 {
		t.Fatalf("expected two obstacle loops + boundary, got %d polygons", len(polygons))
	}
	for k := 0; k < 2; k++ {
		if len(polygons[k]) != 4 {
			t.Errorf("loop %d has %d vertices, want 4", k, len(polygons[k]))
		}
	}
}

// A ring-shaped region produces an outer and an inner boundary loop.
func TestObstaclePolygons_RingRegion(t *testing.T) {
	grid := gridFromRows([]string{
		".....",
		".###.",
		".#.#.",
		".###.",
		".....",
	})

	polygons := gen.ObstaclePolygons(grid, 1.0)
	if len(polygons) != 3 {
		t.Fatalf("expected outer + inner loops + boundary, got %d polygons", len(polygons))
	}

	outer := vertexSet([]transform.Point{{X: 1, Y: 1}, {X: 4, Y: 1}, {X: 4, Y: 4}, {X: 1, Y: 4}})
	inner := vertexSet([]transform.Point{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 3}})
	seen := map[string]bool{}
	for k := 0; k < 2; k++ {
		set := vertexSet(polygons[k])
		switch {
		case len(set) == 4 && setsEqual(set, outer):
			seen["outer"] = true
		case len(set) == 4 && setsEqual(set, inner):
			seen["inner"] = true
		default:
			t.Errorf("loop %d matches neither ring boundary: %v", k, polygons[k])
		}
	}
	if !seen["outer"] || !seen["inner"] {
		t.Errorf("missing ring loops: %v", seen)
	}
}

func setsEqual(a, b map[transform.Point]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for p := range a {
		if !b[p] {
			return false
		}
	}

	return true
}
