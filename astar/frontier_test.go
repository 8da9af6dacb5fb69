package astar_test

import (
	"testing"

	"github.com/haiot4105/multi-agent-nav-lib/astar"
	"github.com/haiot4105/multi-agent-nav-lib/gridmap"
)

func node(i, j, g, h, parent int) astar.Node {
	return astar.Node{Cell: gridmap.Cell{I: i, J: j}, G: g, H: h, F: g + h, Parent: parent}
}

// TestFrontier_PopOrder verifies the (f, h, insertion order) priority
// relation.
func TestFrontier_PopOrder(t *testing.T) {
	fr := astar.NewFrontier()
	// Same f with differing h: smaller h first.
	a := fr.Push(node(0, 0, 2, 3, astar.NoParent)) // f=5 h=3
	b := fr.Push(node(0, 1, 4, 1, astar.NoParent)) // f=5 h=1
	c := fr.Push(node(0, 2, 1, 2, astar.NoParent)) // f=3
	_ = a

	idx, ok := fr.PopBest()
	if !ok || idx != c {
		t.Fatalf("PopBest = (%d,%v); want lowest f index %d", idx, ok, c)
	}
	fr.MarkClosed(idx)

	idx, ok = fr.PopBest()
	if !ok || idx != b {
		t.Fatalf("PopBest = (%d,%v); want smaller-h index %d on f tie", idx, ok, b)
	}
}

// TestFrontier_InsertionOrderTie verifies that equal (f,h) entries pop in
// insertion order.
func TestFrontier_InsertionOrderTie(t *testing.T) {
	fr := astar.NewFrontier()
	first := fr.Push(node(1, 0, 2, 2, astar.NoParent))
	second := fr.Push(node(2, 0, 2, 2, astar.NoParent))

	idx, ok := fr.PopBest()
	if !ok || idx != first {
		t.Fatalf("PopBest = (%d,%v); want first-inserted index %d", idx, ok, first)
	}
	fr.MarkClosed(idx)
	idx, ok = fr.PopBest()
	if !ok || idx != second {
		t.Fatalf("PopBest = (%d,%v); want second-inserted index %d", idx, ok, second)
	}
}

// TestFrontier_LazyDuplicateSuppression pushes the same position twice with
// different g and checks that the stale copy is discarded on pop after the
// position closes.
func TestFrontier_LazyDuplicateSuppression(t *testing.T) {
	fr := astar.NewFrontier()
	cheap := fr.Push(node(0, 0, 1, 0, astar.NoParent))
	fr.Push(node(0, 0, 5, 0, astar.NoParent)) // stale duplicate, same position
	other := fr.Push(node(3, 3, 7, 0, astar.NoParent))

	if fr.Len() != 3 {
		t.Fatalf("Len() = %d after three pushes; want 3 (no eager dedup)", fr.Len())
	}

	idx, ok := fr.PopBest()
	if !ok || idx != cheap {
		t.Fatalf("PopBest = (%d,%v); want cheapest copy %d", idx, ok, cheap)
	}
	fr.MarkClosed(idx)

	if !fr.IsClosed(gridmap.Cell{I: 0, J: 0}) {
		t.Fatal("IsClosed(0,0) = false after MarkClosed")
	}

	// The duplicate of (0,0) must now be skipped.
	idx, ok = fr.PopBest()
	if !ok || idx != other {
		t.Fatalf("PopBest = (%d,%v); want %d with stale duplicate skipped", idx, ok, other)
	}
}

// TestFrontier_PopBestEmpty verifies the exhausted-open signal.
func TestFrontier_PopBestEmpty(t *testing.T) {
	fr := astar.NewFrontier()
	if _, ok := fr.PopBest(); ok {
		t.Error("PopBest on empty frontier reported ok")
	}
}

// TestFrontier_MarkClosedUnknownIndexPanics checks the fail-fast contract
// for arena indices never produced by Push.
func TestFrontier_MarkClosedUnknownIndexPanics(t *testing.T) {
	fr := astar.NewFrontier()
	defer func() {
		if recover() == nil {
			t.Error("MarkClosed(42) on empty arena did not panic")
		}
	}()
	fr.MarkClosed(42)
}
