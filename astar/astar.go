// Package astar drives the A* expand loop over gridmap occupancy grids.
package astar

import (
	"github.com/haiot4105/multi-agent-nav-lib/gridmap"
)

// sentinelGoal lies outside every grid, unreachable by construction, so a
// search against it runs to frontier exhaustion.
var sentinelGoal = gridmap.Cell{I: -1, J: -1}

// Search runs A* from start toward goal on m using the injected heuristic
// h and the unit cardinal cost model.
//
// Validation (in order): m must be non-nil (ErrNilMap), h must be non-nil
// (ErrNilHeuristic), start must be in bounds (ErrStartOutOfBounds) and
// traversable (ErrStartBlocked). The goal is deliberately not validated:
// full-expansion mode passes a sentinel goal outside the grid.
//
// With an admissible, consistent heuristic the first time a node is popped
// with position == goal its G is the optimal cost. An exhausted frontier
// yields Found == false with the closed-set-so-far in Expanded — the
// normal expected-absence outcome, not an error.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Search(m *gridmap.GridMap, start, goal gridmap.Cell, h Heuristic) (*Result, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	if !m.InBounds(start.I, start.J) {
		return nil, ErrStartOutOfBounds
	}
	if !m.Traversable(start.I, start.J) {
		return nil, ErrStartBlocked
	}

	fr := NewFrontier()
	hStart := h(start, goal)
	fr.Push(Node{Cell: start, G: 0, H: hStart, F: hStart, Parent: NoParent})

	for {
		idx, ok := fr.PopBest()
		if !ok {
			return &Result{
				Found:    false,
				Cost:     -1,
				Expanded: fr.expanded(),
				TreeSize: fr.Len(),
			}, nil
		}
		fr.MarkClosed(idx)

		current := fr.Node(idx)
		if current.Cell == goal {
			return &Result{
				Found:    true,
				Goal:     current,
				Cost:     current.G,
				Expanded: fr.expanded(),
				TreeSize: fr.Len(),
				arena:    fr.arena,
			}, nil
		}

		for _, nb := range m.Neighbors(current.Cell) {
			if fr.IsClosed(nb) {
				continue
			}
			g := current.G + gridmap.MoveCost(current.Cell, nb)
			hh := h(nb, goal)
			// Lazy deletion: push even if a copy of nb already sits in open.
			fr.Push(Node{Cell: nb, G: g, H: hh, F: g + hh, Parent: idx})
		}
	}
}

// FindPath returns the ordered cell sequence from start to goal, excluding
// the start cell, computed with the Manhattan heuristic. Returns ErrNoPath
// when goal is unreachable from start.
func FindPath(m *gridmap.GridMap, start, goal gridmap.Cell) ([]gridmap.Cell, error) {
	res, err := Search(m, start, goal, ManhattanDistance)
	if err != nil {
		return nil, err
	}
	if !res.Found {
		return nil, ErrNoPath
	}

	return res.Path(), nil
}

// FindLength returns the optimal path cost from start to goal, computed
// with the Manhattan heuristic. Returns ErrNoPath when goal is unreachable.
func FindLength(m *gridmap.GridMap, start, goal gridmap.Cell) (int, error) {
	res, err := Search(m, start, goal, ManhattanDistance)
	if err != nil {
		return 0, err
	}
	if !res.Found {
		return 0, ErrNoPath
	}

	return res.Cost, nil
}

// ExpandFrom runs Search in full-expansion mode from start: constant-zero
// heuristic, sentinel goal outside the grid. The returned map holds every
// cell of the connected component containing start, each with the g-value
// and parent chain of its shortest path from start.
func ExpandFrom(m *gridmap.GridMap, start gridmap.Cell) (map[gridmap.Cell]Node, error) {
	res, err := Search(m, start, sentinelGoal, Zero)
	if err != nil {
		return nil, err
	}

	return res.Expanded, nil
}
