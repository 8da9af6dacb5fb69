// Package manavlib is a toolkit for building, solving, and serializing
// single-agent navigation problems on 4-connected occupancy grids.
//
// 🚀 What is multi-agent-nav-lib?
//
//	A focused, reproducibility-first library that brings together:
//		• Core primitives: immutable occupancy grids with a fixed neighbor order
//		• Shortest paths: A* with Manhattan heuristic and deterministic tie-breaks
//		• Connectivity: precomputed component index for O(1) reachability checks
//		• Generators: empty / gap-scenario maps, circle, mesh & random instances
//		• Interchange: MovingAI .map files, XML maps/agents/configs/logs,
//		  TSWAP instances & logs
//
// ✨ Why choose it?
//
//   - Deterministic – identical inputs reproduce identical paths, expansions
//     and generated instances, seed for seed
//   - Rock-solid error discipline – sentinel errors for expected outcomes,
//     panics only for broken invariants
//   - Pure Go – no cgo; testify is the only external dependency
//
// Everything is organized under flat subpackages:
//
//	gridmap/   — occupancy grid, bounds & traversability, cardinal move costs
//	astar/     — search engine, frontier with lazy duplicate suppression
//	pathtable/ — connected-component index over a grid
//	transform/ — grid (i,j) ↔ Cartesian (x,y) conversion
//	params/    — agent / experiment / algorithm parameter containers + registry
//	gen/       — map, task and obstacle-polygon generators
//	movingai/  — MovingAI .map reader/writer
//	xmlio/     — XML map, agents, config and log files
//	tswap/     — TSWAP instance writer, log reader, coordinate converters
//
// Quick ASCII example:
//
//	S . # . .
//	. . # . .
//	. . . . G
//
// Build the grid with gridmap.New, call astar.FindPath(m, S, G), and the
// returned cells walk around the wall on the cheapest route — the same
// one, every run.
//
// See each subpackage's doc.go for contracts, complexity and error
// semantics.
//
//	go get github.com/haiot4105/multi-agent-nav-lib
package manavlib
