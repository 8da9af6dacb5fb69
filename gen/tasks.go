package gen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/haiot4105/multi-agent-nav-lib/gridmap"
	"github.com/haiot4105/multi-agent-nav-lib/pathtable"
	"github.com/haiot4105/multi-agent-nav-lib/transform"
)

// CircleInstance places agents evenly on a circle with each goal at the
// diametrically opposite point. The start yaw points toward the goal and
// the goal yaw matches it; velocities are zero. Only the continuous state
// format is supported.
// Complexity: O(agents).
func CircleInstance(center transform.Point, radius float64, agents int, angleOffset float64) (starts, goals []State) {
	starts = make([]State, agents)
	goals = make([]State, agents)
	step := 2 * math.Pi / float64(agents)

	for a := 0; a < agents; a++ {
		ang := angleOffset + float64(a)*step
		sx := center.X + radius*math.Cos(ang)
		sy := center.Y + radius*math.Sin(ang)
		gx := center.X + radius*math.Cos(ang+math.Pi)
		gy := center.Y + radius*math.Sin(ang+math.Pi)

		theta := math.Atan2(gy-sy, gx-sx)
		starts[a] = State{X: sx, Y: sy, Theta: theta}
		goals[a] = State{X: gx, Y: gy, Theta: theta}
	}

	return starts, goals
}

// MeshInstance arranges agents on a square mesh and assigns every agent a
// goal drawn from a shuffled permutation of the mesh positions. Yaw and
// velocities are zero. Returns the shuffled goal assignment alongside the
// states; agents must be a perfect square (ErrNotSquare).
// Complexity: O(agents).
func MeshInstance(rng *rand.Rand, agents int, spacing float64, offset transform.Point) (starts, goals []State, goalIDs []int, err error) {
	if rng == nil {
		return nil, nil, nil, ErrNilRand
	}
	side := int(math.Sqrt(float64(agents)))
	if side*side != agents {
		return nil, nil, nil, fmt.Errorf("%w: %d agents", ErrNotSquare, agents)
	}

	starts = make([]State, agents)
	goals = make([]State, agents)
	goalIDs = rng.Perm(agents)

	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			slot := i*side + j
			x := offset.X + float64(j)*spacing
			y := offset.Y + float64(side-i-1)*spacing

			starts[slot] = State{X: x, Y: y}
			goals[goalIDs[slot]] = State{X: x, Y: y}
		}
	}

	return starts, goals, goalIDs, nil
}

// placer draws random free cells for one side (starts or goals) of an
// instance, with the occupied-ring policy and a retry budget.
type placer struct {
	rng      *rand.Rand
	h, w     int
	occupied map[gridmap.Cell]struct{}
	ring     [][2]int
	budget   int
	accept   func(gridmap.Cell) bool
}

func newPlacer(rng *rand.Rand, h, w int, opts Options, accept func(gridmap.Cell) bool) *placer {
	ring := placementRing[:]
	if opts.PackedCells {
		ring = placementSelf[:]
	}

	return &placer{
		rng:      rng,
		h:        h,
		w:        w,
		occupied: make(map[gridmap.Cell]struct{}),
		ring:     ring,
		budget:   opts.MaxAttempts,
		accept:   accept,
	}
}

// place draws cells until one is acceptable and ring-free, then records it.
func (p *placer) place() (gridmap.Cell, error) {
	for attempt := 0; attempt < p.budget; attempt++ {
		c := gridmap.Cell{I: p.rng.Intn(p.h), J: p.rng.Intn(p.w)}
		if p.accept != nil && !p.accept(c) {
			continue
		}
		free := true
		for _, d := range p.ring {
			if _, taken := p.occupied[gridmap.Cell{I: c.I + d[0], J: c.J + d[1]}]; taken {
				free = false

				break
			}
		}
		if !free {
			continue
		}
		p.occupied[c] = struct{}{}

		return c, nil
	}

	return gridmap.Cell{}, fmt.Errorf("%w: retry budget %d exhausted", ErrPlacementFailed, p.budget)
}

// RandomEmptyCells draws random start and goal cells for every agent on an
// open h×w grid, in discrete (i, j) format.
func RandomEmptyCells(rng *rand.Rand, agents, h, w int, opts ...Option) (starts, goals []gridmap.Cell, err error) {
	if rng == nil {
		return nil, nil, ErrNilRand
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	starts = make([]gridmap.Cell, agents)
	goals = make([]gridmap.Cell, agents)
	startPlacer := newPlacer(rng, h, w, o, nil)
	goalPlacer := newPlacer(rng, h, w, o, nil)

	for a := 0; a < agents; a++ {
		if starts[a], err = startPlacer.place(); err != nil {
			return nil, nil, err
		}
		if goals[a], err = goalPlacer.place(); err != nil {
			return nil, nil, err
		}
	}

	return starts, goals, nil
}

// RandomEmptyInstance draws random start and goal states on an open grid
// in continuous format: positions at cell centers, uniformly random yaw,
// zero velocities.
func RandomEmptyInstance(rng *rand.Rand, agents, h, w int, cellSize float64, opts ...Option) (starts, goals []State, err error) {
	startCells, goalCells, err := RandomEmptyCells(rng, agents, h, w, opts...)
	if err != nil {
		return nil, nil, err
	}

	return cellsToStates(rng, startCells, h, cellSize), cellsToStates(rng, goalCells, h, cellSize), nil
}

// RandomMapCells draws random start and goal cells on an obstacle grid in
// discrete format. Starts land on traversable cells; every goal is
// additionally required to share a connected component with its agent's
// start (checked against a pathtable built once per call), so emitted
// scenarios are always solvable.
func RandomMapCells(rng *rand.Rand, agents int, grid [][]bool, opts ...Option) (starts, goals []gridmap.Cell, err error) {
	if rng == nil {
		return nil, nil, ErrNilRand
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m, err := gridmap.New(grid)
	if err != nil {
		return nil, nil, fmt.Errorf("gen: invalid grid: %w", err)
	}
	table, err := pathtable.New(m)
	if err != nil {
		return nil, nil, fmt.Errorf("gen: connectivity precomputation failed: %w", err)
	}
	h, w := m.Size()

	starts = make([]gridmap.Cell, agents)
	goals = make([]gridmap.Cell, agents)

	startPlacer := newPlacer(rng, h, w, o, func(c gridmap.Cell) bool {
		return m.Traversable(c.I, c.J)
	})
	for a := 0; a < agents; a++ {
		if starts[a], err = startPlacer.place(); err != nil {
			return nil, nil, err
		}
	}

	// One goal placer for all agents keeps the goal rings disjoint; only
	// the reachability predicate changes per agent.
	var currentStart gridmap.Cell
	goalPlacer := newPlacer(rng, h, w, o, func(c gridmap.Cell) bool {
		if !m.Traversable(c.I, c.J) {
			return false
		}
		ok, perr := table.PathExists(c, currentStart)

		return perr == nil && ok
	})
	for a := 0; a < agents; a++ {
		currentStart = starts[a]
		if goals[a], err = goalPlacer.place(); err != nil {
			return nil, nil, err
		}
	}

	return starts, goals, nil
}

// RandomMapInstance draws random start and goal states on an obstacle grid
// in continuous format, with the same reachability guarantee as
// RandomMapCells.
func RandomMapInstance(rng *rand.Rand, agents int, grid [][]bool, cellSize float64, opts ...Option) (starts, goals []State, err error) {
	startCells, goalCells, err := RandomMapCells(rng, agents, grid, opts...)
	if err != nil {
		return nil, nil, err
	}
	h := len(grid)

	return cellsToStates(rng, startCells, h, cellSize), cellsToStates(rng, goalCells, h, cellSize), nil
}

// cellsToStates converts discrete cells to continuous states at cell
// centers with uniformly random yaw and zero velocities.
func cellsToStates(rng *rand.Rand, cells []gridmap.Cell, gridH int, cellSize float64) []State {
	states := make([]State, len(cells))
	for k, c := range cells {
		p := transform.CellToXY(c, gridH, cellSize)
		states[k] = State{X: p.X, Y: p.Y, Theta: rng.Float64() * 2 * math.Pi}
	}

	return states
}
