package gen_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haiot4105/multi-agent-nav-lib/astar"
	"github.com/haiot4105/multi-agent-nav-lib/gen"
	"github.com/haiot4105/multi-agent-nav-lib/gridmap"
	"github.com/haiot4105/multi-agent-nav-lib/transform"
)

const eps = 1e-9

// TestCircleInstance checks opposing start/goal placement and the
// toward-goal yaw.
func TestCircleInstance(t *testing.T) {
	center := transform.Point{X: 2, Y: 3}
	starts, goals := gen.CircleInstance(center, 1.5, 4, 0)

	require.Len(t, starts, 4)
	require.Len(t, goals, 4)

	for a := range starts {
		// Goal is the point reflection of the start through the center.
		assert.InDelta(t, 2*center.X-starts[a].X, goals[a].X, eps, "agent %d", a)
		assert.InDelta(t, 2*center.Y-starts[a].Y, goals[a].Y, eps, "agent %d", a)

		wantTheta := math.Atan2(goals[a].Y-starts[a].Y, goals[a].X-starts[a].X)
		assert.InDelta(t, wantTheta, starts[a].Theta, eps)
		assert.InDelta(t, wantTheta, goals[a].Theta, eps)
		assert.Zero(t, starts[a].VX)
		assert.Zero(t, starts[a].VY)
	}

	// Agent 0 sits at angle 0: (center.X + r, center.Y).
	assert.InDelta(t, 3.5, starts[0].X, eps)
	assert.InDelta(t, 3.0, starts[0].Y, eps)
}

// TestMeshInstance checks the mesh layout and the shuffled goal assignment.
func TestMeshInstance(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	starts, goals, goalIDs, err := gen.MeshInstance(rng, 9, 2.0, transform.Point{X: 1, Y: 1})
	require.NoError(t, err)
	require.Len(t, starts, 9)
	require.Len(t, goalIDs, 9)

	// Start slots cover the 3×3 mesh positions exactly once.
	positions := make(map[[2]float64]bool)
	for _, s := range starts {
		positions[[2]float64{s.X, s.Y}] = true
	}
	require.Len(t, positions, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			p := [2]float64{1 + float64(j)*2, 1 + float64(2-i)*2}
			assert.True(t, positions[p], "mesh position %v missing", p)
		}
	}

	// Goals occupy the same mesh positions, permuted.
	for slot, id := range goalIDs {
		assert.Equal(t, starts[slot].X, goals[id].X)
		assert.Equal(t, starts[slot].Y, goals[id].Y)
	}
}

func TestMeshInstance_NotSquare(t *testing.T) {
	_, _, _, err := gen.MeshInstance(rand.New(rand.NewSource(1)), 5, 1.0, transform.Point{})
	assert.ErrorIs(t, err, gen.ErrNotSquare)
}

// TestRandomEmptyCells checks determinism, bounds, and the empty-ring
// policy among starts.
func TestRandomEmptyCells(t *testing.T) {
	starts, goals, err := gen.RandomEmptyCells(rand.New(rand.NewSource(3)), 6, 10, 10)
	require.NoError(t, err)
	require.Len(t, starts, 6)
	require.Len(t, goals, 6)

	for a, s := range starts {
		assert.True(t, s.I >= 0 && s.I < 10 && s.J >= 0 && s.J < 10, "start %d out of bounds", a)
		for b := a + 1; b < len(starts); b++ {
			di := starts[b].I - s.I
			dj := starts[b].J - s.J
			assert.False(t, di >= -1 && di <= 1 && dj >= -1 && dj <= 1,
				"starts %d and %d violate the empty ring", a, b)
		}
	}

	again, goalsAgain, err := gen.RandomEmptyCells(rand.New(rand.NewSource(3)), 6, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, starts, again, "same seed must reproduce starts")
	assert.Equal(t, goals, goalsAgain, "same seed must reproduce goals")
}

func TestRandomEmptyCells_NilRand(t *testing.T) {
	_, _, err := gen.RandomEmptyCells(nil, 1, 5, 5)
	assert.ErrorIs(t, err, gen.ErrNilRand)
}

// TestRandomEmptyCells_Crowded exhausts the retry budget on a grid too
// small for the ring policy.
func TestRandomEmptyCells_Crowded(t *testing.T) {
	_, _, err := gen.RandomEmptyCells(rand.New(rand.NewSource(1)), 5, 2, 2, gen.WithMaxAttempts(50))
	assert.ErrorIs(t, err, gen.ErrPlacementFailed)
}

// TestRandomMapCells draws instances on a two-component grid and checks
// that every emitted pair is solvable.
func TestRandomMapCells(t *testing.T) {
	// Vertical wall splits the grid into a left and right component.
	grid := make([][]bool, 9)
	for i := range grid {
		grid[i] = make([]bool, 9)
		grid[i][4] = true
	}

	starts, goals, err := gen.RandomMapCells(rand.New(rand.NewSource(11)), 4, grid, gen.WithPackedCells())
	require.NoError(t, err)

	m, err := gridmap.New(grid)
	require.NoError(t, err)
	for a := range starts {
		assert.True(t, m.Traversable(starts[a].I, starts[a].J), "start %d blocked", a)
		assert.True(t, m.Traversable(goals[a].I, goals[a].J), "goal %d blocked", a)
		_, err := astar.FindLength(m, starts[a], goals[a])
		assert.NoError(t, err, "agent %d: emitted pair must be solvable", a)
	}
}

// TestRandomMapInstance checks the continuous conversion: positions at
// cell centers inside the map, yaw in [0, 2π).
func TestRandomMapInstance(t *testing.T) {
	grid := gen.EmptyGrid(6, 6)
	starts, goals, err := gen.RandomMapInstance(rand.New(rand.NewSource(5)), 3, grid, 0.5)
	require.NoError(t, err)

	for _, states := range [][]gen.State{starts, goals} {
		for _, s := range states {
			assert.True(t, s.X > 0 && s.X < 3.0, "x=%g outside map", s.X)
			assert.True(t, s.Y > 0 && s.Y < 3.0, "y=%g outside map", s.Y)
			assert.True(t, s.Theta >= 0 && s.Theta < 2*math.Pi)
			assert.Zero(t, s.VX)
			assert.Zero(t, s.VY)
		}
	}
}
