// Package gen defines state types and sentinel errors for grid and
// instance generation.
package gen

import (
	"errors"
)

// Sentinel errors for generation.
var (
	// ErrCellSizeMismatch indicates a coordinate range that the cell size
	// does not divide evenly.
	ErrCellSizeMismatch = errors.New("gen: range is not an integer number of cells")

	// ErrNilRand indicates a randomized generator was called with a nil
	// random source.
	ErrNilRand = errors.New("gen: random source is nil")

	// ErrNotSquare indicates a mesh instance with a non-perfect-square
	// agent count.
	ErrNotSquare = errors.New("gen: mesh agent count must be a perfect square")

	// ErrPlacementFailed indicates the random placement retry budget was
	// exhausted before all agents found a free cell.
	ErrPlacementFailed = errors.New("gen: could not place all agents")
)

// State is one continuous agent state: position (X, Y), yaw angle Theta,
// and velocity components (VX, VY).
type State struct {
	X, Y   float64
	Theta  float64
	VX, VY float64
}

// placementRing lists the neighborhood kept free around an occupied cell
// when the empty-ring policy is active: the cell itself plus its eight
// surrounding cells.
var placementRing = [9][2]int{
	{0, 0}, {0, 1}, {1, 0}, {0, -1}, {-1, 0}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// placementSelf is the degenerate ring: only the cell itself.
var placementSelf = [1][2]int{{0, 0}}

// Options holds tunables for the randomized placement generators.
type Options struct {
	// PackedCells disables the empty-ring policy, allowing starts (or
	// goals) of different agents in directly adjacent cells.
	PackedCells bool

	// MaxAttempts bounds the total number of random draws per agent before
	// placement is abandoned with ErrPlacementFailed.
	MaxAttempts int
}

// Option configures generation behavior via functional arguments.
type Option func(*Options)

// WithPackedCells disables the empty ring kept around each placed cell.
func WithPackedCells() Option {
	return func(o *Options) { o.PackedCells = true }
}

// WithMaxAttempts overrides the per-agent retry budget. Must be positive;
// panics otherwise.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("gen: MaxAttempts must be positive")
		}
		o.MaxAttempts = n
	}
}

// DefaultOptions returns the generation defaults: empty ring active and a
// 10000-draw retry budget per agent.
func DefaultOptions() Options {
	return Options{
		PackedCells: false,
		MaxAttempts: 10000,
	}
}
