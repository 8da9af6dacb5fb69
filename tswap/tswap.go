package tswap

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/haiot4105/multi-agent-nav-lib/gridmap"
	"github.com/haiot4105/multi-agent-nav-lib/transform"
)

var (
	// ErrLengthMismatch indicates start and goal slices of different
	// lengths passed to WriteInstance.
	ErrLengthMismatch = errors.New("tswap: start and goal counts differ")

	// ErrBadLog indicates a log file whose indicators or solution lines
	// do not parse.
	ErrBadLog = errors.New("tswap: malformed log")
)

// Position is a point in TSWAP grid coordinates: X runs along columns,
// Y along rows from the top.
type Position struct {
	X, Y int
}

// Instance describes one TSWAP problem. Agents is consulted only when
// Random is set (the solver then draws its own starts and goals);
// otherwise the agent count is len(Starts).
type Instance struct {
	MapFile        string
	Seed           int
	Random         bool
	MaxTimestep    int
	MaxCompTime    int
	FlockingBlocks int
	Agents         int

	Starts, Goals []Position
}

// LogResult is the content of a TSWAP result log. Solution is indexed
// [agent][step] with makespan+1 steps per agent.
type LogResult struct {
	Agents   int
	Solved   bool
	Flowtime int
	Makespan int
	Runtime  int

	Solution [][]Position
}

// WriteInstance writes inst to a TSWAP instance file.
func WriteInstance(path string, inst Instance) error {
	if !inst.Random && len(inst.Starts) != len(inst.Goals) {
		return fmt.Errorf("%w: %d starts, %d goals", ErrLengthMismatch, len(inst.Starts), len(inst.Goals))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tswap: create %s: %w", path, err)
	}
	defer f.Close()

	agents := len(inst.Starts)
	random := 0
	if inst.Random {
		agents = inst.Agents
		random = 1
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "map_file=%s\n", inst.MapFile)
	fmt.Fprintf(w, "agents=%d\n", agents)
	fmt.Fprintf(w, "seed=%d\n", inst.Seed)
	fmt.Fprintf(w, "random_problem=%d\n", random)
	fmt.Fprintf(w, "max_timestep=%d\n", inst.MaxTimestep)
	fmt.Fprintf(w, "max_comp_time=%d\n", inst.MaxCompTime)
	fmt.Fprintf(w, "flocking_blocks=%d\n", inst.FlockingBlocks)
	if !inst.Random {
		for a := range inst.Starts {
			s, g := inst.Starts[a], inst.Goals[a]
			fmt.Fprintf(w, "%d,%d,%d,%d\n", s.X, s.Y, g.X, g.Y)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("tswap: write %s: %w", path, err)
	}

	return nil
}

// ReadLog reads a TSWAP result log. Indicator lines before the
// "solution=" marker fill the scalar fields; the solution lines fill
// Solution, sized agents × (makespan+1).
func ReadLog(path string) (*LogResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tswap: open %s: %w", path, err)
	}
	defer f.Close()

	res := &LogResult{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "solution=") {
			break
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		switch key {
		case "solved":
			res.Solved = value == "1" || value == "true"
		case "soc":
			if res.Flowtime, err = strconv.Atoi(value); err != nil {
				return nil, fmt.Errorf("%w: soc=%q", ErrBadLog, value)
			}
		case "makespan":
			if res.Makespan, err = strconv.Atoi(value); err != nil {
				return nil, fmt.Errorf("%w: makespan=%q", ErrBadLog, value)
			}
		case "comp_time":
			if res.Runtime, err = strconv.Atoi(value); err != nil {
				return nil, fmt.Errorf("%w: comp_time=%q", ErrBadLog, value)
			}
		case "agents":
			if res.Agents, err = strconv.Atoi(value); err != nil {
				return nil, fmt.Errorf("%w: agents=%q", ErrBadLog, value)
			}
		}
	}

	res.Solution = make([][]Position, res.Agents)
	for a := range res.Solution {
		res.Solution[a] = make([]Position, res.Makespan+1)
	}
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := parseSolutionLine(line, res); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tswap: read %s: %w", path, err)
	}

	return res, nil
}

// parseSolutionLine fills one "step:(x,y),(x,y),..." line into
// res.Solution.
func parseSolutionLine(line string, res *LogResult) error {
	stepStr, rest, found := strings.Cut(line, ":")
	if !found {
		return fmt.Errorf("%w: solution line %q", ErrBadLog, line)
	}
	step, err := strconv.Atoi(stepStr)
	if err != nil || step < 0 || step > res.Makespan {
		return fmt.Errorf("%w: step %q outside makespan %d", ErrBadLog, stepStr, res.Makespan)
	}

	rest = strings.TrimSuffix(strings.TrimSpace(rest), ",")
	rest = strings.TrimPrefix(strings.TrimSuffix(rest, ")"), "(")
	for a, pair := range strings.Split(rest, "),(") {
		if a >= res.Agents {
			return fmt.Errorf("%w: step %d lists more than %d agents", ErrBadLog, step, res.Agents)
		}
		xStr, yStr, found := strings.Cut(pair, ",")
		if !found {
			return fmt.Errorf("%w: position %q", ErrBadLog, pair)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(xStr))
		y, errY := strconv.Atoi(strings.TrimSpace(yStr))
		if errX != nil || errY != nil {
			return fmt.Errorf("%w: position %q", ErrBadLog, pair)
		}
		res.Solution[a][step] = Position{X: x, Y: y}
	}

	return nil
}

// FromCell converts grid (i, j) coordinates to a TSWAP position.
func FromCell(c gridmap.Cell) Position {
	return Position{X: c.J, Y: c.I}
}

// ToCell converts a TSWAP position to grid (i, j) coordinates.
func ToCell(p Position) gridmap.Cell {
	return gridmap.Cell{I: p.Y, J: p.X}
}

// FromCells converts a slice of grid cells to TSWAP positions.
func FromCells(cells []gridmap.Cell) []Position {
	out := make([]Position, len(cells))
	for k, c := range cells {
		out[k] = FromCell(c)
	}

	return out
}

// ToCells converts a slice of TSWAP positions to grid cells.
func ToCells(positions []Position) []gridmap.Cell {
	out := make([]gridmap.Cell, len(positions))
	for k, p := range positions {
		out[k] = ToCell(p)
	}

	return out
}

// FromPoint converts a Cartesian point to the TSWAP position of the cell
// containing it. The y axis flips: Cartesian y grows upward, TSWAP y
// grows downward from the top row.
func FromPoint(p transform.Point, gridHeight int, cellSize float64) Position {
	return Position{
		X: int(math.Floor(p.X / cellSize)),
		Y: int(math.Floor((float64(gridHeight)*cellSize - p.Y) / cellSize)),
	}
}

// ToPoint converts a TSWAP position to the Cartesian center of its cell.
func ToPoint(p Position, gridHeight int, cellSize float64) transform.Point {
	return transform.Point{
		X: (float64(p.X) + 0.5) * cellSize,
		Y: (float64(gridHeight) - float64(p.Y) - 0.5) * cellSize,
	}
}
