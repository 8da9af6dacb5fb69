package movingai

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrBadHeader indicates a map file whose header lines do not match
	// the MovingAI format.
	ErrBadHeader = errors.New("movingai: malformed header")

	// ErrBadDimensions indicates a map body that does not supply
	// height×width terrain characters.
	ErrBadDimensions = errors.New("movingai: body does not match declared dimensions")
)

const (
	typeLine  = "type octile"
	heightKey = "height"
	widthKey  = "width"
	mapLine   = "map"
	freeChar  = '.'
	obstChar  = '@'
	obstCharT = 'T'
)

// WriteMap writes the occupancy grid (true = blocked) to path in MovingAI
// format, with '@' for blocked cells.
// Complexity: O(H×W).
func WriteMap(path string, grid [][]bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("movingai: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	h := len(grid)
	width := 0
	if h > 0 {
		width = len(grid[0])
	}

	fmt.Fprintf(w, "%s\n%s %d\n%s %d\n%s\n", typeLine, heightKey, h, widthKey, width, mapLine)
	for _, row := range grid {
		for _, blocked := range row {
			if blocked {
				w.WriteByte(obstChar)
			} else {
				w.WriteByte(freeChar)
			}
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("movingai: write %s: %w", path, err)
	}

	return nil
}

// ReadMap reads a MovingAI map file and returns its dimensions and
// occupancy grid (true = blocked). Both '@' and 'T' are accepted as
// obstacles; every other terrain character is treated as free.
// Complexity: O(H×W).
func ReadMap(path string) (h, w int, grid [][]bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("movingai: open %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() || strings.TrimSpace(sc.Text()) != typeLine {
		return 0, 0, nil, fmt.Errorf("%w: expected %q", ErrBadHeader, typeLine)
	}
	if h, err = headerValue(sc, heightKey); err != nil {
		return 0, 0, nil, err
	}
	if w, err = headerValue(sc, widthKey); err != nil {
		return 0, 0, nil, err
	}
	if !sc.Scan() || strings.TrimSpace(sc.Text()) != mapLine {
		return 0, 0, nil, fmt.Errorf("%w: expected %q", ErrBadHeader, mapLine)
	}

	grid = make([][]bool, h)
	for i := 0; i < h; i++ {
		if !sc.Scan() {
			return 0, 0, nil, fmt.Errorf("%w: %d body rows, want %d", ErrBadDimensions, i, h)
		}
		row := sc.Text()
		if len(row) < w {
			return 0, 0, nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadDimensions, i, len(row), w)
		}
		grid[i] = make([]bool, w)
		for j := 0; j < w; j++ {
			grid[i][j] = row[j] == obstChar || row[j] == obstCharT
		}
	}
	if err := sc.Err(); err != nil {
		return 0, 0, nil, fmt.Errorf("movingai: read %s: %w", path, err)
	}

	return h, w, grid, nil
}

// headerValue consumes one "key N" header line and returns N.
func headerValue(sc *bufio.Scanner, key string) (int, error) {
	if !sc.Scan() {
		return 0, fmt.Errorf("%w: missing %q line", ErrBadHeader, key)
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 2 || fields[0] != key {
		return 0, fmt.Errorf("%w: expected %q line, got %q", ErrBadHeader, key, sc.Text())
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: bad %s value %q", ErrBadHeader, key, fields[1])
	}

	return n, nil
}
