package movingai_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haiot4105/multi-agent-nav-lib/movingai"
)

func TestWriteReadRoundTrip(t *testing.T) {
	grid := [][]bool{
		{false, true, false},
		{false, false, false},
		{true, false, true},
		{false, false, false},
	}

	path := filepath.Join(t.TempDir(), "arena.map")
	require.NoError(t, movingai.WriteMap(path, grid))

	h, w, got, err := movingai.ReadMap(path)
	require.NoError(t, err)
	assert.Equal(t, 4, h)
	assert.Equal(t, 3, w)
	assert.Equal(t, grid, got)
}

func TestWriteMap_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.map")
	require.NoError(t, movingai.WriteMap(path, [][]bool{{false, true}, {true, false}}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "type octile\nheight 2\nwidth 2\nmap\n.@\n@.\n", string(raw))
}

// ReadMap must accept both obstacle characters used across the benchmark
// suite.
func TestReadMap_ObstacleChars(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terrain.map")
	content := "type octile\nheight 2\nwidth 3\nmap\n.T@\nT..\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	h, w, grid, err := movingai.ReadMap(path)
	require.NoError(t, err)
	assert.Equal(t, 2, h)
	assert.Equal(t, 3, w)
	assert.Equal(t, [][]bool{{false, true, true}, {true, false, false}}, grid)
}

func TestReadMap_Malformed(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    error
	}{
		{"wrong type line", "type tile\nheight 2\nwidth 2\nmap\n..\n..\n", movingai.ErrBadHeader},
		{"missing height", "type octile\nwidth 2\nmap\n..\n..\n", movingai.ErrBadHeader},
		{"non-numeric width", "type octile\nheight 2\nwidth x\nmap\n..\n..\n", movingai.ErrBadHeader},
		{"zero height", "type octile\nheight 0\nwidth 2\nmap\n", movingai.ErrBadHeader},
		{"missing map line", "type octile\nheight 2\nwidth 2\n..\n..\n", movingai.ErrBadHeader},
		{"too few rows", "type octile\nheight 3\nwidth 2\nmap\n..\n..\n", movingai.ErrBadDimensions},
		{"short row", "type octile\nheight 2\nwidth 3\nmap\n...\n..\n", movingai.ErrBadDimensions},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.map")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))

			_, _, _, err := movingai.ReadMap(path)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReadMap_MissingFile(t *testing.T) {
	_, _, _, err := movingai.ReadMap(filepath.Join(t.TempDir(), "nope.map"))
	assert.Error(t, err)
}
