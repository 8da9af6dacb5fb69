package xmlio

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/haiot4105/multi-agent-nav-lib/transform"
)

// WriteMap writes the occupancy grid (true = blocked) and the optional
// polygon obstacles to an XML map file. Pass nil polygons to omit the
// obstacle block.
// Complexity: O(H×W + total polygon vertices).
func WriteMap(path string, grid [][]bool, cellSize float64, polygons [][]transform.Point) error {
	h := len(grid)
	w := 0
	if h > 0 {
		w = len(grid[0])
	}

	file := xmlMapFile{
		Grid: xmlOccupancyGrid{
			Width:    w,
			Height:   h,
			CellSize: cellSize,
			Grid:     xmlGridBlock{Rows: make([]xmlRow, h)},
		},
	}
	for i, row := range grid {
		flags := make([]string, len(row))
		for j, blocked := range row {
			if blocked {
				flags[j] = "1"
			} else {
				flags[j] = "0"
			}
		}
		file.Grid.Grid.Rows[i] = xmlRow{Value: strings.Join(flags, " ")}
	}

	if polygons != nil {
		block := &xmlObstacleBlock{Obstacles: make([]xmlObstacle, len(polygons))}
		for k, polygon := range polygons {
			vertices := make([]xmlVertex, len(polygon))
			for v, p := range polygon {
				vertices[v] = xmlVertex{X: p.X, Y: p.Y}
			}
			block.Obstacles[k] = xmlObstacle{Vertices: vertices}
		}
		file.Obstacles = block
	}

	return writeXML(path, file)
}

// ReadMap reads an XML map file. MapData.Polygons is nil when the file
// has no polygon block.
// Complexity: O(H×W + total polygon vertices).
func ReadMap(path string) (*MapData, error) {
	var file xmlMapFile
	if err := readXML(path, &file); err != nil {
		return nil, err
	}

	h, w := file.Grid.Height, file.Grid.Width
	if len(file.Grid.Grid.Rows) != h {
		return nil, fmt.Errorf("%w: %d rows, declared height %d", ErrBadGrid, len(file.Grid.Grid.Rows), h)
	}

	grid := make([][]bool, h)
	for i, row := range file.Grid.Grid.Rows {
		flags := strings.Fields(row.Value)
		if len(flags) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, declared width %d", ErrBadGrid, i, len(flags), w)
		}
		grid[i] = make([]bool, w)
		for j, flag := range flags {
			grid[i][j] = flag != "0"
		}
	}

	data := &MapData{Height: h, Width: w, CellSize: file.Grid.CellSize, Grid: grid}
	if file.Obstacles != nil {
		data.Polygons = make([][]transform.Point, len(file.Obstacles.Obstacles))
		for k, obstacle := range file.Obstacles.Obstacles {
			polygon := make([]transform.Point, len(obstacle.Vertices))
			for v, vertex := range obstacle.Vertices {
				polygon[v] = transform.Point{X: vertex.X, Y: vertex.Y}
			}
			data.Polygons[k] = polygon
		}
	}

	return data, nil
}

// writeXML marshals v with an XML declaration and indentation.
func writeXML(path string, v any) error {
	raw, err := xml.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("xmlio: marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, append([]byte(xml.Header), raw...), 0o644); err != nil {
		return fmt.Errorf("xmlio: write %s: %w", path, err)
	}

	return nil
}

func readXML(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("xmlio: read %s: %w", path, err)
	}
	if err := xml.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("xmlio: parse %s: %w", path, err)
	}

	return nil
}
