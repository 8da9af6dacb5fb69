package xmlio

import (
	"encoding/xml"
	"errors"

	"github.com/haiot4105/multi-agent-nav-lib/gen"
	"github.com/haiot4105/multi-agent-nav-lib/gridmap"
	"github.com/haiot4105/multi-agent-nav-lib/params"
	"github.com/haiot4105/multi-agent-nav-lib/transform"
)

var (
	// ErrLengthMismatch indicates start/goal/parameter slices of
	// different lengths passed to a writer.
	ErrLengthMismatch = errors.New("xmlio: slice lengths differ")

	// ErrWrongFormat indicates a discrete parameter set paired with
	// continuous states (or vice versa), or a file whose agent entries
	// lack the coordinate attributes its default model requires.
	ErrWrongFormat = errors.New("xmlio: state format does not match agent model")

	// ErrBadGrid indicates a map file whose grid rows do not match the
	// declared dimensions.
	ErrBadGrid = errors.New("xmlio: grid does not match declared dimensions")

	// ErrBadLog indicates a log file with step or agent ids outside the
	// ranges declared in its summary.
	ErrBadLog = errors.New("xmlio: log ids outside summary ranges")
)

// MapData is the content of an XML map file. Obstacles is nil when the
// file carries no polygon block.
type MapData struct {
	Height   int
	Width    int
	CellSize float64
	Grid     [][]bool
	Polygons [][]transform.Point
}

// AgentsData is the content of an XML agents file. Exactly one of the
// state pairs is populated: Starts/Goals for continuous models,
// StartCells/GoalCells when Discrete is true. Params holds one resolved
// parameter set per agent (defaults merged with any per-agent override).
type AgentsData struct {
	Default  params.AgentParams
	Params   []params.AgentParams
	Discrete bool

	Starts, Goals         []gen.State
	StartCells, GoalCells []gridmap.Cell
}

// Summary is the header block of a result log.
type Summary struct {
	Success    bool
	Runtime    float64
	Collisions int
	Makespan   int
	Agents     int
	TaskID     int
}

// Wire-format structs shared by the readers and writers.

type xmlRow struct {
	Value string `xml:",chardata"`
}

type xmlGridBlock struct {
	Rows []xmlRow `xml:"row"`
}

type xmlOccupancyGrid struct {
	Width    int          `xml:"width"`
	Height   int          `xml:"height"`
	CellSize float64      `xml:"cell_size"`
	Grid     xmlGridBlock `xml:"grid"`
}

type xmlVertex struct {
	X float64 `xml:"v.x,attr"`
	Y float64 `xml:"v.y,attr"`
}

type xmlObstacle struct {
	Vertices []xmlVertex `xml:"vertex"`
}

type xmlObstacleBlock struct {
	Obstacles []xmlObstacle `xml:"obstacle"`
}

type xmlMapFile struct {
	XMLName   xml.Name          `xml:"root"`
	Grid      xmlOccupancyGrid  `xml:"occupancy_grid"`
	Obstacles *xmlObstacleBlock `xml:"polygon_obstacles"`
}

type xmlDefaultAgent struct {
	Model string     `xml:"model_type,attr"`
	Attrs []xml.Attr `xml:",any,attr"`
}

type xmlAgent struct {
	ID    int        `xml:"id,attr"`
	SI    *int       `xml:"s.i,attr"`
	SJ    *int       `xml:"s.j,attr"`
	GI    *int       `xml:"g.i,attr"`
	GJ    *int       `xml:"g.j,attr"`
	SX    *float64   `xml:"s.x,attr"`
	SY    *float64   `xml:"s.y,attr"`
	STh   *float64   `xml:"s.th,attr"`
	GX    *float64   `xml:"g.x,attr"`
	GY    *float64   `xml:"g.y,attr"`
	GTh   *float64   `xml:"g.th,attr"`
	Model string     `xml:"model_type,attr,omitempty"`
	Attrs []xml.Attr `xml:",any,attr"`
}

type xmlAgentBlock struct {
	Number int        `xml:"number,attr"`
	Agents []xmlAgent `xml:"agent"`
}

type xmlAgentsFile struct {
	XMLName xml.Name        `xml:"root"`
	Default xmlDefaultAgent `xml:"default_agent"`
	Agents  xmlAgentBlock   `xml:"agents"`
}

type xmlParamValue struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

type xmlExperiment struct {
	Params []xmlParamValue `xml:",any"`
}

type xmlAlgorithm struct {
	Name   string          `xml:"name,attr"`
	Params []xmlParamValue `xml:",any"`
}

type xmlConfigFile struct {
	XMLName    xml.Name       `xml:"root"`
	Experiment xmlExperiment  `xml:"experiment"`
	Algorithms []xmlAlgorithm `xml:"algorithm"`
}

type xmlLogAgent struct {
	ID int     `xml:"id,attr"`
	X  float64 `xml:"x,attr"`
	Y  float64 `xml:"y,attr"`
}

type xmlLogStep struct {
	ID     int           `xml:"id,attr"`
	Agents []xmlLogAgent `xml:"agent"`
}

type xmlSummary struct {
	Success    int     `xml:"success,attr"`
	Time       float64 `xml:"time,attr"`
	Collisions int     `xml:"collisions,attr"`
	Makespan   int     `xml:"makespan,attr"`
	Number     int     `xml:"number,attr"`
	TaskID     int     `xml:"task_id,attr"`
}

type xmlLogFile struct {
	XMLName xml.Name     `xml:"root"`
	Summary xmlSummary   `xml:"summary"`
	Steps   []xmlLogStep `xml:"step"`
}
