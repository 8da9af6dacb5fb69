package xmlio

import (
	"encoding/xml"
	"fmt"

	"github.com/haiot4105/multi-agent-nav-lib/gen"
	"github.com/haiot4105/multi-agent-nav-lib/gridmap"
	"github.com/haiot4105/multi-agent-nav-lib/params"
)

// WriteAgents writes a continuous-model agents file: Cartesian poses plus
// the default parameter set. perAgent may be nil, in which case every
// agent inherits the defaults; otherwise it must supply one parameter set
// per agent, written as a per-agent override.
func WriteAgents(path string, starts, goals []gen.State, defaults params.AgentParams, perAgent []params.AgentParams) error {
	if defaults.Discrete() {
		return fmt.Errorf("%w: %s is a discrete model, use WriteDiscreteAgents", ErrWrongFormat, defaults.ModelName())
	}
	if len(starts) != len(goals) || (perAgent != nil && len(perAgent) != len(starts)) {
		return fmt.Errorf("%w: %d starts, %d goals, %d parameter sets", ErrLengthMismatch, len(starts), len(goals), len(perAgent))
	}

	file := newAgentsFile(defaults, len(starts))
	for id := range starts {
		s, g := starts[id], goals[id]
		agent := xmlAgent{
			ID: id,
			SX: &s.X, SY: &s.Y, STh: &s.Theta,
			GX: &g.X, GY: &g.Y, GTh: &g.Theta,
		}
		if perAgent != nil {
			agent.Model = perAgent[id].ModelName()
			agent.Attrs = paramAttrs(perAgent[id].Attrs())
		}
		file.Agents.Agents[id] = agent
	}

	return writeXML(path, file)
}

// WriteDiscreteAgents writes a discrete-model agents file: grid
// coordinates plus the default parameter set. perAgent follows the same
// contract as in WriteAgents.
func WriteDiscreteAgents(path string, starts, goals []gridmap.Cell, defaults params.AgentParams, perAgent []params.AgentParams) error {
	if !defaults.Discrete() {
		return fmt.Errorf("%w: %s is a continuous model, use WriteAgents", ErrWrongFormat, defaults.ModelName())
	}
	if len(starts) != len(goals) || (perAgent != nil && len(perAgent) != len(starts)) {
		return fmt.Errorf("%w: %d starts, %d goals, %d parameter sets", ErrLengthMismatch, len(starts), len(goals), len(perAgent))
	}

	file := newAgentsFile(defaults, len(starts))
	for id := range starts {
		s, g := starts[id], goals[id]
		agent := xmlAgent{
			ID: id,
			SI: &s.I, SJ: &s.J,
			GI: &g.I, GJ: &g.J,
		}
		if perAgent != nil {
			agent.Model = perAgent[id].ModelName()
			agent.Attrs = paramAttrs(perAgent[id].Attrs())
		}
		file.Agents.Agents[id] = agent
	}

	return writeXML(path, file)
}

// ReadAgents reads an agents file. The default agent's model decides the
// state layout: discrete models populate StartCells/GoalCells, continuous
// models populate Starts/Goals. Each agent's resolved parameter set is a
// copy of the defaults with any per-agent override applied on top.
func ReadAgents(path string) (*AgentsData, error) {
	var file xmlAgentsFile
	if err := readXML(path, &file); err != nil {
		return nil, err
	}

	defaults, err := decodeParams(file.Default.Model, file.Default.Attrs)
	if err != nil {
		return nil, fmt.Errorf("xmlio: default agent: %w", err)
	}

	n := file.Agents.Number
	data := &AgentsData{
		Default:  defaults,
		Params:   make([]params.AgentParams, n),
		Discrete: defaults.Discrete(),
	}
	if data.Discrete {
		data.StartCells = make([]gridmap.Cell, n)
		data.GoalCells = make([]gridmap.Cell, n)
	} else {
		data.Starts = make([]gen.State, n)
		data.Goals = make([]gen.State, n)
	}

	for _, agent := range file.Agents.Agents {
		id := agent.ID
		if id < 0 || id >= n {
			return nil, fmt.Errorf("xmlio: agent id %d outside declared count %d", id, n)
		}

		resolved, err := resolveAgentParams(defaults, file.Default.Attrs, agent)
		if err != nil {
			return nil, fmt.Errorf("xmlio: agent %d: %w", id, err)
		}
		data.Params[id] = resolved

		if data.Discrete {
			if agent.SI == nil || agent.SJ == nil || agent.GI == nil || agent.GJ == nil {
				return nil, fmt.Errorf("%w: agent %d lacks grid coordinates", ErrWrongFormat, id)
			}
			data.StartCells[id] = gridmap.Cell{I: *agent.SI, J: *agent.SJ}
			data.GoalCells[id] = gridmap.Cell{I: *agent.GI, J: *agent.GJ}
		} else {
			if agent.SX == nil || agent.SY == nil || agent.STh == nil ||
				agent.GX == nil || agent.GY == nil || agent.GTh == nil {
				return nil, fmt.Errorf("%w: agent %d lacks Cartesian coordinates", ErrWrongFormat, id)
			}
			data.Starts[id] = gen.State{X: *agent.SX, Y: *agent.SY, Theta: *agent.STh}
			data.Goals[id] = gen.State{X: *agent.GX, Y: *agent.GY, Theta: *agent.GTh}
		}
	}

	return data, nil
}

func newAgentsFile(defaults params.AgentParams, agents int) *xmlAgentsFile {
	return &xmlAgentsFile{
		Default: xmlDefaultAgent{
			Model: defaults.ModelName(),
			Attrs: paramAttrs(defaults.Attrs()),
		},
		Agents: xmlAgentBlock{
			Number: agents,
			Agents: make([]xmlAgent, agents),
		},
	}
}

// resolveAgentParams copies the default parameter set and applies the
// agent's override, constructing a fresh parameter type when the override
// names a different model.
func resolveAgentParams(defaults params.AgentParams, defaultAttrs []xml.Attr, agent xmlAgent) (params.AgentParams, error) {
	if agent.Model != "" && agent.Model != defaults.ModelName() {
		return decodeParams(agent.Model, agent.Attrs)
	}
	attrs := defaultAttrs
	if agent.Model != "" {
		attrs = append(append([]xml.Attr{}, defaultAttrs...), agent.Attrs...)
	}

	return decodeParams(defaults.ModelName(), attrs)
}

// decodeParams builds a parameter set of the named model from XML
// attributes via the params registry.
func decodeParams(model string, attrs []xml.Attr) (params.AgentParams, error) {
	p, err := params.NewAgent(model)
	if err != nil {
		return nil, err
	}
	for _, a := range attrs {
		if err := p.SetAttr(a.Name.Local, a.Value); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func paramAttrs(attrs []params.Attr) []xml.Attr {
	out := make([]xml.Attr, len(attrs))
	for k, a := range attrs {
		out[k] = xml.Attr{Name: xml.Name{Local: a.Key}, Value: a.Value}
	}

	return out
}
