package xmlio

import (
	"fmt"

	"github.com/haiot4105/multi-agent-nav-lib/transform"
)

// WriteLog writes a result log: the summary line plus one step block per
// row of paths. paths may be nil for a summary-only log; otherwise
// paths[step][agent] holds the agent's position at that step and every
// row must carry Summary.Agents entries.
func WriteLog(path string, summary Summary, paths [][]transform.Point) error {
	success := 0
	if summary.Success {
		success = 1
	}
	file := xmlLogFile{
		Summary: xmlSummary{
			Success:    success,
			Time:       summary.Runtime,
			Collisions: summary.Collisions,
			Makespan:   summary.Makespan,
			Number:     summary.Agents,
			TaskID:     summary.TaskID,
		},
		Steps: make([]xmlLogStep, len(paths)),
	}
	for step, row := range paths {
		if len(row) != summary.Agents {
			return fmt.Errorf("%w: step %d has %d agents, summary declares %d", ErrLengthMismatch, step, len(row), summary.Agents)
		}
		agents := make([]xmlLogAgent, len(row))
		for id, p := range row {
			agents[id] = xmlLogAgent{ID: id, X: p.X, Y: p.Y}
		}
		file.Steps[step] = xmlLogStep{ID: step, Agents: agents}
	}

	return writeXML(path, file)
}

// ReadLog reads a result log and returns the summary together with the
// per-step agent positions, indexed [step][agent]. Logs without step
// blocks yield paths sized by the summary with zero positions.
func ReadLog(path string) (Summary, [][]transform.Point, error) {
	var file xmlLogFile
	if err := readXML(path, &file); err != nil {
		return Summary{}, nil, err
	}
	summary := decodeSummary(file.Summary)

	paths := make([][]transform.Point, summary.Makespan)
	for step := range paths {
		paths[step] = make([]transform.Point, summary.Agents)
	}
	for _, step := range file.Steps {
		if step.ID < 0 || step.ID >= summary.Makespan {
			return Summary{}, nil, fmt.Errorf("%w: step id %d, makespan %d", ErrBadLog, step.ID, summary.Makespan)
		}
		for _, agent := range step.Agents {
			if agent.ID < 0 || agent.ID >= summary.Agents {
				return Summary{}, nil, fmt.Errorf("%w: agent id %d, count %d", ErrBadLog, agent.ID, summary.Agents)
			}
			paths[step.ID][agent.ID] = transform.Point{X: agent.X, Y: agent.Y}
		}
	}

	return summary, paths, nil
}

// ReadSummary reads only the summary line of a result log, skipping path
// reconstruction.
func ReadSummary(path string) (Summary, error) {
	var file xmlLogFile
	if err := readXML(path, &file); err != nil {
		return Summary{}, err
	}

	return decodeSummary(file.Summary), nil
}

func decodeSummary(s xmlSummary) Summary {
	return Summary{
		Success:    s.Success != 0,
		Runtime:    s.Time,
		Collisions: s.Collisions,
		Makespan:   s.Makespan,
		Agents:     s.Number,
		TaskID:     s.TaskID,
	}
}
