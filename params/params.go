package params

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for container parsing and registry lookups.
var (
	// ErrUnknownModel is returned when no agent constructor is registered
	// under the requested model name.
	ErrUnknownModel = errors.New("params: unknown agent model")

	// ErrUnknownAlgorithm is returned when no algorithm constructor is
	// registered under the requested name.
	ErrUnknownAlgorithm = errors.New("params: unknown algorithm")

	// ErrUnknownKey is returned by SetAttr for a key the container does not
	// define.
	ErrUnknownKey = errors.New("params: unknown parameter key")

	// ErrBadValue is returned by SetAttr when a value fails to parse.
	ErrBadValue = errors.New("params: malformed parameter value")
)

// Attr is one parameter as an ordered (key, value) string pair.
type Attr struct {
	Key, Value string
}

// AgentParams is the container contract for one agent model.
type AgentParams interface {
	// ModelName identifies the agent model ("base", "holonomic", ...).
	ModelName() string
	// Discrete reports whether the model lives in grid coordinates (i, j)
	// rather than continuous (x, y, theta) states.
	Discrete() bool
	// Attrs lists the model parameters in a stable order.
	Attrs() []Attr
	// SetAttr parses one parameter; ErrUnknownKey / ErrBadValue on failure.
	SetAttr(key, value string) error
}

// AlgParams is the container contract for one algorithm configuration.
type AlgParams interface {
	// AlgName identifies the algorithm.
	AlgName() string
	// Attrs lists the algorithm parameters in a stable order.
	Attrs() []Attr
	// SetAttr parses one parameter.
	SetAttr(key, value string) error
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func parseFloat(key, value string, dst *float64) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("%w: %s=%q", ErrBadValue, key, value)
	}
	*dst = v

	return nil
}

func parseInt(key, value string, dst *int) error {
	v, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: %s=%q", ErrBadValue, key, value)
	}
	*dst = v

	return nil
}

//----------------------------------------------------------------------------//
// Agent models
//----------------------------------------------------------------------------//

// BaseAgentParams is the minimal continuous agent model: an open disk of
// radius Size with visibility radius RVis.
type BaseAgentParams struct {
	Size float64
	RVis float64
}

// ModelName returns "base".
func (p *BaseAgentParams) ModelName() string { return "base" }

// Discrete reports false: the base model uses continuous states.
func (p *BaseAgentParams) Discrete() bool { return false }

// Attrs lists size and r_vis.
func (p *BaseAgentParams) Attrs() []Attr {
	return []Attr{
		{Key: "size", Value: formatFloat(p.Size)},
		{Key: "r_vis", Value: formatFloat(p.RVis)},
	}
}

// SetAttr parses size or r_vis.
func (p *BaseAgentParams) SetAttr(key, value string) error {
	switch key {
	case "size":
		return parseFloat(key, value, &p.Size)
	case "r_vis":
		return parseFloat(key, value, &p.RVis)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
}

// HolonomicAgentParams models an agent with unrestricted movement,
// bounded only by a maximum velocity.
type HolonomicAgentParams struct {
	BaseAgentParams
	VelMax float64
}

// ModelName returns "holonomic".
func (p *HolonomicAgentParams) ModelName() string { return "holonomic" }

// Attrs lists the base attributes plus vel_max.
func (p *HolonomicAgentParams) Attrs() []Attr {
	return append(p.BaseAgentParams.Attrs(), Attr{Key: "vel_max", Value: formatFloat(p.VelMax)})
}

// SetAttr parses vel_max or delegates to the base model.
func (p *HolonomicAgentParams) SetAttr(key, value string) error {
	if key == "vel_max" {
		return parseFloat(key, value, &p.VelMax)
	}

	return p.BaseAgentParams.SetAttr(key, value)
}

// DiffDriveAgentParams models an agent under differential-drive movement
// constraints: bounded linear and angular velocities.
type DiffDriveAgentParams struct {
	BaseAgentParams
	VMax, VMin float64
	WMax, WMin float64
}

// ModelName returns "diff_drive".
func (p *DiffDriveAgentParams) ModelName() string { return "diff_drive" }

// Attrs lists the base attributes plus the four velocity bounds.
func (p *DiffDriveAgentParams) Attrs() []Attr {
	return append(p.BaseAgentParams.Attrs(),
		Attr{Key: "v_max", Value: formatFloat(p.VMax)},
		Attr{Key: "v_min", Value: formatFloat(p.VMin)},
		Attr{Key: "w_max", Value: formatFloat(p.WMax)},
		Attr{Key: "w_min", Value: formatFloat(p.WMin)},
	)
}

// SetAttr parses one of the velocity bounds or delegates to the base model.
func (p *DiffDriveAgentParams) SetAttr(key, value string) error {
	switch key {
	case "v_max":
		return parseFloat(key, value, &p.VMax)
	case "v_min":
		return parseFloat(key, value, &p.VMin)
	case "w_max":
		return parseFloat(key, value, &p.WMax)
	case "w_min":
		return parseFloat(key, value, &p.WMin)
	default:
		return p.BaseAgentParams.SetAttr(key, value)
	}
}

// DiscreteAgentParams models a basic agent in grid-based environments,
// with an integer visibility radius measured in cells.
type DiscreteAgentParams struct {
	Size float64
	RVis int
}

// ModelName returns "base_discrete".
func (p *DiscreteAgentParams) ModelName() string { return "base_discrete" }

// Discrete reports true: states are (i, j) grid coordinates.
func (p *DiscreteAgentParams) Discrete() bool { return true }

// Attrs lists size and r_vis.
func (p *DiscreteAgentParams) Attrs() []Attr {
	return []Attr{
		{Key: "size", Value: formatFloat(p.Size)},
		{Key: "r_vis", Value: strconv.Itoa(p.RVis)},
	}
}

// SetAttr parses size or r_vis.
func (p *DiscreteAgentParams) SetAttr(key, value string) error {
	switch key {
	case "size":
		return parseFloat(key, value, &p.Size)
	case "r_vis":
		return parseInt(key, value, &p.RVis)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
}

//----------------------------------------------------------------------------//
// Experiment and algorithm containers
//----------------------------------------------------------------------------//

// ExperimentParams holds per-experiment settings.
type ExperimentParams struct {
	// Timestep is the duration of one simulation step.
	Timestep float64
	// XYGoalTolerance is the position tolerance for reaching a goal.
	XYGoalTolerance float64
	// MaxSteps bounds the number of steps in one run.
	MaxSteps int
}

// Attrs lists timestep, xy_goal_tolerance, and max_steps.
func (p *ExperimentParams) Attrs() []Attr {
	return []Attr{
		{Key: "timestep", Value: formatFloat(p.Timestep)},
		{Key: "xy_goal_tolerance", Value: formatFloat(p.XYGoalTolerance)},
		{Key: "max_steps", Value: strconv.Itoa(p.MaxSteps)},
	}
}

// SetAttr parses one experiment setting.
func (p *ExperimentParams) SetAttr(key, value string) error {
	switch key {
	case "timestep":
		return parseFloat(key, value, &p.Timestep)
	case "xy_goal_tolerance":
		return parseFloat(key, value, &p.XYGoalTolerance)
	case "max_steps":
		return parseInt(key, value, &p.MaxSteps)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
}

// BaseAlgParams is the minimal algorithm block: a name with no parameters.
type BaseAlgParams struct {
	Name string
}

// AlgName returns the configured algorithm name, or "base" when unset.
func (p *BaseAlgParams) AlgName() string {
	if p.Name == "" {
		return "base"
	}

	return p.Name
}

// Attrs lists nothing: the base block carries only its name.
func (p *BaseAlgParams) Attrs() []Attr { return nil }

// SetAttr rejects every key: the base block has no parameters.
func (p *BaseAlgParams) SetAttr(key, _ string) error {
	return fmt.Errorf("%w: %q", ErrUnknownKey, key)
}
