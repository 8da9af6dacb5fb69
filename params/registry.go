package params

import "fmt"

// agentRegistry maps model names to constructors of zero-valued containers.
var agentRegistry = map[string]func() AgentParams{}

// algRegistry maps algorithm names to constructors.
var algRegistry = map[string]func() AlgParams{}

func init() {
	RegisterAgent("base", func() AgentParams { return &BaseAgentParams{} })
	RegisterAgent("holonomic", func() AgentParams { return &HolonomicAgentParams{} })
	RegisterAgent("diff_drive", func() AgentParams { return &DiffDriveAgentParams{} })
	RegisterAgent("base_discrete", func() AgentParams { return &DiscreteAgentParams{} })
	RegisterAlg("base", func() AlgParams { return &BaseAlgParams{} })
}

// RegisterAgent binds an agent model name to a constructor. Registering
// the same name twice panics: two models competing for one name is a
// programming error, not a runtime state.
func RegisterAgent(model string, ctor func() AgentParams) {
	if _, dup := agentRegistry[model]; dup {
		panic(fmt.Sprintf("params: agent model %q registered twice", model))
	}
	agentRegistry[model] = ctor
}

// RegisterAlg binds an algorithm name to a constructor. Duplicate
// registration panics, as with RegisterAgent.
func RegisterAlg(name string, ctor func() AlgParams) {
	if _, dup := algRegistry[name]; dup {
		panic(fmt.Sprintf("params: algorithm %q registered twice", name))
	}
	algRegistry[name] = ctor
}

// NewAgent instantiates a zero-valued container for the named agent model,
// or ErrUnknownModel.
func NewAgent(model string) (AgentParams, error) {
	ctor, ok := agentRegistry[model]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, model)
	}

	return ctor(), nil
}

// NewAlg instantiates a zero-valued container for the named algorithm, or
// ErrUnknownAlgorithm.
func NewAlg(name string) (AlgParams, error) {
	ctor, ok := algRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	return ctor(), nil
}
