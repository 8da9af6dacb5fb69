package params_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haiot4105/multi-agent-nav-lib/params"
)

// TestAttrs_RoundTrip encodes each built-in model to attributes and decodes
// them into a fresh container of the same model.
func TestAttrs_RoundTrip(t *testing.T) {
	containers := []params.AgentParams{
		&params.BaseAgentParams{Size: 0.3, RVis: 5},
		&params.HolonomicAgentParams{BaseAgentParams: params.BaseAgentParams{Size: 0.3, RVis: 5}, VelMax: 1.5},
		&params.DiffDriveAgentParams{
			BaseAgentParams: params.BaseAgentParams{Size: 0.25, RVis: 4},
			VMax:            1.0, VMin: -0.5, WMax: 2.0, WMin: -2.0,
		},
		&params.DiscreteAgentParams{Size: 0.5, RVis: 3},
	}

	for _, src := range containers {
		t.Run(src.ModelName(), func(t *testing.T) {
			dst, err := params.NewAgent(src.ModelName())
			require.NoError(t, err)
			for _, attr := range src.Attrs() {
				require.NoError(t, dst.SetAttr(attr.Key, attr.Value))
			}
			assert.Equal(t, src, dst)
			assert.Equal(t, src.Discrete(), dst.Discrete())
		})
	}
}

func TestSetAttr_Errors(t *testing.T) {
	p := &params.BaseAgentParams{}
	assert.ErrorIs(t, p.SetAttr("no_such_key", "1"), params.ErrUnknownKey)
	assert.ErrorIs(t, p.SetAttr("size", "not-a-float"), params.ErrBadValue)
}

func TestExperimentParams_RoundTrip(t *testing.T) {
	src := &params.ExperimentParams{Timestep: 0.1, XYGoalTolerance: 0.3, MaxSteps: 1000}
	dst := &params.ExperimentParams{}
	for _, attr := range src.Attrs() {
		require.NoError(t, dst.SetAttr(attr.Key, attr.Value))
	}
	assert.Equal(t, src, dst)
}

func TestRegistry_UnknownNames(t *testing.T) {
	_, err := params.NewAgent("hovercraft")
	assert.ErrorIs(t, err, params.ErrUnknownModel)

	_, err = params.NewAlg("teleport")
	assert.ErrorIs(t, err, params.ErrUnknownAlgorithm)
}

func TestRegisterAgent_DuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate RegisterAgent did not panic")
		}
	}()
	params.RegisterAgent("base", func() params.AgentParams { return &params.BaseAgentParams{} })
}
