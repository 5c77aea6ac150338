package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultsAreSetBeforeSetup(t *testing.T) {
	assert.Equal(t, "quantum", Settings.Agent.Evaluator)
	assert.Equal(t, 1, Settings.Agent.MinimaxDepth)
	assert.Equal(t, 2, Settings.Agent.AlphaBetaDepth)
	assert.Equal(t, 4, Settings.Agent.BeamDepth)
	assert.Equal(t, 3, Settings.Agent.BeamWidth)
}

func TestSetupIsIdempotentWithMissingFile(t *testing.T) {
	ConfFile = "./nonexistent-config.toml"
	Setup()
	Setup()

	assert.True(t, initialized)
	assert.Equal(t, "quantum", Settings.Agent.Evaluator)
}

func TestStringDumpsBothSections(t *testing.T) {
	out := Settings.String()
	assert.Contains(t, out, "Agent Config")
	assert.Contains(t, out, "Store Config")
	assert.Contains(t, out, "Evaluator")
}
