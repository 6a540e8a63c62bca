package mesh

import (
	"testing"

	"github.com/polymesh/qem/types"
	"github.com/stretchr/testify/assert"
)

func TestNewRunParamsDefaults(t *testing.T) {
	p := newRunParams()
	assert.Equal(t, DefaultUpdateRate, p.updateRate)
	assert.Equal(t, DefaultAggressiveness, p.aggressiveness)
	assert.Equal(t, DefaultAlpha, p.alpha)
	assert.Equal(t, DefaultK, p.k)
	assert.Equal(t, DefaultMaxIterations, p.maxIterations)
	assert.False(t, p.lossless)
}

func TestWithUpdateRateClampsBelowOne(t *testing.T) {
	p := newRunParams()
	WithUpdateRate(0)(&p)
	assert.Equal(t, 1, p.updateRate)

	WithUpdateRate(-5)(&p)
	assert.Equal(t, 1, p.updateRate)

	WithUpdateRate(3)(&p)
	assert.Equal(t, 3, p.updateRate)
}

func TestWithThresholdLosslessSwitchesMode(t *testing.T) {
	p := newRunParams()
	WithThresholdLossless(0.01)(&p)
	assert.True(t, p.lossless)
	assert.Equal(t, 0.01, p.thresholdLossless)
}

func TestNewLosslessParamsDefaults(t *testing.T) {
	p := newLosslessParams()
	assert.Equal(t, DefaultLosslessEpsilon, p.epsilon)
	assert.Equal(t, DefaultLosslessMaxIterations, p.maxIterations)
}

func TestOptionSetsMeshConfig(t *testing.T) {
	called := false
	filter := func(p types.Vec3) bool { called = true; return true }
	m := NewMesh(WithVertexFilter(filter), WithParallelCutover(64))

	assert.Equal(t, 64, m.cfg.parallelCutover)
	assert.NotNil(t, m.cfg.vertexFilter)
	m.cfg.vertexFilter(types.Vec3{})
	assert.True(t, called)
}
