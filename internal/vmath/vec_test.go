package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeZeroVector(t *testing.T) {
	_, ok := Vec2{}.Normalize()
	assert.False(t, ok)

	_, ok = Vec2{X: math.NaN(), Y: 1}.Normalize()
	assert.False(t, ok)
}

func TestNormalize(t *testing.T) {
	n, ok := Vec2{X: 3, Y: 4}.Normalize()
	require.True(t, ok)
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)
	assert.InDelta(t, 1.0, n.Len(), 1e-12)
}

func TestRotate(t *testing.T) {
	r := Vec2{X: 1, Y: 0}.Rotate(math.Pi / 2)
	assert.InDelta(t, 0, r.X, 1e-12)
	assert.InDelta(t, 1, r.Y, 1e-12)

	// нулевой угол не трогает вектор
	assert.Equal(t, Vec2{X: 30, Y: 0}, Vec2{X: 30, Y: 0}.Rotate(0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 600.0, Clamp(620, -600, 600))
	assert.Equal(t, -300.0, Clamp(-310, -300, 300))
	assert.Equal(t, 12.5, Clamp(12.5, -300, 300))
}
