package types_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polymesh/qem/types"
)

func TestVec3Arithmetic(t *testing.T) {
	a := types.Vec3{X: 1, Y: 2, Z: 3}
	b := types.Vec3{X: 4, Y: -1, Z: 0.5}

	assert.Equal(t, types.Vec3{X: 5, Y: 1, Z: 3.5}, a.Add(b))
	assert.Equal(t, types.Vec3{X: -3, Y: 3, Z: 2.5}, a.Sub(b))
	assert.Equal(t, types.Vec3{X: 2, Y: 4, Z: 6}, a.Scale(2))
	assert.InDelta(t, 2.5, a.Dot(b), 1e-12)
}

func TestVec3Cross(t *testing.T) {
	x := types.Vec3{X: 1}
	y := types.Vec3{Y: 1}
	z := x.Cross(y)
	assert.InDelta(t, 0, z.X, 1e-12)
	assert.InDelta(t, 0, z.Y, 1e-12)
	assert.InDelta(t, 1, z.Z, 1e-12)
}

func TestVec3Normalize(t *testing.T) {
	v := types.Vec3{X: 3, Y: 4, Z: 0}
	n := v.Normalize()
	require.InDelta(t, 1, n.Len(), 1e-12)
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)
}

func TestVec3NormalizeZeroLengthIsUnguarded(t *testing.T) {
	// Per spec.md §9 and DESIGN.md's Open Question decisions, a
	// zero-length vector normalizes to non-finite components rather
	// than being special-cased.
	n := types.Vec3{}.Normalize()
	assert.True(t, math.IsNaN(n.X) || math.IsInf(n.X, 0))
}

func TestBarycentricRoundTrip(t *testing.T) {
	a := types.Vec3{X: 0, Y: 0, Z: 0}
	b := types.Vec3{X: 1, Y: 0, Z: 0}
	c := types.Vec3{X: 0, Y: 1, Z: 0}

	for _, tc := range []struct {
		p       types.Vec3
		u, v, w float64
	}{
		{a, 1, 0, 0},
		{b, 0, 1, 0},
		{c, 0, 0, 1},
		{types.Vec3{X: 1.0 / 3, Y: 1.0 / 3}, 1.0 / 3, 1.0 / 3, 1.0 / 3},
	} {
		u, v, w := types.Barycentric(tc.p, a, b, c)
		assert.InDelta(t, tc.u, u, 1e-9)
		assert.InDelta(t, tc.v, v, 1e-9)
		assert.InDelta(t, tc.w, w, 1e-9)
	}
}

func TestInterpolateAttr(t *testing.T) {
	a := types.Vec3{X: 0, Y: 0, Z: 0}
	b := types.Vec3{X: 1, Y: 0, Z: 0}
	c := types.Vec3{X: 0, Y: 1, Z: 0}
	attrs := [3]types.Vec3{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
	}

	mid := types.Midpoint(a, b)
	got := types.InterpolateAttr(mid, a, b, c, attrs)
	assert.InDelta(t, 0.5, got.X, 1e-9)
	assert.InDelta(t, 0, got.Y, 1e-9)
}
