package validation_test

import (
	"testing"

	"github.com/polymesh/qem/mesh"
	"github.com/polymesh/qem/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tetrahedron() ([][3]float64, [][3]int) {
	return [][3]float64{
			{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		}, [][3]int{
			{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3},
		}
}

func TestIndexValidityAfterSimplify(t *testing.T) {
	positions, triangles := tetrahedron()
	m := mesh.NewMesh()
	require.NoError(t, m.SetMesh(positions, triangles))

	require.NoError(t, m.Simplify(2))

	assert.NoError(t, validation.IndexValidity(m))
}

func TestQuadricSymmetricIsFinite(t *testing.T) {
	positions, triangles := tetrahedron()
	m := mesh.NewMesh()
	require.NoError(t, m.SetMesh(positions, triangles))

	assert.NoError(t, validation.QuadricSymmetric(m))

	require.NoError(t, m.Simplify(2))
	assert.NoError(t, validation.QuadricSymmetric(m))
}

func TestUnitNormalsWithinTolerance(t *testing.T) {
	positions, triangles := tetrahedron()
	m := mesh.NewMesh()
	require.NoError(t, m.SetMesh(positions, triangles))

	assert.NoError(t, validation.UnitNormals(m, validation.DefaultConfig()))
}
