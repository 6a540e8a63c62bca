package meshio

import (
	"testing"

	"github.com/polymesh/qem/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tetrahedron() ([][3]float64, [][3]int) {
	positions := [][3]float64{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	triangles := [][3]int{
		{0, 1, 2},
		{0, 1, 3},
		{0, 2, 3},
		{1, 2, 3},
	}
	return positions, triangles
}

func TestFlattenUnflattenPositionsRoundTrip(t *testing.T) {
	positions, _ := tetrahedron()
	flat := FlattenPositions(positions)
	assert.Len(t, flat, len(positions)*3)

	got, err := UnflattenPositions(flat)
	require.NoError(t, err)
	assert.Equal(t, positions, got)
}

func TestUnflattenPositionsRejectsBadLength(t *testing.T) {
	_, err := UnflattenPositions([]float64{1, 2})
	assert.ErrorIs(t, err, ErrFlatLength)
}

func TestFlattenUnflattenTrianglesRoundTrip(t *testing.T) {
	_, triangles := tetrahedron()
	flat := FlattenTriangles(triangles)
	assert.Len(t, flat, len(triangles)*3)

	got, err := UnflattenTriangles(flat)
	require.NoError(t, err)
	assert.Equal(t, triangles, got)
}

func TestUnflattenTrianglesRejectsBadLength(t *testing.T) {
	_, err := UnflattenTriangles([]int32{0, 1})
	assert.ErrorIs(t, err, ErrFlatLength)
}

func TestLoadDumpRoundTrip(t *testing.T) {
	positions, triangles := tetrahedron()
	flatPositions := FlattenPositions(positions)
	flatTriangles := FlattenTriangles(triangles)

	m := mesh.NewMesh()
	require.NoError(t, Load(m, flatPositions, flatTriangles))
	assert.Equal(t, 4, m.NumVertices())
	assert.Equal(t, 4, m.NumTriangles())

	gotPositions, gotTriangles, _ := Dump(m)
	assert.Equal(t, flatPositions, gotPositions)
	assert.Equal(t, flatTriangles, gotTriangles)
}

func TestLoadRejectsOutOfRangeVertex(t *testing.T) {
	m := mesh.NewMesh()
	flatPositions := []float64{0, 0, 0, 1, 0, 0, 0, 1, 0}
	flatTriangles := []int32{0, 1, 5}
	assert.Error(t, Load(m, flatPositions, flatTriangles))
}
