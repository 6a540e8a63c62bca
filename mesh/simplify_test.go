package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tetrahedronFixture() ([][3]float64, [][3]int) {
	positions := [][3]float64{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
	}
	triangles := [][3]int{
		{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3},
	}
	return positions, triangles
}

func TestSimplifyUnitTetrahedron(t *testing.T) {
	positions, triangles := tetrahedronFixture()
	m := NewMesh()
	require.NoError(t, m.SetMesh(positions, triangles))

	for i := 0; i < len(m.vertices); i++ {
		assert.False(t, m.vertices[i].border, "closed tetrahedron should have no border vertices")
	}

	require.NoError(t, m.Simplify(2, WithMaxIterations(10)))

	assert.LessOrEqual(t, m.NumTriangles(), 4)
	assert.GreaterOrEqual(t, m.NumTriangles(), 2)
}

func TestSimplifyOpenStripPreservesBorder(t *testing.T) {
	// 8 coplanar triangles forming a 1x4 strip of unit squares, each
	// split into two right triangles.
	positions := [][3]float64{
		{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}, {4, 0, 0},
		{0, 1, 0}, {1, 1, 0}, {2, 1, 0}, {3, 1, 0}, {4, 1, 0},
	}
	triangles := [][3]int{
		{0, 1, 6}, {0, 6, 5},
		{1, 2, 7}, {1, 7, 6},
		{2, 3, 8}, {2, 8, 7},
		{3, 4, 9}, {3, 9, 8},
	}

	before := make([][3]float64, len(positions))
	copy(before, positions)

	m := NewMesh()
	require.NoError(t, m.SetMesh(positions, triangles))

	borderBefore := map[int]bool{}
	for i := range m.vertices {
		borderBefore[i] = m.vertices[i].border
	}

	require.NoError(t, m.Simplify(2, WithPreserveBorder(true)))

	got, _, _ := m.GetMesh()
	for i, want := range before {
		if borderBefore[i] {
			assert.Equal(t, want, got[i], "border vertex %d must not move", i)
		}
	}
}

func TestSimplifyCubeNoNaNOrDuplicates(t *testing.T) {
	positions := [][3]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
	triangles := [][3]int{
		{0, 1, 2}, {0, 2, 3}, // bottom
		{4, 6, 5}, {4, 7, 6}, // top
		{0, 5, 1}, {0, 4, 5}, // front
		{1, 6, 2}, {1, 5, 6}, // right
		{2, 7, 3}, {2, 6, 7}, // back
		{3, 4, 0}, {3, 7, 4}, // left
	}

	m := NewMesh()
	require.NoError(t, m.SetMesh(positions, triangles))

	require.NoError(t, m.Simplify(4))

	pos, tris, _ := m.GetMesh()
	assert.LessOrEqual(t, len(tris), 4)

	for _, p := range pos {
		for _, c := range p {
			assert.False(t, math.IsNaN(c))
		}
	}

	seen := map[[3]int]bool{}
	for _, tri := range tris {
		key := canonicalTriangle(tri)
		assert.False(t, seen[key], "duplicate triangle %v", tri)
		seen[key] = true
	}
}

func canonicalTriangle(t [3]int) [3]int {
	v := t
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if v[j] < v[i] {
				v[i], v[j] = v[j], v[i]
			}
		}
	}
	return v
}

func TestSimplifyIcosahedronNoBordersUnitNormals(t *testing.T) {
	positions, triangles := icosahedronFixture()
	m := NewMesh()
	require.NoError(t, m.SetMesh(positions, triangles))

	for i := range m.vertices {
		assert.False(t, m.vertices[i].border)
	}

	require.NoError(t, m.Simplify(12))

	assert.LessOrEqual(t, m.NumTriangles(), 12)

	_, _, normals := m.GetMesh()
	for _, n := range normals {
		length := math.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
		assert.InDelta(t, 1.0, length, 1e-9)
	}
}

func TestSimplifyAlreadyAtTargetReturnsUnchanged(t *testing.T) {
	positions, triangles := tetrahedronFixture()
	m := NewMesh()
	require.NoError(t, m.SetMesh(positions, triangles))

	require.NoError(t, m.Simplify(4))

	assert.Equal(t, 4, m.NumTriangles())
}

func TestSimplifyLosslessOnCoplanarGrid(t *testing.T) {
	positions, triangles := planeGridFixture(4)
	m := NewMesh()
	require.NoError(t, m.SetMesh(positions, triangles))

	before := m.NumTriangles()
	require.NoError(t, m.SimplifyLossless(WithEpsilon(1e-3), WithLosslessMaxIterations(9999)))

	assert.Less(t, m.NumTriangles(), before, "coplanar grid should collapse substantially under lossless mode")
}

func icosahedronFixture() ([][3]float64, [][3]int) {
	const phi = 1.618033988749895
	positions := [][3]float64{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}
	triangles := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
	return positions, triangles
}

// planeGridFixture builds an (n x n)-cell grid of coplanar unit-square
// triangles on z=0, split into two triangles per cell.
func planeGridFixture(n int) ([][3]float64, [][3]int) {
	var positions [][3]float64
	idx := func(r, c int) int { return r*(n+1) + c }
	for r := 0; r <= n; r++ {
		for c := 0; c <= n; c++ {
			positions = append(positions, [3]float64{float64(c), float64(r), 0})
		}
	}
	var triangles [][3]int
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			a, b, cI, d := idx(r, c), idx(r, c+1), idx(r+1, c), idx(r+1, c+1)
			triangles = append(triangles, [3]int{a, b, d})
			triangles = append(triangles, [3]int{a, d, cI})
		}
	}
	return positions, triangles
}
