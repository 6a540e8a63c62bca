package mesh

import "github.com/polymesh/qem/types"

// SetMesh replaces the Mesh's contents with the given positions and
// triangle index list, and rebuilds adjacency and initial quadrics.
//
// positions[i] is the position of vertex i. Each entry of triangleIdx
// must be a [3]int of indices into positions; SetMesh returns
// ErrDimensionMismatch if any index is out of range, and ErrEmptyMesh if
// either slice is empty.
func (m *Mesh) SetMesh(positions [][3]float64, triangleIdx [][3]int) error {
	if len(positions) == 0 || len(triangleIdx) == 0 {
		return ErrEmptyMesh
	}

	vertices := make([]vertex, len(positions))
	for i, p := range positions {
		vertices[i] = vertex{p: types.Vec3{X: p[0], Y: p[1], Z: p[2]}}
	}

	triangles := make([]triangle, len(triangleIdx))
	for i, tri := range triangleIdx {
		for j, idx := range tri {
			if idx < 0 || idx >= len(vertices) {
				return ErrDimensionMismatch
			}
			triangles[i].v[j] = types.VertexID(idx)
		}
		// attr and material start unset; the host opts into UVs and
		// material-aware collapse via SetTriangleUV / SetTriangleMaterial.
		triangles[i].attr = types.AttrNone
		triangles[i].material = -1
	}

	m.vertices = vertices
	m.triangles = triangles
	m.refs = nil
	m.deletedTriangles = 0

	m.updateMesh(0)
	return nil
}

// SetTriangleUV attaches per-corner texture coordinates (or any other
// 3D attribute) to triangle ti, to be reinterpolated across collapses.
func (m *Mesh) SetTriangleUV(ti int, uvs [3]types.Vec3) error {
	if ti < 0 || ti >= len(m.triangles) {
		return ErrInvalidTriangleIndex
	}
	m.triangles[ti].uvs = uvs
	m.triangles[ti].attr |= types.AttrTexCoord
	return nil
}

// SetTriangleMaterial tags triangle ti with a material ID consulted by a
// configured WithMaterialPenalty (SPEC_FULL.md §4.10).
func (m *Mesh) SetTriangleMaterial(ti int, material int) error {
	if ti < 0 || ti >= len(m.triangles) {
		return ErrInvalidTriangleIndex
	}
	m.triangles[ti].material = material
	return nil
}
