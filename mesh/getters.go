package mesh

import "github.com/polymesh/qem/types"

// GetMesh exports the current mesh as positions, triangle indices, and
// per-triangle face normals, skipping deleted triangles. Vertex indices
// in the returned triangle list refer to positions as returned (i.e.
// they are not compacted unless the caller has called Compact first).
func (m *Mesh) GetMesh() (positions [][3]float64, triangleIdx [][3]int, normals [][3]float64) {
	positions = make([][3]float64, len(m.vertices))
	for i, v := range m.vertices {
		positions[i] = [3]float64{v.p.X, v.p.Y, v.p.Z}
	}

	triangleIdx = make([][3]int, 0, len(m.triangles)-m.deletedTriangles)
	normals = make([][3]float64, 0, len(m.triangles)-m.deletedTriangles)
	for _, t := range m.triangles {
		if t.deleted {
			continue
		}
		triangleIdx = append(triangleIdx, [3]int{int(t.v[0]), int(t.v[1]), int(t.v[2])})
		normals = append(normals, [3]float64{t.n.X, t.n.Y, t.n.Z})
	}
	return positions, triangleIdx, normals
}

// VertexPosition returns the position of vertex id.
func (m *Mesh) VertexPosition(id types.VertexID) (types.Vec3, error) {
	if !m.validVertex(id) {
		return types.Vec3{}, ErrInvalidVertexID
	}
	return m.vertices[id].p, nil
}

// VertexQuadric returns the accumulated error quadric of vertex id.
func (m *Mesh) VertexQuadric(id types.VertexID) (types.Quadric, error) {
	if !m.validVertex(id) {
		return types.Quadric{}, ErrInvalidVertexID
	}
	return m.vertices[id].q, nil
}

// VertexBorder reports whether vertex id lies on a mesh boundary as of
// the last adjacency rebuild.
func (m *Mesh) VertexBorder(id types.VertexID) (bool, error) {
	if !m.validVertex(id) {
		return false, ErrInvalidVertexID
	}
	return m.vertices[id].border, nil
}

// VertexRefs returns the adjacency entries (triangle index plus corner)
// incident to vertex id as of the last adjacency rebuild, plus any
// appended since by collapses.
func (m *Mesh) VertexRefs(id types.VertexID) ([]types.Ref, error) {
	if !m.validVertex(id) {
		return nil, ErrInvalidVertexID
	}
	v := m.vertices[id]
	out := make([]types.Ref, v.tcount)
	copy(out, m.refs[v.tstart:v.tstart+v.tcount])
	return out, nil
}

// TriangleVertices returns the three vertex IDs of triangle ti.
func (m *Mesh) TriangleVertices(ti int) ([3]types.VertexID, error) {
	if ti < 0 || ti >= len(m.triangles) {
		return [3]types.VertexID{}, ErrInvalidTriangleIndex
	}
	return m.triangles[ti].v, nil
}

// TriangleDeleted reports whether triangle ti is marked deleted.
func (m *Mesh) TriangleDeleted(ti int) (bool, error) {
	if ti < 0 || ti >= len(m.triangles) {
		return false, ErrInvalidTriangleIndex
	}
	return m.triangles[ti].deleted, nil
}

// TriangleNormal returns the last-computed face normal of triangle ti.
func (m *Mesh) TriangleNormal(ti int) (types.Vec3, error) {
	if ti < 0 || ti >= len(m.triangles) {
		return types.Vec3{}, ErrInvalidTriangleIndex
	}
	return m.triangles[ti].n, nil
}

func (m *Mesh) validVertex(id types.VertexID) bool {
	return id.IsValid() && int(id) < len(m.vertices)
}
