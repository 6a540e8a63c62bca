package mesh

import "github.com/polymesh/qem/types"

// Compact discards deleted triangles and any vertex no longer
// referenced by a live triangle, remapping triangle vertex indices to
// match, resizes both arrays to their new live extents
// (original_source/pyfqmr's compact_mesh), and rebuilds the refs
// adjacency table for the compacted arrays. Simplify and
// SimplifyLossless call this automatically when they finish; it is
// exported so a caller that mutates the mesh by other means (deleting
// triangles directly) can reclaim space on demand.
func (m *Mesh) Compact() {
	for i := range m.vertices {
		m.vertices[i].tcount = 0
	}

	dst := 0
	for i := range m.triangles {
		if m.triangles[i].deleted {
			continue
		}
		m.triangles[dst] = m.triangles[i]
		for _, vid := range m.triangles[dst].v {
			m.vertices[vid].tcount = 1
		}
		dst++
	}
	m.triangles = m.triangles[:dst]
	m.deletedTriangles = 0

	dst = 0
	for i := range m.vertices {
		if m.vertices[i].tcount == 0 {
			continue
		}
		m.vertices[i].tstart = dst
		m.vertices[dst].p = m.vertices[i].p
		dst++
	}

	for i := range m.triangles {
		t := &m.triangles[i]
		for j, vid := range t.v {
			t.v[j] = types.VertexID(m.vertices[vid].tstart)
		}
	}

	m.vertices = m.vertices[:dst]
	m.updateMesh(1)
}
