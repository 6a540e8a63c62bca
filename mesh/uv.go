package mesh

import "github.com/polymesh/qem/types"

// updateUVs reinterpolates the texture-coordinate (or other per-corner
// attribute) slot of every triangle incident to v that survives the
// collapse, using the new shared position p as the barycentric query
// point against each triangle's pre-collapse corners (the caller runs
// it before moving any vertex or retargeting any triangle).
func (m *Mesh) updateUVs(v *vertex, p types.Vec3, deleted []bool) {
	for k := 0; k < v.tcount; k++ {
		r := m.refs[v.tstart+k]
		t := &m.triangles[r.Triangle]
		if t.deleted || deleted[k] {
			continue
		}
		p0 := m.vertices[t.v[0]].p
		p1 := m.vertices[t.v[1]].p
		p2 := m.vertices[t.v[2]].p
		t.uvs[r.Corner] = types.InterpolateAttr(p, p0, p1, p2, t.uvs)
	}
}
