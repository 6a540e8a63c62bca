package mesh

import (
	"gonum.org/v1/gonum/floats"

	"github.com/polymesh/qem/types"
)

// linked reports whether collapsing edge (i0, i1) would violate the
// link condition, i.e. produce a non-manifold mesh. It computes, for
// each endpoint, the set of neighboring vertices (Lk_v) and the set of
// unordered opposite-edges (Lk_e) across its incident (non-deleted) triangles,
// plus the set of vertices that close a triangle on the shared edge
// itself (Lk_e_v), then checks:
//
//	(Lk_v0 ∩ Lk_v1) ⊆ Lk_e_v   and   Lk_e0 ∩ Lk_e1 = ∅
//
// returning true (not safe to collapse) when either fails.
func (m *Mesh) linked(i0, i1 types.VertexID) bool {
	type edge struct{ a, b types.VertexID }
	key := func(a, b types.VertexID) edge {
		if b < a {
			a, b = b, a
		}
		return edge{a, b}
	}

	v0, v1 := &m.vertices[i0], &m.vertices[i1]
	lkV0 := make(map[types.VertexID]struct{})
	lkV1 := make(map[types.VertexID]struct{})
	lkE := make(map[types.VertexID]struct{})
	lkE0 := make(map[edge]struct{})
	lkE1 := make(map[edge]struct{})

	for k := 0; k < v0.tcount; k++ {
		r := m.refs[v0.tstart+k]
		t := &m.triangles[r.Triangle]
		if t.deleted {
			continue
		}
		other1, other2 := t.otherVertices(r.Corner)
		if other1 == i1 {
			lkE[other2] = struct{}{}
		}
		if other2 == i1 {
			lkE[other1] = struct{}{}
		}
		lkV0[other1] = struct{}{}
		lkV0[other2] = struct{}{}
		lkE0[key(other1, other2)] = struct{}{}
	}

	for k := 0; k < v1.tcount; k++ {
		r := m.refs[v1.tstart+k]
		t := &m.triangles[r.Triangle]
		if t.deleted {
			continue
		}
		other1, other2 := t.otherVertices(r.Corner)
		if other1 == i0 {
			lkE[other2] = struct{}{}
		}
		if other2 == i0 {
			lkE[other1] = struct{}{}
		}
		lkV1[other1] = struct{}{}
		lkV1[other2] = struct{}{}
		lkE1[key(other1, other2)] = struct{}{}
	}

	smallerV, largerV := lkV0, lkV1
	if len(lkV1) < len(lkV0) {
		smallerV, largerV = lkV1, lkV0
	}
	for v := range smallerV {
		if _, ok := largerV[v]; ok {
			if _, ok := lkE[v]; !ok {
				return true
			}
		}
	}

	smallerE, largerE := lkE0, lkE1
	if len(lkE1) < len(lkE0) {
		smallerE, largerE = lkE1, lkE0
	}
	for e := range smallerE {
		if _, ok := largerE[e]; ok {
			return true
		}
	}

	return false
}

// flipped reports whether collapsing the edge from i0 to i1 (moving i0
// to point p) would invert or degenerate any triangle incident to i0
// other than the ones being removed along with the edge. As a side
// effect it marks, in deleted (sized to v0.tcount), which of i0's
// incident triangle slots are being removed (those containing i1) so
// the caller can skip them in updateTriangles; deleted's contents are
// only meaningful when flipped returns false.
func (m *Mesh) flipped(p types.Vec3, i0, i1 types.VertexID, deleted []bool) bool {
	v0 := &m.vertices[i0]
	for k := 0; k < v0.tcount; k++ {
		r := m.refs[v0.tstart+k]
		t := &m.triangles[r.Triangle]
		if t.deleted {
			continue
		}
		id1, id2 := t.otherVertices(r.Corner)

		if id1 == i1 || id2 == i1 {
			deleted[k] = true
			continue
		}
		deleted[k] = false

		d1 := m.vertices[id1].p.Sub(p).Normalize()
		d2 := m.vertices[id2].p.Sub(p).Normalize()
		if abs(d1.Dot(d2)) > 0.999 {
			return true
		}
		n := d1.Cross(d2).Normalize()
		if n.Dot(t.n) < 0.2 {
			return true
		}
	}
	return false
}

// updateTriangles retargets every triangle incident to v, other than
// the ones flagged for deletion, to reference i0 instead, recomputes
// their edge errors, marks them dirty, and appends their refs under the
// growing tail of the refs array. Deleted entries are instead marked
// triangle-deleted and counted.
func (m *Mesh) updateTriangles(i0 types.VertexID, v *vertex, deleted []bool) {
	for k := 0; k < v.tcount; k++ {
		r := m.refs[v.tstart+k]
		t := &m.triangles[r.Triangle]
		if t.deleted {
			continue
		}
		if deleted[k] {
			t.deleted = true
			m.deletedTriangles++
			continue
		}
		t.v[r.Corner] = i0
		t.dirty = true
		for j := 0; j < 3; j++ {
			err, _ := m.calculateError(t.v[j], t.v[(j+1)%3])
			t.err[j] = err
		}
		t.err[3] = floats.Min(t.err[:3])
		m.refs = append(m.refs, r)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
