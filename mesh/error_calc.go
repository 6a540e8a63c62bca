package mesh

import (
	"gonum.org/v1/gonum/floats"

	"github.com/polymesh/qem/types"
)

// calculateError returns the QEM cost of collapsing the edge (i0, i1)
// and the point it would collapse to. When the summed quadric's
// top-left 3x3 block is singular, or both endpoints are border
// vertices, it falls back to testing the two endpoints and their
// midpoint and keeping whichever is cheapest (original_source's
// calculate_error, ties broken in favor of the later candidate).
func (m *Mesh) calculateError(i0, i1 types.VertexID) (float64, types.Vec3) {
	v0, v1 := &m.vertices[i0], &m.vertices[i1]
	q := v0.q.Add(v1.q)
	border := v0.border && v1.border

	if p, ok := q.Solve(); ok && !border {
		return q.VertexError(p.X, p.Y, p.Z), p
	}

	p1, p2 := v0.p, v1.p
	p3 := types.Midpoint(p1, p2)
	pts := [3]types.Vec3{p1, p2, p3}

	errs := [3]float64{
		q.VertexError(p1.X, p1.Y, p1.Z),
		q.VertexError(p2.X, p2.Y, p2.Z),
		q.VertexError(p3.X, p3.Y, p3.Z),
	}
	best := floats.Min(errs[:])

	bestP := pts[0]
	for i, e := range errs {
		if e == best {
			bestP = pts[i]
		}
	}
	return best, bestP
}

// materialEdgePenalty looks up the triangle on the far side of edge
// (i0, i1) from a triangle known to carry material mine, and returns
// the configured penalty between the two materials. An edge with no
// second incident triangle (a mesh boundary) incurs no penalty.
func (m *Mesh) materialEdgePenalty(i0, i1 types.VertexID, mine int) float64 {
	v0 := &m.vertices[i0]
	for k := 0; k < v0.tcount; k++ {
		r := m.refs[v0.tstart+k]
		t := &m.triangles[r.Triangle]
		if t.deleted {
			continue
		}
		other1, other2 := t.otherVertices(r.Corner)
		if other1 == i1 || other2 == i1 {
			if t.material != mine {
				return m.cfg.materialPenalty(mine, t.material)
			}
		}
	}
	return 0
}
