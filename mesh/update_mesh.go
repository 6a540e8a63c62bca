package mesh

import (
	"gonum.org/v1/gonum/floats"

	"github.com/polymesh/qem/internal/parallel"
	"github.com/polymesh/qem/types"
)

// updateMesh rebuilds adjacency (the refs array and each vertex's
// tstart/tcount slice). At iteration 0 it also identifies border
// vertices, zeroes and re-accumulates per-vertex quadrics, and computes
// every triangle's initial edge errors; at iteration > 0 it first
// discards triangles already marked deleted (original_source's
// update_mesh, "compact triangles" step, guarded by the same
// `iteration > 0` / `iteration == 0` split there). SetMesh and every
// fresh Simplify/SimplifyLossless call pass iteration 0, so border
// identification and quadric initialization rerun on every call rather
// than only once at construction.
func (m *Mesh) updateMesh(iteration int) {
	cutover := m.cfg.parallelCutover

	if iteration > 0 {
		dst := 0
		for i := range m.triangles {
			if !m.triangles[i].deleted {
				m.triangles[dst] = m.triangles[i]
				dst++
			}
		}
		m.triangles = m.triangles[:dst]
		m.deletedTriangles = 0
	}

	numV := len(m.vertices)
	numF := len(m.triangles)

	parallel.For(numV, cutover, func(i int) {
		m.vertices[i].tstart = 0
		m.vertices[i].tcount = 0
	})

	for i := range m.triangles {
		for _, vid := range m.triangles[i].v {
			m.vertices[vid].tcount++
		}
	}

	tstart := 0
	for i := range m.vertices {
		v := &m.vertices[i]
		v.tstart = tstart
		tstart += v.tcount
		v.tcount = 0
	}

	m.refs = make([]types.Ref, numF*3)
	for i := range m.triangles {
		t := &m.triangles[i]
		for j, vid := range t.v {
			v := &m.vertices[vid]
			m.refs[v.tstart+v.tcount] = types.Ref{Triangle: i, Corner: j}
			v.tcount++
		}
	}

	if iteration == 0 {
		m.identifyBorders(cutover)
		m.initQuadrics(cutover)
	}
}

// identifyBorders marks every vertex incident to an edge used by only
// one triangle as a border vertex, by counting, per vertex, how many
// times each neighboring vertex ID appears across its incident
// triangles: an ID appearing exactly once marks a boundary edge.
func (m *Mesh) identifyBorders(cutover int) {
	numV := len(m.vertices)
	parallel.For(numV, cutover, func(i int) {
		m.vertices[i].border = false
	})

	// Sequential: each vertex sets its neighbors' border flags, not its
	// own, so this pass cannot go through parallel.For.
	for i := 0; i < numV; i++ {
		v := &m.vertices[i]
		var ids []types.VertexID
		var counts []int
		for j := 0; j < v.tcount; j++ {
			t := &m.triangles[m.refs[v.tstart+j].Triangle]
			for _, id := range t.v {
				idx := -1
				for k, existing := range ids {
					if existing == id {
						idx = k
						break
					}
				}
				if idx == -1 {
					ids = append(ids, id)
					counts = append(counts, 1)
				} else {
					counts[idx]++
				}
			}
		}
		for j, c := range counts {
			if c == 1 {
				m.vertices[ids[j]].border = true
			}
		}
	}
}

// initQuadrics computes each triangle's face normal, accumulates
// per-vertex plane quadrics from incident triangles, and computes each
// triangle's three edge errors plus their minimum.
func (m *Mesh) initQuadrics(cutover int) {
	numV := len(m.vertices)
	numF := len(m.triangles)

	parallel.For(numV, cutover, func(i int) {
		m.vertices[i].q = types.Quadric{}
	})

	parallel.For(numF, cutover, func(i int) {
		t := &m.triangles[i]
		p0 := m.vertices[t.v[0]].p
		p1 := m.vertices[t.v[1]].p
		p2 := m.vertices[t.v[2]].p
		n := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
		t.n = n
	})

	parallel.For(numV, cutover, func(i int) {
		v := &m.vertices[i]
		for j := 0; j < v.tcount; j++ {
			t := &m.triangles[m.refs[v.tstart+j].Triangle]
			p0 := m.vertices[t.v[0]].p
			v.q.AddInPlace(types.NewPlaneQuadric(t.n.X, t.n.Y, t.n.Z, -t.n.Dot(p0)))
		}
	})

	parallel.For(numF, cutover, func(i int) {
		t := &m.triangles[i]
		for j := 0; j < 3; j++ {
			err, _ := m.calculateError(t.v[j], t.v[(j+1)%3])
			t.err[j] = err
		}
		t.err[3] = floats.Min(t.err[:3])
	})
}
