package mesh

import (
	"math"

	"github.com/polymesh/qem/types"
)

// Simplify reduces the mesh toward targetCount live triangles using the
// lossy driver: a growing per-edge error threshold, re-evaluated every
// updateRate iterations against a freshly rebuilt adjacency, until the
// target is reached or maxIterations passes have run (spec.md §4.7).
// Passing WithThresholdLossless switches to a fixed per-edge error
// ceiling instead of the growing schedule, matching original_source's
// lossless flag on the same driver.
//
// If the mesh already has targetCount or fewer triangles, Simplify
// performs no collapses; it still runs the final Compact, which drops
// any vertex no triangle references. Simplify returns ErrEmptyMesh if
// SetMesh has not populated a mesh yet.
func (m *Mesh) Simplify(targetCount int, opts ...SimplifyOption) error {
	if len(m.triangles) == 0 {
		return ErrEmptyMesh
	}

	p := newRunParams()
	for _, opt := range opts {
		opt(&p)
	}

	for i := range m.triangles {
		m.triangles[i].deleted = false
	}

	triangleCount := len(m.triangles)

	for iteration := 0; iteration < p.maxIterations; iteration++ {
		if m.NumTriangles() <= targetCount {
			break
		}

		// Rebuild early once collapses have grown the refs table past
		// four times the starting triangle count.
		if iteration%p.updateRate == 0 || len(m.refs) > 4*triangleCount {
			m.updateMesh(iteration)
		}

		for i := range m.triangles {
			m.triangles[i].dirty = false
		}

		threshold := p.alpha * math.Pow(float64(iteration+p.k), p.aggressiveness)
		if p.lossless {
			threshold = p.thresholdLossless
		}

		if p.verbose && iteration%5 == 0 {
			m.cfg.logger.Logf("iteration %d - triangles %d threshold %g",
				iteration, m.NumTriangles(), threshold)
		}

		m.collapsePass(threshold, p.preserveBorder, true)

		if m.NumTriangles() <= targetCount {
			break
		}
	}

	m.Compact()
	return nil
}

// SimplifyLossless repeatedly collapses every edge whose error is below
// epsilon, rebuilding adjacency every iteration, until a full pass
// removes nothing or maxIterations passes have run (spec.md §4.7,
// "simplify_lossless"). It is intended for eliminating coplanar
// micro-geometry without a target triangle count. Unlike Simplify, it
// does not apply the link-condition check (linked) before a collapse.
// SimplifyLossless returns ErrEmptyMesh if SetMesh has not populated a
// mesh yet.
func (m *Mesh) SimplifyLossless(opts ...LosslessOption) error {
	if len(m.triangles) == 0 {
		return ErrEmptyMesh
	}

	p := newLosslessParams()
	for _, opt := range opts {
		opt(&p)
	}

	for i := range m.triangles {
		m.triangles[i].deleted = false
	}

	for iteration := 0; iteration < p.maxIterations; iteration++ {
		m.updateMesh(iteration)

		for i := range m.triangles {
			m.triangles[i].dirty = false
		}

		if p.verbose {
			m.cfg.logger.Logf("lossless iteration %d", iteration)
		}

		before := m.deletedTriangles
		m.collapsePass(p.epsilon, p.preserveBorder, false)

		if m.deletedTriangles == before {
			break
		}
	}

	m.Compact()
	return nil
}

// collapsePass runs one sweep over the current triangle list, applying
// a collapse to the first viable edge of every triangle whose minimum
// edge error is within threshold, skipping triangles already deleted or
// dirtied this pass. It does not rebuild adjacency or clear dirty
// flags; callers do that once per iteration, matching
// original_source/pyfqmr's inlined loop body.
func (m *Mesh) collapsePass(threshold float64, preserveBorder bool, checkLinked bool) {
	for i := range m.triangles {
		t := &m.triangles[i]
		if t.err[3] > threshold || t.deleted || t.dirty {
			continue
		}

		for j := 0; j < 3; j++ {
			if t.err[j] >= threshold {
				continue
			}

			i0 := t.v[j]
			i1 := t.v[(j+1)%3]
			v0 := &m.vertices[i0]
			v1 := &m.vertices[i1]

			if !m.collapseAllowed(v0, v1, preserveBorder) {
				continue
			}
			if m.filterBlocks(v0) || m.filterBlocks(v1) {
				continue
			}
			if m.cfg.materialPenalty != nil {
				if t.err[j]+m.materialEdgePenalty(i0, i1, t.material) >= threshold {
					continue
				}
			}

			_, p := m.calculateError(i0, i1)

			deleted0 := make([]bool, v0.tcount)
			deleted1 := make([]bool, v1.tcount)

			if checkLinked && m.linked(i0, i1) {
				continue
			}
			if m.flipped(p, i0, i1, deleted0) {
				continue
			}
			if m.flipped(p, i1, i0, deleted1) {
				continue
			}

			if t.attr.Has(types.AttrTexCoord) {
				m.updateUVs(v0, p, deleted0)
				m.updateUVs(v1, p, deleted1)
			}

			v0.p = p
			v0.q = v1.q.Add(v0.q)
			tstart := len(m.refs)

			m.updateTriangles(i0, v0, deleted0)
			m.updateTriangles(i0, v1, deleted1)

			tcount := len(m.refs) - tstart
			if tcount <= v0.tcount {
				if tcount > 0 {
					copy(m.refs[v0.tstart:v0.tstart+tcount], m.refs[tstart:tstart+tcount])
				}
			} else {
				v0.tstart = tstart
			}
			v0.tcount = tcount

			break
		}
	}
}

// collapseAllowed applies the border policy (spec.md §5.5) to the edge
// (v0, v1): under preserveBorder, an edge touching any border vertex is
// pinned; otherwise an edge is only collapsible when both endpoints
// agree on border status (the "base" policy).
func (m *Mesh) collapseAllowed(v0, v1 *vertex, preserveBorder bool) bool {
	if preserveBorder {
		return !v0.border && !v1.border
	}
	return v0.border == v1.border
}

// filterBlocks reports whether a configured WithVertexFilter rejects v,
// pinning it in place for this collapse attempt (SPEC_FULL.md §4.9).
func (m *Mesh) filterBlocks(v *vertex) bool {
	if m.cfg.vertexFilter == nil {
		return false
	}
	return !m.cfg.vertexFilter(v.p)
}
