// Package validation offers independent, read-only sanity checks over a
// simplified mesh: the properties spec.md §8 expects every driver run to
// uphold, expressed against a narrow MeshProvider seam rather than the
// mesh package's concrete type, so they can be exercised from tests
// without importing mesh's internals.
package validation

import (
	"fmt"
	"math"

	"github.com/polymesh/qem/types"
)

// MeshProvider exposes the minimal read accessors validation needs,
// matching the subset of *mesh.Mesh's exported getters these checks use.
type MeshProvider interface {
	NumVertices() int
	NumTriangles() int
	NumTriangleSlots() int
	VertexPosition(types.VertexID) (types.Vec3, error)
	VertexQuadric(types.VertexID) (types.Quadric, error)
	VertexBorder(types.VertexID) (bool, error)
	VertexRefs(types.VertexID) ([]types.Ref, error)
	TriangleVertices(int) ([3]types.VertexID, error)
	TriangleDeleted(int) (bool, error)
	TriangleNormal(int) (types.Vec3, error)
}

// Config holds tolerances for the checks in this package.
type Config struct {
	// Epsilon bounds floating point comparisons, e.g. normal length
	// deviation from 1.
	Epsilon float64
}

// DefaultConfig returns the tolerances used when a check is called
// without an explicit Config.
func DefaultConfig() Config {
	return Config{Epsilon: 1e-9}
}

// IndexValidity confirms every live triangle's vertex indices fall
// within [0, mesh.NumVertices()) and no triangle is degenerate (repeats
// a vertex).
func IndexValidity(mesh MeshProvider) error {
	n := mesh.NumVertices()
	for ti := 0; ti < mesh.NumTriangleSlots(); ti++ {
		deleted, err := mesh.TriangleDeleted(ti)
		if err != nil {
			return err
		}
		if deleted {
			continue
		}
		v, err := mesh.TriangleVertices(ti)
		if err != nil {
			return err
		}
		for _, id := range v {
			if !id.IsValid() || int(id) >= n {
				return fmt.Errorf("validation: triangle %d references out-of-range vertex %s", ti, id)
			}
		}
		if v[0] == v[1] || v[1] == v[2] || v[0] == v[2] {
			return fmt.Errorf("validation: triangle %d is degenerate (%s, %s, %s)", ti, v[0], v[1], v[2])
		}
	}
	return nil
}

// AdjacencyConsistency confirms the vertex→triangle adjacency table is
// mutually consistent: every ref a live vertex carries names a live
// triangle that actually has that vertex at the named corner, and every
// live triangle incident to a vertex is reachable through that vertex's
// refs (no dangling or missing adjacency entries survive a rebuild).
func AdjacencyConsistency(mesh MeshProvider) error {
	numSlots := mesh.NumTriangleSlots()
	seenBy := make([]map[int]bool, mesh.NumVertices())

	for i := 0; i < mesh.NumVertices(); i++ {
		id := types.VertexID(i)
		refs, err := mesh.VertexRefs(id)
		if err != nil {
			return err
		}
		seen := make(map[int]bool, len(refs))
		for _, r := range refs {
			deleted, err := mesh.TriangleDeleted(r.Triangle)
			if err != nil {
				return err
			}
			if deleted {
				return fmt.Errorf("validation: vertex %d refs deleted triangle %d", i, r.Triangle)
			}
			v, err := mesh.TriangleVertices(r.Triangle)
			if err != nil {
				return err
			}
			if v[r.Corner] != id {
				return fmt.Errorf("validation: vertex %d's ref to triangle %d corner %d names vertex %s instead", i, r.Triangle, r.Corner, v[r.Corner])
			}
			seen[r.Triangle] = true
		}
		seenBy[i] = seen
	}

	for ti := 0; ti < numSlots; ti++ {
		deleted, err := mesh.TriangleDeleted(ti)
		if err != nil {
			return err
		}
		if deleted {
			continue
		}
		v, err := mesh.TriangleVertices(ti)
		if err != nil {
			return err
		}
		for _, id := range v {
			if !id.IsValid() || int(id) >= len(seenBy) {
				continue
			}
			if !seenBy[id][ti] {
				return fmt.Errorf("validation: triangle %d incident to vertex %s missing from its refs", ti, id)
			}
		}
	}
	return nil
}

// QuadricSymmetric confirms every vertex's accumulated quadric has no
// NaN or infinite entries, i.e. the plane accumulation in update_mesh
// never produced an unusable error surface.
func QuadricSymmetric(mesh MeshProvider) error {
	for i := 0; i < mesh.NumVertices(); i++ {
		q, err := mesh.VertexQuadric(types.VertexID(i))
		if err != nil {
			return err
		}
		for _, c := range q {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return fmt.Errorf("validation: vertex %d has a non-finite quadric entry", i)
			}
		}
	}
	return nil
}

// BorderFixedPoints confirms that, given the position each border
// vertex had before simplification (before), it still occupies that
// exact position, i.e. a preserve-border run never moved a boundary
// vertex.
func BorderFixedPoints(mesh MeshProvider, before map[types.VertexID]types.Vec3) error {
	for id, want := range before {
		isBorder, err := mesh.VertexBorder(id)
		if err != nil {
			return err
		}
		if !isBorder {
			continue
		}
		got, err := mesh.VertexPosition(id)
		if err != nil {
			return err
		}
		if got != want {
			return fmt.Errorf("validation: border vertex %s moved from %s to %s", id, want, got)
		}
	}
	return nil
}

// UnitNormals confirms every live triangle's stored face normal has
// unit length within cfg.Epsilon, catching a degenerate triangle or a
// Normalize call over a near-zero vector slipping through a collapse.
func UnitNormals(mesh MeshProvider, cfg Config) error {
	for ti := 0; ti < mesh.NumTriangleSlots(); ti++ {
		deleted, err := mesh.TriangleDeleted(ti)
		if err != nil {
			return err
		}
		if deleted {
			continue
		}
		n, err := mesh.TriangleNormal(ti)
		if err != nil {
			return err
		}
		length := math.Sqrt(n.Dot(n))
		if math.Abs(length-1) > cfg.Epsilon {
			return fmt.Errorf("validation: triangle %d normal has length %g, want 1", ti, length)
		}
	}
	return nil
}
