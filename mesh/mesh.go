// Package mesh implements quadric-error-metric triangle mesh
// simplification: incremental edge collapse driven by per-vertex
// quadrics, with lossy and lossless drivers.
package mesh

import "github.com/polymesh/qem/types"

// Mesh holds a triangle mesh plus the adjacency and error-quadric state
// the simplification drivers need, and the configuration they run under.
//
// A Mesh is not safe for concurrent use by multiple goroutines; the
// parallelism inside Simplify is internal to a single call.
type Mesh struct {
	cfg config

	vertices  []vertex
	triangles []triangle
	refs      []types.Ref

	// deletedTriangles counts entries of triangles currently marked
	// deleted; it lets NumTriangles report the live count in O(1)
	// without scanning.
	deletedTriangles int
}

// NewMesh constructs an empty Mesh configured by opts. Call SetMesh to
// populate it before simplifying.
func NewMesh(opts ...Option) *Mesh {
	cfg := newDefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Mesh{cfg: cfg}
}

// NumVertices reports the number of vertices currently stored, including
// any not yet reclaimed by a compaction pass.
func (m *Mesh) NumVertices() int {
	return len(m.vertices)
}

// NumTriangles reports the number of live (non-deleted) triangles.
func (m *Mesh) NumTriangles() int {
	return len(m.triangles) - m.deletedTriangles
}

// NumTriangleSlots reports the total number of triangle slots,
// including any currently marked deleted, so callers (e.g. the
// validation package) can iterate every slot by index.
func (m *Mesh) NumTriangleSlots() int {
	return len(m.triangles)
}
