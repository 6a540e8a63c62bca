package mesh

import "github.com/polymesh/qem/types"

// triangle is one entry of the mesh's triangle array.
type triangle struct {
	v [3]types.VertexID

	// err[j] is the last-computed QEM error of collapsing edge
	// (v[j], v[(j+1)%3]); err[3] is min(err[0], err[1], err[2]).
	err [4]float64

	// deleted triangles are never read again until the next compaction.
	deleted bool
	// dirty marks a triangle that already participated in a collapse
	// this iteration; it may not be revisited until the next iteration.
	dirty bool

	attr types.Attr
	// n is the face normal, consistent with the cross product of its
	// edges as of the last time it was recomputed.
	n types.Vec3
	// uvs holds a per-corner attribute (texture coordinates, or any
	// other 3D attribute) reinterpolated on collapse when attr has
	// AttrTexCoord set.
	uvs [3]types.Vec3

	material int
}

func (t *triangle) otherVertices(corner int) (types.VertexID, types.VertexID) {
	return t.v[(corner+1)%3], t.v[(corner+2)%3]
}
