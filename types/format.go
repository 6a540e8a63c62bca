package types

import "fmt"

// String renders a vertex ID as "#N", or "nil" for NilVertex.
//
// Adapted from the teacher's formatting/vertexid_stringer.go pattern of
// a tiny dedicated Stringer per type.
func (v VertexID) String() string {
	if v == NilVertex {
		return "nil"
	}
	return fmt.Sprintf("#%d", int(v))
}

// String renders a Vec3 to 6 significant digits, matching the teacher's
// formatting/point_stringer.go precision.
func (v Vec3) String() string {
	return fmt.Sprintf("(%.6g, %.6g, %.6g)", v.X, v.Y, v.Z)
}

// String renders a Ref as "triangle#tid.corner".
func (r Ref) String() string {
	return fmt.Sprintf("triangle#%d.%d", r.Triangle, r.Corner)
}
