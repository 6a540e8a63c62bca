package types

import "gonum.org/v1/gonum/spatial/r3"

// Vec3 is a double-precision 3D position or direction.
//
// Arithmetic is delegated to gonum.org/v1/gonum/spatial/r3 rather than
// hand-rolled, so this type is a thin, mesh-flavored wrapper: Vec3 adds
// the barycentric/interpolation helpers the simplification algorithm
// needs on top of r3's vector algebra.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) toR3() r3.Vec {
	return r3.Vec{v.X, v.Y, v.Z}
}

func fromR3(v r3.Vec) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return fromR3(r3.Add(v.toR3(), o.toR3()))
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return fromR3(r3.Sub(v.toR3(), o.toR3()))
}

// Scale returns v scaled by f.
func (v Vec3) Scale(f float64) Vec3 {
	return fromR3(r3.Scale(f, v.toR3()))
}

// Dot returns the dot product v·o.
func (v Vec3) Dot(o Vec3) float64 {
	return r3.Dot(v.toR3(), o.toR3())
}

// Cross returns the cross product v×o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return fromR3(r3.Cross(v.toR3(), o.toR3()))
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return r3.Norm(v.toR3())
}

// Normalize returns v scaled to unit length.
//
// This does not guard against a zero-length v: as in
// original_source/pyfqmr's vec3f::normalize, dividing by zero yields a
// vector of +Inf/NaN components, which will poison any quadric it feeds
// into. This matches source behavior for degenerate (zero-area) input
// triangles; see spec.md §9 and DESIGN.md's Open Question decisions.
func (v Vec3) Normalize() Vec3 {
	return fromR3(r3.Unit(v.toR3()))
}

// Lerp returns the linear interpolation of a and b at parameter t.
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

// Midpoint returns the midpoint of a and b.
func Midpoint(a, b Vec3) Vec3 {
	return Lerp(a, b, 0.5)
}

// Barycentric computes the barycentric coordinates (u, v, w) of point p
// with respect to triangle (a, b, c), such that p ≈ u*a + v*b + w*c.
//
// The denominator is a Gram determinant (d00*d11 - d01*d01) and is not
// guarded against degeneracy: on a collinear or zero-area triangle this
// divides by zero and yields non-finite coordinates. Per spec.md §9,
// callers should tolerate this (the triangle producing it is typically
// about to be marked deleted by the same collapse that triggered the
// interpolation) rather than special-case it here.
func Barycentric(p, a, b, c Vec3) (u, v, w float64) {
	v0 := b.Sub(a)
	v1 := c.Sub(a)
	v2 := p.Sub(a)
	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)
	denom := d00*d11 - d01*d01

	vv := (d11*d20 - d01*d21) / denom
	ww := (d00*d21 - d01*d20) / denom
	uu := 1.0 - vv - ww
	return uu, vv, ww
}

// InterpolateAttr barycentrically interpolates the three corner
// attributes attrs (e.g. UVs) at point p within triangle (a, b, c).
func InterpolateAttr(p, a, b, c Vec3, attrs [3]Vec3) Vec3 {
	u, v, w := Barycentric(p, a, b, c)
	return attrs[0].Scale(u).Add(attrs[1].Scale(v)).Add(attrs[2].Scale(w))
}
