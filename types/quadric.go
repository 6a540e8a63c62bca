package types

import "gonum.org/v1/gonum/mat"

// Quadric is a symmetric 4×4 error matrix Q such that xᵀQx, for the
// homogeneous point x = (x, y, z, 1), measures the sum of squared
// distances from x to the set of planes that produced Q.
//
// Q is stored as its 10 independent scalars, in row-major upper
// triangle order:
//
//	[0]=m00 [1]=m01 [2]=m02 [3]=m03
//	        [4]=m11 [5]=m12 [6]=m13
//	                [7]=m22 [8]=m23
//	                        [9]=m33
type Quadric [10]float64

// NewPlaneQuadric builds the quadric of the plane a*x + b*y + c*z + d = 0,
// where (a, b, c) is expected to be a unit normal.
//
// It is the outer product (a, b, c, d)ᵀ·(a, b, c, d).
func NewPlaneQuadric(a, b, c, d float64) Quadric {
	return Quadric{
		a * a, a * b, a * c, a * d,
		b * b, b * c, b * d,
		c * c, c * d,
		d * d,
	}
}

// Add returns q + o, element-wise over the 10 scalars.
func (q Quadric) Add(o Quadric) Quadric {
	var out Quadric
	for i := range q {
		out[i] = q[i] + o[i]
	}
	return out
}

// AddInPlace adds o into q.
func (q *Quadric) AddInPlace(o Quadric) {
	for i := range q {
		q[i] += o[i]
	}
}

// indices into the 10-scalar layout, matching the m00..m33 naming above.
const (
	qM00 = 0
	qM01 = 1
	qM02 = 2
	qM03 = 3
	qM11 = 4
	qM12 = 5
	qM13 = 6
	qM22 = 7
	qM23 = 8
	qM33 = 9
)

// Det3 computes the 3×3 sub-determinant selecting the nine entries at
// the given indices (row-major), mirroring the source's
// SymetricMatrix::det(a11..a33) selector.
func (q Quadric) Det3(i11, i12, i13, i21, i22, i23, i31, i32, i33 int) float64 {
	return q[i11]*q[i22]*q[i33] +
		q[i13]*q[i21]*q[i32] +
		q[i12]*q[i23]*q[i31] -
		q[i13]*q[i22]*q[i31] -
		q[i11]*q[i23]*q[i32] -
		q[i12]*q[i21]*q[i33]
}

// TopLeftDet computes the determinant of Q's top-left 3×3 block
// (m00, m01, m02; m01, m11, m12; m02, m12, m22), used to decide whether
// the quadric's minimizer is uniquely defined.
func (q Quadric) TopLeftDet() float64 {
	return q.Det3(qM00, qM01, qM02, qM01, qM11, qM12, qM02, qM12, qM22)
}

// VertexError evaluates the quadric at the point (x, y, z): xᵀQx.
//
// The sign is algebraic, not clamped to zero; a well-formed quadric
// (sum of squared plane distances) is non-negative at any point, but
// this is not enforced here, matching original_source/pyfqmr's
// vertex_error. See DESIGN.md's Open Question decisions.
func (q Quadric) VertexError(x, y, z float64) float64 {
	return q[qM00]*x*x + 2*q[qM01]*x*y + 2*q[qM02]*x*z + 2*q[qM03]*x +
		q[qM11]*y*y + 2*q[qM12]*y*z + 2*q[qM13]*y +
		q[qM22]*z*z + 2*q[qM23]*z +
		q[qM33]
}

// Solve computes the point that minimizes the quadric's error, using
// the top-left 3×3 block as the system matrix and (m03, m13, m23) as
// the translation term: p* = -M⁻¹·(m03, m13, m23)ᵀ.
//
// ok is false when the top-left block is singular (TopLeftDet() == 0);
// callers must fall back to the three-candidate evaluation described in
// spec.md §4.2 in that case. When the determinant is non-zero but
// gonum's solver rejects the system as ill-conditioned, the point is
// computed with SolveCramer instead.
func (q Quadric) Solve() (p Vec3, ok bool) {
	if q.TopLeftDet() == 0 {
		return Vec3{}, false
	}

	a := mat.NewDense(3, 3, []float64{
		q[qM00], q[qM01], q[qM02],
		q[qM01], q[qM11], q[qM12],
		q[qM02], q[qM12], q[qM22],
	})
	b := mat.NewDense(3, 1, []float64{-q[qM03], -q[qM13], -q[qM23]})

	var x mat.Dense
	if err := x.Solve(a, b); err != nil {
		return q.SolveCramer()
	}

	return Vec3{X: x.At(0, 0), Y: x.At(1, 0), Z: x.At(2, 0)}, true
}

// SolveCramer recomputes the same optimal point as Solve, but via the
// explicit sub-determinant Cramer's-rule formulas from
// original_source/pyfqmr's calculate_error, rather than gonum's general
// linear solver. It serves as a cross-check, and Solve falls back to it
// when gonum's solver rejects the system; Solve is the implementation
// callers should use.
func (q Quadric) SolveCramer() (p Vec3, ok bool) {
	det := q.TopLeftDet()
	if det == 0 {
		return Vec3{}, false
	}
	x := -1 / det * q.Det3(qM01, qM02, qM03, qM11, qM12, qM13, qM12, qM22, qM23)
	y := 1 / det * q.Det3(qM00, qM02, qM03, qM01, qM12, qM13, qM02, qM22, qM23)
	z := -1 / det * q.Det3(qM00, qM01, qM03, qM01, qM11, qM13, qM02, qM12, qM23)
	return Vec3{X: x, Y: y, Z: z}, true
}
