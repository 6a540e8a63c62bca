package mesh

import "errors"

var (
	// ErrEmptyMesh indicates an operation that requires a non-empty mesh
	// was called before SetMesh populated one.
	ErrEmptyMesh = errors.New("mesh: mesh is empty")

	// ErrInvalidVertexID indicates a vertex ID is out of range or negative.
	ErrInvalidVertexID = errors.New("mesh: invalid vertex id")

	// ErrInvalidTriangleIndex indicates a triangle index is out of range.
	ErrInvalidTriangleIndex = errors.New("mesh: invalid triangle index")

	// ErrDimensionMismatch indicates SetMesh was given a triangle
	// referencing a vertex index outside the supplied positions slice.
	ErrDimensionMismatch = errors.New("mesh: triangle references out-of-range vertex")
)
