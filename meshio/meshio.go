// Package meshio bridges a host's flat, row-major numeric arrays (the
// shape numeric-array bindings and most OBJ/STL loaders hand back) and
// the [][3]float64/[][3]int shapes mesh.SetMesh and mesh.GetMesh use.
// It does no file parsing itself; that stays a host concern (spec.md
// §1's Non-goals).
package meshio

import (
	"errors"
	"fmt"

	"github.com/polymesh/qem/mesh"
)

// ErrFlatLength indicates a flat array's length is not a multiple of
// its element stride (3 for positions/normals, 3 for triangle indices).
var ErrFlatLength = errors.New("meshio: flat array length not a multiple of 3")

// FlattenPositions converts row-major positions into a flat []float64
// of length 3*len(positions), as a host's numeric-array binding would
// expect.
func FlattenPositions(positions [][3]float64) []float64 {
	flat := make([]float64, 0, len(positions)*3)
	for _, p := range positions {
		flat = append(flat, p[0], p[1], p[2])
	}
	return flat
}

// UnflattenPositions is the inverse of FlattenPositions. It returns
// ErrFlatLength if len(flat) is not a multiple of 3.
func UnflattenPositions(flat []float64) ([][3]float64, error) {
	if len(flat)%3 != 0 {
		return nil, ErrFlatLength
	}
	positions := make([][3]float64, len(flat)/3)
	for i := range positions {
		positions[i] = [3]float64{flat[3*i], flat[3*i+1], flat[3*i+2]}
	}
	return positions, nil
}

// FlattenTriangles converts row-major triangle vertex indices into a
// flat []int32 of length 3*len(triangles).
func FlattenTriangles(triangles [][3]int) []int32 {
	flat := make([]int32, 0, len(triangles)*3)
	for _, t := range triangles {
		flat = append(flat, int32(t[0]), int32(t[1]), int32(t[2]))
	}
	return flat
}

// UnflattenTriangles is the inverse of FlattenTriangles. It returns
// ErrFlatLength if len(flat) is not a multiple of 3.
func UnflattenTriangles(flat []int32) ([][3]int, error) {
	if len(flat)%3 != 0 {
		return nil, ErrFlatLength
	}
	triangles := make([][3]int, len(flat)/3)
	for i := range triangles {
		triangles[i] = [3]int{int(flat[3*i]), int(flat[3*i+1]), int(flat[3*i+2])}
	}
	return triangles, nil
}

// Load unflattens flatPositions/flatTriangleIdx and hands them to
// m.SetMesh, so a host holding bare numeric-array buffers (the typical
// shape returned by a cgo/FFI bridge or a columnar OBJ loader) never
// has to build [][3]float64/[][3]int itself.
func Load(m *mesh.Mesh, flatPositions []float64, flatTriangleIdx []int32) error {
	positions, err := UnflattenPositions(flatPositions)
	if err != nil {
		return fmt.Errorf("meshio: positions: %w", err)
	}
	triangles, err := UnflattenTriangles(flatTriangleIdx)
	if err != nil {
		return fmt.Errorf("meshio: triangle indices: %w", err)
	}
	return m.SetMesh(positions, triangles)
}

// Dump flattens the result of m.GetMesh into the same row-major
// []float64/[]int32 shapes Load accepts.
func Dump(m *mesh.Mesh) (flatPositions []float64, flatTriangleIdx []int32, flatNormals []float64) {
	positions, triangles, normals := m.GetMesh()
	return FlattenPositions(positions), FlattenTriangles(triangles), FlattenPositions(normals)
}
