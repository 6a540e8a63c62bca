package main

import "log"

// fixture returns a built-in (positions, triangles) pair for name,
// either "tetrahedron" or "icosahedron".
func fixture(name string) ([][3]float64, [][3]int) {
	switch name {
	case "tetrahedron":
		return tetrahedron()
	case "icosahedron":
		return icosahedron()
	default:
		log.Fatalf("unknown shape %q (want tetrahedron or icosahedron)", name)
		return nil, nil
	}
}

func tetrahedron() ([][3]float64, [][3]int) {
	positions := [][3]float64{
		{1, 1, 1},
		{1, -1, -1},
		{-1, 1, -1},
		{-1, -1, 1},
	}
	triangles := [][3]int{
		{0, 1, 2},
		{0, 3, 1},
		{0, 2, 3},
		{1, 3, 2},
	}
	return positions, triangles
}

// icosahedron returns the 12-vertex, 20-triangle regular icosahedron,
// vertices unnormalized (golden-ratio construction); Simplify does not
// require unit-length input vertices.
func icosahedron() ([][3]float64, [][3]int) {
	const phi = 1.618033988749895

	positions := [][3]float64{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}

	triangles := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
	return positions, triangles
}
