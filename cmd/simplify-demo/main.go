// Command simplify-demo builds a small built-in mesh, runs it through
// quadric error metric simplification, and logs the before/after
// triangle counts.
package main

import (
	"flag"
	"log"

	"github.com/polymesh/qem/mesh"
)

var (
	target  = flag.Int("target", 0, "target triangle count (default: half the input)")
	verbose = flag.Bool("verbose", false, "log driver progress every 5 iterations")
	shape   = flag.String("shape", "icosahedron", "built-in fixture: tetrahedron or icosahedron")
)

func main() {
	flag.Parse()

	positions, triangles := fixture(*shape)

	var ctorOpts []mesh.Option
	var runOpts []mesh.SimplifyOption
	if *verbose {
		ctorOpts = append(ctorOpts, mesh.WithLogger(mesh.StdLogger{}))
		runOpts = append(runOpts, mesh.WithVerbose(true))
	}

	m := mesh.NewMesh(ctorOpts...)
	if err := m.SetMesh(positions, triangles); err != nil {
		log.Fatalf("SetMesh: %v", err)
	}

	before := m.NumTriangles()
	targetCount := *target
	if targetCount <= 0 {
		targetCount = before / 2
	}

	log.Printf("simplifying %d triangles toward target %d", before, targetCount)
	if err := m.Simplify(targetCount, runOpts...); err != nil {
		log.Fatalf("Simplify: %v", err)
	}

	log.Printf("done: %d -> %d triangles", before, m.NumTriangles())
}
