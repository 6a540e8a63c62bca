package mesh

import "github.com/polymesh/qem/types"

// vertex is one entry of the mesh's vertex array.
//
// tstart/tcount slice into the mesh's refs array: refs[tstart:tstart+tcount]
// lists every triangle incident to this vertex as of the last update_mesh
// rebuild, possibly extended by in-place appends from collapses applied
// since (see collapse.go).
type vertex struct {
	p      types.Vec3
	q      types.Quadric
	border bool
	tstart int
	tcount int
}
