// Package parallel provides the one fan-out seam the simplification
// driver uses for its embarrassingly-parallel passes: resetting
// per-vertex adjacency counters and border flags, zeroing per-vertex
// quadrics, computing face normals, accumulating per-vertex quadrics,
// and computing initial edge errors (spec.md §5). None of these write outside their own
// index, so no synchronization beyond waiting for completion is ever
// required.
//
// The fan-out shape (index-indexed loop, parallel above a size
// cutover, sequential below it) is grounded on the teacher's
// mesh/candidates.go, which parallelizes VertexFindCandidates with raw
// goroutines and a sync.WaitGroup. Here the dispatch itself is done
// with golang.org/x/sync/errgroup, since every call site needs only
// "run these n independent closures, propagate the first panic/error,
// wait for all" and none needs a results channel.
package parallel

import "golang.org/x/sync/errgroup"

// DefaultCutover is the element count below which For runs
// sequentially rather than paying goroutine dispatch overhead,
// matching spec.md §5's "~20k elements" guidance.
const DefaultCutover = 20480

// For calls fn(i) for every i in [0, n). When n is at or below cutover
// (use cutover <= 0 to select DefaultCutover), the calls are made
// sequentially in order; above the cutover, the range is split into
// chunks and run concurrently via errgroup, one goroutine per chunk.
//
// fn must not write to any index's data but its own; For makes no
// ordering guarantee among chunks once n exceeds cutover.
func For(n int, cutover int, fn func(i int)) {
	if cutover <= 0 {
		cutover = DefaultCutover
	}
	if n <= cutover {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	workers := numChunks(n)
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		start := start
		end := start + chunk
		if end > n {
			end = n
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				fn(i)
			}
			return nil
		})
	}
	// The closures above never return an error; Wait only blocks for
	// completion.
	_ = g.Wait()
}

func numChunks(n int) int {
	const maxWorkers = 8
	if n < maxWorkers {
		return 1
	}
	return maxWorkers
}
