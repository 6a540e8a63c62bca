package mesh

import "github.com/polymesh/qem/types"

// Option configures a Mesh at construction time via NewMesh: knobs that
// describe the mesh's environment (logging sink, parallelism cutover,
// host-supplied predicates) rather than a single simplification run.
type Option func(*config)

// WithLogger overrides the destination of verbose progress reports. The
// default is a no-op sink; use StdLogger to get the historical behavior
// of writing through the standard library's log package.
func WithLogger(l Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithParallelCutover overrides the element-count threshold above which
// update_mesh's independent sub-passes fan out across goroutines (see
// internal/parallel). A value <= 0 selects parallel.DefaultCutover.
func WithParallelCutover(n int) Option {
	return func(c *config) { c.parallelCutover = n }
}

// WithVertexFilter installs a predicate consulted before any vertex may
// be the surviving endpoint of a collapse: a vertex for which filter
// returns false is pinned, as if it were a border vertex under the
// preserve-border policy (SPEC_FULL.md §4.9).
func WithVertexFilter(filter func(p types.Vec3) bool) Option {
	return func(c *config) { c.vertexFilter = filter }
}

// WithMaterialPenalty installs a function returning an additional
// non-negative error term added to the collapse cost of an edge whose
// two incident triangles carry materials a and b (SPEC_FULL.md §4.10).
// It is consulted only when a != b; edges within one material and
// boundary edges get no added cost.
func WithMaterialPenalty(penalty func(a, b int) float64) Option {
	return func(c *config) { c.materialPenalty = penalty }
}

// SimplifyOption configures a single Simplify call.
type SimplifyOption func(*runParams)

// WithUpdateRate sets how many iterations elapse between adjacency/quadric
// rebuilds (spec.md §6, "update_rate"). Values below 1 are clamped to 1.
func WithUpdateRate(n int) SimplifyOption {
	return func(p *runParams) {
		if n < 1 {
			n = 1
		}
		p.updateRate = n
	}
}

// WithAggressiveness sets the exponent of the per-iteration error
// threshold schedule (spec.md §6, "aggressiveness").
func WithAggressiveness(a float64) SimplifyOption {
	return func(p *runParams) { p.aggressiveness = a }
}

// WithAlpha sets the scale factor of the per-iteration error threshold
// schedule (spec.md §6, "alpha").
func WithAlpha(alpha float64) SimplifyOption {
	return func(p *runParams) { p.alpha = alpha }
}

// WithK sets the offset added to the iteration counter before it is
// raised to the aggressiveness power (spec.md §6, "K").
func WithK(k int) SimplifyOption {
	return func(p *runParams) { p.k = k }
}

// WithMaxIterations bounds how many passes Simplify will run before
// giving up on reaching its target (spec.md §6, "max_iterations").
func WithMaxIterations(n int) SimplifyOption {
	return func(p *runParams) { p.maxIterations = n }
}

// WithThresholdLossless runs Simplify with a fixed per-edge error
// ceiling instead of the growing threshold schedule, matching
// original_source's lossless flag on the lossy driver (spec.md §6,
// "threshold_lossless", "lossless").
func WithThresholdLossless(t float64) SimplifyOption {
	return func(p *runParams) {
		p.thresholdLossless = t
		p.lossless = true
	}
}

// WithPreserveBorder switches the border policy so that any edge
// touching a border vertex is pinned, instead of the default base
// policy (an edge collapses only when both endpoints agree on border
// status).
func WithPreserveBorder(preserve bool) SimplifyOption {
	return func(p *runParams) { p.preserveBorder = preserve }
}

// WithVerbose enables progress reporting through the Mesh's configured
// Logger every 5 iterations (spec.md §4.7).
func WithVerbose(v bool) SimplifyOption {
	return func(p *runParams) { p.verbose = v }
}

// LosslessOption configures a single SimplifyLossless call.
type LosslessOption func(*losslessParams)

// WithEpsilon sets the per-edge error ceiling below which an edge is
// eligible for collapse (spec.md §6, "epsilon").
func WithEpsilon(epsilon float64) LosslessOption {
	return func(p *losslessParams) { p.epsilon = epsilon }
}

// WithLosslessMaxIterations bounds how many full adjacency-rebuild
// passes SimplifyLossless will run before giving up on reaching a fixed
// point (spec.md §6, "max_iterations").
func WithLosslessMaxIterations(n int) LosslessOption {
	return func(p *losslessParams) { p.maxIterations = n }
}

// WithLosslessPreserveBorder applies the same border policy as
// WithPreserveBorder, scoped to a SimplifyLossless call.
func WithLosslessPreserveBorder(preserve bool) LosslessOption {
	return func(p *losslessParams) { p.preserveBorder = preserve }
}

// WithLosslessVerbose enables per-iteration progress reporting through
// the Mesh's configured Logger.
func WithLosslessVerbose(v bool) LosslessOption {
	return func(p *losslessParams) { p.verbose = v }
}
