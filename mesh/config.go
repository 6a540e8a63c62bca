package mesh

import "github.com/polymesh/qem/types"

// config holds the ambient knobs set at construction time via Option.
// Per-call runParams start from the Default* constants below instead.
type config struct {
	parallelCutover int

	vertexFilter    func(types.Vec3) bool
	materialPenalty func(a, b int) float64

	logger Logger
}

func newDefaultConfig() config {
	return config{
		parallelCutover: 0, // 0 selects parallel.DefaultCutover
		logger:          noopLogger{},
	}
}

// runParams holds the per-call knobs of a single Simplify or
// SimplifyLossless invocation, built from their defaults plus any
// SimplifyOption/LosslessOption passed to that call.
type runParams struct {
	updateRate        int
	aggressiveness    float64
	alpha             float64
	k                 int
	maxIterations     int
	thresholdLossless float64
	lossless          bool
	preserveBorder    bool
	verbose           bool
}

// DefaultUpdateRate is the default value of the "update_rate" parameter.
const DefaultUpdateRate = 5

// DefaultAggressiveness is the default value of the "aggressiveness" parameter.
const DefaultAggressiveness = 7.0

// DefaultAlpha is the default value of the "alpha" parameter.
const DefaultAlpha = 1e-9

// DefaultK is the default value of the "K" parameter.
const DefaultK = 3

// DefaultMaxIterations is the default value of the "max_iterations" parameter
// for the lossy driver.
const DefaultMaxIterations = 100

// DefaultThresholdLossless is the default value of the "threshold_lossless"
// parameter used when the lossy driver is run with lossless semantics.
const DefaultThresholdLossless = 1e-4

func newRunParams() runParams {
	return runParams{
		updateRate:        DefaultUpdateRate,
		aggressiveness:    DefaultAggressiveness,
		alpha:             DefaultAlpha,
		k:                 DefaultK,
		maxIterations:     DefaultMaxIterations,
		thresholdLossless: DefaultThresholdLossless,
	}
}

// losslessParams holds the per-call knobs of a SimplifyLossless
// invocation.
type losslessParams struct {
	epsilon        float64
	maxIterations  int
	preserveBorder bool
	verbose        bool
}

// DefaultLosslessEpsilon is the default "epsilon" parameter of
// SimplifyLossless.
const DefaultLosslessEpsilon = 1e-3

// DefaultLosslessMaxIterations is the default "max_iterations" of
// SimplifyLossless.
const DefaultLosslessMaxIterations = 9999

func newLosslessParams() losslessParams {
	return losslessParams{
		epsilon:       DefaultLosslessEpsilon,
		maxIterations: DefaultLosslessMaxIterations,
	}
}
