package sep

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cellgraph/separability/concepts"
)

// Defaults - single source of truth for zero-value behavior.
const (
	// DefaultParallelism runs the distance stage sequentially.
	DefaultParallelism = 1

	// representativeThreshold is the preferred k for exported histogram
	// plots; the largest tested threshold substitutes when it was not
	// tested.
	representativeThreshold = 25

	// thresholdDivisor sizes the default threshold step:
	// step = max(1, roundEven(leastNodes/thresholdDivisor)), yielding at
	// most ~thresholdDivisor tested thresholds.
	thresholdDivisor = 100
)

// Option configures Calculate. Options only record intent; all
// validation happens inside Calculate so errors surface through its
// single error return.
type Option func(*options)

type options struct {
	thresholds  []int
	grouping    concepts.Grouping
	risk        []float64
	prior       mat.Matrix
	outputDir   string
	predictor   Predictor
	parallelism int
	mode        DistanceMode
}

func gatherOptions(opts []Option) options {
	o := options{parallelism: DefaultParallelism}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithThresholds overrides the derived top-k threshold sequence. Values
// must be strictly ascending positive integers, at least two of them.
// Thresholds above a sample's node count truncate that sample's
// selection to all of its nodes.
func WithThresholds(ks []int) Option {
	return func(o *options) { o.thresholds = append([]int(nil), ks...) }
}

// WithGrouping replaces the identity concept grouping.
func WithGrouping(g concepts.Grouping) Option {
	return func(o *options) { o.grouping = g }
}

// WithRisk sets per-class risk weights (length = class count). The
// default is uniform 1/n, under which the risk-weighted aggregate row is
// omitted from the output as redundant.
func WithRisk(risk []float64) Option {
	return func(o *options) { o.risk = append([]float64(nil), risk...) }
}

// WithPrior enables the correlation strategy against an external prior
// matrix shaped (concepts × class pairs).
func WithPrior(prior mat.Matrix) Option {
	return func(o *options) { o.prior = prior }
}

// WithOutputDir enables the plot side channel: one smoothed per-class
// histogram PNG per attribute, written into dir (created if missing).
func WithOutputDir(dir string) Option {
	return func(o *options) { o.outputDir = dir }
}

// WithPruning drops misclassified samples before scoring: predict is
// invoked once on the full sample set and samples whose predicted label
// differs from their true label are excluded.
func WithPruning(predict Predictor) Option {
	return func(o *options) { o.predictor = predict }
}

// WithDistanceMode selects how histograms enter the Wasserstein
// distance. The default, LiteralBins, reproduces the reference pipeline;
// WeightedBins computes the distribution-aware distance instead. Scores
// from the two modes are not comparable with each other.
func WithDistanceMode(m DistanceMode) Option {
	return func(o *options) { o.mode = m }
}

// WithParallelism bounds concurrent threshold evaluation in the distance
// stage. Results are bit-identical at any setting; values < 2 run
// sequentially.
func WithParallelism(n int) Option {
	return func(o *options) { o.parallelism = n }
}
