package sep_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/cellgraph/separability/concepts"
	"github.com/cellgraph/separability/sep"
)

// TestCalculate_InputValidation covers the fatal input errors.
func TestCalculate_InputValidation(t *testing.T) {
	good := []sep.Sample{
		constSample(0, 5, 1),
		constSample(1, 5, 0),
	}
	names := []string{"attr"}

	t.Run("no samples", func(t *testing.T) {
		_, err := sep.Calculate(nil, names)
		assert.ErrorIs(t, err, sep.ErrNoSamples)
	})

	t.Run("no attribute names", func(t *testing.T) {
		_, err := sep.Calculate(good, nil)
		assert.ErrorIs(t, err, sep.ErrAttrNameCount)
	})

	t.Run("attribute name count", func(t *testing.T) {
		_, err := sep.Calculate(good, []string{"a", "b"})
		assert.ErrorIs(t, err, sep.ErrAttrNameCount)
	})

	t.Run("importance length", func(t *testing.T) {
		bad := newSample(0, []float64{1}, [][]float64{{0}, {1}})
		_, err := sep.Calculate([]sep.Sample{bad, good[1]}, names)
		assert.ErrorIs(t, err, sep.ErrLengthMismatch)
	})

	t.Run("empty sample", func(t *testing.T) {
		bad := sep.Sample{Label: 0} // no nodes at all
		_, err := sep.Calculate([]sep.Sample{bad, good[1]}, names)
		assert.ErrorIs(t, err, sep.ErrEmptySample)
	})

	t.Run("label gap", func(t *testing.T) {
		gap := []sep.Sample{constSample(0, 5, 1), constSample(2, 5, 0)}
		_, err := sep.Calculate(gap, names)
		assert.ErrorIs(t, err, sep.ErrLabelGap)
	})

	t.Run("negative label", func(t *testing.T) {
		neg := []sep.Sample{constSample(-1, 5, 1), constSample(0, 5, 0)}
		_, err := sep.Calculate(neg, names)
		assert.ErrorIs(t, err, sep.ErrLabelGap)
	})

	t.Run("single class", func(t *testing.T) {
		one := []sep.Sample{constSample(0, 5, 1), constSample(0, 5, 0)}
		_, err := sep.Calculate(one, names)
		assert.ErrorIs(t, err, sep.ErrTooFewClasses)
	})

	t.Run("risk length", func(t *testing.T) {
		_, err := sep.Calculate(good, names, sep.WithRisk([]float64{1}))
		assert.ErrorIs(t, err, sep.ErrRiskLength)
	})

	t.Run("too few nodes for thresholds", func(t *testing.T) {
		tiny := []sep.Sample{constSample(0, 2, 1), constSample(1, 2, 0)}
		_, err := sep.Calculate(tiny, names)
		assert.ErrorIs(t, err, sep.ErrTooFewThresholds)
	})
}

// TestCalculate_CeilingScenario runs the sanity ceiling: one attribute
// valued 1 on every class-0 node and 0 on every class-1 node, uniform
// importance, thresholds {1..5}. Under the weighted distance mode every
// per-threshold distance reaches the 0.99 bin-center maximum, and the
// AUC reaches the maximum achievable under this scoring,
// 0.99·(1 - 1/5).
func TestCalculate_CeilingScenario(t *testing.T) {
	samples := []sep.Sample{
		constSample(0, 6, 1),
		constSample(0, 7, 1),
		constSample(1, 6, 0),
		constSample(1, 8, 0),
	}
	res, err := sep.Calculate(samples, []string{"marker"},
		sep.WithThresholds([]int{1, 2, 3, 4, 5}),
		sep.WithDistanceMode(sep.WeightedBins),
	)
	require.NoError(t, err)

	pair := sep.ClassPair{A: 0, B: 1}
	wantAUC := 0.99 * (1 - 0.2)

	assert.Equal(t, []string{"marker"}, res.Scores.Concepts)
	assert.Equal(t, []sep.ClassPair{pair}, res.Scores.Pairs)
	assert.InDelta(t, wantAUC, res.Scores.Scores[0][0], 1e-12)

	tt := res.BestThresholds[pair]
	require.NotNil(t, tt)
	assert.Equal(t, 1, tt.K[0], "flat maximum keeps the first threshold")
	assert.InDelta(t, 0.99, tt.Dist[0], 1e-12)
}

// TestCalculate_LiteralModeCollapse documents the reference-compatible
// default on the same ceiling data: both classes' density vectors hold
// the same multiset of bin values, so the literal distance - and with it
// the AUC - is zero. This is the §-flagged quirk of submitting density
// vectors as raw samples, preserved by default.
func TestCalculate_LiteralModeCollapse(t *testing.T) {
	samples := []sep.Sample{
		constSample(0, 6, 1),
		constSample(1, 6, 0),
	}
	res, err := sep.Calculate(samples, []string{"marker"},
		sep.WithThresholds([]int{1, 2, 3, 4, 5}),
	)
	require.NoError(t, err)
	assert.Zero(t, res.Scores.Scores[0][0])
}

// TestCalculate_IdenticalDistributions verifies AUC = 0 when both
// classes share the same attribute distribution at every threshold.
func TestCalculate_IdenticalDistributions(t *testing.T) {
	rows := [][]float64{{0.1}, {0.4}, {0.7}, {0.9}, {0.2}, {0.6}}
	imp := []float64{1, 2, 3, 4, 5, 6}
	samples := []sep.Sample{
		newSample(0, imp, rows),
		newSample(1, imp, rows),
	}
	for _, mode := range []sep.DistanceMode{sep.LiteralBins, sep.WeightedBins} {
		res, err := sep.Calculate(samples, []string{"attr"},
			sep.WithDistanceMode(mode))
		require.NoError(t, err)
		assert.Zero(t, res.Scores.Scores[0][0], "mode=%d", mode)
		assert.Zero(t, res.Aggregated.AggAverage, "mode=%d", mode)
	}
}

// TestCalculate_IdentityRollups verifies that under the default identity
// grouping the average and maximum rows are consistent with the raw
// score table, and that uniform risk omits the risk-weighted row while
// Agg equals the plain per-pair sum.
func TestCalculate_IdentityRollups(t *testing.T) {
	samples := []sep.Sample{
		newSample(0, []float64{1, 2, 3, 4, 5}, [][]float64{{1, 0.3}, {1, 0.9}, {1, 0.1}, {1, 0.7}, {1, 0.4}}),
		newSample(1, []float64{5, 4, 3, 2, 1}, [][]float64{{0, 0.8}, {0, 0.2}, {0, 0.5}, {0, 0.6}, {0, 0.9}}),
		newSample(2, []float64{2, 4, 1, 5, 3}, [][]float64{{0.5, 0.1}, {0.5, 0.2}, {0.5, 0.4}, {0.5, 0.3}, {0.5, 0.6}}),
	}
	names := []string{"a", "b"}
	res, err := sep.Calculate(samples, names,
		sep.WithThresholds([]int{1, 2, 3, 4}),
		sep.WithDistanceMode(sep.WeightedBins),
	)
	require.NoError(t, err)

	agg := res.Aggregated
	require.Len(t, agg.Pairs, 3)
	assert.False(t, agg.HasRisk, "uniform default risk omits the weighted row")
	assert.Nil(t, agg.Correlation, "no prior supplied")

	var sumAvg, sumMax float64
	for p := range agg.Pairs {
		s0 := res.Scores.Scores[0][p]
		s1 := res.Scores.Scores[1][p]
		assert.InDelta(t, (s0+s1)/2, agg.Average[p], 1e-12, "pair %d", p)
		wantMax := s0
		if s1 > wantMax {
			wantMax = s1
		}
		assert.InDelta(t, wantMax, agg.Maximum[p], 1e-12, "pair %d", p)
		sumAvg += agg.Average[p]
		sumMax += agg.Maximum[p]
	}
	assert.InDelta(t, sumAvg, agg.AggAverage, 1e-12)
	assert.InDelta(t, sumMax, agg.AggMaximum, 1e-12)
}

// TestCalculate_NonUniformRisk verifies the risk-weighted row appears
// and carries the positional product.
func TestCalculate_NonUniformRisk(t *testing.T) {
	samples := []sep.Sample{
		constSample(0, 6, 1),
		constSample(1, 6, 0),
	}
	res, err := sep.Calculate(samples, []string{"marker"},
		sep.WithThresholds([]int{1, 2, 3}),
		sep.WithDistanceMode(sep.WeightedBins),
		sep.WithRisk([]float64{0.3, 0.7}),
	)
	require.NoError(t, err)

	agg := res.Aggregated
	assert.True(t, agg.HasRisk)
	// one class pair: the value is weighted by the total risk mass
	assert.InDelta(t, agg.AggMaximum*(0.3+0.7), agg.RiskMaximum, 1e-12)
	assert.InDelta(t, agg.AggAverage*(0.3+0.7), agg.RiskAverage, 1e-12)
}

// TestCalculate_ConceptGrouping verifies that a custom grouping reshapes
// the score table rows and fails fast on unknown attributes.
func TestCalculate_ConceptGrouping(t *testing.T) {
	samples := []sep.Sample{
		newSample(0, []float64{1, 2, 3, 4}, [][]float64{{1, 1}, {1, 1}, {1, 1}, {1, 1}}),
		newSample(1, []float64{1, 2, 3, 4}, [][]float64{{0, 0}, {0, 0}, {0, 0}, {0, 0}}),
	}
	names := []string{"a", "b"}

	g := concepts.Grouping{{Name: "both", Attributes: []string{"a", "b"}}}
	res, err := sep.Calculate(samples, names,
		sep.WithThresholds([]int{1, 2, 3}),
		sep.WithDistanceMode(sep.WeightedBins),
		sep.WithGrouping(g),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"both"}, res.Scores.Concepts)

	// both attributes separate identically, so the concept mean equals
	// either attribute's score; with one concept, average == maximum.
	assert.InDelta(t, res.Aggregated.Maximum[0], res.Aggregated.Average[0], 1e-12)
	v, ok := res.Scores.Value("both", sep.ClassPair{A: 0, B: 1})
	assert.True(t, ok)
	assert.InDelta(t, res.Aggregated.Maximum[0], v, 1e-12)

	_, err = sep.Calculate(samples, names,
		sep.WithThresholds([]int{1, 2, 3}),
		sep.WithGrouping(concepts.Grouping{{Name: "g", Attributes: []string{"missing"}}}),
	)
	assert.ErrorIs(t, err, concepts.ErrUnknownAttribute)
}

// TestCalculate_Prior verifies the correlation strategy end to end:
// with two concepts whose scaled scores are {0,1}, a prior ranking them
// the same way correlates at +1.
func TestCalculate_Prior(t *testing.T) {
	// attribute "flat" is identically distributed across classes
	// (score 0); attribute "split" fully separates them.
	samples := []sep.Sample{
		newSample(0, []float64{1, 2, 3, 4, 5, 6}, [][]float64{{0.5, 1}, {0.5, 1}, {0.5, 1}, {0.5, 1}, {0.5, 1}, {0.5, 1}}),
		newSample(1, []float64{1, 2, 3, 4, 5, 6}, [][]float64{{0.5, 0}, {0.5, 0}, {0.5, 0}, {0.5, 0}, {0.5, 0}, {0.5, 0}}),
	}
	names := []string{"flat", "split"}
	prior := mat.NewDense(2, 1, []float64{1, 2}) // ranks split above flat

	res, err := sep.Calculate(samples, names,
		sep.WithThresholds([]int{1, 2, 3, 4, 5}),
		sep.WithDistanceMode(sep.WeightedBins),
		sep.WithPrior(prior),
	)
	require.NoError(t, err)

	require.Len(t, res.Aggregated.Correlation, 1)
	assert.InDelta(t, 1.0, res.Aggregated.Correlation[0], 1e-12)
	assert.InDelta(t, 1.0, res.Aggregated.AggCorrelation, 1e-12)

	wrongShape := mat.NewDense(3, 1, nil)
	_, err = sep.Calculate(samples, names,
		sep.WithThresholds([]int{1, 2, 3, 4, 5}),
		sep.WithPrior(wrongShape),
	)
	assert.ErrorIs(t, err, concepts.ErrPriorShape)
}

// TestCalculate_Pruning verifies that pruning drops exactly the
// misclassified samples: the pruned run must equal a run on the
// correctly classified subset.
func TestCalculate_Pruning(t *testing.T) {
	keep0 := newSample(0, []float64{1, 2, 3, 4, 5}, [][]float64{{0.9}, {0.8}, {0.7}, {0.6}, {0.5}})
	noisy := newSample(0, []float64{5, 4, 3, 2, 1}, [][]float64{{0.0}, {0.1}, {0.0}, {0.1}, {0.0}})
	keep1 := newSample(1, []float64{2, 3, 1, 5, 4}, [][]float64{{0.1}, {0.2}, {0.3}, {0.2}, {0.1}})

	predict := func(samples []sep.Sample) ([]int, error) {
		preds := make([]int, len(samples))
		for i, s := range samples {
			preds[i] = s.Label
		}
		preds[1] = 1 // the noisy class-0 sample is misclassified
		return preds, nil
	}

	ks := sep.WithThresholds([]int{1, 2, 3, 4})
	pruned, err := sep.Calculate([]sep.Sample{keep0, noisy, keep1}, []string{"attr"},
		ks, sep.WithPruning(predict))
	require.NoError(t, err)

	clean, err := sep.Calculate([]sep.Sample{keep0, keep1}, []string{"attr"}, ks)
	require.NoError(t, err)

	assert.Equal(t, clean.Scores, pruned.Scores)
	assert.Equal(t, clean.Aggregated, pruned.Aggregated)
	assert.Equal(t, clean.BestThresholds, pruned.BestThresholds)
}

// TestCalculate_PruningFailures covers the pruning error paths: a class
// emptied by pruning, a predictor wipeout, a predictor error and a
// length mismatch.
func TestCalculate_PruningFailures(t *testing.T) {
	samples := []sep.Sample{
		constSample(0, 5, 1),
		constSample(1, 5, 0),
	}
	names := []string{"attr"}

	t.Run("class emptied", func(t *testing.T) {
		predict := func(in []sep.Sample) ([]int, error) {
			return []int{0, 0}, nil // class 1 always misclassified
		}
		_, err := sep.Calculate(samples, names, sep.WithPruning(predict))
		assert.ErrorIs(t, err, sep.ErrEmptyClass)
	})

	t.Run("everything pruned", func(t *testing.T) {
		predict := func(in []sep.Sample) ([]int, error) {
			return []int{1, 0}, nil
		}
		_, err := sep.Calculate(samples, names, sep.WithPruning(predict))
		assert.ErrorIs(t, err, sep.ErrNoSamples)
	})

	t.Run("predictor error", func(t *testing.T) {
		boom := errors.New("inference backend down")
		predict := func(in []sep.Sample) ([]int, error) { return nil, boom }
		_, err := sep.Calculate(samples, names, sep.WithPruning(predict))
		assert.ErrorIs(t, err, boom)
	})

	t.Run("length mismatch", func(t *testing.T) {
		predict := func(in []sep.Sample) ([]int, error) { return []int{0}, nil }
		_, err := sep.Calculate(samples, names, sep.WithPruning(predict))
		assert.ErrorIs(t, err, sep.ErrLengthMismatch)
	})
}

// TestCalculate_DerivedThresholds verifies the default threshold
// sequence is bounded by the smallest sample.
func TestCalculate_DerivedThresholds(t *testing.T) {
	samples := []sep.Sample{
		newSample(0, []float64{1, 2, 3, 4, 5, 6}, [][]float64{{0.1}, {0.5}, {0.9}, {0.2}, {0.7}, {0.3}}),
		newSample(1, []float64{6, 5, 4, 3, 2, 1, 0}, [][]float64{{0.4}, {0.6}, {0.8}, {0.1}, {0.9}, {0.2}, {0.5}}),
	}
	res, err := sep.Calculate(samples, []string{"attr"})
	require.NoError(t, err)

	// least nodes = 6 → thresholds {1,2,3,4,5}
	for _, tt := range res.BestThresholds {
		assert.GreaterOrEqual(t, tt.K[0], 1)
		assert.LessOrEqual(t, tt.K[0], 5)
	}
}

// TestCalculate_PlotExport verifies the side channel: one PNG per
// attribute lands in the output directory, and scores are identical to
// a run without the side channel.
func TestCalculate_PlotExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	samples := []sep.Sample{
		newSample(0, []float64{1, 2, 3, 4, 5}, [][]float64{{1, 0.2}, {1, 0.4}, {1, 0.6}, {1, 0.8}, {1, 0.9}}),
		newSample(1, []float64{5, 4, 3, 2, 1}, [][]float64{{0, 0.3}, {0, 0.5}, {0, 0.7}, {0, 0.2}, {0, 0.1}}),
	}
	names := []string{"marker A", "ratio/%"}

	withPlots, err := sep.Calculate(samples, names, sep.WithOutputDir(dir))
	require.NoError(t, err)
	for _, want := range []string{"marker A.png", "ratio.png"} {
		_, statErr := os.Stat(filepath.Join(dir, want))
		assert.NoError(t, statErr, want)
	}

	plain, err := sep.Calculate(samples, names)
	require.NoError(t, err)
	assert.Equal(t, plain.Scores, withPlots.Scores, "plots must not influence scores")
}
