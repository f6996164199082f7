package sep_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellgraph/separability/sep"
)

// TestNewConfig_PairOrder verifies the fixed class-pair universe:
// combinations of the sorted class set, ascending.
func TestNewConfig_PairOrder(t *testing.T) {
	cfg, err := sep.NewConfig([]int{0, 1, 2}, []int{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.NumClasses())
	assert.Equal(t, []sep.ClassPair{
		{A: 0, B: 1}, {A: 0, B: 2}, {A: 1, B: 2},
	}, cfg.Pairs())
	assert.Equal(t, 3, cfg.NumPairs())
	assert.Equal(t, 3, cfg.MaxThreshold())
	assert.True(t, cfg.HasThreshold(2))
	assert.False(t, cfg.HasThreshold(4))
}

// TestNewConfig_Validation covers every constructor sentinel.
func TestNewConfig_Validation(t *testing.T) {
	_, err := sep.NewConfig([]int{0}, []int{1, 2})
	assert.ErrorIs(t, err, sep.ErrTooFewClasses)

	_, err = sep.NewConfig([]int{0, 2}, []int{1, 2})
	assert.ErrorIs(t, err, sep.ErrLabelGap)

	_, err = sep.NewConfig([]int{1, 2}, []int{1, 2})
	assert.ErrorIs(t, err, sep.ErrLabelGap)

	_, err = sep.NewConfig([]int{0, 1}, []int{5})
	assert.ErrorIs(t, err, sep.ErrTooFewThresholds)

	_, err = sep.NewConfig([]int{0, 1}, []int{3, 2})
	assert.ErrorIs(t, err, sep.ErrBadThresholds)

	_, err = sep.NewConfig([]int{0, 1}, []int{0, 1})
	assert.ErrorIs(t, err, sep.ErrBadThresholds)
}

// TestConfig_AccessorCopies verifies immutability: mutating accessor
// results must not leak back into the configuration.
func TestConfig_AccessorCopies(t *testing.T) {
	cfg, err := sep.NewConfig([]int{0, 1}, []int{1, 2, 3})
	require.NoError(t, err)

	ks := cfg.Thresholds()
	ks[0] = 99
	assert.Equal(t, []int{1, 2, 3}, cfg.Thresholds())

	pairs := cfg.Pairs()
	pairs[0] = sep.ClassPair{A: 7, B: 8}
	assert.Equal(t, []sep.ClassPair{{A: 0, B: 1}}, cfg.Pairs())
}

// TestClassPair_String pins the rendering used in table headers.
func TestClassPair_String(t *testing.T) {
	assert.Equal(t, "(0,2)", sep.ClassPair{A: 0, B: 2}.String())
}

// TestTopKIndices verifies the deterministic selection rule: stable
// ascending sort, last k taken, ties resolved toward higher indices at
// the cutoff, and truncation when k exceeds the vector.
func TestTopKIndices(t *testing.T) {
	imp := []float64{0.5, 0.9, 0.5, 0.1}

	top1 := sep.TopKIndicesForTest(imp, 1)
	assert.Equal(t, []int{1}, top1)

	// k=2: of the tied 0.5s at indices 0 and 2, the stable ascending
	// sort leaves index 2 adjacent to the cutoff.
	top2 := sep.TopKIndicesForTest(imp, 2)
	assert.Equal(t, []int{2, 1}, top2)

	all := sep.TopKIndicesForTest(imp, 10)
	assert.Len(t, all, 4, "k beyond length truncates to all indices")
}

// TestDeriveThresholds verifies the default sequence
// range(1, least, max(1, roundEven(least/100))).
func TestDeriveThresholds(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5}, sep.DeriveThresholdsForTest(6))

	// least=250: 250/100 = 2.5 rounds half-to-even to step 2.
	ks := sep.DeriveThresholdsForTest(250)
	assert.Equal(t, 1, ks[0])
	assert.Equal(t, 3, ks[1])
	assert.Equal(t, 249, ks[len(ks)-1])

	// least=350: 3.5 rounds half-to-even to step 4.
	ks = sep.DeriveThresholdsForTest(350)
	assert.Equal(t, 5, ks[1])
}
