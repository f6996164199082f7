package concepts

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/cellgraph/separability/minmax"
)

// ErrPriorShape is returned when a prior matrix's dimensions do not
// match (concepts × class pairs).
var ErrPriorShape = errors.New("concepts: prior dimensions must be concepts × class pairs")

// ErrScoreShape is returned when the attribute score matrix is ragged or
// its column count disagrees with the attribute name list.
var ErrScoreShape = errors.New("concepts: score matrix shape must be pairs × attributes")

// Summary is one strategy's roll-up across class pairs.
//
// PerPair is indexed in class-pair order. Agg is the plain sum of
// PerPair. AggWithRisk multiplies PerPair positionally with the
// per-class risk vector before summing; with a single class pair the
// pair value is weighted by the total risk mass instead, matching the
// broadcast behavior of the reference pipeline. Risk is conceptually
// per class, so this positional reuse against class pairs is a known
// quirk kept for score compatibility.
type Summary struct {
	PerPair     []float64
	Agg         float64
	AggWithRisk float64
}

// Aggregator holds concept-grouped separability scores for a fixed
// class-pair order. It is immutable after construction.
type Aggregator struct {
	names   []string    // concept names, grouping order
	grouped [][]float64 // [pair][concept]
}

// NewAggregator groups the per-attribute scores (indexed [pair][attribute],
// attribute order given by attrNames) under g. A concept's score is the
// arithmetic mean of its member attributes' scores. Referencing an
// unknown attribute is fatal (ErrUnknownAttribute).
func NewAggregator(attrNames []string, scores [][]float64, g Grouping) (*Aggregator, error) {
	if err := g.Validate(attrNames); err != nil {
		return nil, err
	}
	attrIdx := make(map[string]int, len(attrNames))
	for i, name := range attrNames {
		attrIdx[name] = i
	}

	names := make([]string, len(g))
	grouped := make([][]float64, len(scores))
	for p, row := range scores {
		if len(row) != len(attrNames) {
			return nil, fmt.Errorf("%w: pair %d has %d scores for %d attributes",
				ErrScoreShape, p, len(row), len(attrNames))
		}
		grouped[p] = make([]float64, len(g))
		for c, concept := range g {
			var sum float64
			for _, attr := range concept.Attributes {
				sum += row[attrIdx[attr]]
			}
			grouped[p][c] = sum / float64(len(concept.Attributes))
		}
	}
	for c, concept := range g {
		names[c] = concept.Name
	}
	return &Aggregator{names: names, grouped: grouped}, nil
}

// ConceptNames returns the concept names in grouping order.
func (a *Aggregator) ConceptNames() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}

// GroupedScores returns a copy of the concept-grouped score matrix,
// indexed [pair][concept].
func (a *Aggregator) GroupedScores() [][]float64 {
	out := make([][]float64, len(a.grouped))
	for p, row := range a.grouped {
		out[p] = make([]float64, len(row))
		copy(out[p], row)
	}
	return out
}

// Maximum rolls up the best concept score per class pair.
func (a *Aggregator) Maximum(risk []float64) Summary {
	perPair := make([]float64, len(a.grouped))
	for p, row := range a.grouped {
		best := row[0]
		for _, v := range row[1:] {
			if v > best {
				best = v
			}
		}
		perPair[p] = best
	}
	return summarize(perPair, risk)
}

// Average rolls up the mean concept score per class pair.
func (a *Aggregator) Average(risk []float64) Summary {
	perPair := make([]float64, len(a.grouped))
	for p, row := range a.grouped {
		var sum float64
		for _, v := range row {
			sum += v
		}
		perPair[p] = sum / float64(len(row))
	}
	return summarize(perPair, risk)
}

// Correlation rolls up, per class pair, the Pearson correlation between
// the prior's column and the column-wise min-max scaled concept scores.
// The prior must be (concepts × class pairs). With fewer than two
// concepts the correlation is undefined and reported as NaN, matching
// the reference behavior.
func (a *Aggregator) Correlation(prior mat.Matrix, risk []float64) (Summary, error) {
	nPairs := len(a.grouped)
	nConcepts := len(a.names)
	if r, c := prior.Dims(); r != nConcepts || c != nPairs {
		return Summary{}, fmt.Errorf("%w: got %d×%d, want %d×%d",
			ErrPriorShape, r, c, nConcepts, nPairs)
	}

	perPair := make([]float64, nPairs)
	scaled := make([]float64, nConcepts)
	priorCol := make([]float64, nConcepts)
	for p := 0; p < nPairs; p++ {
		for c := 0; c < nConcepts; c++ {
			scaled[c] = a.grouped[p][c]
			priorCol[c] = prior.At(c, p)
		}
		// Column-wise scaling: each class pair's concept scores are
		// rescaled against their own extremes before correlating.
		_ = minmax.RescaleInPlace(scaled) // nConcepts > 0 by construction
		perPair[p] = stat.Correlation(priorCol, scaled, nil)
	}
	return summarize(perPair, risk), nil
}

// summarize computes the Agg and AggWithRisk scalar rows for one
// strategy's per-pair values.
func summarize(perPair, risk []float64) Summary {
	s := Summary{PerPair: perPair}
	for _, v := range perPair {
		s.Agg += v
	}
	switch {
	case len(perPair) == 1:
		var mass float64
		for _, r := range risk {
			mass += r
		}
		s.AggWithRisk = perPair[0] * mass
	default:
		n := len(perPair)
		if len(risk) < n {
			n = len(risk)
		}
		for i := 0; i < n; i++ {
			s.AggWithRisk += perPair[i] * risk[i]
		}
	}
	return s
}

// UniformRisk builds the default risk vector: n equal weights of 1/n.
func UniformRisk(n int) []float64 {
	risk := make([]float64, n)
	for i := range risk {
		risk[i] = 1 / float64(n)
	}
	return risk
}

// IsUniform reports whether every risk weight equals the first one.
func IsUniform(risk []float64) bool {
	if len(risk) == 0 {
		return true
	}
	for _, r := range risk[1:] {
		if r != risk[0] {
			return false
		}
	}
	return true
}
