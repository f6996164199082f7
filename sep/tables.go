package sep

// ScoreTable is the concept-level separability score table: rows are
// concepts (equal to the raw attribute names under the default identity
// grouping), columns are class pairs, cells are AUC scores.
type ScoreTable struct {
	Concepts []string
	Pairs    []ClassPair
	Scores   [][]float64 // [conceptIdx][pairIdx]
}

// Value looks a score up by concept name and class pair.
func (t *ScoreTable) Value(concept string, pair ClassPair) (float64, bool) {
	ci := -1
	for i, name := range t.Concepts {
		if name == concept {
			ci = i
			break
		}
	}
	if ci < 0 {
		return 0, false
	}
	for j, p := range t.Pairs {
		if p == pair {
			return t.Scores[ci][j], true
		}
	}
	return 0, false
}

// AggregatedTable holds the per-class-pair strategy roll-ups plus the
// synthetic aggregate rows. Correlation is nil unless a prior matrix was
// supplied. The risk-weighted row is present only when the risk vector
// is non-uniform (HasRisk); with uniform risk it would duplicate Agg up
// to a constant and is dropped from the output.
type AggregatedTable struct {
	Pairs []ClassPair

	Average     []float64 // [pairIdx]
	Maximum     []float64 // [pairIdx]
	Correlation []float64 // [pairIdx], nil without prior

	AggAverage     float64
	AggMaximum     float64
	AggCorrelation float64

	HasRisk         bool
	RiskAverage     float64
	RiskMaximum     float64
	RiskCorrelation float64
}

// ThresholdTable reports, per attribute, the first threshold attaining
// the maximum class-pair distance and that distance. Rows align with
// Attributes.
type ThresholdTable struct {
	Attributes []string
	K          []int
	Dist       []float64
}

// Result bundles the three output tables of one Calculate call. Either
// all three are produced or the call fails; no partial results exist.
type Result struct {
	// Scores is the concept × class-pair AUC table.
	Scores *ScoreTable

	// Aggregated is the strategy roll-up table.
	Aggregated *AggregatedTable

	// BestThresholds maps each class pair to its per-attribute
	// best-threshold table.
	BestThresholds map[ClassPair]*ThresholdTable
}
