package sep

import (
	"fmt"
	"math"
	"sort"

	"github.com/cellgraph/separability/concepts"
	"github.com/cellgraph/separability/histplot"
)

// Calculate runs the full separability pipeline over the supplied
// samples and returns the three output tables. See the package
// documentation for the stage-by-stage description; every stage is also
// exported for callers that need intermediate artifacts.
//
// Inputs are validated up front (fatal, never retried): sample shapes,
// zero-indexed contiguous labels, risk length. Mid-pipeline data
// mismatches (a class left without samples, e.g. after pruning) surface
// as ErrEmptyClass. On any error no partial result is returned.
func Calculate(samples []Sample, attrNames []string, opts ...Option) (*Result, error) {
	o := gatherOptions(opts)

	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	if len(attrNames) == 0 {
		return nil, ErrAttrNameCount
	}
	for i, s := range samples {
		n := s.NodeCount()
		if n == 0 {
			return nil, fmt.Errorf("%w: sample %d", ErrEmptySample, i)
		}
		if len(s.Importance) != n {
			return nil, fmt.Errorf("%w: sample %d has %d importance values for %d nodes",
				ErrLengthMismatch, i, len(s.Importance), n)
		}
		if _, c := s.Attributes.Dims(); c != len(attrNames) {
			return nil, fmt.Errorf("%w: sample %d has %d columns for %d names",
				ErrAttrNameCount, i, c, len(attrNames))
		}
	}

	classes, err := classSet(samples)
	if err != nil {
		return nil, err
	}

	risk := o.risk
	if risk == nil {
		risk = concepts.UniformRisk(len(classes))
	} else if len(risk) != len(classes) {
		return nil, fmt.Errorf("%w: got %d weights for %d classes",
			ErrRiskLength, len(risk), len(classes))
	}

	if o.predictor != nil {
		samples, err = pruneMisclassified(samples, o.predictor)
		if err != nil {
			return nil, err
		}
	}

	ks := o.thresholds
	if ks == nil {
		ks = deriveThresholds(leastNodes(samples))
	}
	cfg, err := NewConfig(classes, ks)
	if err != nil {
		return nil, err
	}

	normalized, err := NormalizeImportance(samples)
	if err != nil {
		return nil, err
	}
	hists, err := BuildHistograms(cfg, normalized, len(attrNames))
	if err != nil {
		return nil, err
	}
	cube, err := ComputeDistances(hists, o.mode, o.parallelism)
	if err != nil {
		return nil, err
	}
	curves, err := SummarizeCurves(cube)
	if err != nil {
		return nil, err
	}

	grouping := o.grouping
	if grouping == nil {
		grouping = concepts.Identity(attrNames)
	}
	agg, err := concepts.NewAggregator(attrNames, curves.AUC, grouping)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Scores:         scoreTable(cfg, agg),
		Aggregated:     nil,
		BestThresholds: thresholdTables(cfg, attrNames, curves),
	}
	res.Aggregated, err = aggregatedTable(cfg, agg, risk, o)
	if err != nil {
		return nil, err
	}

	if o.outputDir != "" {
		kIdx := representativeIndex(cfg)
		if err := histplot.Export(o.outputDir, attrNames, hists.AtThreshold(kIdx)); err != nil {
			return nil, fmt.Errorf("sep: export plots: %w", err)
		}
	}
	return res, nil
}

// classSet extracts the sorted distinct labels and enforces the
// zero-indexed contiguous class invariant.
func classSet(samples []Sample) ([]int, error) {
	seen := make(map[int]struct{}, 4)
	for _, s := range samples {
		if s.Label < 0 {
			return nil, fmt.Errorf("%w: negative label %d", ErrLabelGap, s.Label)
		}
		seen[s.Label] = struct{}{}
	}
	classes := make([]int, 0, len(seen))
	for c := range seen {
		classes = append(classes, c)
	}
	sort.Ints(classes)
	if len(classes) < 2 {
		return nil, ErrTooFewClasses
	}
	for i, c := range classes {
		if c != i {
			return nil, fmt.Errorf("%w: class %d missing", ErrLabelGap, i)
		}
	}
	return classes, nil
}

// pruneMisclassified keeps only samples the predictor labels correctly.
func pruneMisclassified(samples []Sample, predict Predictor) ([]Sample, error) {
	preds, err := predict(samples)
	if err != nil {
		return nil, fmt.Errorf("sep: predict: %w", err)
	}
	if len(preds) != len(samples) {
		return nil, fmt.Errorf("%w: predictor returned %d labels for %d samples",
			ErrLengthMismatch, len(preds), len(samples))
	}
	kept := make([]Sample, 0, len(samples))
	for i, s := range samples {
		if preds[i] == s.Label {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: pruning removed every sample", ErrNoSamples)
	}
	return kept, nil
}

// leastNodes returns the smallest node count across samples.
func leastNodes(samples []Sample) int {
	least := samples[0].NodeCount()
	for _, s := range samples[1:] {
		if n := s.NodeCount(); n < least {
			least = n
		}
	}
	return least
}

// deriveThresholds builds the default sequence 1, 1+step, ... < least,
// step = max(1, roundEven(least/100)). Round-half-to-even keeps parity
// with the reference pipeline's rounding.
func deriveThresholds(least int) []int {
	step := int(math.RoundToEven(float64(least) / thresholdDivisor))
	if step < 1 {
		step = 1
	}
	var ks []int
	for k := 1; k < least; k += step {
		ks = append(ks, k)
	}
	return ks
}

// representativeIndex picks the plot threshold: 25 when tested,
// otherwise the largest tested threshold.
func representativeIndex(cfg Config) int {
	for i, k := range cfg.thresholds {
		if k == representativeThreshold {
			return i
		}
	}
	return cfg.NumThresholds() - 1
}

func scoreTable(cfg Config, agg *concepts.Aggregator) *ScoreTable {
	names := agg.ConceptNames()
	grouped := agg.GroupedScores() // [pair][concept]
	scores := make([][]float64, len(names))
	for c := range names {
		scores[c] = make([]float64, len(grouped))
		for p := range grouped {
			scores[c][p] = grouped[p][c]
		}
	}
	return &ScoreTable{Concepts: names, Pairs: cfg.Pairs(), Scores: scores}
}

func aggregatedTable(cfg Config, agg *concepts.Aggregator, risk []float64, o options) (*AggregatedTable, error) {
	avg := agg.Average(risk)
	max := agg.Maximum(risk)
	tbl := &AggregatedTable{
		Pairs:      cfg.Pairs(),
		Average:    avg.PerPair,
		Maximum:    max.PerPair,
		AggAverage: avg.Agg,
		AggMaximum: max.Agg,
	}
	if o.prior != nil {
		corr, err := agg.Correlation(o.prior, risk)
		if err != nil {
			return nil, err
		}
		tbl.Correlation = corr.PerPair
		tbl.AggCorrelation = corr.Agg
		tbl.RiskCorrelation = corr.AggWithRisk
	}
	if !concepts.IsUniform(risk) {
		tbl.HasRisk = true
		tbl.RiskAverage = avg.AggWithRisk
		tbl.RiskMaximum = max.AggWithRisk
	} else {
		// Uniform risk makes the weighted row a rescaled duplicate of
		// Agg; it is dropped from the output, not recomputed.
		tbl.RiskCorrelation = 0
	}
	return tbl, nil
}

func thresholdTables(cfg Config, attrNames []string, curves *CurveSummary) map[ClassPair]*ThresholdTable {
	tables := make(map[ClassPair]*ThresholdTable, cfg.NumPairs())
	for p, pair := range cfg.pairs {
		tables[pair] = &ThresholdTable{
			Attributes: append([]string(nil), attrNames...),
			K:          curves.BestK[p],
			Dist:       curves.BestDist[p],
		}
	}
	return tables
}
