package sep

import (
	"gonum.org/v1/gonum/integrate"
)

// CurveSummary condenses every (class pair, attribute) distance curve
// into two facts: the area under the curve and the threshold attaining
// the maximum distance. All fields are indexed [pairIdx][attrIdx].
type CurveSummary struct {
	// AUC is the trapezoidal area under distance vs k/max(k). This is
	// the attribute's separability score for the class pair.
	AUC [][]float64

	// BestK is the first threshold (by configured order) attaining the
	// maximum distance; ties keep the earlier threshold.
	BestK [][]int

	// BestDist is the distance at BestK.
	BestDist [][]float64
}

// SummarizeCurves integrates every distance curve over the normalized
// threshold axis and locates its maximum. Requires at least two
// thresholds (ErrTooFewThresholds) - a single point spans no area.
func SummarizeCurves(cube *DistanceCube) (*CurveSummary, error) {
	cfg := cube.Config()
	if cfg.NumThresholds() < 2 {
		return nil, ErrTooFewThresholds
	}

	// x axis: thresholds normalized by the maximum tested threshold.
	maxK := float64(cfg.MaxThreshold())
	x := make([]float64, cfg.NumThresholds())
	for i, k := range cfg.thresholds {
		x[i] = float64(k) / maxK
	}

	nPairs, nAttrs := cfg.NumPairs(), cube.NumAttributes()
	s := &CurveSummary{
		AUC:      make([][]float64, nPairs),
		BestK:    make([][]int, nPairs),
		BestDist: make([][]float64, nPairs),
	}
	for p := 0; p < nPairs; p++ {
		s.AUC[p] = make([]float64, nAttrs)
		s.BestK[p] = make([]int, nAttrs)
		s.BestDist[p] = make([]float64, nAttrs)
		for a := 0; a < nAttrs; a++ {
			y := cube.Curve(p, a)
			s.AUC[p][a] = integrate.Trapezoidal(x, y)

			bestK, bestDist := cfg.thresholds[0], y[0]
			for i := 1; i < len(y); i++ {
				if y[i] > bestDist {
					bestK, bestDist = cfg.thresholds[i], y[i]
				}
			}
			s.BestK[p][a] = bestK
			s.BestDist[p][a] = bestDist
		}
	}
	return s, nil
}
