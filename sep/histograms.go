package sep

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/cellgraph/separability/hist"
	"github.com/cellgraph/separability/minmax"
)

// NormalizeImportance min-max scales every sample's importance vector
// independently onto [0,1] (constant vectors map to zeros). The input
// samples are not mutated; the returned samples share attribute matrices
// with the originals but carry fresh importance slices.
func NormalizeImportance(samples []Sample) ([]Sample, error) {
	out := make([]Sample, len(samples))
	for i, s := range samples {
		scaled, err := minmax.Rescale(s.Importance)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		out[i] = Sample{Importance: scaled, Attributes: s.Attributes, Label: s.Label}
	}
	return out, nil
}

// topKIndices returns the indices of the k highest-importance entries.
// Selection is deterministic: indices are stable-sorted by ascending
// importance (ties keep the lower index earlier) and the last k are
// taken, so among tied values the highest-index nodes win the cutoff.
// If k exceeds the vector length the selection truncates to all indices.
func topKIndices(importance []float64, k int) []int {
	idx := make([]int, len(importance))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return importance[idx[a]] < importance[idx[b]]
	})
	if k > len(idx) {
		k = len(idx)
	}
	return idx[len(idx)-k:]
}

// Histograms holds one density histogram per (threshold, class,
// attribute) triple. Bins are hist.NumBins wide over [0,1].
type Histograms struct {
	cfg    Config
	nAttrs int
	bins   [][][][]float64 // [thresholdIdx][class][attribute] → density bins
}

// Config returns the configuration the histograms were built under.
func (h *Histograms) Config() Config { return h.cfg }

// NumAttributes returns the attribute count.
func (h *Histograms) NumAttributes() int { return h.nAttrs }

// At returns the density bins for (threshold index, class, attribute).
// The returned slice is shared; callers must not mutate it.
func (h *Histograms) At(kIdx, class, attr int) []float64 {
	return h.bins[kIdx][class][attr]
}

// AtThreshold returns all per-class, per-attribute bins at one threshold
// index, shaped [class][attribute] → bins. Shared storage, read-only.
func (h *Histograms) AtThreshold(kIdx int) [][][]float64 {
	return h.bins[kIdx]
}

// BuildHistograms runs the top-k pooling stage for every configured
// threshold:
//
//  1. per sample, select the k highest-importance node rows;
//  2. concatenate the selections of ALL samples (classes mixed), zero
//     +Inf cells, and min-max scale the pool per attribute column - the
//     joint scaling keeps scores comparable across classes;
//  3. regroup the scaled rows by class label;
//  4. bin each class × attribute value set into a density histogram.
//
// Samples must carry normalized importance (NormalizeImportance).
// A class with zero samples is fatal: ErrEmptyClass.
func BuildHistograms(cfg Config, samples []Sample, nAttrs int) (*Histograms, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	if nAttrs < 1 {
		return nil, ErrAttrNameCount
	}

	h := &Histograms{
		cfg:    cfg,
		nAttrs: nAttrs,
		bins:   make([][][][]float64, cfg.NumThresholds()),
	}

	nClasses := cfg.NumClasses()
	for kIdx, k := range cfg.thresholds {
		// Selection pass: record each sample's chosen rows so the pool
		// can be regrouped exactly, even when k truncates short samples.
		selected := make([][]int, len(samples))
		total := 0
		for i, s := range samples {
			selected[i] = topKIndices(s.Importance, k)
			total += len(selected[i])
		}

		pool := mat.NewDense(total, nAttrs, nil)
		row := 0
		for i, s := range samples {
			for _, nodeIdx := range selected[i] {
				for j := 0; j < nAttrs; j++ {
					pool.Set(row, j, s.Attributes.At(nodeIdx, j))
				}
				row++
			}
		}
		minmax.ZeroInf(pool)
		if err := minmax.RescaleColumns(pool); err != nil {
			return nil, fmt.Errorf("sep: scale pool at k=%d: %w", k, err)
		}

		// Regroup pooled rows by class, per attribute column.
		values := make([][][]float64, nClasses) // [class][attr] → values
		for t := 0; t < nClasses; t++ {
			values[t] = make([][]float64, nAttrs)
		}
		row = 0
		for i, s := range samples {
			for range selected[i] {
				for j := 0; j < nAttrs; j++ {
					values[s.Label][j] = append(values[s.Label][j], pool.At(row, j))
				}
				row++
			}
		}

		h.bins[kIdx] = make([][][]float64, nClasses)
		for t := 0; t < nClasses; t++ {
			if len(values[t][0]) == 0 {
				return nil, fmt.Errorf("%w: class %d at k=%d", ErrEmptyClass, t, k)
			}
			h.bins[kIdx][t] = make([][]float64, nAttrs)
			for j := 0; j < nAttrs; j++ {
				d, err := hist.Density(values[t][j])
				if err != nil {
					return nil, fmt.Errorf("sep: class %d attribute %d at k=%d: %w", t, j, k, err)
				}
				h.bins[kIdx][t][j] = d
			}
		}
	}
	return h, nil
}
