package sep

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cellgraph/separability/emd"
	"github.com/cellgraph/separability/hist"
)

// DistanceMode selects how density histograms are submitted to the
// Wasserstein distance.
//
//   - LiteralBins — the 100-length density vectors themselves are the
//     value sets. This mirrors the reference scoring pipeline bit for
//     bit and is the default; note that it compares the *shapes* of the
//     density vectors, not the underlying distributions (two disjoint
//     point masses compare as identical).
//   - WeightedBins — bin centers are the values, densities the masses:
//     the mathematically meaningful Wasserstein-1 between the binned
//     distributions. Opt in when reference compatibility is not needed.
type DistanceMode int

const (
	// LiteralBins submits raw density vectors as value samples
	// (reference-compatible default).
	LiteralBins DistanceMode = iota

	// WeightedBins submits bin centers weighted by density.
	WeightedBins
)

// DistanceCube is the flat 3-D distance array indexed by
// (threshold index, class-pair index, attribute index), row-major with
// the attribute axis contiguous. Every cell is written exactly once by
// ComputeDistances, which is what makes the parallel fill race-free.
type DistanceCube struct {
	cfg    Config
	nAttrs int
	data   []float64
}

// NewDistanceCube allocates a zeroed cube for cfg and nAttrs attributes.
func NewDistanceCube(cfg Config, nAttrs int) *DistanceCube {
	return &DistanceCube{
		cfg:    cfg,
		nAttrs: nAttrs,
		data:   make([]float64, cfg.NumThresholds()*cfg.NumPairs()*nAttrs),
	}
}

// Config returns the configuration the cube was allocated for.
func (c *DistanceCube) Config() Config { return c.cfg }

// NumAttributes returns the attribute count.
func (c *DistanceCube) NumAttributes() int { return c.nAttrs }

func (c *DistanceCube) offset(kIdx, pairIdx, attrIdx int) int {
	return (kIdx*c.cfg.NumPairs()+pairIdx)*c.nAttrs + attrIdx
}

// At returns the distance at (threshold index, pair index, attribute
// index). Out-of-range indices panic (programmer error).
func (c *DistanceCube) At(kIdx, pairIdx, attrIdx int) float64 {
	return c.data[c.offset(kIdx, pairIdx, attrIdx)]
}

// Set writes one cell. Out-of-range indices panic (programmer error).
func (c *DistanceCube) Set(kIdx, pairIdx, attrIdx int, v float64) {
	c.data[c.offset(kIdx, pairIdx, attrIdx)] = v
}

// Curve copies the distance-vs-threshold curve for one (pair, attribute).
func (c *DistanceCube) Curve(pairIdx, attrIdx int) []float64 {
	out := make([]float64, c.cfg.NumThresholds())
	for kIdx := range out {
		out[kIdx] = c.At(kIdx, pairIdx, attrIdx)
	}
	return out
}

// ComputeDistances fills the cube with the Wasserstein-1 distance
// between every class pair's histograms, per threshold and attribute,
// under the given DistanceMode.
//
// parallelism bounds the number of thresholds evaluated concurrently;
// values < 2 run sequentially. The fill is write-once per cell, so the
// result is identical at any parallelism.
func ComputeDistances(h *Histograms, mode DistanceMode, parallelism int) (*DistanceCube, error) {
	cube := NewDistanceCube(h.cfg, h.nAttrs)
	pairs := h.cfg.pairs

	var centers []float64
	if mode == WeightedBins {
		centers = make([]float64, hist.NumBins)
		for i := range centers {
			centers[i] = (float64(i) + 0.5) / hist.NumBins
		}
	}

	distance := func(a, b []float64) (float64, error) {
		if mode == WeightedBins {
			return emd.DistanceWeighted(centers, centers, a, b)
		}
		return emd.Distance(a, b)
	}

	fill := func(kIdx int) error {
		for p, pair := range pairs {
			for a := 0; a < h.nAttrs; a++ {
				d, err := distance(h.At(kIdx, pair.A, a), h.At(kIdx, pair.B, a))
				if err != nil {
					return fmt.Errorf("sep: distance at k=%d pair=%s attr=%d: %w",
						h.cfg.thresholds[kIdx], pair, a, err)
				}
				cube.Set(kIdx, p, a, d)
			}
		}
		return nil
	}

	if parallelism < 2 {
		for kIdx := 0; kIdx < h.cfg.NumThresholds(); kIdx++ {
			if err := fill(kIdx); err != nil {
				return nil, err
			}
		}
		return cube, nil
	}

	var g errgroup.Group
	g.SetLimit(parallelism)
	for kIdx := 0; kIdx < h.cfg.NumThresholds(); kIdx++ {
		kIdx := kIdx
		g.Go(func() error { return fill(kIdx) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cube, nil
}
