package emd

import (
	"errors"
	"math"
	"sort"
)

// ErrEmptyInput indicates one or both value sets are empty.
var ErrEmptyInput = errors.New("emd: value sets must be non-empty")

// ErrBadWeights indicates weights that are negative, mismatched in
// length with their values, or summing to zero.
var ErrBadWeights = errors.New("emd: weights must be non-negative, match value count and carry mass")

// Distance returns the first Wasserstein distance between the empirical
// distributions of u and v. Inputs are never mutated.
func Distance(u, v []float64) (float64, error) {
	if len(u) == 0 || len(v) == 0 {
		return 0, ErrEmptyInput
	}

	us := sortedCopy(u)
	vs := sortedCopy(v)

	merged := make([]float64, 0, len(us)+len(vs))
	merged = append(merged, us...)
	merged = append(merged, vs...)
	sort.Float64s(merged)

	nu, nv := float64(len(us)), float64(len(vs))
	var dist float64
	for i := 0; i+1 < len(merged); i++ {
		delta := merged[i+1] - merged[i]
		if delta == 0 {
			continue
		}
		// Rank = number of set elements ≤ merged[i]; the CDF value on
		// the open gap (merged[i], merged[i+1]).
		uCDF := float64(rank(us, merged[i])) / nu
		vCDF := float64(rank(vs, merged[i])) / nv
		dist += math.Abs(uCDF-vCDF) * delta
	}
	return dist, nil
}

// DistanceWeighted returns the first Wasserstein distance between two
// weighted empirical distributions: value u[i] carries mass uw[i], value
// v[j] carries mass vw[j]. Each side's masses are normalized by their
// total, so only relative weights matter. Inputs are never mutated.
func DistanceWeighted(u, v, uw, vw []float64) (float64, error) {
	if len(u) == 0 || len(v) == 0 {
		return 0, ErrEmptyInput
	}
	ud, err := newWeighted(u, uw)
	if err != nil {
		return 0, err
	}
	vd, err := newWeighted(v, vw)
	if err != nil {
		return 0, err
	}

	merged := make([]float64, 0, len(u)+len(v))
	merged = append(merged, ud.values...)
	merged = append(merged, vd.values...)
	sort.Float64s(merged)

	var dist float64
	for i := 0; i+1 < len(merged); i++ {
		delta := merged[i+1] - merged[i]
		if delta == 0 {
			continue
		}
		dist += math.Abs(ud.cdf(merged[i])-vd.cdf(merged[i])) * delta
	}
	return dist, nil
}

// weighted is one side of a weighted distance: values ascending with the
// matching cumulative mass prefix, pre-normalized to total mass 1.
type weighted struct {
	values []float64
	cum    []float64
}

func newWeighted(values, weights []float64) (weighted, error) {
	if len(weights) != len(values) {
		return weighted{}, ErrBadWeights
	}
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]] < values[order[b]]
	})

	w := weighted{
		values: make([]float64, len(values)),
		cum:    make([]float64, len(values)),
	}
	var total float64
	for i, idx := range order {
		if weights[idx] < 0 {
			return weighted{}, ErrBadWeights
		}
		w.values[i] = values[idx]
		total += weights[idx]
		w.cum[i] = total
	}
	if total == 0 {
		return weighted{}, ErrBadWeights
	}
	for i := range w.cum {
		w.cum[i] /= total
	}
	return w, nil
}

// cdf returns the cumulative mass at or below x.
func (w weighted) cdf(x float64) float64 {
	r := rank(w.values, x)
	if r == 0 {
		return 0
	}
	return w.cum[r-1]
}

// rank returns the count of elements in the ascending slice s that are
// less than or equal to x.
func rank(s []float64, x float64) int {
	return sort.Search(len(s), func(i int) bool { return s[i] > x })
}

func sortedCopy(x []float64) []float64 {
	c := make([]float64, len(x))
	copy(c, x)
	sort.Float64s(c)
	return c
}
