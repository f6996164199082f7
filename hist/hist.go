package hist

import "errors"

// NumBins is the fixed number of equally wide bins over [0,1].
const NumBins = 100

// binWidth is the width of one bin.
const binWidth = 1.0 / NumBins

// ErrEmptyInput indicates that no values were submitted for binning.
var ErrEmptyInput = errors.New("hist: input must be non-empty")

// Density bins values into NumBins density bins over [0,1] and returns
// the NumBins-length density vector.
//
// Values outside [0,1] are ignored; a value of exactly 1 lands in the
// last bin. If every submitted value falls outside the range the result
// is the zero vector (nothing to normalize against is treated as an
// all-empty histogram, not an error - the inputs in this module are
// pre-scaled, so this only occurs for NaN-saturated data).
func Density(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	counts := make([]float64, NumBins)
	var counted float64
	for _, v := range values {
		if !(v >= 0 && v <= 1) { // also rejects NaN
			continue
		}
		b := int(v * NumBins)
		if b == NumBins {
			b = NumBins - 1
		}
		counts[b]++
		counted++
	}
	if counted == 0 {
		return counts, nil
	}
	norm := counted * binWidth
	for i := range counts {
		counts[i] /= norm
	}
	return counts, nil
}
