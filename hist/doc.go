// Package hist builds fixed-width density histograms over the unit
// interval [0,1].
//
// Binning semantics (kept bit-compatible with the NumPy convention so
// that scores remain comparable across implementations):
//
//   - NumBins equally wide bins over [0,1]: bin i covers
//     [i/NumBins, (i+1)/NumBins), except the last bin, which also
//     includes its right edge so that a value of exactly 1 is counted.
//   - Values outside [0,1] (including NaN) are ignored.
//   - Density normalization: every count is divided by
//     (counted values × bin width), so the histogram integrates to 1
//     over [0,1] whenever at least one value was counted.
//
// Counting happens on already-rescaled data in this module, so the
// out-of-range branch is a guard rather than a hot path.
package hist
