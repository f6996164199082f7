// Package minmax provides deterministic min-max rescaling of float64
// vectors and of gonum matrix columns into the unit interval [0,1].
//
// Conventions (shared by every caller in this module):
//
//   - A vector with a non-degenerate range maps linearly onto [0,1]:
//     y = (x - min) / (max - min).
//   - A constant (degenerate-range) vector maps to all zeros. This mirrors
//     the usual scaler convention: the offset is removed and the zero
//     range contributes nothing.
//   - Column rescaling treats every column independently but the whole
//     matrix in one call, so pooled data stays jointly comparable.
//   - +Inf cells can be zeroed ahead of scaling via ZeroInf; NaN and -Inf
//     are passed through untouched (callers own their sanitation policy).
//
// Min/max reduction and the in-place shift/scale arithmetic are backed by
// github.com/viterin/vek.
package minmax
