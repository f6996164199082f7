// Package histplot renders per-class attribute histograms as PNG files.
//
// It is the optional sink at the end of the scoring pipeline: given the
// per-class density histograms at one representative threshold, Export
// writes one image per attribute, each tracing the (smoothed) density
// of every class across the 100 bins. Nothing here feeds back into the
// numerical results - a failed export is a reporting problem, not a
// scoring problem.
//
// Rendering is done with gonum.org/v1/plot. Smoothing is a centered
// uniform moving average with reflected borders, and file names are the
// attribute names stripped to filesystem-safe characters.
package histplot
