// Package sep scores how well per-node attributes separate the output
// classes of a graph classifier, restricted to the nodes an explainer
// marked as important.
//
// 🚀 What does it compute?
//
//	For a collection of samples - each carrying a per-node importance
//	vector, a per-node attribute matrix and a class label - the engine
//	answers: "looking only at the top-k most important nodes, how
//	differently is attribute X distributed between class a and class b?"
//
// Pipeline (each stage a pure function over the previous one):
//
//  1. NormalizeImportance — per-sample min-max scaling of importance.
//  2. BuildHistograms     — per threshold k: pool the top-k rows of every
//     sample, jointly rescale, regroup by class, bin into 100-bin density
//     histograms per (threshold, class, attribute).
//  3. ComputeDistances    — Wasserstein-1 distance between every class
//     pair's histograms, per attribute, into a (threshold × pair ×
//     attribute) DistanceCube.
//  4. SummarizeCurves     — trapezoidal area under each distance-vs-k
//     curve (the separability score) plus the first threshold attaining
//     the maximum distance.
//  5. concepts.Aggregator — concept grouping and maximum / average /
//     correlation roll-ups, optionally risk-weighted.
//
// Calculate drives the full pipeline from caller-supplied in-memory
// samples and returns three tables: the concept score table, the
// aggregated strategy table and the per-class-pair best-threshold table.
// An optional output directory receives one smoothed per-class histogram
// plot per attribute (side effect only, never feeds back into scores).
//
// ⚙️ Usage:
//
//	res, err := sep.Calculate(samples, attrNames,
//	    sep.WithRisk([]float64{0.2, 0.8}),
//	    sep.WithOutputDir("plots"),
//	)
//
// Determinism: fixed class-pair order (ascending pair combinations),
// stable top-k tie-breaks (lower node index wins), first-occurrence
// argmax tie-breaks, no map iteration on any score path. Re-running on
// identical inputs yields identical tables, with or without
// WithParallelism.
package sep
