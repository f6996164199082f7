// Package separability quantifies how well per-node attributes separate
// the output classes of a trained graph classifier, using importance
// scores an explainer has already assigned to every node.
//
// 🚀 What does it do?
//
//	Feed it one record per sample - a per-node importance vector, a
//	per-node attribute matrix and a class label - and it scores every
//	attribute's power to tell each pair of classes apart when attention
//	is restricted to the most important nodes:
//	  • multi-threshold top-k pooling into density histograms
//	  • Wasserstein-1 distances between class histograms per attribute
//	  • area under the distance-vs-threshold curve as the final score
//	  • concept grouping with maximum / average / correlation roll-ups
//
// ✨ Why this shape?
//
//   - Deterministic – stable sorts, fixed pair order, first-occurrence
//     tie-breaks; identical inputs give identical tables
//   - Pure in-memory – no I/O on the scoring path; plots are an
//     optional, clearly separated sink
//   - Fail-fast – invalid inputs, empty classes and bad lookups are
//     distinct sentinel errors; there are no partial results
//
// Everything is organized under six subpackages:
//
//	sep/      — the scoring engine and the Calculate entry point
//	concepts/ — concept grouping, YAML config, aggregation strategies
//	minmax/   — min-max rescaling of vectors and matrix columns
//	hist/     — fixed-width density histograms over [0,1]
//	emd/      — 1-D Wasserstein distances (plain and weighted)
//	histplot/ — smoothed per-class histogram PNG export
//
// Start with sep.Calculate; the intermediate stages are exported for
// callers that need histograms, distance cubes or curve summaries
// directly.
//
//	go get github.com/cellgraph/separability
package separability
