// Package concepts groups attribute-level separability scores into named
// concept scores and rolls them up into per-class-pair summaries.
//
// A Grouping is an ordered list of named concepts, each owning a list of
// member attributes. Groupings need not partition the attribute set:
// overlaps are permitted, and the identity grouping (every attribute its
// own concept) is the default. Order is load-bearing - concept order
// fixes row order in the score table and the pairing against prior
// matrix rows - which is why Grouping is a slice, not a map.
//
// Three roll-up strategies are provided on Aggregator:
//
//   - Maximum:     per class pair, the best concept score.
//   - Average:     per class pair, the mean concept score.
//   - Correlation: per class pair, the Pearson correlation between an
//     external prior column and the column-wise min-max scaled concept
//     scores (gonum stat.Correlation).
//
// Every strategy also reports two scalar roll-ups: Agg, the plain sum
// over class pairs, and AggWithRisk, the risk-weighted sum. Note that
// the risk vector is indexed per class yet applied positionally against
// per-class-pair values; this mirrors the reference scoring pipeline and
// is deliberately not "fixed" here. See Summary for the exact rule.
package concepts
