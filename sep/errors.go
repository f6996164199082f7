package sep

import "errors"

// Input-validation errors: detected before any numerical work starts.
var (
	// ErrNoSamples indicates an empty sample collection (possibly the
	// result of misclassification pruning removing every sample).
	ErrNoSamples = errors.New("sep: at least one sample is required")

	// ErrEmptySample indicates a sample with zero nodes.
	ErrEmptySample = errors.New("sep: sample has no nodes")

	// ErrLengthMismatch indicates a sample whose importance vector length
	// differs from its attribute matrix row count, or a predictor that
	// returned the wrong number of labels.
	ErrLengthMismatch = errors.New("sep: importance length must match attribute rows")

	// ErrAttrNameCount indicates an attribute matrix whose column count
	// differs from the attribute name list.
	ErrAttrNameCount = errors.New("sep: attribute columns must match attribute names")

	// ErrLabelGap indicates labels that are not exactly {0..n-1}.
	ErrLabelGap = errors.New("sep: labels must be zero-indexed and contiguous, with every class present")

	// ErrTooFewClasses indicates fewer than two distinct classes, leaving
	// no class pair to compare.
	ErrTooFewClasses = errors.New("sep: at least two classes are required")

	// ErrRiskLength indicates a risk vector whose length differs from the
	// class count.
	ErrRiskLength = errors.New("sep: risk length must equal class count")

	// ErrBadThresholds indicates a threshold sequence that is not strictly
	// ascending positive integers.
	ErrBadThresholds = errors.New("sep: thresholds must be strictly ascending positive integers")

	// ErrTooFewThresholds indicates fewer than two thresholds, leaving no
	// curve to integrate.
	ErrTooFewThresholds = errors.New("sep: at least two thresholds are required")
)

// Mid-pipeline errors: the inputs were well-formed, but the data and the
// configuration disagree, discovered while building distributions.
var (
	// ErrEmptyClass indicates a class with zero eligible samples at
	// histogram-construction time (present in the label range but absent
	// from the data, typically after misclassification pruning).
	ErrEmptyClass = errors.New("sep: class has no samples at histogram construction")
)
