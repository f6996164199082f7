package sep

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Sample is one graph instance: a per-node importance vector, a per-node
// attribute matrix (rows = nodes, columns = named attributes) and a
// zero-indexed class label. Samples are owned by the caller and treated
// as read-only by every function in this package.
type Sample struct {
	Importance []float64
	Attributes mat.Matrix
	Label      int
}

// NodeCount returns the number of nodes (attribute matrix rows).
func (s Sample) NodeCount() int {
	if s.Attributes == nil {
		return 0
	}
	r, _ := s.Attributes.Dims()
	return r
}

// Predictor supplies model-predicted labels for misclassification
// pruning. It must return exactly one label per sample, in order.
type Predictor func(samples []Sample) ([]int, error)

// ClassPair is an unordered pair of distinct classes with A < B.
type ClassPair struct {
	A, B int
}

// String renders the pair as "(a,b)".
func (p ClassPair) String() string {
	return fmt.Sprintf("(%d,%d)", p.A, p.B)
}

// Config fixes the threshold sequence, the class set and the derived
// class-pair universe for one scoring run. It is immutable: build it
// with NewConfig and pass it by value into the pipeline stages.
type Config struct {
	thresholds []int
	classes    []int
	pairs      []ClassPair
}

// NewConfig validates and freezes a scoring configuration.
//
// classes must be the full sorted class set {0..n-1} with n ≥ 2;
// thresholds must be ≥ 2 strictly ascending positive integers (one
// point cannot span a curve).
func NewConfig(classes, thresholds []int) (Config, error) {
	if len(classes) < 2 {
		return Config{}, ErrTooFewClasses
	}
	for i, c := range classes {
		if c != i {
			return Config{}, ErrLabelGap
		}
	}
	if len(thresholds) < 2 {
		return Config{}, ErrTooFewThresholds
	}
	prev := 0
	for _, k := range thresholds {
		if k <= prev {
			return Config{}, ErrBadThresholds
		}
		prev = k
	}

	cfg := Config{
		thresholds: append([]int(nil), thresholds...),
		classes:    append([]int(nil), classes...),
	}
	// Fixed pair order: combinations of the sorted class set.
	for a := 0; a < len(classes); a++ {
		for b := a + 1; b < len(classes); b++ {
			cfg.pairs = append(cfg.pairs, ClassPair{A: classes[a], B: classes[b]})
		}
	}
	return cfg, nil
}

// NumClasses returns the class count.
func (c Config) NumClasses() int { return len(c.classes) }

// NumThresholds returns the threshold count.
func (c Config) NumThresholds() int { return len(c.thresholds) }

// NumPairs returns the class-pair count C(n,2).
func (c Config) NumPairs() int { return len(c.pairs) }

// Thresholds returns a copy of the ascending threshold sequence.
func (c Config) Thresholds() []int {
	return append([]int(nil), c.thresholds...)
}

// Pairs returns a copy of the ordered class-pair universe.
func (c Config) Pairs() []ClassPair {
	return append([]ClassPair(nil), c.pairs...)
}

// MaxThreshold returns the largest (last) threshold.
func (c Config) MaxThreshold() int {
	return c.thresholds[len(c.thresholds)-1]
}

// HasThreshold reports whether k is among the configured thresholds.
func (c Config) HasThreshold(k int) bool {
	for _, t := range c.thresholds {
		if t == k {
			return true
		}
	}
	return false
}
