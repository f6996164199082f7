package minmax

import (
	"errors"
	"math"

	"github.com/viterin/vek"
	"gonum.org/v1/gonum/mat"
)

// ErrEmptyInput indicates a nil or zero-length vector (or a zero-sized
// matrix) was submitted for rescaling.
var ErrEmptyInput = errors.New("minmax: input must be non-empty")

// Rescale returns a new slice with x min-max scaled onto [0,1].
// A constant input yields all zeros. The input is never mutated.
func Rescale(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	out := make([]float64, len(x))
	copy(out, x)
	if err := RescaleInPlace(out); err != nil {
		return nil, err
	}
	return out, nil
}

// RescaleInPlace min-max scales x onto [0,1] in place.
// A constant input yields all zeros.
func RescaleInPlace(x []float64) error {
	if len(x) == 0 {
		return ErrEmptyInput
	}
	lo, hi := vek.Min(x), vek.Max(x)
	vek.SubNumber_Inplace(x, lo)
	if span := hi - lo; span != 0 {
		vek.DivNumber_Inplace(x, span)
	}
	return nil
}

// RescaleColumns min-max scales every column of m independently, in place.
// Each column follows the Rescale convention (constant column → zeros).
func RescaleColumns(m *mat.Dense) error {
	if m == nil {
		return ErrEmptyInput
	}
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return ErrEmptyInput
	}
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, m)
		// RescaleInPlace cannot fail here: rows > 0.
		_ = RescaleInPlace(col)
		m.SetCol(j, col)
	}
	return nil
}

// ZeroInf replaces every +Inf cell of m with 0, in place. NaN and -Inf
// are left untouched: only positive infinities are treated as "missing"
// upstream of rescaling.
func ZeroInf(m *mat.Dense) {
	if m == nil {
		return
	}
	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if math.IsInf(m.At(i, j), 1) {
				m.Set(i, j, 0)
			}
		}
	}
}
