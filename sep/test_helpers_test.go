package sep_test

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cellgraph/separability/sep"
)

// newSample builds a sample with one attribute column per value list
// transposed from rows: rows[i] holds node i's attribute values.
func newSample(label int, importance []float64, rows [][]float64) sep.Sample {
	nAttrs := len(rows[0])
	m := mat.NewDense(len(rows), nAttrs, nil)
	for i, row := range rows {
		m.SetRow(i, row)
	}
	return sep.Sample{Importance: importance, Attributes: m, Label: label}
}

// constSample builds a sample of n nodes with uniform importance and a
// single attribute fixed at value for every node.
func constSample(label, n int, value float64) sep.Sample {
	imp := make([]float64, n)
	rows := make([][]float64, n)
	for i := range rows {
		imp[i] = 1
		rows[i] = []float64{value}
	}
	return newSample(label, imp, rows)
}
