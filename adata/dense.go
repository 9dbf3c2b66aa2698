// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adata

import "fmt"

// Dense is a row-major dense matrix of float64 values.
type Dense struct {
	Rows, Cols int
	Values     []float64
}

// NewDense returns a zeroed rows x cols matrix.
func NewDense(rows, cols int) *Dense {
	return &Dense{Rows: rows, Cols: cols, Values: make([]float64, rows*cols)}
}

// NewDenseFrom returns a matrix wrapping the given row-major values.
func NewDenseFrom(rows, cols int, vals []float64) (*Dense, error) {
	if len(vals) != rows*cols {
		return nil, fmt.Errorf("adata: %d values for %dx%d matrix", len(vals), rows, cols)
	}
	return &Dense{Rows: rows, Cols: cols, Values: vals}, nil
}

// At returns the value at row r, column c.
func (dn *Dense) At(r, c int) float64 { return dn.Values[r*dn.Cols+c] }

// Set sets the value at row r, column c.
func (dn *Dense) Set(r, c int, v float64) { dn.Values[r*dn.Cols+c] = v }

// Row returns a view of row r.
func (dn *Dense) Row(r int) []float64 {
	return dn.Values[r*dn.Cols : (r+1)*dn.Cols]
}

// Col returns a copy of column c.
func (dn *Dense) Col(c int) []float64 {
	out := make([]float64, dn.Rows)
	for r := range out {
		out[r] = dn.Values[r*dn.Cols+c]
	}
	return out
}
