// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "fmt"

// CSR is a compressed sparse row matrix, sufficient for the
// connectivity matrices built here.
type CSR struct {
	NRows, NCols int

	// RowPtr has length NRows+1; row r occupies [RowPtr[r], RowPtr[r+1]).
	RowPtr []int

	// ColIndex holds the column of each stored value.
	ColIndex []int

	// Values holds the stored values.
	Values []float64
}

// NewCSR builds a CSR matrix from COO triplets. Duplicate entries are
// summed. Returns an error on out-of-range indexes or length mismatch.
func NewCSR(rows, cols []int, vals []float64, nrows, ncols int) (*CSR, error) {
	if len(rows) != len(cols) || len(rows) != len(vals) {
		return nil, fmt.Errorf("stats: csr triplet lengths differ: %d, %d, %d", len(rows), len(cols), len(vals))
	}
	counts := make([]int, nrows+1)
	for i, r := range rows {
		if r < 0 || r >= nrows || cols[i] < 0 || cols[i] >= ncols {
			return nil, fmt.Errorf("stats: csr entry (%d,%d) out of %dx%d", r, cols[i], nrows, ncols)
		}
		counts[r+1]++
	}
	for r := 0; r < nrows; r++ {
		counts[r+1] += counts[r]
	}
	m := &CSR{
		NRows:    nrows,
		NCols:    ncols,
		RowPtr:   counts,
		ColIndex: make([]int, len(rows)),
		Values:   make([]float64, len(rows)),
	}
	next := make([]int, nrows)
	copy(next, m.RowPtr[:nrows])
	for i, r := range rows {
		p := next[r]
		m.ColIndex[p] = cols[i]
		m.Values[p] = vals[i]
		next[r]++
	}
	m.sumDuplicates()
	return m, nil
}

// sumDuplicates merges duplicate (row, col) entries in place.
func (m *CSR) sumDuplicates() {
	nnz := 0
	rowStart := 0
	for r := 0; r < m.NRows; r++ {
		end := m.RowPtr[r+1]
		seen := map[int]int{}
		for p := rowStart; p < end; p++ {
			c := m.ColIndex[p]
			if q, ok := seen[c]; ok {
				m.Values[q] += m.Values[p]
				continue
			}
			m.ColIndex[nnz] = c
			m.Values[nnz] = m.Values[p]
			seen[c] = nnz
			nnz++
		}
		rowStart = end
		m.RowPtr[r+1] = nnz
	}
	m.ColIndex = m.ColIndex[:nnz]
	m.Values = m.Values[:nnz]
}

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return len(m.Values) }

// At returns the value at (r, c), zero when not stored.
func (m *CSR) At(r, c int) float64 {
	for p := m.RowPtr[r]; p < m.RowPtr[r+1]; p++ {
		if m.ColIndex[p] == c {
			return m.Values[p]
		}
	}
	return 0
}

// RowNormalize scales each row to sum to one. Empty rows are left as is.
func (m *CSR) RowNormalize() {
	for r := 0; r < m.NRows; r++ {
		var sum float64
		for p := m.RowPtr[r]; p < m.RowPtr[r+1]; p++ {
			sum += m.Values[p]
		}
		if sum == 0 {
			continue
		}
		for p := m.RowPtr[r]; p < m.RowPtr[r+1]; p++ {
			m.Values[p] /= sum
		}
	}
}

// MulVec returns m * x.
func (m *CSR) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.NCols {
		return nil, fmt.Errorf("stats: csr mulvec: %d values for %d columns", len(x), m.NCols)
	}
	out := make([]float64, m.NRows)
	for r := 0; r < m.NRows; r++ {
		var sum float64
		for p := m.RowPtr[r]; p < m.RowPtr[r+1]; p++ {
			sum += m.Values[p] * x[m.ColIndex[p]]
		}
		out[r] = sum
	}
	return out, nil
}

// TemporalConnectivities builds the row-normalized smoothing matrix
// that connects each observation to its temporal neighborhood: the
// nConvolve/2 observations on each side in the ordering induced by
// the pseudotime values t.
func TemporalConnectivities(t []float64, nConvolve int) (*CSR, error) {
	n := len(t)
	if n == 0 {
		return nil, fmt.Errorf("stats: empty pseudotime ordering")
	}
	half := nConvolve / 2
	order := ArgSort(t)
	var rows, cols []int
	var vals []float64
	for i := 0; i < n; i++ {
		lo := max(0, i-half)
		hi := i + half
		if hi >= n {
			hi = n
		}
		for j := lo; j < hi; j++ {
			rows = append(rows, order[i])
			cols = append(cols, order[j])
			vals = append(vals, 1)
		}
	}
	conn, err := NewCSR(rows, cols, vals, n, n)
	if err != nil {
		return nil, err
	}
	conn.RowNormalize()
	return conn, nil
}
