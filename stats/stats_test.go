// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinspace(t *testing.T) {
	ls := Linspace(0, 1, 5)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, ls)
	assert.Equal(t, []float64{3}, Linspace(3, 9, 1))
}

func TestArgSort(t *testing.T) {
	assert.Equal(t, []int{2, 0, 3, 1}, ArgSort([]float64{1.5, 9, -2, 3}))
}

func TestPercentile(t *testing.T) {
	vals := []float64{4, 1, 3, 2} // sorted: 1 2 3 4
	assert.InDelta(t, 1, Percentile(vals, 0), 1e-12)
	assert.InDelta(t, 4, Percentile(vals, 100), 1e-12)
	assert.InDelta(t, 2.5, Percentile(vals, 50), 1e-12)
	assert.InDelta(t, 1.75, Percentile(vals, 25), 1e-12)
}

func TestClipPercentile(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	vals := make([]float64, 1000)
	for i := range vals {
		vals[i] = rng.NormFloat64()
	}
	clipped := ClipPercentile(vals, []float64{2, 98})
	lo, hi := MinMax(clipped)

	// at each tail, at least 2% of the original values must remain
	// unclipped, i.e. no more than 2% may hit the bound from outside
	nlo, nhi := 0, 0
	for _, v := range vals {
		if v < lo {
			nlo++
		}
		if v > hi {
			nhi++
		}
	}
	n := len(vals)
	assert.LessOrEqual(t, nlo, n*2/100+1)
	assert.LessOrEqual(t, nhi, n*2/100+1)
	assert.GreaterOrEqual(t, n-nlo, n*2/100)
	assert.GreaterOrEqual(t, n-nhi, n*2/100)
	for _, v := range clipped {
		assert.GreaterOrEqual(t, v, lo)
		assert.LessOrEqual(t, v, hi)
	}
}

func TestExpandPercentiles(t *testing.T) {
	assert.Equal(t, []float64{5, 100}, ExpandPercentiles([]float64{5}))
	assert.Equal(t, []float64{0, 95}, ExpandPercentiles([]float64{95}))
	assert.Equal(t, []float64{2, 98}, ExpandPercentiles([]float64{2, 98}))
}

func TestKDE(t *testing.T) {
	_, err := NewKDE([]float64{1})
	assert.Error(t, err)
	_, err = NewKDE([]float64{2, 2, 2})
	assert.Error(t, err)

	rng := rand.New(rand.NewSource(7))
	data := make([]float64, 500)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	kd, err := NewKDE(data)
	require.NoError(t, err)

	// density should peak near zero and integrate to roughly one
	grid := Linspace(-5, 5, 201)
	dens := kd.Evaluate(grid)
	var integral float64
	for _, d := range dens {
		integral += d * 0.05
	}
	assert.InDelta(t, 1, integral, 0.05)
	assert.Greater(t, dens[100], dens[20])
	assert.Greater(t, dens[100], dens[180])
}

func TestKDE2D(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	xs := make([]float64, 300)
	ys := make([]float64, 300)
	for i := range xs {
		xs[i] = rng.NormFloat64()
		ys[i] = 0.5*xs[i] + rng.NormFloat64()
	}
	kd, err := NewKDE2D(xs, ys)
	require.NoError(t, err)
	dens := kd.Evaluate([]float64{0, 4}, []float64{0, -4})
	assert.Greater(t, dens[0], dens[1])
}

func TestCSR(t *testing.T) {
	// duplicates sum
	m, err := NewCSR([]int{0, 0, 1}, []int{1, 1, 0}, []float64{1, 2, 5}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, m.NNZ())
	assert.Equal(t, 3.0, m.At(0, 1))
	assert.Equal(t, 5.0, m.At(1, 0))
	assert.Equal(t, 0.0, m.At(0, 0))

	m.RowNormalize()
	assert.Equal(t, 1.0, m.At(0, 1))

	mv, err := m.MulVec([]float64{2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2}, mv)

	_, err = NewCSR([]int{5}, []int{0}, []float64{1}, 2, 2)
	assert.Error(t, err)
}

func TestTemporalConnectivities(t *testing.T) {
	// pseudotime already ordered: windows are contiguous index ranges
	tk := []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5}
	conn, err := TemporalConnectivities(tk, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, conn.NRows)

	// every row sums to one
	for r := 0; r < conn.NRows; r++ {
		var sum float64
		for p := conn.RowPtr[r]; p < conn.RowPtr[r+1]; p++ {
			sum += conn.Values[p]
		}
		assert.InDelta(t, 1, sum, 1e-12)
	}

	// interior row connects to its window of half-width 2
	assert.Greater(t, conn.At(3, 1), 0.0)
	assert.Greater(t, conn.At(3, 4), 0.0)
	assert.Equal(t, 0.0, conn.At(3, 5))

	// smoothing a constant leaves it unchanged
	ones := []float64{1, 1, 1, 1, 1, 1}
	sm, err := conn.MulVec(ones)
	require.NoError(t, err)
	for _, v := range sm {
		assert.InDelta(t, 1, v, 1e-12)
	}
}
