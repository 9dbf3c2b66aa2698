// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides the derived statistics used by the plotting
// helpers: percentiles and clipping, kernel density estimation, and
// the temporal-neighborhood connectivity matrix.
package stats

import (
	"math"
	"sort"
)

// Linspace returns n evenly spaced values from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// ArgSort returns the indexes that would sort vals ascending.
func ArgSort(vals []float64) []int {
	idx := make([]int, len(vals))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return vals[idx[a]] < vals[idx[b]] })
	return idx
}

// Percentile returns the p-th percentile (0..100) of vals using
// linear interpolation between closest ranks. vals is not modified.
func Percentile(vals []float64, p float64) float64 {
	n := len(vals)
	if n == 0 {
		return math.NaN()
	}
	srt := make([]float64, n)
	copy(srt, vals)
	sort.Float64s(srt)
	return percentileSorted(srt, p)
}

// Percentiles returns the given percentiles of vals, sorting only once.
func Percentiles(vals []float64, ps []float64) []float64 {
	out := make([]float64, len(ps))
	n := len(vals)
	if n == 0 {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}
	srt := make([]float64, n)
	copy(srt, vals)
	sort.Float64s(srt)
	for i, p := range ps {
		out[i] = percentileSorted(srt, p)
	}
	return out
}

func percentileSorted(srt []float64, p float64) float64 {
	n := len(srt)
	if p <= 0 {
		return srt[0]
	}
	if p >= 100 {
		return srt[n-1]
	}
	pos := p / 100 * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return srt[lo]
	}
	frac := pos - float64(lo)
	return srt[lo]*(1-frac) + srt[hi]*frac
}

// Clip returns a copy of vals with every value limited to [lo, hi].
func Clip(vals []float64, lo, hi float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		switch {
		case v < lo:
			out[i] = lo
		case v > hi:
			out[i] = hi
		default:
			out[i] = v
		}
	}
	return out
}

// ClipPercentile clips vals to the percentile bounds given by perc.
// A single bound p expands to [p, 100] when p < 50 and [0, p]
// otherwise, so that a lone value always clips the nearer tail.
func ClipPercentile(vals []float64, perc []float64) []float64 {
	perc = ExpandPercentiles(perc)
	if len(perc) < 2 {
		return Clip(vals, -math.MaxFloat64, math.MaxFloat64)
	}
	bounds := Percentiles(vals, perc[:2])
	return Clip(vals, bounds[0], bounds[1])
}

// ExpandPercentiles expands a single percentile bound to a pair,
// returning multi-value inputs unchanged.
func ExpandPercentiles(perc []float64) []float64 {
	if len(perc) != 1 {
		return perc
	}
	if perc[0] < 50 {
		return []float64{perc[0], 100}
	}
	return []float64{0, perc[0]}
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// std is the unbiased (n-1) standard deviation.
func std(vals []float64) float64 {
	n := len(vals)
	if n < 2 {
		return 0
	}
	mn := mean(vals)
	var ss float64
	for _, v := range vals {
		d := v - mn
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}

// MinMax returns the minimum and maximum of vals, skipping NaNs.
func MinMax(vals []float64) (mn, mx float64) {
	mn, mx = math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
	}
	return mn, mx
}

// Finite returns the values of vals that are finite.
func Finite(vals []float64) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}
