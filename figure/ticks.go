// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"math"
	"strconv"
)

// Tick is a single axis tick.
type Tick struct {
	Value float64
	Label string
}

// Ticks returns tick positions for the axis range using a nice-step
// locator over {1, 2, 2.5, 5} x 10^k. With Integer set, steps are
// whole numbers of at least one, so at most max-min+1 ticks appear.
func (ax *Axis) Ticks() []Tick {
	want := ax.NTicks
	if want <= 0 {
		want = 5
	}
	lo, hi := ax.Min, ax.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	step := niceStep(hi-lo, want, ax.Integer)
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil
	}
	first := math.Ceil(lo/step) * step
	var out []Tick
	for v := first; v <= hi+step*1e-9; v += step {
		val := v
		if val == 0 {
			val = 0 // normalize -0
		}
		out = append(out, Tick{Value: val, Label: tickLabel(val, ax.Integer)})
	}
	return out
}

// niceStep picks the smallest nice step yielding at most want
// intervals over the given span.
func niceStep(span float64, want int, integer bool) float64 {
	if span <= 0 {
		return 0
	}
	raw := span / float64(want)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step := 10 * mag
	for _, mult := range []float64{1, 2, 2.5, 5} {
		if mult*mag >= raw {
			step = mult * mag
			break
		}
	}
	if integer {
		step = math.Max(1, math.Round(step))
	}
	return step
}

func tickLabel(v float64, integer bool) string {
	if integer || v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}
