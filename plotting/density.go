// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"fmt"
	"image/color"
	"math"

	"github.com/scviz/scviz/figure"
	"github.com/scviz/scviz/palettes"
	"github.com/scviz/scviz/stats"
)

// DensityOptions configures [PlotDensity].
type DensityOptions struct {
	// EvalPts is the number of evaluation points. Zero means 50.
	EvalPts int

	// Scale sets the marginal height relative to the data extent.
	// Zero means 10.
	Scale float64

	// Alpha is the fill opacity. Zero means 0.3.
	Alpha float32

	// Color is the curve and fill color. Empty means grey.
	Color string
}

// PlotDensity draws marginal kernel density curves below the X axis
// and, when y is non-nil, left of the Y axis, scaled to a fraction of
// the data extent and offset outside the data area.
func PlotDensity(ax *figure.Axes, x, y []float64, opt *DensityOptions) error {
	if opt == nil {
		opt = &DensityOptions{}
	}
	evalPts := opt.EvalPts
	if evalPts == 0 {
		evalPts = 50
	}
	scale := opt.Scale
	if scale == 0 {
		scale = 10
	}
	alpha := opt.Alpha
	if alpha == 0 {
		alpha = 0.3
	}
	cnm := opt.Color
	if cnm == "" {
		cnm = "grey"
	}
	col, err := palettes.ParseColor(cnm)
	if err != nil {
		return err
	}

	if err := marginalDensity(ax, x, y, evalPts, scale, false, col, alpha); err != nil {
		return err
	}
	if y != nil {
		if err := marginalDensity(ax, y, x, evalPts, scale, true, col, alpha); err != nil {
			return err
		}
	}
	return nil
}

// marginalDensity draws the density of vals along one axis, offset by
// a fraction of the other axis extent when other is non-nil.
func marginalDensity(ax *figure.Axes, vals, other []float64, evalPts int, scale float64, vertical bool, col color.RGBA, alpha float32) error {
	vf := stats.Finite(vals)
	if len(vf) < 2 {
		return fmt.Errorf("plotting: too few finite values for a density")
	}
	mn, mx := stats.MinMax(vf)
	pts := stats.Linspace(mn, mx, evalPts)
	kd, err := stats.NewKDE(vf)
	if err != nil {
		return err
	}
	dens := kd.Evaluate(pts)

	var offset float64
	if other != nil {
		_, omax := stats.MinMax(stats.Finite(other))
		offset = omax / scale
		_, dmax := stats.MinMax(dens)
		s := offset / math.Max(dmax, 1e-12)
		offset *= 1.3
		for i := range dens {
			dens[i] = dens[i]*s - offset
		}
	}

	lo := make([]float64, len(pts))
	for i := range lo {
		lo[i] = -offset
	}
	fill, err := figure.NewFillBetween(pts, lo, dens)
	if err != nil {
		return err
	}
	fill.Color = col
	fill.Alpha = alpha
	fill.Horizontal = vertical
	ax.Add(fill)

	var ln *figure.Line
	if vertical {
		ln, err = figure.NewLine(dens, pts)
	} else {
		ln, err = figure.NewLine(pts, dens)
	}
	if err != nil {
		return err
	}
	ln.Color = col
	ax.Add(ln)

	if vertical {
		ax.SetXMin(-offset)
	} else {
		ax.SetYMin(-offset)
	}
	return nil
}
