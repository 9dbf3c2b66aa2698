// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"fmt"
	"math"

	"golang.org/x/image/colornames"

	"github.com/scviz/scviz/adata"
	"github.com/scviz/scviz/figure"
	"github.com/scviz/scviz/stats"
)

// SeriesOptions configures [PlotSeries].
type SeriesOptions struct {
	// Normalize divides each series by its maximum absolute value.
	Normalize bool

	// Colors are per-series colors; the default cycle is used beyond
	// their length.
	Colors []string

	// Labels are per-series legend labels.
	Labels []string

	XLabel, YLabel, Title string

	// FontSize scales labels and ticks.
	FontSize float32

	// FrameOn overrides the settings frame default.
	FrameOn *bool
}

// PlotSeries draws each array as a line over its index on the current
// axes of fg and returns the axes.
func PlotSeries(fg *figure.Figure, arrays [][]float64, se *Settings, opt *SeriesOptions) (*figure.Axes, error) {
	se = se.orDefault()
	if opt == nil {
		opt = &SeriesOptions{}
	}
	if len(arrays) == 0 {
		return nil, fmt.Errorf("plotting: no series to plot")
	}
	ax := fg.CurAxes()
	cycle := histCycle(opt.Colors)
	for i, arr := range arrays {
		ys := make([]float64, len(arr))
		copy(ys, arr)
		if opt.Normalize {
			amax := 0.0
			for _, v := range stats.Finite(ys) {
				amax = math.Max(amax, math.Abs(v))
			}
			if amax > 0 {
				for j := range ys {
					ys[j] /= amax
				}
			}
		}
		xs := make([]float64, len(ys))
		for j := range xs {
			xs[j] = float64(j)
		}
		ln, err := figure.NewLine(xs, ys)
		if err != nil {
			return nil, err
		}
		col := cycle(i)
		ln.Color = col
		ax.Add(ln)
		if i < len(opt.Labels) && opt.Labels[i] != "" {
			ax.Legend.Add(opt.Labels[i], col)
		}
	}
	SetLabel(ax, opt.XLabel, opt.YLabel, "", opt.FontSize)
	SetTitle(ax, opt.Title, "", "", opt.FontSize)
	UpdateAxes(ax, se, &AxesOptions{FontSize: opt.FontSize, FrameOn: opt.FrameOn})
	return ax, nil
}

// TimeseriesOptions configures [FractionTimeseries].
type TimeseriesOptions struct {
	// Bins is the number of time bins. Zero means 30.
	Bins int

	Title string

	// LegendLoc places the category legend; empty means best.
	LegendLoc string

	// FontSize scales labels and ticks.
	FontSize float32

	// SaveShow, when non-nil, saves or shows the figure after drawing.
	SaveShow *SaveShowOptions
}

// FractionTimeseries draws the per-category fraction of observations
// as a stacked area over binned pseudotime: xkey names the categorical
// annotation, tkey the time annotation in [0, 1]. Category colors come
// from the cached palette.
func FractionTimeseries(fg *figure.Figure, ad *adata.AnnData, se *Settings, xkey, tkey string, opt *TimeseriesOptions) (*figure.Axes, error) {
	se = se.orDefault()
	if opt == nil {
		opt = &TimeseriesOptions{}
	}
	bins := opt.Bins
	if bins == 0 {
		bins = 30
	}
	ct, ok := ad.Obs.Categorical(xkey)
	if !ok {
		return nil, fmt.Errorf("plotting: %q is not a categorical annotation", xkey)
	}
	tvals, ok := ad.Obs.Floats(tkey)
	if !ok {
		return nil, fmt.Errorf("plotting: %q is not a numeric annotation", tkey)
	}

	t := stats.Linspace(0, 1+1/float64(bins), bins)
	ncats := ct.NumCategories()
	fractions := make([][]float64, ncats)
	for ci := range fractions {
		fractions[ci] = make([]float64, bins-1)
	}
	for bi := 0; bi < bins-1; bi++ {
		counts := make([]float64, ncats)
		total := 0.0
		for i, tv := range tvals {
			if tv >= t[bi] && tv < t[bi+1] {
				counts[ct.Codes[i]]++
				total++
			}
		}
		if total == 0 {
			continue
		}
		for ci := range counts {
			fractions[ci][bi] = counts[ci] / total
		}
	}

	pal, err := CategoryPalette(ad, xkey)
	if err != nil {
		return nil, err
	}
	ax := fg.CurAxes()
	st, err := figure.NewStack(t[:bins-1], fractions)
	if err != nil {
		return nil, err
	}
	st.Colors = pal[:ncats]
	st.EdgeColor = colornames.White
	ax.Add(st)

	loc, err := figure.ParseLocation(opt.LegendLoc)
	if err != nil {
		return nil, err
	}
	ax.Legend.Loc = loc
	for ci, cat := range ct.Categories() {
		ax.Legend.Add(cat, pal[ci])
	}

	tmin, tmax := stats.MinMax(tvals)
	SetLabel(ax, tkey, xkey+" fractions", "", opt.FontSize)
	SetTitle(ax, opt.Title, "", "", opt.FontSize)
	UpdateAxes(ax, se, &AxesOptions{XLim: []float64{tmin, tmax}, YLim: []float64{0, 1}, FontSize: opt.FontSize})

	if opt.SaveShow != nil {
		fg.Draw()
		if _, err := SavefigOrShow(fg, se, "fraction_timeseries", opt.SaveShow); err != nil {
			return nil, err
		}
	}
	return ax, nil
}
