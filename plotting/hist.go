// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"fmt"
	"image/color"
	"math"
	"slices"
	"sort"

	"github.com/scviz/scviz/figure"
	"github.com/scviz/scviz/palettes"
	"github.com/scviz/scviz/stats"
)

// HistOptions configures [Hist].
type HistOptions struct {
	// Bins is the bin count. Zero means 50.
	Bins int

	// Alpha is the bar opacity. Zero means 0.5.
	Alpha float32

	// Colors are per-array colors; the default cycle is used beyond
	// their length.
	Colors []string

	// Labels are per-array legend labels; unlabeled arrays get no
	// legend entry.
	Labels []string

	// KDE overlays a kernel density curve per array.
	KDE bool

	// Bars draws the histogram bars; nil means bars unless KDE is set.
	Bars *bool

	// Norm normalizes to a density; nil follows KDE.
	Norm *bool

	// Silverman switches the KDE bandwidth to the Silverman rule.
	Silverman bool

	// Perc clips the histogram range to percentile bounds of the
	// pooled values.
	Perc []float64

	// XLim and YLim fix the axis limits when non-nil.
	XLim, YLim []float64

	// Cutoff restricts values to [lo] or [lo, hi].
	Cutoff []float64

	// ExcludeZeros drops zero values before binning.
	ExcludeZeros bool

	// XScale "log" spaces the bins logarithmically; non-positive
	// values are dropped first.
	XScale string

	// VLine and HLine draw a grey marker line at the given coordinate.
	VLine, HLine *float64

	XLabel, YLabel, Title string

	// FontSize scales labels and ticks.
	FontSize float32

	// LegendLoc places the legend; empty means best.
	LegendLoc string

	// FrameOn overrides the settings frame default.
	FrameOn *bool
}

// Hist draws overlaid histograms of one or more value arrays on the
// current axes of fg, optionally with kernel density curves, and
// returns the axes.
func Hist(fg *figure.Figure, arrays [][]float64, se *Settings, opt *HistOptions) (*figure.Axes, error) {
	se = se.orDefault()
	if opt == nil {
		opt = &HistOptions{}
	}
	bins := opt.Bins
	if bins == 0 {
		bins = 50
	}
	alpha := opt.Alpha
	if alpha == 0 {
		alpha = 0.5
	}
	showBars := !opt.KDE
	if opt.Bars != nil {
		showBars = *opt.Bars
	}
	norm := opt.KDE
	if opt.Norm != nil {
		norm = *opt.Norm
	}

	vals := make([][]float64, len(arrays))
	var pooled []float64
	for i, arr := range arrays {
		v := stats.Finite(arr)
		if opt.ExcludeZeros {
			v = slices.DeleteFunc(v, func(x float64) bool { return x == 0 })
		}
		if len(opt.Cutoff) > 0 {
			lo, hi := opt.Cutoff[0], math.Inf(1)
			if len(opt.Cutoff) > 1 {
				hi = opt.Cutoff[1]
			}
			v = slices.DeleteFunc(v, func(x float64) bool { return x < lo || x > hi })
		}
		vals[i] = v
		pooled = append(pooled, v...)
	}
	if len(pooled) == 0 {
		return nil, fmt.Errorf("plotting: no finite values to bin")
	}

	bmin, bmax := stats.MinMax(pooled)
	if opt.Perc != nil {
		bounds := stats.Percentiles(pooled, stats.ExpandPercentiles(opt.Perc))
		bmin, bmax = bounds[0], bounds[1]
	}
	if len(opt.XLim) == 2 {
		bmin, bmax = opt.XLim[0], opt.XLim[1]
	}
	if bmin == bmax {
		bmax = bmin + 1
	}
	var edges []float64
	if opt.XScale == "log" {
		if bmin <= 0 {
			bmin = math.SmallestNonzeroFloat64
			for _, v := range pooled {
				if v > 0 && (bmin == math.SmallestNonzeroFloat64 || v < bmin) {
					bmin = v
				}
			}
		}
		exps := stats.Linspace(math.Log10(bmin), math.Log10(bmax), bins+1)
		edges = make([]float64, len(exps))
		for i, e := range exps {
			edges[i] = math.Pow(10, e)
		}
		for i := range vals {
			vals[i] = slices.DeleteFunc(vals[i], func(x float64) bool { return x <= 0 })
		}
	} else {
		edges = stats.Linspace(bmin, bmax, bins+1)
	}
	width := (bmax - bmin) / float64(bins)

	ax := fg.CurAxes()
	cycle := histCycle(opt.Colors)
	ymax := 0.0
	for i, v := range vals {
		if len(v) == 0 {
			continue
		}
		col := cycle(i)
		if showBars {
			heights := binCounts(v, edges)
			if norm {
				w := 1 / (float64(len(v)) * width)
				for j := range heights {
					heights[j] *= w
				}
			}
			br, err := figure.NewBars(edges, heights)
			if err != nil {
				return nil, err
			}
			br.Color = col
			br.Alpha = alpha
			ax.Add(br)
			for _, h := range heights {
				ymax = math.Max(ymax, h)
			}
		}
		if opt.KDE && len(v) >= 2 {
			kd, err := stats.NewKDE(v)
			if err != nil {
				return nil, err
			}
			if opt.Silverman {
				kd.Bandwidth = kd.SilvermanBandwidth()
			}
			grid := stats.Linspace(bmin, bmax, 100)
			dens := kd.Evaluate(grid)
			if !norm {
				s := float64(len(v)) * width
				for j := range dens {
					dens[j] *= s
				}
			}
			ln, err := figure.NewLine(grid, dens)
			if err != nil {
				return nil, err
			}
			ln.Color = col
			ln.Width = 2
			ax.Add(ln)
			for _, d := range dens {
				ymax = math.Max(ymax, d)
			}
		}
		if i < len(opt.Labels) && opt.Labels[i] != "" {
			ax.Legend.Add(opt.Labels[i], col)
		}
	}

	if opt.VLine != nil {
		ln, err := figure.NewLine([]float64{*opt.VLine, *opt.VLine}, []float64{0, ymax})
		if err != nil {
			return nil, err
		}
		ln.Color = palettes.Default()[7]
		ln.Dashes = []float32{4, 4}
		ax.Add(ln)
	}
	if opt.HLine != nil {
		ln, err := figure.NewLine([]float64{bmin, bmax}, []float64{*opt.HLine, *opt.HLine})
		if err != nil {
			return nil, err
		}
		ln.Color = palettes.Default()[7]
		ln.Dashes = []float32{4, 4}
		ax.Add(ln)
	}

	loc, err := figure.ParseLocation(opt.LegendLoc)
	if err != nil {
		return nil, err
	}
	ax.Legend.Loc = loc

	SetLabel(ax, opt.XLabel, opt.YLabel, "", opt.FontSize)
	SetTitle(ax, opt.Title, "", "", opt.FontSize)
	UpdateAxes(ax, se, &AxesOptions{XLim: opt.XLim, YLim: opt.YLim, FontSize: opt.FontSize, FrameOn: opt.FrameOn})
	return ax, nil
}

// histCycle resolves explicit colors, falling back to the default
// cycle reversed.
func histCycle(names []string) func(i int) color.RGBA {
	fallback := palettes.Default()
	slices.Reverse(fallback)
	return func(i int) color.RGBA {
		if i < len(names) && names[i] != "" {
			if c, err := palettes.ParseColor(names[i]); err == nil {
				return c
			}
		}
		return fallback[i%len(fallback)]
	}
}

// binCounts counts values into the contiguous bins given by the
// sorted edges. Bins are left-closed; the last is also upper-closed.
func binCounts(vals, edges []float64) []float64 {
	nb := len(edges) - 1
	counts := make([]float64, nb)
	for _, v := range vals {
		if v < edges[0] || v > edges[nb] {
			continue
		}
		bi := sort.SearchFloat64s(edges, v)
		if bi == len(edges) || edges[bi] != v {
			bi--
		}
		if bi == nb {
			bi--
		}
		counts[bi]++
	}
	return counts
}

// Rugplot draws tick marks at each value along the bottom of the axes.
func Rugplot(ax *figure.Axes, xs []float64, colorName string) error {
	rg, err := figure.NewRug(stats.Finite(xs))
	if err != nil {
		return err
	}
	if colorName != "" {
		c, err := palettes.ParseColor(colorName)
		if err != nil {
			return err
		}
		rg.Color = c
	}
	ax.Add(rg)
	return nil
}
