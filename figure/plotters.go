// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"golang.org/x/image/colornames"
)

// XY is a single data point.
type XY struct {
	X, Y float64
}

// XYs is a slice of data points.
type XYs []XY

// NewXYs pairs two equal-length coordinate slices.
func NewXYs(xs, ys []float64) (XYs, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("figure: coordinate lengths differ: %d, %d", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return nil, errors.New("figure: no data points")
	}
	out := make(XYs, len(xs))
	for i := range xs {
		if math.IsInf(xs[i], 0) || math.IsInf(ys[i], 0) {
			return nil, errors.New("figure: infinite data point")
		}
		out[i] = XY{X: xs[i], Y: ys[i]}
	}
	return out, nil
}

// XYRange returns the finite extent of the points.
func XYRange(xys XYs) (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for _, p := range xys {
		if !math.IsNaN(p.X) {
			xmin = math.Min(xmin, p.X)
			xmax = math.Max(xmax, p.X)
		}
		if !math.IsNaN(p.Y) {
			ymin = math.Min(ymin, p.Y)
			ymax = math.Max(ymax, p.Y)
		}
	}
	return
}

// Line draws a polyline through its points.
type Line struct {
	XYs

	// Color is the stroke color.
	Color color.RGBA

	// Width is the stroke width in pixels.
	Width float32

	// Dashes is an on/off dash pattern; nil draws solid.
	Dashes []float32
}

// NewLine returns a Line through the given coordinates.
func NewLine(xs, ys []float64) (*Line, error) {
	data, err := NewXYs(xs, ys)
	if err != nil {
		return nil, err
	}
	return &Line{XYs: data, Color: colornames.Black, Width: 1}, nil
}

func (ln *Line) Plot(fg *Figure, ax *Axes) {
	for i := 1; i < len(ln.XYs); i++ {
		p0, p1 := ln.XYs[i-1], ln.XYs[i]
		if math.IsNaN(p0.X) || math.IsNaN(p0.Y) || math.IsNaN(p1.X) || math.IsNaN(p1.Y) {
			continue
		}
		fg.strokeDashedLine(ax.PX(p0.X), ax.PY(p0.Y), ax.PX(p1.X), ax.PY(p1.Y), ln.Color, ln.Width, ln.Dashes)
	}
}

func (ln *Line) DataRange() (xmin, xmax, ymin, ymax float64) {
	return XYRange(ln.XYs)
}

// FillBetween fills the region between two curves sharing one
// coordinate. With Horizontal set, X spans between Lo and Hi at each
// Y instead.
type FillBetween struct {
	// Coords is the shared coordinate (X normally, Y when Horizontal).
	Coords []float64

	// Lo and Hi bound the filled band at each coordinate.
	Lo, Hi []float64

	// Color is the fill color; set alpha via Alpha.
	Color color.RGBA

	// Alpha is the fill opacity in [0, 1].
	Alpha float32

	// Horizontal fills between X curves over Y coordinates.
	Horizontal bool
}

// NewFillBetween fills between lo and hi over the shared coords.
// A nil lo or hi is treated as constant zero.
func NewFillBetween(coords, lo, hi []float64) (*FillBetween, error) {
	if lo == nil {
		lo = make([]float64, len(coords))
	}
	if hi == nil {
		hi = make([]float64, len(coords))
	}
	if len(coords) != len(lo) || len(coords) != len(hi) {
		return nil, fmt.Errorf("figure: fill lengths differ: %d, %d, %d", len(coords), len(lo), len(hi))
	}
	if len(coords) < 2 {
		return nil, errors.New("figure: fill needs at least two points")
	}
	return &FillBetween{Coords: coords, Lo: lo, Hi: hi, Color: colornames.Grey, Alpha: 1}, nil
}

func (fb *FillBetween) Plot(fg *Figure, ax *Axes) {
	n := len(fb.Coords)
	xs := make([]float32, 0, 2*n)
	ys := make([]float32, 0, 2*n)
	for i := 0; i < n; i++ {
		if fb.Horizontal {
			xs = append(xs, ax.PX(fb.Hi[i]))
			ys = append(ys, ax.PY(fb.Coords[i]))
		} else {
			xs = append(xs, ax.PX(fb.Coords[i]))
			ys = append(ys, ax.PY(fb.Hi[i]))
		}
	}
	for i := n - 1; i >= 0; i-- {
		if fb.Horizontal {
			xs = append(xs, ax.PX(fb.Lo[i]))
			ys = append(ys, ax.PY(fb.Coords[i]))
		} else {
			xs = append(xs, ax.PX(fb.Coords[i]))
			ys = append(ys, ax.PY(fb.Lo[i]))
		}
	}
	fg.fillPoly(xs, ys, withAlpha(fb.Color, fb.Alpha))
}

func (fb *FillBetween) DataRange() (xmin, xmax, ymin, ymax float64) {
	cmin, cmax := math.Inf(1), math.Inf(-1)
	vmin, vmax := math.Inf(1), math.Inf(-1)
	for i, c := range fb.Coords {
		cmin = math.Min(cmin, c)
		cmax = math.Max(cmax, c)
		vmin = math.Min(vmin, math.Min(fb.Lo[i], fb.Hi[i]))
		vmax = math.Max(vmax, math.Max(fb.Lo[i], fb.Hi[i]))
	}
	if fb.Horizontal {
		return vmin, vmax, cmin, cmax
	}
	return cmin, cmax, vmin, vmax
}

// Scatter draws a filled circle for each point, either in a single
// color or with per-point colors.
type Scatter struct {
	XYs

	// Color is the point color when Colors is nil.
	Color color.RGBA

	// Colors are optional per-point colors.
	Colors []color.RGBA

	// Size is the point diameter in pixels.
	Size float32
}

// NewScatter returns a Scatter over the given coordinates.
func NewScatter(xs, ys []float64) (*Scatter, error) {
	data, err := NewXYs(xs, ys)
	if err != nil {
		return nil, err
	}
	return &Scatter{XYs: data, Color: colornames.Grey, Size: 4}, nil
}

func (sc *Scatter) Plot(fg *Figure, ax *Axes) {
	for i, p := range sc.XYs {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			continue
		}
		c := sc.Color
		if sc.Colors != nil {
			c = sc.Colors[i]
		}
		fg.fillCircle(ax.PX(p.X), ax.PY(p.Y), sc.Size/2, c)
	}
}

func (sc *Scatter) DataRange() (xmin, xmax, ymin, ymax float64) {
	return XYRange(sc.XYs)
}

// Bars draws histogram-style bars over contiguous bin edges.
type Bars struct {
	// Edges are the bin edges, one more than Heights.
	Edges []float64

	// Heights are the bar heights.
	Heights []float64

	// Color is the fill color.
	Color color.RGBA

	// Alpha is the fill opacity in [0, 1].
	Alpha float32
}

// NewBars returns bars over the given edges and heights.
func NewBars(edges, heights []float64) (*Bars, error) {
	if len(edges) != len(heights)+1 {
		return nil, fmt.Errorf("figure: %d edges for %d bars", len(edges), len(heights))
	}
	if len(heights) == 0 {
		return nil, errors.New("figure: no bars")
	}
	return &Bars{Edges: edges, Heights: heights, Color: colornames.Grey, Alpha: 1}, nil
}

func (br *Bars) Plot(fg *Figure, ax *Axes) {
	c := withAlpha(br.Color, br.Alpha)
	y0 := ax.PY(0)
	for i, h := range br.Heights {
		x0 := ax.PX(br.Edges[i])
		x1 := ax.PX(br.Edges[i+1])
		y1 := ax.PY(h)
		fg.fillPoly([]float32{x0, x1, x1, x0}, []float32{y0, y0, y1, y1}, c)
	}
}

func (br *Bars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = br.Edges[0], br.Edges[len(br.Edges)-1]
	ymin, ymax = 0, math.Inf(-1)
	for _, h := range br.Heights {
		ymax = math.Max(ymax, h)
	}
	return
}

// Stack draws stacked filled areas, one per series, with a zero
// baseline.
type Stack struct {
	// X is the shared coordinate.
	X []float64

	// Ys holds one series per stack layer.
	Ys [][]float64

	// Colors are per-layer fill colors.
	Colors []color.RGBA

	// EdgeColor outlines each layer boundary when opaque.
	EdgeColor color.RGBA
}

// NewStack returns a stacked area plot of the given series.
func NewStack(xs []float64, ys [][]float64) (*Stack, error) {
	if len(ys) == 0 {
		return nil, errors.New("figure: no stack series")
	}
	for _, y := range ys {
		if len(y) != len(xs) {
			return nil, fmt.Errorf("figure: stack series length %d does not match %d x values", len(y), len(xs))
		}
	}
	return &Stack{X: xs, Ys: ys}, nil
}

func (st *Stack) Plot(fg *Figure, ax *Axes) {
	n := len(st.X)
	base := make([]float64, n)
	for li, ys := range st.Ys {
		top := make([]float64, n)
		for i := range ys {
			top[i] = base[i] + ys[i]
		}
		c := colornames.Grey
		if li < len(st.Colors) {
			c = st.Colors[li]
		}
		fb := &FillBetween{Coords: st.X, Lo: base, Hi: top, Color: c, Alpha: 1}
		fb.Plot(fg, ax)
		if st.EdgeColor.A > 0 {
			for i := 1; i < n; i++ {
				fg.strokeLine(ax.PX(st.X[i-1]), ax.PY(top[i-1]), ax.PX(st.X[i]), ax.PY(top[i]), st.EdgeColor, 1)
			}
		}
		base = top
	}
}

func (st *Stack) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	for _, x := range st.X {
		xmin = math.Min(xmin, x)
		xmax = math.Max(xmax, x)
	}
	ymin, ymax = 0, math.Inf(-1)
	for i := range st.X {
		var sum float64
		for _, ys := range st.Ys {
			sum += ys[i]
		}
		ymax = math.Max(ymax, sum)
	}
	return
}

// Rug draws short vertical marks at each X position along the bottom
// of the axes.
type Rug struct {
	// X are the mark positions.
	X []float64

	// Height is the mark height as a fraction of the axes height.
	Height float32

	// Color is the mark color.
	Color color.RGBA
}

// NewRug returns a rug over the given positions.
func NewRug(xs []float64) (*Rug, error) {
	if len(xs) == 0 {
		return nil, errors.New("figure: no rug positions")
	}
	return &Rug{X: xs, Height: 0.03, Color: colornames.Black}, nil
}

func (rg *Rug) Plot(fg *Figure, ax *Axes) {
	b := ax.Bounds()
	h := rg.Height * float32(b.Dy())
	for _, x := range rg.X {
		px := ax.PX(x)
		fg.strokeLine(px, float32(b.Max.Y), px, float32(b.Max.Y)-h, rg.Color, 1)
	}
}
