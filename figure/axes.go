// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"image"
	"math"

	"golang.org/x/image/colornames"
)

// Axes is a single plotting area with its own coordinate system,
// axis decorations, legend and plotters.
type Axes struct {
	// Rect is the axes region in normalized figure coordinates.
	Rect Rect

	// Title is drawn centered above the data area.
	Title Text

	// X and Y are the data axes.
	X, Y Axis

	// FrameOn draws the axes frame and decorations.
	FrameOn bool

	// Legend is drawn after the plotters.
	Legend Legend

	// Plotters are drawn in the order added.
	Plotters []Plotter

	// Colorbars are inset colorbars drawn after the plotters.
	Colorbars []*Colorbar

	bounds image.Rectangle
}

// NewAxes returns an Axes with defaults applied.
func NewAxes() *Axes {
	ax := &Axes{Rect: DefaultAxesRect, FrameOn: true}
	ax.X.Defaults(false)
	ax.Y.Defaults(true)
	ax.Legend.Defaults()
	ax.Title.Defaults()
	return ax
}

// Plotter is a figure element drawing itself onto an axes.
type Plotter interface {
	// Plot draws after the axes bounds and ranges are final.
	Plot(fg *Figure, ax *Axes)
}

// DataRanger returns the data extent, for automatic axis ranging.
type DataRanger interface {
	DataRange() (xmin, xmax, ymin, ymax float64)
}

// Add appends a plotter, growing any non-fixed axis range to the
// plotter's data range.
func (ax *Axes) Add(ps ...Plotter) {
	for _, p := range ps {
		ax.Plotters = append(ax.Plotters, p)
		if dr, ok := p.(DataRanger); ok {
			xmin, xmax, ymin, ymax := dr.DataRange()
			ax.X.growRange(xmin, xmax)
			ax.Y.growRange(ymin, ymax)
		}
	}
}

// SetXLim fixes the X axis limits.
func (ax *Axes) SetXLim(lo, hi float64) {
	ax.X.Min, ax.X.Max = lo, hi
	ax.X.fixed = true
}

// SetYLim fixes the Y axis limits.
func (ax *Axes) SetYLim(lo, hi float64) {
	ax.Y.Min, ax.Y.Max = lo, hi
	ax.Y.fixed = true
}

// SetYMin fixes only the lower Y limit, keeping the upper from data.
func (ax *Axes) SetYMin(lo float64) {
	ax.Y.Min = lo
	ax.Y.minFixed = true
}

// SetXMin fixes only the lower X limit, keeping the upper from data.
func (ax *Axes) SetXMin(lo float64) {
	ax.X.Min = lo
	ax.X.minFixed = true
}

// Bounds returns the pixel bounds of the data area. Valid after Draw.
func (ax *Axes) Bounds() image.Rectangle { return ax.bounds }

// PX maps a data X value to a pixel coordinate.
func (ax *Axes) PX(v float64) float32 {
	sp := ax.X.Max - ax.X.Min
	if sp == 0 {
		sp = 1
	}
	return float32(ax.bounds.Min.X) + float32((v-ax.X.Min)/sp)*float32(ax.bounds.Dx())
}

// PY maps a data Y value to a pixel coordinate (Y grows upward).
func (ax *Axes) PY(v float64) float32 {
	sp := ax.Y.Max - ax.Y.Min
	if sp == 0 {
		sp = 1
	}
	return float32(ax.bounds.Max.Y) - float32((v-ax.Y.Min)/sp)*float32(ax.bounds.Dy())
}

func (ax *Axes) draw(fg *Figure) {
	ax.X.sanitizeRange()
	ax.Y.sanitizeRange()

	outer := ax.Rect.pixels(fg)
	inner := outer

	if ax.Title.Text != "" {
		pos := image.Point{X: (outer.Min.X + outer.Max.X) / 2, Y: outer.Min.Y}
		fg.drawText(ax.Title, pos, alignCenter, alignTop)
		inner.Min.Y += textHeight + 4
	}
	if ax.FrameOn {
		if ax.X.ShowTicks {
			inner.Max.Y -= textHeight + tickLen + 2
		}
		if ax.Y.ShowTicks {
			inner.Min.X += ax.Y.maxTickWidth() + tickLen + 2
		}
		if ax.X.Label.Text != "" {
			inner.Max.Y -= textHeight + 2
		}
		if ax.Y.Label.Text != "" {
			inner.Min.X += textHeight + 2
		}
	}
	ax.bounds = inner

	if ax.FrameOn {
		ax.drawFrame(fg)
	}

	prev := fg.pushClip(inner.Inset(-1))
	for _, p := range ax.Plotters {
		p.Plot(fg, ax)
	}
	fg.popClip(prev)

	for _, cb := range ax.Colorbars {
		cb.draw(fg, ax)
	}
	ax.Legend.draw(fg, ax)
}

const tickLen = 4

func (ax *Axes) drawFrame(fg *Figure) {
	b := ax.bounds
	frame := colornames.Black
	fg.strokeRect(b, frame)

	if ax.X.ShowTicks {
		for _, tk := range ax.X.Ticks() {
			x := ax.PX(tk.Value)
			if x < float32(b.Min.X) || x > float32(b.Max.X) {
				continue
			}
			fg.strokeLine(x, float32(b.Max.Y), x, float32(b.Max.Y+tickLen), frame, 1)
			ax.X.TickText.Text = tk.Label
			fg.drawText(ax.X.TickText, image.Point{X: int(x), Y: b.Max.Y + tickLen + 1}, alignCenter, alignTop)
		}
	}
	if ax.Y.ShowTicks {
		for _, tk := range ax.Y.Ticks() {
			y := ax.PY(tk.Value)
			if y < float32(b.Min.Y) || y > float32(b.Max.Y) {
				continue
			}
			fg.strokeLine(float32(b.Min.X-tickLen), y, float32(b.Min.X), y, frame, 1)
			ax.Y.TickText.Text = tk.Label
			fg.drawText(ax.Y.TickText, image.Point{X: b.Min.X - tickLen - 2, Y: int(y) - textHeight/2}, alignRight, alignTop)
		}
	}
	if ax.X.Label.Text != "" {
		pos := image.Point{X: (b.Min.X + b.Max.X) / 2, Y: b.Max.Y + tickLen + textHeight + 3}
		fg.drawText(ax.X.Label, pos, alignCenter, alignTop)
	}
	if ax.Y.Label.Text != "" {
		pos := image.Point{X: b.Min.X - ax.Y.maxTickWidth() - tickLen - 4, Y: (b.Min.Y + b.Max.Y) / 2}
		fg.drawTextVertical(ax.Y.Label, pos)
	}
}

// Axis is one data axis of an Axes.
type Axis struct {
	// Min and Max are the data range.
	Min, Max float64

	// Label is the axis label.
	Label Text

	// TickText styles the tick labels.
	TickText Text

	// NTicks is the desired tick count. Zero means 5.
	NTicks int

	// Integer restricts ticks to integer values.
	Integer bool

	// ShowTicks draws tick marks and labels.
	ShowTicks bool

	vertical bool
	fixed    bool
	minFixed bool
}

// Defaults sets axis defaults.
func (ax *Axis) Defaults(vertical bool) {
	ax.Min = math.Inf(1)
	ax.Max = math.Inf(-1)
	ax.ShowTicks = true
	ax.vertical = vertical
	ax.Label.Defaults()
	ax.TickText.Defaults()
	ax.TickText.Size = 10
}

func (ax *Axis) growRange(lo, hi float64) {
	if ax.fixed {
		return
	}
	if !ax.minFixed && lo < ax.Min {
		ax.Min = lo
	}
	if hi > ax.Max {
		ax.Max = hi
	}
}

// sanitizeRange makes the range finite and non-degenerate.
func (ax *Axis) sanitizeRange() {
	if math.IsInf(ax.Min, 0) {
		ax.Min = 0
	}
	if math.IsInf(ax.Max, 0) {
		ax.Max = 1
	}
	if ax.Min > ax.Max {
		ax.Min, ax.Max = ax.Max, ax.Min
	}
	if ax.Min == ax.Max {
		ax.Min -= 0.5
		ax.Max += 0.5
	}
}

func (ax *Axis) maxTickWidth() int {
	w := 0
	for _, tk := range ax.Ticks() {
		if tw := textWidth(tk.Label); tw > w {
			w = tw
		}
	}
	return w
}
