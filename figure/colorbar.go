// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"image"

	"golang.org/x/image/colornames"

	"github.com/scviz/scviz/palettes"
)

// Colorbar is an inset colorbar anchored in the lower right of the
// axes, spanning Width x Height as fractions of the axes size.
type Colorbar struct {
	// Map provides the colors.
	Map palettes.Colormap

	// Min and Max are the data values at the bar ends.
	Min, Max float64

	// Width and Height are fractions of the axes size.
	Width, Height float32

	// NTicks is the desired tick count.
	NTicks int

	// LabelSize is the tick label size in points.
	LabelSize float32
}

// NewColorbar returns a colorbar with the conventional inset
// geometry: 2% wide, 30% high.
func NewColorbar(cm palettes.Colormap, min, max float64) *Colorbar {
	return &Colorbar{Map: cm, Min: min, Max: max, Width: 0.02, Height: 0.30, NTicks: 3, LabelSize: 10}
}

// AddColorbar attaches a colorbar inset to the axes.
func (ax *Axes) AddColorbar(cb *Colorbar) {
	ax.Colorbars = append(ax.Colorbars, cb)
}

func (cb *Colorbar) draw(fg *Figure, ax *Axes) {
	if cb.Map == nil {
		return
	}
	b := ax.Bounds()
	w := max(2, int(cb.Width*float32(b.Dx())))
	h := max(2, int(cb.Height*float32(b.Dy())))
	x1 := b.Max.X - 2
	y1 := b.Max.Y - 2
	bar := image.Rect(x1-w, y1-h, x1, y1)

	for y := bar.Min.Y; y < bar.Max.Y; y++ {
		t := float64(bar.Max.Y-1-y) / float64(bar.Dy()-1)
		c := cb.Map.At(t)
		for x := bar.Min.X; x < bar.Max.X; x++ {
			fg.blendPixel(x, y, c)
		}
	}
	fg.strokeRect(bar, colornames.Black)

	// integer ticks along the left side of the bar
	tkax := Axis{Min: cb.Min, Max: cb.Max, NTicks: cb.NTicks, Integer: true}
	span := cb.Max - cb.Min
	if span == 0 {
		span = 1
	}
	tx := Text{Size: cb.LabelSize, Color: colornames.Black}
	for _, tk := range tkax.Ticks() {
		fy := float64(bar.Max.Y) - (tk.Value-cb.Min)/span*float64(bar.Dy())
		y := int(fy)
		if y < bar.Min.Y || y > bar.Max.Y {
			continue
		}
		fg.strokeLine(float32(bar.Min.X-3), float32(y), float32(bar.Min.X), float32(y), colornames.Black, 1)
		tx.Text = tk.Label
		fg.drawText(tx, image.Point{X: bar.Min.X - 5, Y: y - textHeight/2}, alignRight, alignTop)
	}
}
