// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"image"
	"image/color"
	"sort"

	"github.com/chewxy/math32"
)

// blendPixel composites c over the pixel at (x, y), honoring the
// current clip rectangle.
func (fg *Figure) blendPixel(x, y int, c color.RGBA) {
	if c.A == 0 {
		return
	}
	pt := image.Point{X: x, Y: y}
	if !pt.In(fg.clip) || !pt.In(fg.Pixels.Bounds()) {
		return
	}
	if c.A == 255 {
		fg.Pixels.SetRGBA(x, y, c)
		return
	}
	dst := fg.Pixels.RGBAAt(x, y)
	a := uint32(c.A)
	ia := 255 - a
	out := color.RGBA{
		R: uint8((uint32(c.R)*a + uint32(dst.R)*ia) / 255),
		G: uint8((uint32(c.G)*a + uint32(dst.G)*ia) / 255),
		B: uint8((uint32(c.B)*a + uint32(dst.B)*ia) / 255),
		A: uint8(min(255, uint32(c.A)+uint32(dst.A)*ia/255)),
	}
	fg.Pixels.SetRGBA(x, y, out)
}

// fillRect fills the rectangle with a solid color.
func (fg *Figure) fillRect(r image.Rectangle, c color.RGBA) {
	r = r.Intersect(fg.clip)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			fg.blendPixel(x, y, c)
		}
	}
}

// strokeRect outlines the rectangle with a one-pixel border.
func (fg *Figure) strokeRect(r image.Rectangle, c color.RGBA) {
	fx0, fy0 := float32(r.Min.X), float32(r.Min.Y)
	fx1, fy1 := float32(r.Max.X), float32(r.Max.Y)
	fg.strokeLine(fx0, fy0, fx1, fy0, c, 1)
	fg.strokeLine(fx0, fy1, fx1, fy1, c, 1)
	fg.strokeLine(fx0, fy0, fx0, fy1, c, 1)
	fg.strokeLine(fx1, fy0, fx1, fy1, c, 1)
}

// strokeLine draws a line segment of the given width.
func (fg *Figure) strokeLine(x0, y0, x1, y1 float32, c color.RGBA, width float32) {
	if width <= 1.5 {
		fg.thinLine(x0, y0, x1, y1, c)
		return
	}
	dx, dy := x1-x0, y1-y0
	ln := math32.Sqrt(dx*dx + dy*dy)
	if ln == 0 {
		fg.fillCircle(x0, y0, width/2, c)
		return
	}
	// perpendicular half-width offset, drawn as a filled quad
	ox := -dy / ln * width / 2
	oy := dx / ln * width / 2
	fg.fillPoly([]float32{x0 + ox, x1 + ox, x1 - ox, x0 - ox},
		[]float32{y0 + oy, y1 + oy, y1 - oy, y0 - oy}, c)
}

// thinLine draws a one-pixel line (Bresenham over float endpoints).
func (fg *Figure) thinLine(x0, y0, x1, y1 float32, c color.RGBA) {
	steep := math32.Abs(y1-y0) > math32.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	dx := x1 - x0
	dy := y1 - y0
	grad := float32(0)
	if dx != 0 {
		grad = dy / dx
	}
	for x := int(math32.Round(x0)); x <= int(math32.Round(x1)); x++ {
		yi := int(math32.Round(y0 + grad*(float32(x)-x0)))
		if steep {
			fg.blendPixel(yi, x, c)
		} else {
			fg.blendPixel(x, yi, c)
		}
	}
}

// strokeDashedLine draws a line with the given on/off dash pattern.
func (fg *Figure) strokeDashedLine(x0, y0, x1, y1 float32, c color.RGBA, width float32, dashes []float32) {
	if len(dashes) == 0 {
		fg.strokeLine(x0, y0, x1, y1, c, width)
		return
	}
	dx, dy := x1-x0, y1-y0
	ln := math32.Sqrt(dx*dx + dy*dy)
	if ln == 0 {
		return
	}
	ux, uy := dx/ln, dy/ln
	pos := float32(0)
	di := 0
	on := true
	for pos < ln {
		seg := dashes[di%len(dashes)]
		end := math32.Min(pos+seg, ln)
		if on {
			fg.strokeLine(x0+ux*pos, y0+uy*pos, x0+ux*end, y0+uy*end, c, width)
		}
		pos = end
		di++
		on = !on
	}
}

// fillCircle fills a circle centered at (cx, cy).
func (fg *Figure) fillCircle(cx, cy, r float32, c color.RGBA) {
	if r <= 0.5 {
		fg.blendPixel(int(math32.Round(cx)), int(math32.Round(cy)), c)
		return
	}
	r2 := r * r
	for y := int(math32.Floor(cy - r)); y <= int(math32.Ceil(cy+r)); y++ {
		for x := int(math32.Floor(cx - r)); x <= int(math32.Ceil(cx+r)); x++ {
			dx := float32(x) - cx
			dy := float32(y) - cy
			if dx*dx+dy*dy <= r2 {
				fg.blendPixel(x, y, c)
			}
		}
	}
}

// fillPoly fills a polygon given by parallel x/y vertex slices using
// even-odd scanline filling.
func (fg *Figure) fillPoly(xs, ys []float32, c color.RGBA) {
	n := len(xs)
	if n < 3 || len(ys) != n {
		return
	}
	ymin, ymax := ys[0], ys[0]
	for _, y := range ys[1:] {
		ymin = math32.Min(ymin, y)
		ymax = math32.Max(ymax, y)
	}
	y0 := int(math32.Floor(ymin))
	y1 := int(math32.Ceil(ymax))
	xints := make([]float32, 0, n)
	for y := y0; y <= y1; y++ {
		fy := float32(y) + 0.5
		xints = xints[:0]
		j := n - 1
		for i := 0; i < n; i++ {
			yi, yj := ys[i], ys[j]
			if (yi <= fy && yj > fy) || (yj <= fy && yi > fy) {
				t := (fy - yi) / (yj - yi)
				xints = append(xints, xs[i]+t*(xs[j]-xs[i]))
			}
			j = i
		}
		sort.Slice(xints, func(a, b int) bool { return xints[a] < xints[b] })
		for k := 0; k+1 < len(xints); k += 2 {
			xa := int(math32.Round(xints[k]))
			xb := int(math32.Round(xints[k+1]))
			for x := xa; x <= xb; x++ {
				fg.blendPixel(x, y, c)
			}
		}
	}
}

// withAlpha returns c scaled to the given opacity in [0, 1].
func withAlpha(c color.RGBA, alpha float32) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	c.A = uint8(float32(c.A) * alpha)
	return c
}
