// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package figure provides a lightweight figure and axes context for
// the plotting helpers: axes with tick locators, legends, colorbar
// insets, raster rendering into an image buffer, and extension-driven
// figure saving.
package figure

import (
	"image"
	"image/color"

	"golang.org/x/image/colornames"
)

// Figure is a plot surface holding one or more axes and the pixel
// buffer they render into.
type Figure struct {
	// Size is the pixel size of the figure at the working DPI.
	Size image.Point

	// DPI is the working resolution, used to derive pixel sizes when
	// saving at a different resolution.
	DPI float32

	// Background fills the figure before drawing. Defaults to white.
	Background color.RGBA

	// Axes are drawn in order.
	Axes []*Axes

	// Pixels is the rendered image, allocated by Resize.
	Pixels *image.RGBA

	clip image.Rectangle
}

// DefaultSize is the default figure size in pixels.
var DefaultSize = image.Point{X: 640, Y: 480}

// New returns a Figure with default size, DPI and background.
func New() *Figure {
	fg := &Figure{DPI: 100, Background: colornames.White}
	fg.Resize(DefaultSize)
	return fg
}

// Resize sets the figure size and reallocates the pixel buffer when
// the size changed.
func (fg *Figure) Resize(sz image.Point) {
	fg.Size = sz
	if fg.Pixels == nil || fg.Pixels.Bounds().Size() != sz {
		fg.Pixels = image.NewRGBA(image.Rectangle{Max: sz})
	}
	fg.clip = fg.Pixels.Bounds()
}

// AddAxes adds an axes occupying the given normalized region of the
// figure (origin top left, both corners in [0, 1]).
func (fg *Figure) AddAxes(rect Rect) *Axes {
	ax := NewAxes()
	ax.Rect = rect
	fg.Axes = append(fg.Axes, ax)
	return ax
}

// CurAxes returns the last axes, adding a default full-figure axes
// when none exist yet.
func (fg *Figure) CurAxes() *Axes {
	if len(fg.Axes) == 0 {
		return fg.AddAxes(DefaultAxesRect)
	}
	return fg.Axes[len(fg.Axes)-1]
}

// Draw renders the figure into Pixels. Axes are drawn in order, and
// within each axes the plotters are drawn in the order added.
func (fg *Figure) Draw() {
	fg.Resize(fg.Size)
	fg.clip = fg.Pixels.Bounds()
	fg.fillRect(fg.Pixels.Bounds(), fg.Background)
	for _, ax := range fg.Axes {
		ax.draw(fg)
	}
}

// pushClip limits subsequent drawing to the given rectangle,
// returning the previous clip for popClip.
func (fg *Figure) pushClip(r image.Rectangle) image.Rectangle {
	prev := fg.clip
	fg.clip = r.Intersect(prev)
	return prev
}

func (fg *Figure) popClip(prev image.Rectangle) {
	fg.clip = prev
}

// Rect is a rectangle in normalized figure coordinates.
type Rect struct {
	MinX, MinY, MaxX, MaxY float32
}

// DefaultAxesRect leaves room for the title, axis labels and tick
// labels around a single axes.
var DefaultAxesRect = Rect{MinX: 0.1, MinY: 0.08, MaxX: 0.96, MaxY: 0.9}

// pixels returns the rect in pixel coordinates for the given figure.
func (rc Rect) pixels(fg *Figure) image.Rectangle {
	w := float32(fg.Size.X)
	h := float32(fg.Size.Y)
	return image.Rect(int(rc.MinX*w), int(rc.MinY*h), int(rc.MaxX*w), int(rc.MaxY*h))
}
