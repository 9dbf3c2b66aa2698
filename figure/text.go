// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"image"
	"image/color"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Text is a styled text item. Rendering uses a fixed-size bitmap
// face, so Size only influences layout spacing.
type Text struct {
	// Text is the string to render.
	Text string

	// Size is the nominal font size in points.
	Size float32

	// Color is the text color.
	Color color.RGBA
}

// Defaults sets text defaults.
func (tx *Text) Defaults() {
	tx.Size = 12
	tx.Color = colornames.Black
}

var face = basicfont.Face7x13

const (
	textHeight = 13
	charWidth  = 7
)

// textWidth returns the pixel width of s in the render face.
func textWidth(s string) int { return charWidth * len(s) }

type halign int

const (
	alignLeft halign = iota
	alignCenter
	alignRight
)

type valign int

const (
	alignTop valign = iota
	alignBaseline
)

// drawText renders tx anchored at pos with the given alignment.
// For alignTop, pos.Y is the top of the text box.
func (fg *Figure) drawText(tx Text, pos image.Point, ha halign, va valign) {
	if tx.Text == "" {
		return
	}
	x := pos.X
	switch ha {
	case alignCenter:
		x -= textWidth(tx.Text) / 2
	case alignRight:
		x -= textWidth(tx.Text)
	}
	y := pos.Y
	if va == alignTop {
		y += face.Ascent
	}
	col := tx.Color
	if col.A == 0 {
		col = colornames.Black
	}
	dr := &font.Drawer{
		Dst:  fg.Pixels,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	dr.DrawString(tx.Text)
}

// drawTextVertical renders tx rotated 90 degrees counterclockwise,
// centered vertically on pos, with pos.X the right edge of the text.
func (fg *Figure) drawTextVertical(tx Text, pos image.Point) {
	if tx.Text == "" {
		return
	}
	w := textWidth(tx.Text)
	tmp := image.NewRGBA(image.Rect(0, 0, w, textHeight))
	col := tx.Color
	if col.A == 0 {
		col = colornames.Black
	}
	dr := &font.Drawer{
		Dst:  tmp,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	dr.DrawString(tx.Text)

	x0 := pos.X - textHeight
	y0 := pos.Y + w/2
	for sy := 0; sy < textHeight; sy++ {
		for sx := 0; sx < w; sx++ {
			c := tmp.RGBAAt(sx, sy)
			if c.A == 0 {
				continue
			}
			fg.blendPixel(x0+sy, y0-sx, c)
		}
	}
}
