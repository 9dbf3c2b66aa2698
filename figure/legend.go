// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/colornames"
)

// Location places a legend within the axes.
type Location int32

const (
	// LocBest picks a location automatically (upper right).
	LocBest Location = iota

	// LocNone disables the legend.
	LocNone

	LocUpperRight
	LocUpperLeft
	LocLowerRight
	LocLowerLeft

	// LocOnData places labels on the data itself rather than in a
	// legend box; the caller is responsible for drawing the labels.
	LocOnData
)

// ParseLocation parses a legend location name.
func ParseLocation(s string) (Location, error) {
	switch s {
	case "", "best":
		return LocBest, nil
	case "none":
		return LocNone, nil
	case "upper right":
		return LocUpperRight, nil
	case "upper left":
		return LocUpperLeft, nil
	case "lower right":
		return LocLowerRight, nil
	case "lower left":
		return LocLowerLeft, nil
	case "on data":
		return LocOnData, nil
	}
	return LocBest, fmt.Errorf("figure: unknown legend location %q", s)
}

// LegendEntry is one swatch/label pair.
type LegendEntry struct {
	Label string
	Color color.RGBA
}

// Legend is a list of entries drawn in a corner of the axes.
type Legend struct {
	// Entries are drawn top to bottom.
	Entries []LegendEntry

	// Loc places the legend.
	Loc Location

	// Text styles the entry labels.
	Text Text
}

// Defaults sets legend defaults.
func (lg *Legend) Defaults() {
	lg.Text.Defaults()
	lg.Text.Size = 10
}

// Add appends an entry.
func (lg *Legend) Add(label string, c color.RGBA) {
	lg.Entries = append(lg.Entries, LegendEntry{Label: label, Color: c})
}

const (
	legendSwatch = 10
	legendPad    = 4
)

func (lg *Legend) draw(fg *Figure, ax *Axes) {
	if len(lg.Entries) == 0 || lg.Loc == LocNone || lg.Loc == LocOnData {
		return
	}
	wmax := 0
	for _, e := range lg.Entries {
		if w := textWidth(e.Label); w > wmax {
			wmax = w
		}
	}
	w := legendPad + legendSwatch + legendPad + wmax + legendPad
	h := legendPad + len(lg.Entries)*(textHeight+2)

	b := ax.Bounds()
	var org image.Point
	switch lg.Loc {
	case LocUpperLeft:
		org = image.Point{X: b.Min.X + legendPad, Y: b.Min.Y + legendPad}
	case LocLowerRight:
		org = image.Point{X: b.Max.X - w - legendPad, Y: b.Max.Y - h - legendPad}
	case LocLowerLeft:
		org = image.Point{X: b.Min.X + legendPad, Y: b.Max.Y - h - legendPad}
	default: // best, upper right
		org = image.Point{X: b.Max.X - w - legendPad, Y: b.Min.Y + legendPad}
	}

	box := image.Rect(org.X, org.Y, org.X+w, org.Y+h)
	fg.fillRect(box, withAlpha(colornames.White, 0.8))
	fg.strokeRect(box, colornames.Grey)

	y := org.Y + legendPad
	for _, e := range lg.Entries {
		sw := image.Rect(org.X+legendPad, y+1, org.X+legendPad+legendSwatch, y+1+legendSwatch)
		fg.fillRect(sw, e.Color)
		lg.Text.Text = e.Label
		fg.drawText(lg.Text, image.Point{X: org.X + legendPad + legendSwatch + legendPad, Y: y}, alignLeft, alignTop)
		y += textHeight + 2
	}
}
