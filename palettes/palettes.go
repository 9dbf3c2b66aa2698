// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palettes provides ordered categorical color palettes and
// continuous colormaps for annotation coloring.
package palettes

import (
	"fmt"
	"image/color"
	"log/slog"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Palette is an ordered list of colors assigned to the categories of
// a categorical annotation.
type Palette []color.RGBA

// Default is the default 10-color property cycle.
func Default() Palette {
	return Palette{
		hex("#1f77b4"), hex("#ff7f0e"), hex("#2ca02c"), hex("#d62728"),
		hex("#9467bd"), hex("#8c564b"), hex("#e377c2"), hex("#7f7f7f"),
		hex("#bcbd22"), hex("#17becf"),
	}
}

// Default26 is the 26-color palette used for categorical annotations
// with up to 28 categories.
var Default26 = Palette{
	hex("#023fa5"), hex("#7d87b9"), hex("#bec1d4"), hex("#d6bcc0"),
	hex("#bb7784"), hex("#8e063b"), hex("#4a6fe3"), hex("#8595e1"),
	hex("#b5bbe3"), hex("#e6afb9"), hex("#e07b91"), hex("#d33f6a"),
	hex("#11c638"), hex("#8dd593"), hex("#c6dec7"), hex("#ead3c6"),
	hex("#f0b98d"), hex("#ef9708"), hex("#0fcfc0"), hex("#9cded6"),
	hex("#d5eae7"), hex("#f3e1eb"), hex("#f6c4e1"), hex("#f79cd4"),
	hex("#7f7f7f"), hex("#c7c7c7"),
}

// Default64 is the 64-color palette used for categorical annotations
// with more categories than Default26 covers.
var Default64 = Palette{
	hex("#1f77b4"), hex("#aec7e8"), hex("#ff7f0e"), hex("#ffbb78"),
	hex("#2ca02c"), hex("#98df8a"), hex("#d62728"), hex("#ff9896"),
	hex("#9467bd"), hex("#c5b0d5"), hex("#8c564b"), hex("#c49c94"),
	hex("#e377c2"), hex("#f7b6d2"), hex("#7f7f7f"), hex("#c7c7c7"),
	hex("#bcbd22"), hex("#dbdb8d"), hex("#17becf"), hex("#9edae5"),
	hex("#393b79"), hex("#5254a3"), hex("#6b6ecf"), hex("#9c9ede"),
	hex("#637939"), hex("#8ca252"), hex("#b5cf6b"), hex("#cedb9c"),
	hex("#8c6d31"), hex("#bd9e39"), hex("#e7ba52"), hex("#e7cb94"),
	hex("#843c39"), hex("#ad494a"), hex("#d6616b"), hex("#e7969c"),
	hex("#7b4173"), hex("#a55194"), hex("#ce6dbd"), hex("#de9ed6"),
	hex("#3182bd"), hex("#6baed6"), hex("#9ecae1"), hex("#c6dbef"),
	hex("#e6550d"), hex("#fd8d3c"), hex("#fdae6b"), hex("#fdd0a2"),
	hex("#31a354"), hex("#74c476"), hex("#a1d99b"), hex("#c7e9c0"),
	hex("#756bb1"), hex("#9e9ac8"), hex("#bcbddc"), hex("#dadaeb"),
	hex("#636363"), hex("#969696"), hex("#bdbdbd"), hex("#d9d9d9"),
	hex("#1ce6ff"), hex("#ff34ff"), hex("#ff4a46"), hex("#008941"),
}

// Adjust returns a palette suitable for the given category count:
// the input palette when it is long enough, Default26 for up to 28
// categories, Default64 within its size, and an all-grey palette
// beyond that.
func Adjust(p Palette, length int) Palette {
	if p == nil {
		p = Default()
	}
	if len(p) >= length {
		return p
	}
	switch {
	case length <= 28:
		return Default26
	case length <= len(Default64):
		return Default64
	}
	slog.Info("palettes: more categories than colors available, initializing as grey", "categories", length)
	grey := colornames.Map["grey"]
	out := make(Palette, length)
	for i := range out {
		out[i] = grey
	}
	return out
}

// Spaced returns n maximally spaced categorical colors, cycling hues
// with progressively varied luminance and chroma.
func Spaced(n int) Palette {
	hues := []float64{255, 25, 150, 105, 340, 210, 60, 300}
	lums := []float64{0.65, 0.8, 0.45, 0.65, 0.8}
	chromas := []float64{0.9, 0.9, 0.9, 0.25, 0.25}
	out := make(Palette, n)
	for i := range out {
		hi := i % len(hues)
		ti := (i / len(hues)) % len(lums)
		c := colorful.Hcl(hues[hi], chromas[ti], lums[ti]).Clamped()
		r, g, b := c.RGB255()
		out[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return out
}

// FromHex parses a palette from hex color strings.
func FromHex(hexes []string) (Palette, error) {
	out := make(Palette, len(hexes))
	for i, h := range hexes {
		c, err := ParseColor(h)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// Hex returns the palette as hex color strings.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return out
}

// IsColorLike reports whether s is a literal color: a hex string or a
// known color name.
func IsColorLike(s string) bool {
	_, err := ParseColor(s)
	return err == nil
}

// ParseColor parses a literal color given as "#rrggbb", "#rgb", or a
// named color.
func ParseColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{}, fmt.Errorf("palettes: empty color")
	}
	if strings.HasPrefix(s, "#") {
		h := s[1:]
		if len(h) == 3 {
			h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
		}
		c, err := colorful.Hex("#" + strings.ToLower(h))
		if err != nil {
			return color.RGBA{}, fmt.Errorf("palettes: invalid hex color %q", s)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	// single-letter matplotlib shorthands are common in user code
	if c, ok := shorthands[s]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("palettes: unknown color %q", s)
}

var shorthands = map[string]color.RGBA{
	"b": colornames.Blue,
	"g": colornames.Green,
	"r": colornames.Red,
	"c": colornames.Cyan,
	"m": colornames.Magenta,
	"y": colornames.Yellow,
	"k": colornames.Black,
	"w": colornames.White,
}

// hex parses a compile-time hex constant, panicking on bad input.
func hex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("palettes: bad hex constant " + s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
