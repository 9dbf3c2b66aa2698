// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palettes

import (
	"fmt"
	"image/color"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Colormap maps normalized values in [0, 1] to colors.
type Colormap interface {
	At(t float64) color.RGBA
}

// Linear is a colormap interpolating linearly between stop colors,
// blending in the Lab space. Alpha, when set, ramps linearly between
// per-stop values.
type Linear struct {
	stops  []colorful.Color
	alphas []float64
}

// NewLinear returns a Linear colormap over the given stops.
func NewLinear(stops []color.Color) (*Linear, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("palettes: colormap needs at least two stops")
	}
	lm := &Linear{stops: make([]colorful.Color, len(stops))}
	for i, s := range stops {
		c, ok := colorful.MakeColor(s)
		if !ok {
			return nil, fmt.Errorf("palettes: colormap stop %d is fully transparent", i)
		}
		lm.stops[i] = c
	}
	return lm, nil
}

// At returns the color at position t, clamped to [0, 1].
func (lm *Linear) At(t float64) color.RGBA {
	n := len(lm.stops)
	if t <= 0 {
		return lm.rgba(0, 0)
	}
	if t >= 1 {
		return lm.rgba(n-1, 0)
	}
	pos := t * float64(n-1)
	lo := int(pos)
	frac := pos - float64(lo)
	return lm.blend(lo, frac)
}

func (lm *Linear) alpha(i int, frac float64) float64 {
	if lm.alphas == nil {
		return 1
	}
	a := lm.alphas[i]
	if frac > 0 && i+1 < len(lm.alphas) {
		a += frac * (lm.alphas[i+1] - a)
	}
	return a
}

func (lm *Linear) rgba(i int, frac float64) color.RGBA {
	r, g, b := lm.stops[i].RGB255()
	return color.RGBA{R: r, G: g, B: b, A: uint8(lm.alpha(i, frac)*255 + 0.5)}
}

func (lm *Linear) blend(lo int, frac float64) color.RGBA {
	c := lm.stops[lo].BlendLab(lm.stops[lo+1], frac).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: uint8(lm.alpha(lo, frac)*255 + 0.5)}
}

// Reversed returns the colormap with stop order reversed.
func (lm *Linear) Reversed() *Linear {
	rev := &Linear{stops: make([]colorful.Color, len(lm.stops))}
	for i, s := range lm.stops {
		rev.stops[len(lm.stops)-1-i] = s
	}
	if lm.alphas != nil {
		rev.alphas = slices.Clone(lm.alphas)
		slices.Reverse(rev.alphas)
	}
	return rev
}

// FromColors builds a custom colormap from literal colors (names or
// hex strings) with an optional per-stop alpha ramp. alpha must be
// nil or the same length as cols.
func FromColors(cols []string, alpha []float64) (*Linear, error) {
	if alpha != nil && len(alpha) != len(cols) {
		return nil, fmt.Errorf("palettes: %d alpha values for %d colors", len(alpha), len(cols))
	}
	stops := make([]color.Color, len(cols))
	for i, cs := range cols {
		c, err := ParseColor(cs)
		if err != nil {
			return nil, err
		}
		stops[i] = c
	}
	lm, err := NewLinear(stops)
	if err != nil {
		return nil, err
	}
	if alpha != nil {
		lm.alphas = slices.Clone(alpha)
	}
	return lm, nil
}

func mustLinear(hexes ...string) *Linear {
	stops := make([]color.Color, len(hexes))
	for i, h := range hexes {
		stops[i] = hex(h)
	}
	lm, err := NewLinear(stops)
	if err != nil {
		panic(err)
	}
	return lm
}

// Standard perceptual colormaps.
var (
	Viridis = mustLinear(
		"#440154", "#482374", "#404387", "#345e8d", "#29788e",
		"#20908c", "#22a784", "#44be70", "#79d151", "#bdde26", "#fde725")
	Plasma = mustLinear(
		"#0d0887", "#4b03a1", "#7d03a8", "#a82296", "#cb4679",
		"#e56b5d", "#f89441", "#fdc328", "#f0f921")
	Inferno = mustLinear(
		"#000004", "#280b54", "#65156e", "#9f2a63", "#d44842",
		"#f57d15", "#fac127", "#fcffa4")
	Magma = mustLinear(
		"#000004", "#1c1044", "#4f127b", "#812581", "#b5367a",
		"#e55064", "#fb8761", "#fec287", "#fcfdbf")
	Greys = mustLinear("#ffffff", "#000000")
)

// ByName returns a standard colormap by name; a "_r" suffix returns
// the reversed variant.
func ByName(name string) (Colormap, bool) {
	rev := false
	nm := strings.ToLower(name)
	if strings.HasSuffix(nm, "_r") {
		rev = true
		nm = strings.TrimSuffix(nm, "_r")
	}
	var lm *Linear
	switch nm {
	case "viridis":
		lm = Viridis
	case "plasma":
		lm = Plasma
	case "inferno":
		lm = Inferno
	case "magma":
		lm = Magma
	case "greys", "grays":
		lm = Greys
	default:
		return nil, false
	}
	if rev {
		return lm.Reversed(), true
	}
	return lm, true
}
