// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/scviz/scviz/adata"
	"github.com/scviz/scviz/palettes"
	"github.com/scviz/scviz/stats"
)

// ColoringKind says how a resolved colorkey colors the observations.
type ColoringKind int32

const (
	// SingleColor colors every observation with one literal color.
	SingleColor ColoringKind = iota

	// CategoryColors colors each observation by its category, using
	// the palette cached on the dataset.
	CategoryColors

	// ValueColors colors each observation by a continuous value mapped
	// through a colormap.
	ValueColors
)

// Coloring is a resolved colorkey: either one literal color, one
// color per observation, or one continuous value per observation.
type Coloring struct {
	Kind ColoringKind

	// Single is set for SingleColor.
	Single color.RGBA

	// Colors is set for CategoryColors, one per observation.
	Colors []color.RGBA

	// Values is set for ValueColors, one per observation (or per
	// feature when the key names a numeric Var column).
	Values []float64
}

// IsCategorical reports whether the colorkey refers to a categorical
// annotation or a literal color rather than continuous values. Feature
// names take precedence over annotation names of the same spelling.
func IsCategorical(ad *adata.AnnData, key string) bool {
	if _, ok := ad.VarIndex(key); ok {
		return false
	}
	if _, ok := ad.Obs.Categorical(key); ok {
		return true
	}
	return palettes.IsColorLike(key)
}

// CategoryPalette returns the palette for a categorical obs
// annotation, reusing the palette cached in Uns under "<key>_colors"
// when present and long enough, and generating, caching, and
// returning a fresh one otherwise. The returned palette always has at
// least one color per category.
func CategoryPalette(ad *adata.AnnData, key string) (palettes.Palette, error) {
	ct, ok := ad.Obs.Categorical(key)
	if !ok {
		return nil, fmt.Errorf("plotting: %q is not a categorical annotation", key)
	}
	n := ct.NumCategories()
	cacheKey := key + "_colors"
	if cached, ok := ad.Uns[cacheKey]; ok {
		if hexes, ok := cached.([]string); ok && len(hexes) >= n {
			if p, err := palettes.FromHex(hexes); err == nil {
				return p, nil
			}
		}
		// cached palette is too short or malformed: regenerate
	}
	p := takeCycle(palettes.Adjust(nil, n), n)
	ad.Uns[cacheKey] = p.Hex()
	return p, nil
}

// takeCycle takes n colors from p, cycling when p is shorter.
func takeCycle(p palettes.Palette, n int) palettes.Palette {
	out := make(palettes.Palette, n)
	for i := range out {
		out[i] = p[i%len(p)]
	}
	return out
}

// ObsColors returns one color per observation for a categorical obs
// annotation, assigning each category its palette color.
func ObsColors(ad *adata.AnnData, key string) ([]color.RGBA, error) {
	ct, ok := ad.Obs.Categorical(key)
	if !ok {
		return nil, fmt.Errorf("plotting: %q is not a categorical annotation", key)
	}
	pal, err := CategoryPalette(ad, key)
	if err != nil {
		return nil, err
	}
	out := make([]color.RGBA, len(ct.Codes))
	for i, code := range ct.Codes {
		out[i] = pal[code]
	}
	return out, nil
}

// InterpretColorkey resolves a heterogeneous colorkey into a Coloring.
// The key may be nil (use the dataset default), a literal color name
// or hex string, the name of a categorical or numeric obs annotation,
// a feature name (read from the given layer, falling back to X), the
// name of a numeric Var column, or an explicit []float64 of values.
// Literal colors win over annotation names of the same spelling;
// feature names win over both. Continuous values are clipped to the
// given percentile bounds when perc is non-nil.
func InterpretColorkey(ad *adata.AnnData, key any, layer string, perc []float64) (*Coloring, error) {
	if key == nil {
		key = DefaultColor(ad)
	}
	switch k := key.(type) {
	case []float64:
		return &Coloring{Kind: ValueColors, Values: clipValues(k, perc)}, nil
	case string:
		if _, ok := ad.VarIndex(k); ok {
			vals, err := ad.GeneColumn(k, layer)
			if err != nil {
				return nil, err
			}
			return &Coloring{Kind: ValueColors, Values: clipValues(vals, perc)}, nil
		}
		if palettes.IsColorLike(k) {
			c, err := palettes.ParseColor(k)
			if err != nil {
				return nil, err
			}
			return &Coloring{Kind: SingleColor, Single: c}, nil
		}
		if _, ok := ad.Obs.Categorical(k); ok {
			cols, err := ObsColors(ad, k)
			if err != nil {
				return nil, err
			}
			return &Coloring{Kind: CategoryColors, Colors: cols}, nil
		}
		if vals, ok := ad.Obs.Floats(k); ok {
			return &Coloring{Kind: ValueColors, Values: clipValues(vals, perc)}, nil
		}
		if vals, ok := ad.Var.Floats(k); ok {
			return &Coloring{Kind: ValueColors, Values: clipValues(vals, perc)}, nil
		}
		return nil, fmt.Errorf("plotting: invalid color key %q: pass a valid annotation, feature name, or color", k)
	}
	return nil, fmt.Errorf("plotting: unsupported color key type %T", key)
}

func clipValues(vals []float64, perc []float64) []float64 {
	out := slices.Clone(vals)
	if perc != nil {
		out = stats.ClipPercentile(out, perc)
	}
	return out
}

// DefaultColorMap picks the colormap for a continuous colorkey:
// "viridis_r" for per-observation values spanning [-1, 1] or [0, 1]
// (correlation- or fraction-like), and the empty string otherwise,
// leaving the choice to the caller.
func DefaultColorMap(ad *adata.AnnData, key any) string {
	var vals []float64
	switch k := key.(type) {
	case []float64:
		vals = k
	case string:
		if _, isVar := ad.VarIndex(k); isVar {
			return ""
		}
		if fl, ok := ad.Obs.Floats(k); ok {
			vals = fl
		}
	}
	if len(vals) != ad.NObs() || len(vals) == 0 {
		return ""
	}
	mn, mx := stats.MinMax(vals)
	if (mn == -1 || mn == 0) && mx == 1 {
		return "viridis_r"
	}
	return ""
}
