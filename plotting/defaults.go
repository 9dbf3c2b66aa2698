// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"github.com/scviz/scviz/adata"
	"github.com/scviz/scviz/figure"
)

// DefaultSize returns the default marker size for scatter plots,
// scaled inversely with the number of observations.
func DefaultSize(ad *adata.AnnData, se *Settings) float64 {
	se = se.orDefault()
	size := 1.2e5 / float64(max(1, ad.NObs()))
	if se.Style == "scviz" {
		size = (size + 20) / 2
	}
	return size
}

// DefaultColor returns the default colorkey: the clustering annotation
// when present, grey otherwise.
func DefaultColor(ad *adata.AnnData) string {
	for _, k := range []string{"clusters", "louvain"} {
		if ad.Obs.Has(k) {
			return k
		}
	}
	return "grey"
}

// DefaultLegendLoc resolves the legend location for a categorical
// colorkey. An empty loc picks automatically: a corner legend for few
// categories, labels on the data for many. A non-empty loc is parsed
// and honored.
func DefaultLegendLoc(ad *adata.AnnData, colorkey, loc string) (figure.Location, error) {
	if loc != "" {
		return figure.ParseLocation(loc)
	}
	if ct, ok := ad.Obs.Categorical(colorkey); ok && ct.NumCategories() > 4 {
		return figure.LocOnData, nil
	}
	return figure.LocUpperRight, nil
}

// DefaultArrow returns head length, head width, and head axis length
// for velocity arrows at the given scale. A non-positive scale means 1.
func DefaultArrow(scale float64) (headLength, headWidth, headAxisLength float64) {
	if scale <= 0 {
		scale = 1
	}
	return 12 * scale, 10 * scale, 8 * scale
}
