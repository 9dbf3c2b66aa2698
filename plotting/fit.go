// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"strings"

	"golang.org/x/image/colornames"

	"github.com/scviz/scviz/adata"
	"github.com/scviz/scviz/figure"
	"github.com/scviz/scviz/palettes"
	"github.com/scviz/scviz/stats"
)

// PlotLinearFit draws the steady-state ratio lines for a gene on a
// phase portrait: for each velocity fit with a stored gamma, the line
// y = gamma/beta * x + offset/beta over [0, 98th percentile] of the
// x layer. Fits with a stored variance layer are drawn dashed; the
// first fit is black, later ones cycle the default palette. It returns
// the legend labels for the drawn fits.
func PlotLinearFit(ax *figure.Axes, ad *adata.AnnData, gene, vkey, xkey string, linewidth float32) ([]string, error) {
	xvals, err := ad.GeneColumn(gene, xkey)
	if err != nil {
		return nil, err
	}
	xmax := stats.Percentile(stats.Finite(xvals), 98)
	xnew := stats.Linspace(0, xmax, 50)

	var fits []string
	if vkey != "" {
		fits = MakeUniqueList([]string{vkey})
	} else {
		fits = ad.LayerKeys()
	}
	kept := fits[:0]
	for _, fit := range fits {
		if strings.Contains(fit, "velocity") && ad.Var.Has(fit+"_gamma") {
			kept = append(kept, fit)
		}
	}

	gi, ok := ad.VarIndex(gene)
	if !ok {
		return nil, nil
	}
	if linewidth == 0 {
		linewidth = 1
	}
	labels := make([]string, 0, len(kept))
	for i, fit := range kept {
		gamma := varValue(ad, fit+"_gamma", gi, 1)
		beta := varValue(ad, fit+"_beta", gi, 1)
		offset := varValue(ad, fit+"_offset", gi, 0)
		ys := make([]float64, len(xnew))
		for j, x := range xnew {
			ys[j] = gamma/beta*x + offset/beta
		}
		ln, err := figure.NewLine(xnew, ys)
		if err != nil {
			return nil, err
		}
		ln.Width = linewidth
		if i == 0 {
			ln.Color = colornames.Black
		} else {
			pal := palettes.Default()
			ln.Color = pal[i%len(pal)]
		}
		if _, ok := ad.Layers["variance_"+fit]; ok {
			ln.Dashes = []float32{6, 4}
		}
		ax.Add(ln)
		if len(kept) > 1 {
			labels = append(labels, "steady-state ratio ("+fit+")")
		} else {
			labels = append(labels, "steady-state ratio")
		}
	}
	return labels, nil
}

// varValue reads a per-feature fit parameter, with a fallback when the
// column or index is missing.
func varValue(ad *adata.AnnData, key string, vi int, fallback float64) float64 {
	vals, ok := ad.Var.Floats(key)
	if !ok || vi >= len(vals) {
		return fallback
	}
	return vals[vi]
}
