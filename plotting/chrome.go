// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"strings"

	"github.com/scviz/scviz/figure"
	"github.com/scviz/scviz/palettes"
)

// AxesOptions configures [UpdateAxes].
type AxesOptions struct {
	// XLim and YLim fix axis limits when non-nil ([lo, hi]).
	XLim, YLim []float64

	// FontSize scales tick labels; zero keeps the default.
	FontSize float32

	// Embedding axes show no ticks: coordinates of a low-dimensional
	// projection carry no readable scale.
	Embedding bool

	// FrameOn overrides the settings default when non-nil.
	FrameOn *bool
}

// UpdateAxes applies limits, tick style and frame visibility to an
// axes: embedding plots lose their ticks entirely, quantitative plots
// get sparse integer ticks, and frameless plots lose labels too.
func UpdateAxes(ax *figure.Axes, se *Settings, opt *AxesOptions) {
	se = se.orDefault()
	if opt == nil {
		opt = &AxesOptions{}
	}
	if len(opt.XLim) == 2 {
		ax.SetXLim(opt.XLim[0], opt.XLim[1])
	}
	if len(opt.YLim) == 2 {
		ax.SetYLim(opt.YLim[0], opt.YLim[1])
	}
	frameon := se.FrameOn
	if opt.FrameOn != nil {
		frameon = *opt.FrameOn
	}
	if !frameon {
		ax.FrameOn = false
		ax.X.ShowTicks = false
		ax.Y.ShowTicks = false
		ax.X.Label.Text = ""
		ax.Y.Label.Text = ""
		return
	}
	ax.FrameOn = true
	if opt.Embedding {
		ax.X.ShowTicks = false
		ax.Y.ShowTicks = false
		return
	}
	ax.X.NTicks = 3
	ax.Y.NTicks = 3
	ax.X.Integer = true
	ax.Y.Integer = true
	if opt.FontSize > 0 {
		ax.X.TickText.Size = 0.75 * opt.FontSize
		ax.Y.TickText.Size = 0.75 * opt.FontSize
	}
}

// componentNames maps a basis to its axis-label component prefix.
func componentName(basis string) string {
	switch basis {
	case "diffmap":
		return "DC"
	case "tsne":
		return "tSNE"
	case "umap":
		return "UMAP"
	case "pca":
		return "PC"
	}
	return basis
}

// DisplayName turns an annotation key into display text, replacing
// underscores with spaces.
func DisplayName(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

// SetLabel sets the axis labels. Explicit labels win; otherwise a
// non-empty basis labels the axes with its component names.
func SetLabel(ax *figure.Axes, xlabel, ylabel, basis string, fontsize float32) {
	if xlabel == "" && basis != "" {
		xlabel = componentName(basis) + "1"
	}
	if ylabel == "" && basis != "" {
		ylabel = componentName(basis) + "2"
	}
	ax.X.Label.Text = DisplayName(xlabel)
	ax.Y.Label.Text = DisplayName(ylabel)
	if fontsize > 0 {
		ax.X.Label.Size = fontsize
		ax.Y.Label.Size = fontsize
	}
}

// SetTitle sets the axes title: the explicit title when given,
// otherwise composed from the colorkey and layer. Literal colors make
// meaningless titles and are filtered out.
func SetTitle(ax *figure.Axes, title, layer, colorkey string, fontsize float32) {
	if palettes.IsColorLike(title) {
		title = ""
	}
	if palettes.IsColorLike(colorkey) {
		colorkey = ""
	}
	switch {
	case title != "":
	case layer != "" && colorkey != "":
		title = colorkey + " " + layer
	case colorkey != "":
		title = colorkey
	}
	ax.Title.Text = DisplayName(title)
	if fontsize > 0 {
		ax.Title.Size = fontsize
	}
}

// SetFrame toggles the axes frame, with nil meaning the settings
// default.
func SetFrame(ax *figure.Axes, se *Settings, frameon *bool) {
	se = se.orDefault()
	on := se.FrameOn
	if frameon != nil {
		on = *frameon
	}
	ax.FrameOn = on
	if !on {
		ax.X.ShowTicks = false
		ax.Y.ShowTicks = false
	}
}

// SetColorbar attaches an inset colorbar for a continuous colorkey.
func SetColorbar(ax *figure.Axes, cm palettes.Colormap, min, max float64, labelsize float32) {
	cb := figure.NewColorbar(cm, min, max)
	if labelsize > 0 {
		cb.LabelSize = labelsize
	}
	ax.AddColorbar(cb)
}
