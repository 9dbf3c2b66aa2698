// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scviz/scviz/figure"
)

func TestUpdateAxes(t *testing.T) {
	se := DefaultSettings()

	ax := figure.NewAxes()
	UpdateAxes(ax, se, &AxesOptions{XLim: []float64{0, 5}, FontSize: 12})
	assert.True(t, ax.FrameOn)
	assert.Equal(t, 3, ax.X.NTicks)
	assert.True(t, ax.X.Integer)
	assert.Equal(t, 5.0, ax.X.Max)
	assert.InDelta(t, 9.0, float64(ax.X.TickText.Size), 1e-6)

	ax = figure.NewAxes()
	UpdateAxes(ax, se, &AxesOptions{Embedding: true})
	assert.True(t, ax.FrameOn)
	assert.False(t, ax.X.ShowTicks)
	assert.False(t, ax.Y.ShowTicks)

	off := false
	ax = figure.NewAxes()
	ax.X.Label.Text = "x"
	UpdateAxes(ax, se, &AxesOptions{FrameOn: &off})
	assert.False(t, ax.FrameOn)
	assert.Empty(t, ax.X.Label.Text)
}

func TestSetLabel(t *testing.T) {
	ax := figure.NewAxes()
	SetLabel(ax, "", "", "umap", 0)
	assert.Equal(t, "UMAP1", ax.X.Label.Text)
	assert.Equal(t, "UMAP2", ax.Y.Label.Text)

	SetLabel(ax, "latent_time", "gene_count", "umap", 14)
	assert.Equal(t, "latent time", ax.X.Label.Text)
	assert.Equal(t, "gene count", ax.Y.Label.Text)
	assert.EqualValues(t, 14, ax.X.Label.Size)

	SetLabel(ax, "", "", "diffmap", 0)
	assert.Equal(t, "DC1", ax.X.Label.Text)
}

func TestSetTitle(t *testing.T) {
	ax := figure.NewAxes()

	SetTitle(ax, "my_plot", "", "", 0)
	assert.Equal(t, "my plot", ax.Title.Text)

	SetTitle(ax, "", "spliced", "Actb", 0)
	assert.Equal(t, "Actb spliced", ax.Title.Text)

	SetTitle(ax, "", "", "clusters", 0)
	assert.Equal(t, "clusters", ax.Title.Text)

	// literal colors never become titles
	SetTitle(ax, "", "", "red", 0)
	assert.Equal(t, "", ax.Title.Text)
	SetTitle(ax, "#ff0000", "", "", 0)
	assert.Equal(t, "", ax.Title.Text)
}

func TestHistCounts(t *testing.T) {
	fg := figure.New()
	vals := []float64{0.5, 1.5, 1.6, 2.5, 2.6, 2.7, math.NaN()}
	ax, err := Hist(fg, [][]float64{vals}, nil, &HistOptions{
		Bins: 3, XLim: []float64{0, 3}, Labels: []string{"counts"},
	})
	require.NoError(t, err)
	require.Len(t, ax.Plotters, 1)
	br, ok := ax.Plotters[0].(*figure.Bars)
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3}, br.Heights)
	assert.Len(t, ax.Legend.Entries, 1)
}

func TestHistKDENormalized(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	vals := make([]float64, 400)
	for i := range vals {
		vals[i] = rng.NormFloat64()
	}
	fg := figure.New()
	ax, err := Hist(fg, [][]float64{vals}, nil, &HistOptions{KDE: true})
	require.NoError(t, err)
	require.Len(t, ax.Plotters, 1)
	ln, ok := ax.Plotters[0].(*figure.Line)
	require.True(t, ok, "kde without bars draws only the curve")
	peak := 0.0
	for _, p := range ln.XYs {
		peak = math.Max(peak, p.Y)
	}
	// standard normal density peaks near 0.4
	assert.InDelta(t, 0.4, peak, 0.1)
}

func TestHistCutoffAndZeros(t *testing.T) {
	fg := figure.New()
	vals := []float64{0, 0, 1, 2, 3, 4, 5}
	ax, err := Hist(fg, [][]float64{vals}, nil, &HistOptions{
		Bins: 5, ExcludeZeros: true, Cutoff: []float64{1, 4}, XLim: []float64{0, 5},
	})
	require.NoError(t, err)
	br := ax.Plotters[0].(*figure.Bars)
	var total float64
	for _, h := range br.Heights {
		total += h
	}
	assert.Equal(t, 4.0, total, "zeros and values beyond the cutoff are dropped")
}

func TestPlotDensity(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	x := make([]float64, 200)
	y := make([]float64, 200)
	for i := range x {
		x[i] = rng.NormFloat64()
		y[i] = rng.NormFloat64() + 5
	}
	ax := figure.NewAxes()
	require.NoError(t, PlotDensity(ax, x, y, nil))
	// two marginals: fill + line each
	assert.Len(t, ax.Plotters, 4)
	assert.Less(t, ax.Y.Min, 0.0, "x marginal sits below the data area")

	ax = figure.NewAxes()
	require.NoError(t, PlotDensity(ax, x, nil, nil))
	assert.Len(t, ax.Plotters, 2)

	err := PlotDensity(figure.NewAxes(), []float64{1}, nil, nil)
	assert.Error(t, err, "too few samples")
}

func TestPlotSeries(t *testing.T) {
	fg := figure.New()
	ax, err := PlotSeries(fg, [][]float64{{1, 2, 4}, {8, 4, 2}}, nil, &SeriesOptions{
		Normalize: true, Labels: []string{"up", "down"},
	})
	require.NoError(t, err)
	require.Len(t, ax.Plotters, 2)
	ln := ax.Plotters[0].(*figure.Line)
	assert.Equal(t, 1.0, ln.XYs[2].Y, "normalized to max 1")
	assert.Len(t, ax.Legend.Entries, 2)
}

func TestFractionTimeseries(t *testing.T) {
	ad := testData(t)
	fg := figure.New()
	ax, err := FractionTimeseries(fg, ad, nil, "clusters", "latent_time", &TimeseriesOptions{Bins: 4})
	require.NoError(t, err)
	require.Len(t, ax.Plotters, 1)
	st, ok := ax.Plotters[0].(*figure.Stack)
	require.True(t, ok)
	require.Len(t, st.Ys, 3)
	// occupied bins have fractions summing to one
	for bi := range st.X {
		var sum float64
		for _, ys := range st.Ys {
			sum += ys[bi]
		}
		if sum > 0 {
			assert.InDelta(t, 1.0, sum, 1e-9)
		}
	}
	assert.Equal(t, "latent time", ax.X.Label.Text)
	assert.Equal(t, "clusters fractions", ax.Y.Label.Text)
	assert.Len(t, ax.Legend.Entries, 3)

	_, err = FractionTimeseries(fg, ad, nil, "latent_time", "latent_time", nil)
	assert.Error(t, err)
}

func TestPlotLinearFit(t *testing.T) {
	ad := testData(t)
	ax := figure.NewAxes()
	labels, err := PlotLinearFit(ax, ad, "Actb", "", "spliced", 0)
	require.NoError(t, err)
	require.Equal(t, []string{"steady-state ratio"}, labels)
	require.Len(t, ax.Plotters, 1)
	ln := ax.Plotters[0].(*figure.Line)
	// gamma=2, beta=1, offset=0: slope two through the origin
	assert.InDelta(t, 0.0, ln.XYs[0].Y, 1e-9)
	last := ln.XYs[len(ln.XYs)-1]
	assert.InDelta(t, 2*last.X, last.Y, 1e-9)
	assert.Nil(t, ln.Dashes)

	// a stored variance layer switches the line to dashed
	ad.Layers["variance_velocity"] = ad.Layers["velocity"]
	ax = figure.NewAxes()
	_, err = PlotLinearFit(ax, ad, "Actb", "velocity", "spliced", 0)
	require.NoError(t, err)
	assert.NotNil(t, ax.Plotters[0].(*figure.Line).Dashes)

	// layers without a stored gamma are skipped
	ax = figure.NewAxes()
	labels, err = PlotLinearFit(ax, ad, "Actb", "spliced", "spliced", 0)
	require.NoError(t, err)
	assert.Empty(t, labels)
	assert.Empty(t, ax.Plotters)
}

func TestRugplot(t *testing.T) {
	ax := figure.NewAxes()
	require.NoError(t, Rugplot(ax, []float64{1, 2, 3}, "k"))
	require.Len(t, ax.Plotters, 1)
	assert.Error(t, Rugplot(ax, nil, ""))
}
