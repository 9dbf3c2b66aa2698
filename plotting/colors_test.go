// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scviz/scviz/adata"
	"github.com/scviz/scviz/palettes"
)

// testData builds a small dataset with a categorical clustering, a
// numeric time annotation, two features, and a spliced layer.
func testData(t *testing.T) *adata.AnnData {
	t.Helper()
	ad := adata.New(6, 2)
	require.NoError(t, ad.Obs.SetStrings("clusters", []string{"b", "a", "b", "c", "a", "b"}))
	require.NoError(t, ad.Obs.SetFloats("latent_time", []float64{0.1, 0.3, 0.5, 0.6, 0.8, 0.9}))
	require.NoError(t, ad.Var.SetFloats("velocity_gamma", []float64{2, 0.5}))
	require.NoError(t, ad.SetVarNames([]string{"Actb", "Gapdh"}))
	var err error
	ad.X, err = adata.NewDenseFrom(6, 2, []float64{
		1, 10, 2, 20, 3, 30, 4, 40, 5, 50, 6, 60,
	})
	require.NoError(t, err)
	ad.Layers["spliced"], err = adata.NewDenseFrom(6, 2, []float64{
		2, 1, 4, 2, 6, 3, 8, 4, 10, 5, 12, 6,
	})
	require.NoError(t, err)
	ad.Layers["velocity"] = adata.NewDense(6, 2)
	ad.Obsm["X_umap"] = adata.NewDense(6, 2)
	return ad
}

func TestCategoryPaletteCaches(t *testing.T) {
	ad := testData(t)
	pal, err := CategoryPalette(ad, "clusters")
	require.NoError(t, err)
	assert.Len(t, pal, 3)

	cached, ok := ad.Uns["clusters_colors"].([]string)
	require.True(t, ok, "palette must be cached as hex strings")
	assert.GreaterOrEqual(t, len(cached), 3)

	// a cached palette that is long enough is reused as-is
	ad.Uns["clusters_colors"] = []string{"#ff0000", "#00ff00", "#0000ff"}
	pal, err = CategoryPalette(ad, "clusters")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", pal.Hex()[0])

	// a too-short cache is regenerated and rewritten
	ad.Uns["clusters_colors"] = []string{"#ff0000"}
	pal, err = CategoryPalette(ad, "clusters")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(pal), 3)
	cached, ok = ad.Uns["clusters_colors"].([]string)
	require.True(t, ok)
	assert.GreaterOrEqual(t, len(cached), 3)
}

func TestCategoryPaletteManyCategories(t *testing.T) {
	ad := adata.New(90, 0)
	cats := make([]string, 90)
	for i := range cats {
		cats[i] = fmt.Sprintf("cat%02d", i)
	}
	require.NoError(t, ad.Obs.SetStrings("clusters", cats))
	pal, err := CategoryPalette(ad, "clusters")
	require.NoError(t, err)
	assert.Len(t, pal, 90)
}

func TestObsColors(t *testing.T) {
	ad := testData(t)
	cols, err := ObsColors(ad, "clusters")
	require.NoError(t, err)
	require.Len(t, cols, 6)
	// same category, same color; different categories differ
	assert.Equal(t, cols[0], cols[2])
	assert.Equal(t, cols[1], cols[4])
	assert.NotEqual(t, cols[0], cols[1])
}

func TestInterpretColorkeyLiteralWins(t *testing.T) {
	ad := testData(t)
	// "red" could be a category name too; the literal color wins
	require.NoError(t, ad.Obs.SetStrings("red", []string{"x", "y", "x", "y", "x", "y"}))
	cl, err := InterpretColorkey(ad, "red", "", nil)
	require.NoError(t, err)
	assert.Equal(t, SingleColor, cl.Kind)
	assert.EqualValues(t, 255, cl.Single.R)
}

func TestInterpretColorkeyGeneWins(t *testing.T) {
	ad := testData(t)
	// feature names take precedence over same-named annotations
	require.NoError(t, ad.Obs.SetFloats("Actb", []float64{9, 9, 9, 9, 9, 9}))
	cl, err := InterpretColorkey(ad, "Actb", "", nil)
	require.NoError(t, err)
	assert.Equal(t, ValueColors, cl.Kind)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, cl.Values)

	cl, err = InterpretColorkey(ad, "Actb", "spliced", nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6, 8, 10, 12}, cl.Values)
}

func TestInterpretColorkeyKinds(t *testing.T) {
	ad := testData(t)

	cl, err := InterpretColorkey(ad, "clusters", "", nil)
	require.NoError(t, err)
	assert.Equal(t, CategoryColors, cl.Kind)
	assert.Len(t, cl.Colors, 6)

	cl, err = InterpretColorkey(ad, "latent_time", "", nil)
	require.NoError(t, err)
	assert.Equal(t, ValueColors, cl.Kind)

	cl, err = InterpretColorkey(ad, []float64{1, 2, 3, 4, 5, 6}, "", nil)
	require.NoError(t, err)
	assert.Equal(t, ValueColors, cl.Kind)

	// nil falls back to the default colorkey, here the clustering
	cl, err = InterpretColorkey(ad, nil, "", nil)
	require.NoError(t, err)
	assert.Equal(t, CategoryColors, cl.Kind)

	_, err = InterpretColorkey(ad, "nonsense_key", "", nil)
	assert.Error(t, err)

	_, err = InterpretColorkey(ad, 42, "", nil)
	assert.Error(t, err)
}

func TestInterpretColorkeyClips(t *testing.T) {
	ad := testData(t)
	cl, err := InterpretColorkey(ad, "Actb", "", []float64{10, 90})
	require.NoError(t, err)
	mn, mx := cl.Values[0], cl.Values[len(cl.Values)-1]
	assert.Greater(t, mn, 1.0)
	assert.Less(t, mx, 6.0)
}

func TestDefaultColorMap(t *testing.T) {
	ad := testData(t)
	require.NoError(t, ad.Obs.SetFloats("corr", []float64{-1, -0.5, 0, 0.2, 0.7, 1}))
	require.NoError(t, ad.Obs.SetFloats("frac", []float64{0, 0.1, 0.4, 0.5, 0.9, 1}))

	assert.Equal(t, "viridis_r", DefaultColorMap(ad, "corr"))
	assert.Equal(t, "viridis_r", DefaultColorMap(ad, "frac"))
	assert.Equal(t, "", DefaultColorMap(ad, "latent_time"))
	assert.Equal(t, "", DefaultColorMap(ad, "Actb"))
	assert.Equal(t, "viridis_r", DefaultColorMap(ad, []float64{0, 0.5, 1, 1, 0, 0}))
}

func TestIsCategorical(t *testing.T) {
	ad := testData(t)
	assert.True(t, IsCategorical(ad, "clusters"))
	assert.True(t, IsCategorical(ad, "red"))
	assert.False(t, IsCategorical(ad, "latent_time"))
	assert.False(t, IsCategorical(ad, "Actb"))
}

func TestTakeCycle(t *testing.T) {
	p := palettes.Default()
	out := takeCycle(p, 25)
	assert.Len(t, out, 25)
	assert.Equal(t, p[0], out[10])
	assert.Equal(t, p[4], out[24])
}
