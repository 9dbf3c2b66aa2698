// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scviz/scviz/adata"
	"github.com/scviz/scviz/figure"
)

func TestDefaultBasis(t *testing.T) {
	ad := adata.New(4, 0)
	_, err := DefaultBasis(ad)
	assert.Error(t, err, "no embedding present")

	ad.Obsm["X_pca"] = adata.NewDense(4, 2)
	basis, err := DefaultBasis(ad)
	require.NoError(t, err)
	assert.Equal(t, "pca", basis)

	ad.Obsm["X_tsne"] = adata.NewDense(4, 2)
	basis, err = DefaultBasis(ad)
	require.NoError(t, err)
	assert.Equal(t, "tsne", basis)

	// umap is preferred over all others when present
	ad.Obsm["X_umap"] = adata.NewDense(4, 2)
	basis, err = DefaultBasis(ad)
	require.NoError(t, err)
	assert.Equal(t, "umap", basis)
}

func TestCheckBasis(t *testing.T) {
	ad := adata.New(4, 0)
	dn := adata.NewDense(4, 2)
	ad.Obsm["umap"] = dn

	CheckBasis(ad, "umap")
	assert.Same(t, dn, ad.Obsm["X_umap"])

	// aliasing never clobbers an existing canonical entry
	other := adata.NewDense(4, 2)
	ad.Obsm["tsne"] = other
	ad.Obsm["X_tsne"] = adata.NewDense(4, 2)
	CheckBasis(ad, "tsne")
	assert.NotSame(t, other, ad.Obsm["X_tsne"])
}

func TestGetBasis(t *testing.T) {
	assert.Equal(t, "umap", GetBasis("X_umap"))
	assert.Equal(t, "umap", GetBasis("umap"))
}

func TestComponents(t *testing.T) {
	comps, err := Components("", "umap")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, comps)

	comps, err = Components("2,3", "umap")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, comps)

	// the first diffusion component is trivial and skipped
	comps, err = Components("1,2", "diffmap")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, comps)

	_, err = Components("a,b", "umap")
	assert.Error(t, err)
	_, err = Components("0,1", "umap")
	assert.Error(t, err)
}

func TestVelocityEmbeddingChanged(t *testing.T) {
	ad := adata.New(4, 0)
	assert.False(t, VelocityEmbeddingChanged(ad, "umap", "velocity"), "no embedding at all")

	ad.Obsm["X_umap"] = adata.NewDense(4, 2)
	assert.True(t, VelocityEmbeddingChanged(ad, "umap", "velocity"), "projection missing")

	ad.Obsm["velocity_umap"] = adata.NewDense(4, 2)
	assert.False(t, VelocityEmbeddingChanged(ad, "umap", "velocity"))

	ad.Uns["velocity_settings"] = map[string]any{"embeddings": []string{"tsne"}}
	assert.True(t, VelocityEmbeddingChanged(ad, "umap", "velocity"), "settings cover a different basis")

	ad.Uns["velocity_settings"] = map[string]any{"embeddings": []string{"tsne", "umap"}}
	assert.False(t, VelocityEmbeddingChanged(ad, "umap", "velocity"))
}

func TestMakeUniqueList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, MakeUniqueList([]string{"a", "b", "a", "c", "b"}))
	assert.Empty(t, MakeUniqueList(nil))
}

func TestUniqueValidKeys(t *testing.T) {
	ad := testData(t)
	keys := UniqueValidKeys(ad, []string{
		"clusters", "clusters", "latent_time", "Actb", "spliced",
		"X_umap", "umap", "no_such_key",
	})
	assert.Equal(t, []string{"clusters", "latent_time", "Actb", "spliced", "X_umap", "umap"}, keys)
}

func TestDefaults(t *testing.T) {
	ad := testData(t)
	assert.Equal(t, "clusters", DefaultColor(ad))
	assert.Equal(t, "grey", DefaultColor(adata.New(3, 0)))

	se := DefaultSettings()
	size := DefaultSize(ad, se)
	assert.InDelta(t, (1.2e5/6+20)/2, size, 1e-9)
	se.Style = ""
	assert.InDelta(t, 1.2e5/6, DefaultSize(ad, se), 1e-9)

	loc, err := DefaultLegendLoc(ad, "clusters", "")
	require.NoError(t, err)
	assert.Equal(t, figure.LocUpperRight, loc, "3 categories fit a corner legend")

	cats := []string{"a", "b", "c", "d", "e", "f"}
	require.NoError(t, ad.Obs.SetStrings("many", cats))
	loc, err = DefaultLegendLoc(ad, "many", "")
	require.NoError(t, err)
	assert.Equal(t, figure.LocOnData, loc)

	loc, err = DefaultLegendLoc(ad, "many", "lower left")
	require.NoError(t, err)
	assert.Equal(t, figure.LocLowerLeft, loc)

	hl, hw, hal := DefaultArrow(0)
	assert.Equal(t, []float64{12, 10, 8}, []float64{hl, hw, hal})
	hl, _, _ = DefaultArrow(2)
	assert.Equal(t, 24.0, hl)
}
