// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame(t *testing.T) {
	fr := NewFrame(4)
	require.NoError(t, fr.SetFloats("time", []float64{0, 1, 2, 3}))
	require.NoError(t, fr.SetStrings("clusters", []string{"b", "a", "b", "c"}))

	assert.Equal(t, []string{"time", "clusters"}, fr.Keys())
	assert.True(t, fr.Has("time"))
	assert.False(t, fr.Has("velocity"))

	fl, ok := fr.Floats("time")
	require.True(t, ok)
	assert.Equal(t, 4, len(fl))

	ct, ok := fr.Categorical("clusters")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, ct.Categories())
	assert.Equal(t, []int{1, 0, 1, 2}, ct.Codes)
	assert.Equal(t, "b", ct.Value(0))

	err := fr.SetFloats("bad", []float64{1, 2})
	assert.Error(t, err)
}

func TestGeneColumn(t *testing.T) {
	ad := New(3, 2)
	require.NoError(t, ad.SetVarNames([]string{"Actb", "Gapdh"}))
	var err error
	ad.X, err = NewDenseFrom(3, 2, []float64{1, 10, 2, 20, 3, 30})
	require.NoError(t, err)
	ad.Layers["spliced"], err = NewDenseFrom(3, 2, []float64{4, 40, 5, 50, 6, 60})
	require.NoError(t, err)

	gc, err := ad.GeneColumn("Gapdh", "")
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30}, gc)

	gc, err = ad.GeneColumn("Actb", "spliced")
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, gc)

	// unknown layer falls back to X
	gc, err = ad.GeneColumn("Actb", "nope")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, gc)

	_, err = ad.GeneColumn("Myc", "")
	assert.Error(t, err)
}

func TestObsmKeys(t *testing.T) {
	ad := New(2, 1)
	ad.Obsm["X_umap"] = NewDense(2, 2)
	ad.Obsm["X_pca"] = NewDense(2, 2)
	assert.Equal(t, []string{"X_pca", "X_umap"}, ad.ObsmKeys())
}
