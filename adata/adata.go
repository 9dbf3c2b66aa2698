// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package adata provides the annotated dataset: a table of
// observations (rows) by features (columns) with per-observation
// annotations (Obs), per-feature annotations (Var), named
// low-dimensional embeddings (Obsm), alternate expression matrices
// (Layers), and unstructured metadata (Uns).
package adata

import (
	"fmt"
	"slices"
)

// AnnData is the annotated dataset. Helper functions in the plotting
// packages treat it as a caller-supplied collaborator: they read
// everywhere but write only into Uns (cached palettes, per-key
// settings) and Obsm (basis-name aliasing).
type AnnData struct {
	// X is the primary expression matrix, n_obs x n_var. May be nil.
	X *Dense

	// Obs holds per-observation annotation columns.
	Obs *Frame

	// Var holds per-feature annotation columns.
	Var *Frame

	// VarNames are the feature (gene) names, length n_var.
	VarNames []string

	// Obsm holds named embeddings, each n_obs x n_dims.
	Obsm map[string]*Dense

	// Layers holds alternate expression matrices, each n_obs x n_var.
	Layers map[string]*Dense

	// Uns is unstructured metadata, used among other things to cache
	// computed palettes under "<key>_colors".
	Uns map[string]any

	varIndex map[string]int
}

// New returns an AnnData with empty frames for the given shape.
func New(nobs, nvar int) *AnnData {
	return &AnnData{
		Obs:    NewFrame(nobs),
		Var:    NewFrame(nvar),
		Obsm:   map[string]*Dense{},
		Layers: map[string]*Dense{},
		Uns:    map[string]any{},
	}
}

// NObs returns the number of observations.
func (ad *AnnData) NObs() int { return ad.Obs.Rows() }

// NVar returns the number of features.
func (ad *AnnData) NVar() int { return ad.Var.Rows() }

// SetVarNames sets the feature names and rebuilds the name index.
func (ad *AnnData) SetVarNames(names []string) error {
	if len(names) != ad.NVar() {
		return fmt.Errorf("adata: %d var names for %d features", len(names), ad.NVar())
	}
	ad.VarNames = names
	ad.varIndex = make(map[string]int, len(names))
	for i, nm := range names {
		ad.varIndex[nm] = i
	}
	return nil
}

// VarIndex returns the column index of the given feature name.
func (ad *AnnData) VarIndex(name string) (int, bool) {
	if ad.varIndex == nil {
		ad.varIndex = make(map[string]int, len(ad.VarNames))
		for i, nm := range ad.VarNames {
			ad.varIndex[nm] = i
		}
	}
	i, ok := ad.varIndex[name]
	return i, ok
}

// GeneColumn returns the expression vector for the named feature from
// the given layer, or from X when layer is empty or not present.
func (ad *AnnData) GeneColumn(name, layer string) ([]float64, error) {
	vi, ok := ad.VarIndex(name)
	if !ok {
		return nil, fmt.Errorf("adata: feature %q not found", name)
	}
	mx := ad.X
	if layer != "" {
		if lm, ok := ad.Layers[layer]; ok {
			mx = lm
		}
	}
	if mx == nil {
		return nil, fmt.Errorf("adata: no expression matrix for feature %q", name)
	}
	return mx.Col(vi), nil
}

// ObsmKeys returns the embedding names in sorted order.
func (ad *AnnData) ObsmKeys() []string {
	keys := make([]string, 0, len(ad.Obsm))
	for k := range ad.Obsm {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// LayerKeys returns the layer names in sorted order.
func (ad *AnnData) LayerKeys() []string {
	keys := make([]string, 0, len(ad.Layers))
	for k := range ad.Layers {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
