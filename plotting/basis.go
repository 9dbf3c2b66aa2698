// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/scviz/scviz/adata"
)

// defaultBases are the embeddings tried for the default basis, in
// increasing order of preference.
var defaultBases = []string{"pca", "tsne", "umap"}

// DefaultBasis picks the embedding basis to plot on when none is
// given: the most preferred of pca, tsne, and umap present in Obsm.
// It errors when no known embedding exists.
func DefaultBasis(ad *adata.AnnData) (string, error) {
	var found []string
	for _, b := range defaultBases {
		if _, ok := ad.Obsm["X_"+b]; ok {
			found = append(found, b)
		}
	}
	if len(found) == 0 {
		return "", fmt.Errorf("plotting: no basis specified and no embedding found in obsm")
	}
	return found[len(found)-1], nil
}

// CheckBasis aliases an embedding stored under the bare basis name to
// the canonical "X_"-prefixed key, so that both spellings work.
func CheckBasis(ad *adata.AnnData, basis string) {
	if _, ok := ad.Obsm[basis]; !ok {
		return
	}
	if _, ok := ad.Obsm["X_"+basis]; ok {
		return
	}
	ad.Obsm["X_"+basis] = ad.Obsm[basis]
	slog.Info("plotting: renamed embedding to convention", "from", basis, "to", "X_"+basis)
}

// GetBasis strips the canonical "X_" prefix from a basis name.
func GetBasis(basis string) string {
	return strings.TrimPrefix(basis, "X_")
}

// Components parses the components string ("1,2" style) into
// zero-based embedding column indexes. Diffmap and vmap bases shift
// by one because their first component is trivial. An empty string
// means the first two components.
func Components(components, basis string) ([]int, error) {
	if components == "" {
		components = "1,2"
	}
	parts := strings.Split(components, ",")
	out := make([]int, len(parts))
	offset := 0
	if basis == "diffmap" || basis == "vmap" {
		offset = 1
	}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("plotting: invalid components %q", components)
		}
		out[i] = n - 1 + offset
		if out[i] < 0 {
			return nil, fmt.Errorf("plotting: components are one-based, got %q", components)
		}
	}
	return out, nil
}

// VelocityEmbeddingChanged reports whether the velocity embedding for
// the given basis needs recomputing: the projected velocities are
// missing from Obsm, or the recorded projection settings do not cover
// this basis.
func VelocityEmbeddingChanged(ad *adata.AnnData, basis, vkey string) bool {
	if _, ok := ad.Obsm["X_"+basis]; !ok {
		return false
	}
	if _, ok := ad.Obsm[vkey+"_"+basis]; !ok {
		return true
	}
	sett, ok := ad.Uns[vkey+"_settings"].(map[string]any)
	if !ok {
		return false
	}
	embs, ok := sett["embeddings"].([]string)
	if !ok {
		return false
	}
	return !slices.Contains(embs, basis)
}
