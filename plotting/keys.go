// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"log/slog"
	"strings"

	"github.com/scviz/scviz/adata"
)

// MakeUniqueList removes duplicates from keys, keeping first
// occurrences in order.
func MakeUniqueList(keys []string) []string {
	seen := make(map[string]bool, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// UniqueValidKeys deduplicates keys and drops those that do not refer
// to anything in the dataset: not an obs or var annotation, embedding,
// layer, or feature name. Dropped keys are reported with a warning,
// never an error.
func UniqueValidKeys(ad *adata.AnnData, keys []string) []string {
	keys = MakeUniqueList(keys)
	out := make([]string, 0, len(keys))
	var dropped []string
	for _, k := range keys {
		CheckBasis(ad, GetBasis(k))
		if validKey(ad, k) {
			out = append(out, k)
		} else {
			dropped = append(dropped, k)
		}
	}
	if len(dropped) > 0 {
		slog.Warn("plotting: keys not found", "keys", strings.Join(dropped, ", "))
	}
	return out
}

func validKey(ad *adata.AnnData, k string) bool {
	if ad.Obs.Has(k) || ad.Var.Has(k) {
		return true
	}
	if _, ok := ad.Obsm[k]; ok {
		return true
	}
	if _, ok := ad.Obsm["X_"+GetBasis(k)]; ok {
		return true
	}
	if _, ok := ad.Layers[k]; ok {
		return true
	}
	_, ok := ad.VarIndex(k)
	return ok
}
