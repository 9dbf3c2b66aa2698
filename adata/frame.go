// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adata

import (
	"fmt"
	"slices"
)

// Column is one annotation column of a Frame.
type Column interface {
	// Len returns the number of values.
	Len() int
}

// Floats is a numeric annotation column.
type Floats []float64

func (fl Floats) Len() int { return len(fl) }

// Frame is an ordered set of equal-length annotation columns keyed by
// name. Columns are either [Floats] or [*Categorical].
type Frame struct {
	names []string
	cols  map[string]Column
	rows  int
}

// NewFrame returns a Frame for the given number of rows.
func NewFrame(rows int) *Frame {
	return &Frame{cols: map[string]Column{}, rows: rows}
}

// Rows returns the number of rows.
func (fr *Frame) Rows() int { return fr.rows }

// Keys returns the column names in insertion order.
func (fr *Frame) Keys() []string { return slices.Clone(fr.names) }

// Has reports whether the named column exists.
func (fr *Frame) Has(name string) bool {
	_, ok := fr.cols[name]
	return ok
}

// Column returns the named column, or nil if not present.
func (fr *Frame) Column(name string) Column { return fr.cols[name] }

func (fr *Frame) set(name string, col Column) error {
	if col.Len() != fr.rows {
		return fmt.Errorf("adata: column %q has %d values, frame has %d rows", name, col.Len(), fr.rows)
	}
	if !fr.Has(name) {
		fr.names = append(fr.names, name)
	}
	fr.cols[name] = col
	return nil
}

// SetFloats adds or replaces a numeric column.
func (fr *Frame) SetFloats(name string, vals []float64) error {
	return fr.set(name, Floats(slices.Clone(vals)))
}

// SetStrings adds or replaces a categorical column built from the
// given string values.
func (fr *Frame) SetStrings(name string, vals []string) error {
	return fr.set(name, NewCategorical(vals))
}

// Floats returns the named numeric column.
func (fr *Frame) Floats(name string) ([]float64, bool) {
	fl, ok := fr.cols[name].(Floats)
	return fl, ok
}

// Categorical returns the named categorical column.
func (fr *Frame) Categorical(name string) (*Categorical, bool) {
	ct, ok := fr.cols[name].(*Categorical)
	return ct, ok
}

// Categorical is a string annotation column stored as integer codes
// into an ordered category list, following the convention that string
// categories are ordered lexically.
type Categorical struct {
	// Codes are per-row indexes into Categories.
	Codes []int

	categories []string
}

// NewCategorical builds a categorical column from raw string values.
func NewCategorical(vals []string) *Categorical {
	cats := slices.Clone(vals)
	slices.Sort(cats)
	cats = slices.Compact(cats)
	idx := make(map[string]int, len(cats))
	for i, c := range cats {
		idx[c] = i
	}
	codes := make([]int, len(vals))
	for i, v := range vals {
		codes[i] = idx[v]
	}
	return &Categorical{Codes: codes, categories: cats}
}

func (ct *Categorical) Len() int { return len(ct.Codes) }

// Categories returns the ordered category list.
func (ct *Categorical) Categories() []string { return ct.categories }

// NumCategories returns the number of categories.
func (ct *Categorical) NumCategories() int { return len(ct.categories) }

// Value returns the category string at row i.
func (ct *Categorical) Value(i int) string { return ct.categories[ct.Codes[i]] }
