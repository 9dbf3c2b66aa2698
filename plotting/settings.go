// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotting provides the plotting-support helpers: colorkey
// interpretation, palette caching, basis and key normalization, plot
// chrome, and figure saving. Functions operate on a caller-supplied
// [adata.AnnData] and a [figure.Figure] context.
package plotting

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Settings holds plot-level configuration: output naming, resolution
// and frame defaults. Most helpers take a *Settings; nil uses
// [DefaultSettings].
type Settings struct {
	// Figdir is the directory figures are saved into.
	Figdir string `toml:"figdir"`

	// PlotPrefix is prepended to every saved figure name.
	PlotPrefix string `toml:"plot_prefix"`

	// PlotSuffix is appended to every saved figure name before the
	// extension.
	PlotSuffix string `toml:"plot_suffix"`

	// FileFormat is the default figure file format.
	FileFormat string `toml:"file_format"`

	// DPISave is the saving resolution. Values below 150 trigger a
	// one-time low-resolution warning.
	DPISave float32 `toml:"dpi_save"`

	// Autosave saves figures without an explicit save request.
	Autosave bool `toml:"autosave"`

	// Autoshow shows figures without an explicit show request.
	Autoshow bool `toml:"autoshow"`

	// FrameOn draws axes frames by default.
	FrameOn bool `toml:"frameon"`

	// Style selects sizing heuristics; see [DefaultSize].
	Style string `toml:"style"`

	lowResWarned bool
}

// DefaultSettings returns the default plot settings.
func DefaultSettings() *Settings {
	return &Settings{
		Figdir:     "figures",
		PlotPrefix: "scviz_",
		FileFormat: "png",
		DPISave:    150,
		Autoshow:   true,
		FrameOn:    true,
		Style:      "scviz",
	}
}

func (se *Settings) orDefault() *Settings {
	if se == nil {
		return DefaultSettings()
	}
	return se
}

// LoadSettings reads settings from a TOML file, with defaults for
// fields not present.
func LoadSettings(path string) (*Settings, error) {
	se := DefaultSettings()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(b, se); err != nil {
		return nil, err
	}
	return se, nil
}

// Save writes the settings to a TOML file.
func (se *Settings) Save(path string) error {
	b, err := toml.Marshal(se)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o666)
}
