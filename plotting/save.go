// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/scviz/scviz/figure"
)

// Show is the hook called to display a figure. It is nil by default;
// interactive front ends set it.
var Show func(fg *figure.Figure)

// SaveShowOptions controls [SavefigOrShow]. Nil pointer fields fall
// back to the Autosave/Autoshow settings.
type SaveShowOptions struct {
	// Show displays the figure through the [Show] hook.
	Show *bool

	// Save writes the figure to disk. A non-empty SaveName implies
	// saving.
	Save *bool

	// SaveName names the output file. A recognized extension also
	// selects the format; otherwise the settings file format is used.
	SaveName string

	// DPI overrides the saving resolution when positive.
	DPI float32

	// Ext overrides the file format.
	Ext string
}

// SavefigOrShow saves the figure, shows it, or both, depending on the
// options and the Autosave/Autoshow settings. The output name is
// composed as "<figdir>/<prefix><writekey>_<savename><suffix>.<ext>",
// with empty parts dropped. It returns the saved path, or "" when
// nothing was saved.
func SavefigOrShow(fg *figure.Figure, se *Settings, writekey string, opt *SaveShowOptions) (string, error) {
	se = se.orDefault()
	if opt == nil {
		opt = &SaveShowOptions{}
	}
	save := se.Autosave
	if opt.Save != nil {
		save = *opt.Save
	}
	if opt.SaveName != "" {
		save = true
	}
	show := se.Autoshow
	if opt.Show != nil {
		show = *opt.Show
	}

	var saved string
	if save {
		ext := opt.Ext
		name := opt.SaveName
		// a recognized extension on the name selects the format
		for _, e := range figure.Exts {
			if strings.HasSuffix(name, e) {
				if ext == "" {
					ext = strings.TrimPrefix(e, ".")
				}
				name = strings.TrimSuffix(name, e)
				break
			}
		}
		if ext == "" {
			ext = se.FileFormat
		}
		switch {
		case name == "":
			name = writekey
		case writekey != "":
			name = writekey + "_" + name
		}
		if se.Figdir != "" {
			if err := os.MkdirAll(se.Figdir, 0o777); err != nil {
				return "", err
			}
		}
		saved = filepath.Join(se.Figdir, se.PlotPrefix+name+se.PlotSuffix+"."+ext)

		dpi := opt.DPI
		if dpi == 0 {
			if se.DPISave < 150 {
				if !se.lowResWarned {
					slog.Warn("plotting: saving at low resolution", "dpi_save", se.DPISave)
					se.lowResWarned = true
				}
			} else {
				dpi = se.DPISave
			}
		}
		slog.Info("plotting: saving figure", "file", saved)
		if err := fg.SaveDPI(saved, dpi); err != nil {
			return "", err
		}
	}
	if show && Show != nil {
		Show(fg)
	}
	return saved, nil
}
