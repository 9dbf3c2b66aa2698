// Copyright (c) 2026, The scviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"bufio"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Exts are the supported figure file extensions.
var Exts = []string{".png", ".jpg", ".jpeg", ".bmp", ".tiff"}

// KnownExt reports whether ext (with or without leading dot) is a
// supported figure extension.
func KnownExt(ext string) bool {
	if ext == "" {
		return false
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	for _, e := range Exts {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// Encode writes the rendered figure to w in the format implied by
// ext (with or without leading dot).
func (fg *Figure) Encode(w io.Writer, ext string) error {
	if fg.Pixels == nil {
		return fmt.Errorf("figure: not drawn yet")
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "png":
		return png.Encode(w, fg.Pixels)
	case "jpg", "jpeg":
		return jpeg.Encode(w, fg.Pixels, &jpeg.Options{Quality: 90})
	case "bmp":
		return bmp.Encode(w, fg.Pixels)
	case "tiff":
		return tiff.Encode(w, fg.Pixels, nil)
	}
	return fmt.Errorf("figure: unsupported format %q", ext)
}

// Save draws the figure if needed and writes it to filename, with the
// format derived from the filename extension.
func (fg *Figure) Save(filename string) error {
	return fg.SaveDPI(filename, 0)
}

// SaveDPI saves the figure rescaled to the given output resolution.
// A dpi of zero saves at the working resolution.
func (fg *Figure) SaveDPI(filename string, dpi float32) error {
	ext := filepath.Ext(filename)
	if !KnownExt(ext) {
		return fmt.Errorf("figure: unsupported figure extension %q", ext)
	}
	if fg.Pixels == nil {
		fg.Draw()
	}
	src := fg.Pixels
	if dpi > 0 && fg.DPI > 0 && dpi != fg.DPI {
		scale := dpi / fg.DPI
		w := int(float32(fg.Size.X) * scale)
		h := int(float32(fg.Size.Y) * scale)
		resized := transform.Resize(src, w, h, transform.Linear)
		defer func(orig *image.RGBA) { fg.Pixels = orig }(src)
		fg.Pixels = resized
	}
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := fg.Encode(bw, ext); err != nil {
		return err
	}
	return bw.Flush()
}
