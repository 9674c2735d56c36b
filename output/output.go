// seehuhn.de/go/ellipse - scan conversion of rotated ellipses
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package output writes rendered canvases in one of several raster
// formats. Plain-text PPM is the default; every other format has to be
// selected explicitly.
package output

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/ellipse"
	"seehuhn.de/go/ellipse/internal/atomicfile"
	"seehuhn.de/go/ellipse/ppm"
)

// Format identifies an output file format.
type Format int

// The supported formats.
const (
	PPM    Format = iota // plain-text P3
	PPMRaw               // binary P6
	PNG
	BMP
	TIFF
)

var formatNames = map[Format]string{
	PPM:    "ppm",
	PPMRaw: "ppm-raw",
	PNG:    "png",
	BMP:    "bmp",
	TIFF:   "tiff",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat returns the format with the given name, as listed by
// [Format.String]. "tif" is accepted as an alias for "tiff".
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "tif" {
		return TIFF, nil
	}
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown output format %q", name)
}

// FormatForPath chooses a format from the file name extension.
// Files without a recognised extension are written as plain-text PPM.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG
	case ".bmp":
		return BMP
	case ".tif", ".tiff":
		return TIFF
	default:
		return PPM
	}
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PPM:
		return ppm.Encode(w, img, nil)
	case PPMRaw:
		return ppm.Encode(w, img, &ppm.Options{Raw: true})
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported output format %s", f)
	}
}

// Save writes img to the file at path in format f. As with
// [ppm.WriteFile], nothing appears at path unless the whole image was
// written successfully.
func Save(path string, img image.Image, f Format) error {
	n, err := atomicfile.Write(path, func(w io.Writer) error {
		return Encode(w, img, f)
	})
	if err != nil {
		return err
	}

	ellipse.Logger().Info("image written",
		slog.String("path", path),
		slog.String("format", f.String()),
		slog.Int64("bytes", n))
	return nil
}
