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

// Package ppm reads and writes Netpbm colour images.
//
// The writer produces the plain-text P3 form by default:
//
//	P3 <width> <height> 255
//	 R G B R G B ...
//
// with every channel value preceded by a single space and no line
// wrapping. The binary P6 form must be requested explicitly through
// [Options]. The reader accepts both forms and is registered with the
// image package under the name "ppm".
package ppm

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"log/slog"
	"strconv"

	"seehuhn.de/go/ellipse"
	"seehuhn.de/go/ellipse/internal/atomicfile"
)

// Options control the encoding.
type Options struct {
	// Raw selects the binary P6 form instead of plain-text P3.
	Raw bool
}

// tokens[v] is the plain-text encoding of the channel value v,
// including the leading space.
var tokens [256]string

func init() {
	for v := range tokens {
		tokens[v] = " " + strconv.Itoa(v)
	}
}

// Encode writes img to w. A nil opt gives the plain-text P3 form.
func Encode(w io.Writer, img image.Image, opt *Options) error {
	raw := opt != nil && opt.Raw

	b := img.Bounds()
	magic := "P3"
	if raw {
		magic = "P6"
	}

	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriter(w)
	}

	_, err := fmt.Fprintf(bw, "%s %d %d 255\n", magic, b.Dx(), b.Dy())
	if err != nil {
		return err
	}

	row := make([]uint8, 3*b.Dx())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		pix := rowBytes(img, y, row)
		if raw {
			_, err = bw.Write(pix)
		} else {
			for _, v := range pix {
				if _, err = bw.WriteString(tokens[v]); err != nil {
					break
				}
			}
		}
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// rowBytes returns the packed R, G, B values of row y of img.
// buf is used as scratch space when img is not a Canvas.
func rowBytes(img image.Image, y int, buf []uint8) []uint8 {
	if c, ok := img.(*ellipse.Canvas); ok {
		return c.Row(y)
	}

	b := img.Bounds()
	k := 0
	for x := b.Min.X; x < b.Max.X; x++ {
		c := ellipse.RGBModel.Convert(img.At(x, y)).(ellipse.RGB)
		buf[k+0] = c.R
		buf[k+1] = c.G
		buf[k+2] = c.B
		k += 3
	}
	return buf
}

// WriteFile encodes img into the file at path.
//
// The file only appears at path once it has been written completely;
// if the destination cannot be created or any write fails, an error is
// returned and no partial image is left behind.
func WriteFile(path string, img image.Image, opt *Options) error {
	n, err := atomicfile.Write(path, func(w io.Writer) error {
		return Encode(w, img, opt)
	})
	if err != nil {
		return err
	}

	b := img.Bounds()
	ellipse.Logger().Info("image written",
		slog.String("path", path),
		slog.Int("width", b.Dx()),
		slog.Int("height", b.Dy()),
		slog.Int64("bytes", n))
	return nil
}
