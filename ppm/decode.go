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

package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"seehuhn.de/go/ellipse"
)

func init() {
	image.RegisterFormat("ppm", "P3", Decode, DecodeConfig)
	image.RegisterFormat("ppm", "P6", Decode, DecodeConfig)
}

// ErrFormat indicates that the input is not a valid PPM image.
var ErrFormat = errors.New("ppm: invalid format")

// maxPixels limits the image size accepted by the decoder.
const maxPixels = 1 << 28

// initialBuf bounds the pixel buffer allocated before any data has been
// read; beyond this the buffer grows as rows arrive.
const initialBuf = 1 << 20

type header struct {
	raw           bool
	width, height int
	maxval        int
}

type decoder struct {
	br *bufio.Reader
}

// Decode reads a P3 or P6 image from r. Channel values are rescaled to
// the range 0–255 if the file uses a smaller maximum value.
func Decode(r io.Reader) (img image.Image, err error) {
	d := decoder{br: bufio.NewReader(r)}
	defer d.catch(&err)

	h := d.header()
	pix := make([]uint8, 0, min(3*h.width*h.height, initialBuf))
	if h.raw {
		pix = d.rawPixels(h, pix)
	} else {
		pix = d.plainPixels(h, pix)
	}
	return &ellipse.Canvas{Width: h.width, Height: h.height, Pix: pix}, nil
}

// DecodeConfig returns the dimensions of a PPM image without reading the
// pixel data.
func DecodeConfig(r io.Reader) (cfg image.Config, err error) {
	d := decoder{br: bufio.NewReader(r)}
	defer d.catch(&err)

	h := d.header()
	return image.Config{
		ColorModel: ellipse.RGBModel,
		Width:      h.width,
		Height:     h.height,
	}, nil
}

// DecodeFile reads the PPM image stored at path.
func DecodeFile(path string) (*ellipse.Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	return img.(*ellipse.Canvas), nil
}

func (d *decoder) header() header {
	var h header

	switch magic := d.token(); magic {
	case "P3":
	case "P6":
		h.raw = true
	default:
		d.throw(fmt.Errorf("%w: bad magic %q", ErrFormat, magic))
	}

	h.width = d.int()
	h.height = d.int()
	h.maxval = d.int()
	if h.width <= 0 || h.height <= 0 || h.width > maxPixels/h.height {
		d.throw(fmt.Errorf("%w: invalid size %dx%d", ErrFormat, h.width, h.height))
	}
	if h.maxval <= 0 || h.maxval > 255 {
		d.throw(fmt.Errorf("%w: unsupported maxval %d", ErrFormat, h.maxval))
	}

	// For P6, token has consumed the single whitespace byte which
	// separates maxval from the pixel data.
	return h
}

// plainPixels appends the channel values of all rows to pix.
func (d *decoder) plainPixels(h header, pix []uint8) []uint8 {
	n := 3 * h.width * h.height
	for range n {
		v := d.int()
		if v > h.maxval {
			d.throw(fmt.Errorf("%w: value %d exceeds maxval %d", ErrFormat, v, h.maxval))
		}
		pix = append(pix, scale(v, h.maxval))
	}
	return pix
}

// rawPixels reads the data row by row and appends it to pix.
func (d *decoder) rawPixels(h header, pix []uint8) []uint8 {
	row := make([]uint8, 3*h.width)
	for range h.height {
		_, err := io.ReadFull(d.br, row)
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		d.throw(err)
		for _, v := range row {
			if int(v) > h.maxval {
				d.throw(fmt.Errorf("%w: value %d exceeds maxval %d", ErrFormat, v, h.maxval))
			}
			pix = append(pix, scale(int(v), h.maxval))
		}
	}
	return pix
}

func scale(v, maxval int) uint8 {
	if maxval == 255 {
		return uint8(v)
	}
	return uint8((v*255 + maxval/2) / maxval)
}

// token returns the next whitespace-separated word, skipping comments.
func (d *decoder) token() string {
	var buf []byte
	for {
		c, err := d.br.ReadByte()
		if err == io.EOF && len(buf) > 0 {
			return string(buf)
		}
		if err == io.EOF {
			d.throw(io.ErrUnexpectedEOF)
		}
		d.throw(err)

		switch {
		case c == '#' && len(buf) == 0:
			_, err := d.br.ReadString('\n')
			if err != nil && err != io.EOF {
				d.throw(err)
			}
		case isSpace(c):
			if len(buf) > 0 {
				return string(buf)
			}
		default:
			buf = append(buf, c)
		}
	}
}

// int reads a non-negative decimal number.
func (d *decoder) int() int {
	tok := d.token()
	n := 0
	for _, c := range []byte(tok) {
		if c < '0' || c > '9' {
			d.throw(fmt.Errorf("%w: invalid number %q", ErrFormat, tok))
		}
		n = 10*n + int(c-'0')
		if n > maxPixels {
			d.throw(fmt.Errorf("%w: number %q out of range", ErrFormat, tok))
		}
	}
	return n
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

type decoderError struct {
	err error
}

func (d *decoder) throw(err error) {
	if err != nil {
		panic(decoderError{err: err})
	}
}

func (d *decoder) catch(err *error) {
	switch r := recover().(type) {
	case nil:
	case decoderError:
		*err = r.err
	default:
		panic(r)
	}
}
