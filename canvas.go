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

package ellipse

import (
	"image"
	"image/color"
)

// RGB is an opaque colour with 8 bits per channel.
type RGB struct {
	R, G, B uint8
}

// Predefined colours.
var (
	Black = RGB{0, 0, 0}
	Blue  = RGB{0, 121, 215}
)

// RGBA implements the color.Color interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xFFFF
}

// RGBModel converts arbitrary colours to RGB, dropping alpha after
// un-premultiplying.
var RGBModel color.Model = color.ModelFunc(rgbModel)

func rgbModel(c color.Color) color.Color {
	if c, ok := c.(RGB); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{n.R, n.G, n.B}
}

// Canvas is an RGB pixel buffer with 3 bytes per pixel in row-major order.
//
// Canvas implements [image.Image] and [draw.Image] with x the column and
// y the row, so the pixel at row i, column j is At(j, i).
type Canvas struct {
	Width, Height int

	// Pix holds R, G, B of pixel (row i, column j) at offset 3*(i*Width+j).
	Pix []uint8
}

// NewCanvas allocates a black canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, 3*width*height),
	}
}

// Stride returns the distance in bytes between vertically adjacent pixels.
func (c *Canvas) Stride() int {
	return 3 * c.Width
}

// PixOffset returns the index of the first byte of the pixel at column x,
// row y.
func (c *Canvas) PixOffset(x, y int) int {
	return y*c.Stride() + 3*x
}

// RGBAt returns the colour of the pixel at column x, row y.
// Pixels outside the canvas are black.
func (c *Canvas) RGBAt(x, y int) RGB {
	if !c.in(x, y) {
		return Black
	}
	i := c.PixOffset(x, y)
	s := c.Pix[i : i+3 : i+3]
	return RGB{s[0], s[1], s[2]}
}

// SetRGB sets the pixel at column x, row y. Pixels outside the canvas are
// ignored.
func (c *Canvas) SetRGB(x, y int, col RGB) {
	if !c.in(x, y) {
		return
	}
	i := c.PixOffset(x, y)
	s := c.Pix[i : i+3 : i+3]
	s[0], s[1], s[2] = col.R, col.G, col.B
}

// Clear fills the entire canvas with col.
func (c *Canvas) Clear(col RGB) {
	if col == Black {
		clear(c.Pix)
		return
	}
	for i := 0; i < len(c.Pix); i += 3 {
		c.Pix[i+0] = col.R
		c.Pix[i+1] = col.G
		c.Pix[i+2] = col.B
	}
}

// fillRow paints the columns [jMin, jMax) of row i.
func (c *Canvas) fillRow(i, jMin, jMax int, col RGB) {
	row := c.Pix[c.PixOffset(jMin, i):c.PixOffset(jMax, i)]
	for k := 0; k < len(row); k += 3 {
		row[k+0] = col.R
		row[k+1] = col.G
		row[k+2] = col.B
	}
}

// Row returns the packed R, G, B bytes of row y.
func (c *Canvas) Row(y int) []uint8 {
	return c.Pix[y*c.Stride() : (y+1)*c.Stride()]
}

func (c *Canvas) in(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.Width, c.Height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return RGBModel
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.RGBAt(x, y)
}

// Set implements the draw.Image interface.
func (c *Canvas) Set(x, y int, col color.Color) {
	c.SetRGB(x, y, RGBModel.Convert(col).(RGB))
}
