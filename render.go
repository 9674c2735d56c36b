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

// Render allocates a canvas as described by cfg, clears it to the
// background colour and fills the ellipse given by req.
// The axes of req may be in either order.
func Render(cfg Config, req Request) *Canvas {
	c := NewCanvas(cfg.Width, cfg.Height)
	c.Clear(cfg.Background)
	NewScanConverter(cfg).Fill(c, req.Ellipse(), cfg.Fill)
	return c
}
