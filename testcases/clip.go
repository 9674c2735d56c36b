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

package testcases

// clipCases have ellipses which extend beyond the canvas.
var clipCases = []TestCase{
	{
		Name:    "top_left_corner",
		Request: req(10, 20, 0, 0, 30),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "bottom_right_corner",
		Request: req(10, 20, 63, 63, 120),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "covers_canvas",
		Request: req(100, 120, 32, 32, 10),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "outside",
		Request: req(5, 10, -40, 100, 0),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "negative_centre",
		Request: req(12, 24, -5, 20, 75),
		Width:   64,
		Height:  64,
	},
}
