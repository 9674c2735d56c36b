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

var basicCases = []TestCase{
	{
		Name:    "circle",
		Request: req(20, 20, 32, 32, 0),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "axis_aligned",
		Request: req(10, 25, 32, 32, 0),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "swapped_axes",
		Request: req(25, 10, 32, 32, 0),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "off_centre",
		Request: req(8, 14, 20, 45, 0),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "non_square_canvas",
		Request: req(12, 30, 24, 48, 0),
		Width:   96,
		Height:  48,
	},
	{
		Name:    "single_pixel_radius",
		Request: req(1, 1, 5, 5, 0),
		Width:   11,
		Height:  11,
	},
}
