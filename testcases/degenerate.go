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

// degenerateCases have at least one zero semi-axis.
var degenerateCases = []TestCase{
	{
		Name:    "point",
		Request: req(0, 0, 16, 16, 0),
		Width:   32,
		Height:  32,
	},
	{
		Name:    "point_rotated",
		Request: req(0, 0, 16, 16, 30),
		Width:   32,
		Height:  32,
	},
	{
		Name:    "segment_axis_aligned",
		Request: req(0, 10, 16, 16, 0),
		Width:   32,
		Height:  32,
	},
	{
		Name:    "segment_quarter_turn",
		Request: req(10, 0, 16, 16, 90),
		Width:   32,
		Height:  32,
	},
	{
		Name:    "segment_rotated",
		Request: req(0, 10, 16, 16, 30),
		Width:   32,
		Height:  32,
	},
}
