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

var rotationCases = []TestCase{
	{
		Name:    "rotate_30",
		Request: req(10, 25, 32, 32, 30),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "rotate_45",
		Request: req(10, 25, 32, 32, 45),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "rotate_90",
		Request: req(10, 25, 32, 32, 90),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "rotate_negative",
		Request: req(10, 25, 32, 32, -30),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "rotate_full_turn",
		Request: req(10, 25, 32, 32, 390),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "rotate_fractional",
		Request: req(6, 28, 32, 32, 17.25),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "thin_needle",
		Request: req(1, 28, 32, 32, 60),
		Width:   64,
		Height:  64,
	},
}
